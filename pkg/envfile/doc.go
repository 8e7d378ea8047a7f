// Package envfile parses environment files made of shell-style export lines.
//
// The accepted grammar is deliberately narrow. A line sets a variable only
// when it has exactly the form
//
//	export NAME='value'
//
// where NAME consists of uppercase letters, digits and underscores, and
// value is everything between the first single quote and the last single
// quote on that line, taken literally. Every other line, including blank
// lines and comments, is skipped with an informational diagnostic; skipped
// lines never fail a parse.
//
// # Quoting
//
// There is no escape mechanism. Because the value spans from the first to
// the last quote, a value may contain interior single quotes:
//
//	export MSG='it''s fine'   // value: it''s fine
//
// while a line with no closing quote does not parse at all. This matches
// the historical file format the package exists to read and is
// intentionally not "fixed".
//
// # Usage
//
//	lines, err := envfile.ParseFile("/etc/myapp/env")
//	if err != nil {
//		// the *fs.PathError or read error, exactly as reported
//	}
//	for _, line := range lines {
//		if !line.Match {
//			continue
//		}
//		fmt.Println(line.Key, "=", line.Value)
//	}
//
// Results preserve file order, one Line per input line. Values carry no
// length limit; a line is bounded only by available memory. Read failures
// abort the whole parse and return the underlying error with no partial
// results.
package envfile
