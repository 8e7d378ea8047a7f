package envfile

import (
	"bufio"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// linePattern is the complete line grammar. KEY is uppercase letters, digits
// and underscores; VALUE is everything between the first and the last single
// quote on the line, taken literally. There is no escape mechanism.
var linePattern = regexp.MustCompile(`^export ([A-Z0-9_]+)='(.*)'$`)

// Line is the result of parsing one input line. Lines that match the export
// grammar carry Key and Value with Match set; all other lines carry only
// their position and raw text.
type Line struct {
	Num   int
	Key   string
	Value string
	Text  string
	Match bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for skipped-line diagnostics.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// Parser reads environment files one line at a time, matching each line
// against the export grammar. Parsers are stateless and safe for concurrent
// use.
type Parser struct {
	logger *slog.Logger
}

// New returns a configured Parser.
func New(opts ...Option) *Parser {
	p := &Parser{logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads r to the end and returns one Line per input line, in input
// order. Lines that do not match the export grammar are reported with an
// informational log entry and included unmatched; they are never an error.
// Line length is unbounded: values are limited only by available memory.
// A read failure aborts the parse and returns the error from the underlying
// reader with no partial results.
func (p *Parser) Parse(r io.Reader) ([]Line, error) {
	var lines []Line

	// Lines are read manually since bufio.Scanner caps tokens at 64KiB and
	// values carry no length bound.
	num := 0
	br := bufio.NewReader(r)
	for {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if text == "" && err == io.EOF {
			break
		}

		num++
		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")

		m := linePattern.FindStringSubmatch(text)
		if m == nil {
			p.logger.Info("skipping unrecognized environment file line",
				slog.Int("line", num),
				slog.String("text", text),
			)
			lines = append(lines, Line{Num: num, Text: text})
		} else {
			lines = append(lines, Line{Num: num, Key: m[1], Value: m[2], Text: text, Match: true})
		}

		if err == io.EOF {
			break
		}
	}

	return lines, nil
}

// ParseFile opens path and parses its contents. Open and read failures are
// returned exactly as the operating system reported them, so callers can
// distinguish not-found from permission errors with errors.Is.
func (p *Parser) ParseFile(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return p.Parse(f)
}

// ParseFS parses the named file from fsys. It mirrors ParseFile for embedded
// or testing filesystems.
func (p *Parser) ParseFS(fsys fs.FS, name string) ([]Line, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return p.Parse(f)
}

// Parse parses r with a default Parser.
func Parse(r io.Reader) ([]Line, error) {
	return New().Parse(r)
}

// ParseFile parses the file at path with a default Parser.
func ParseFile(path string) ([]Line, error) {
	return New().ParseFile(path)
}

// ParseFS parses the named file from fsys with a default Parser.
func ParseFS(fsys fs.FS, name string) ([]Line, error) {
	return New().ParseFS(fsys, name)
}
