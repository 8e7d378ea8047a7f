package envbind

import (
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/envbind/pkg/envfile"
)

// Reload re-reads the environment file at path and re-resolves every
// binding of app whose environment variable appears in it.
//
// File open and read failures are returned exactly as reported, before any
// environment or configuration change. Lines that do not match the export
// grammar and variables with no registered binding are logged and skipped.
// For each mapped variable the process environment is overwritten first,
// then the binding re-resolves with its registered options; the first
// resolution failure aborts the remaining lines without rolling back the
// updates already applied.
func (b *Binder) Reload(app, path string) error {
	run := b.reloadLogger(app)

	lines, err := envfile.New(envfile.WithLogger(run)).ParseFile(path)
	if err != nil {
		return err
	}
	return b.applyLines(app, run, lines)
}

// ReloadFS is Reload reading the named file from fsys, for embedded or
// testing filesystems.
func (b *Binder) ReloadFS(app string, fsys fs.FS, name string) error {
	run := b.reloadLogger(app)

	lines, err := envfile.New(envfile.WithLogger(run)).ParseFS(fsys, name)
	if err != nil {
		return err
	}
	return b.applyLines(app, run, lines)
}

// ReloadDotenv is Reload for dotenv-format files, parsed with godotenv.
// Dotenv files carry no reliable line order, so mapped variables are
// applied in sorted key order to keep failure behavior deterministic.
func (b *Binder) ReloadDotenv(app, path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	lines := make([]envfile.Line, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, envfile.Line{Key: k, Value: vars[k], Match: true})
	}
	return b.applyLines(app, b.reloadLogger(app), lines)
}

// reloadLogger tags every diagnostic of one reload run with a fresh run ID,
// so interleaved concurrent reloads stay distinguishable in the log.
func (b *Binder) reloadLogger(app string) *slog.Logger {
	return b.logger.With(
		slog.String("reload_id", uuid.NewString()),
		slog.String("app", app),
	)
}

// applyLines drives re-resolution for parsed environment file lines.
func (b *Binder) applyLines(app string, run *slog.Logger, lines []envfile.Line) error {
	for _, line := range lines {
		if !line.Match {
			// Already reported by the parser.
			continue
		}

		bnd, ok := b.reg.lookup(app, line.Key)
		if !ok {
			run.Info("skipping unmapped environment variable",
				slog.String("env", line.Key),
			)
			continue
		}

		if err := os.Setenv(line.Key, line.Value); err != nil {
			return err
		}
		if err := b.resolve(app, bnd.configKey, line.Key, bnd.opts); err != nil {
			return err
		}
	}
	return nil
}
