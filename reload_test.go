package envbind_test

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envbind"
	"github.com/dmitrymomot/envbind/pkg/transform"
)

func writeEnvFile(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "env")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func TestReload_ReresolvesMappedVariables(t *testing.T) {
	t.Setenv("RELOAD_PORT", "8080")

	b := envbind.New()
	require.NoError(t, b.Bind("api", "port", "RELOAD_PORT", envbind.WithTransform(transform.Int)))

	path := writeEnvFile(t, "export RELOAD_PORT='9090'")
	require.NoError(t, b.Reload("api", path))

	v, err := b.Get("api", "port")
	require.NoError(t, err)
	assert.Equal(t, 9090, v, "reload should re-resolve with the registered transform")
	assert.Equal(t, "9090", os.Getenv("RELOAD_PORT"), "reload should update the process environment")
}

func TestReload_SkipsUnmappedVariables(t *testing.T) {
	t.Setenv("RELOAD_MAPPED", "old")
	t.Setenv("RELOAD_UNMAPPED", "original")

	b := envbind.New()
	require.NoError(t, b.Bind("api", "mapped", "RELOAD_MAPPED"))

	path := writeEnvFile(t,
		"export RELOAD_MAPPED='new'",
		"export RELOAD_UNMAPPED='hijacked'",
	)
	require.NoError(t, b.Reload("api", path), "unmapped variables should not fail the reload")

	v, err := b.Get("api", "mapped")
	require.NoError(t, err)
	assert.Equal(t, "new", v)
	assert.Equal(t, "original", os.Getenv("RELOAD_UNMAPPED"), "unmapped variables must not touch the environment")
}

func TestReload_SkipsMalformedLines(t *testing.T) {
	t.Setenv("RELOAD_GOOD_A", "a1")
	t.Setenv("RELOAD_GOOD_B", "b1")

	b := envbind.New()
	require.NoError(t, b.Bind("api", "a", "RELOAD_GOOD_A"))
	require.NoError(t, b.Bind("api", "b", "RELOAD_GOOD_B"))

	path := writeEnvFile(t,
		"export RELOAD_GOOD_A='a2'",
		"# comment line",
		"RELOAD_GOOD_B=not-export-syntax",
		"export RELOAD_GOOD_B='b2'",
	)
	require.NoError(t, b.Reload("api", path))

	a, err := b.Get("api", "a")
	require.NoError(t, err)
	assert.Equal(t, "a2", a)

	bVal, err := b.Get("api", "b")
	require.NoError(t, err)
	assert.Equal(t, "b2", bVal, "lines after a malformed one should still apply")
}

func TestReload_MissingFileLeavesConfigUntouched(t *testing.T) {
	t.Setenv("RELOAD_KEEP", "kept")

	b := envbind.New()
	require.NoError(t, b.Bind("api", "keep", "RELOAD_KEEP"))

	err := b.Reload("api", filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err, "reload should report the file error")
	assert.ErrorIs(t, err, fs.ErrNotExist, "file errors should surface unwrapped")

	v, getErr := b.Get("api", "keep")
	require.NoError(t, getErr)
	assert.Equal(t, "kept", v, "a failed file read must not change configuration")
	assert.Equal(t, "kept", os.Getenv("RELOAD_KEEP"), "a failed file read must not change the environment")
}

func TestReload_StopsAtFirstFailure(t *testing.T) {
	t.Setenv("RELOAD_FIRST", "1")
	t.Setenv("RELOAD_BROKEN", "2")
	t.Setenv("RELOAD_LAST", "3")

	b := envbind.New()
	require.NoError(t, b.BindAll("api",
		envbind.Decl{ConfigKey: "first", EnvKey: "RELOAD_FIRST", Transform: transform.Int},
		envbind.Decl{ConfigKey: "broken", EnvKey: "RELOAD_BROKEN", Transform: transform.Int},
		envbind.Decl{ConfigKey: "last", EnvKey: "RELOAD_LAST", Transform: transform.Int},
	))

	path := writeEnvFile(t,
		"export RELOAD_FIRST='10'",
		"export RELOAD_BROKEN='oops'",
		"export RELOAD_LAST='30'",
	)

	err := b.Reload("api", path)
	require.Error(t, err, "a failed re-resolution should abort the reload")

	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)

	first, getErr := b.Get("api", "first")
	require.NoError(t, getErr)
	assert.Equal(t, 10, first, "variables before the failure stay applied")

	broken, getErr := b.Get("api", "broken")
	require.NoError(t, getErr)
	assert.Equal(t, 2, broken, "the failing variable keeps its previous value")
	assert.Equal(t, "oops", os.Getenv("RELOAD_BROKEN"), "the environment update is not rolled back")

	last, getErr := b.Get("api", "last")
	require.NoError(t, getErr)
	assert.Equal(t, 3, last, "variables after the failure must not re-resolve")
	assert.Equal(t, "3", os.Getenv("RELOAD_LAST"))
}

func TestReload_UsesLatestBinding(t *testing.T) {
	t.Setenv("RELOAD_REBOUND", "first")

	b := envbind.New()
	require.NoError(t, b.Bind("api", "as_string", "RELOAD_REBOUND"))

	// Re-binding the same variable replaces the registered mapping even
	// though its current value does not parse as an int.
	err := b.Bind("api", "as_int", "RELOAD_REBOUND", envbind.WithTransform(transform.Int))
	require.Error(t, err, "resolving a non-numeric value as int should fail")

	path := writeEnvFile(t, "export RELOAD_REBOUND='7'")
	require.NoError(t, b.Reload("api", path))

	v, err := b.Get("api", "as_int")
	require.NoError(t, err)
	assert.Equal(t, 7, v, "reload should use the most recent binding for the variable")

	old, err := b.Get("api", "as_string")
	require.NoError(t, err)
	assert.Equal(t, "first", old, "the superseded configuration key keeps its old value")
}

func TestReloadFS(t *testing.T) {
	t.Setenv("RELOADFS_MODE", "live")

	b := envbind.New()
	require.NoError(t, b.Bind("api", "mode", "RELOADFS_MODE", envbind.WithTransform(transform.Symbol)))

	fsys := fstest.MapFS{
		"conf/env": {Data: []byte("export RELOADFS_MODE='sandbox'\n")},
	}
	require.NoError(t, b.ReloadFS("api", fsys, "conf/env"))

	v, err := b.Get("api", "mode")
	require.NoError(t, err)
	assert.Equal(t, transform.Atom("sandbox"), v)
}

func TestReloadFS_MissingFile(t *testing.T) {
	b := envbind.New()

	err := b.ReloadFS("api", fstest.MapFS{}, "conf/env")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReloadDotenv(t *testing.T) {
	t.Setenv("DOTENV_RATE", "0.25")
	t.Setenv("DOTENV_IGNORED", "original")

	b := envbind.New()
	require.NoError(t, b.Bind("api", "rate", "DOTENV_RATE", envbind.WithTransform(transform.Float)))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DOTENV_RATE=0.75\nDOTENV_IGNORED=hijacked\n"), 0o600))

	require.NoError(t, b.ReloadDotenv("api", path))

	v, err := b.Get("api", "rate")
	require.NoError(t, err)
	assert.Equal(t, 0.75, v)
	assert.Equal(t, "original", os.Getenv("DOTENV_IGNORED"), "unmapped dotenv keys should be skipped")
}

func TestReloadDotenv_MissingFile(t *testing.T) {
	b := envbind.New()

	err := b.ReloadDotenv("api", filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReload_EmitsDiagnostics(t *testing.T) {
	t.Setenv("RELOAD_DIAG_MAPPED", "old")

	var buf bytes.Buffer
	b := envbind.New(envbind.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	require.NoError(t, b.Bind("api", "mapped", "RELOAD_DIAG_MAPPED"))

	path := writeEnvFile(t,
		"this line is garbage",
		"export RELOAD_DIAG_MAPPED='new'",
		"export RELOAD_DIAG_UNMAPPED='ignored'",
	)
	require.NoError(t, b.Reload("api", path))

	logged := buf.String()
	assert.Contains(t, logged, "skipping unrecognized environment file line", "malformed lines should be reported")
	assert.Contains(t, logged, "skipping unmapped environment variable", "unmapped variables should be reported")
	assert.Contains(t, logged, "RELOAD_DIAG_UNMAPPED")
	assert.Contains(t, logged, "reload_id=", "diagnostics should carry the reload run ID")
	assert.Contains(t, logged, "app=api")
}
