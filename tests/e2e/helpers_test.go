//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/stockbook/internal/app"
	"github.com/heartmarshall/stockbook/internal/cli"
)

// ---------------------------------------------------------------------------
// testCLI bootstraps the full application against a temp data directory and
// drives it through the real command tree.
// ---------------------------------------------------------------------------

type testCLI struct {
	t   *testing.T
	app *app.App
	dir string
}

func setupCLI(t *testing.T) *testCLI {
	t.Helper()

	dir := t.TempDir()
	// Keep the config file lookup away from any real config.
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("STORAGE_DIR", filepath.Join(dir, "data"))
	t.Setenv("EXPORT_DIR", filepath.Join(dir, "exports"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "text")
	// bcrypt.MinCost keeps password hashing fast in tests.
	t.Setenv("AUTH_PASSWORD_HASH_COST", "4")

	a, err := app.New(context.Background())
	require.NoError(t, err)

	return &testCLI{t: t, app: a, dir: dir}
}

// run executes one command line and returns its output, failing the test on
// a command error.
func (c *testCLI) run(args ...string) string {
	c.t.Helper()
	out, err := c.tryRun(args...)
	require.NoError(c.t, err, "command %v\noutput: %s", args, out)
	return out
}

// tryRun executes one command line, returning its output and error.
func (c *testCLI) tryRun(args ...string) (string, error) {
	c.t.Helper()

	cliApp := cli.New(c.app)
	var buf bytes.Buffer
	cliApp.Writer = &buf

	err := cliApp.RunContext(context.Background(), append([]string{"stockbook"}, args...))
	return buf.String(), err
}

// exportPath returns the path of a file under the test export directory.
func (c *testCLI) exportPath(name string) string {
	return filepath.Join(c.dir, "exports", name)
}
