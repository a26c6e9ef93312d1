package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so package-level flag vars do not
// leak between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type cliEnv struct {
	dir   string
	store string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	return cliEnv{dir: dir, store: filepath.Join(dir, "wealthplan.db")}
}

func (e cliEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--store", e.store}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPlan_DefaultsToConsole(t *testing.T) {
	env := newCLIEnv(t)
	for _, args := range [][]string{nil, {"plan"}} {
		out, _, err := env.run(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "WEALTH PHASE PLAN")
		assert.Contains(t, out, "₹3,09,87,515")
		assert.Contains(t, out, "target reached at age 51")
	}
}

func TestPlan_WritesReportFiles(t *testing.T) {
	env := newCLIEnv(t)
	outDir := filepath.Join(env.dir, "reports")

	out, _, err := env.run(t, "plan", "--format", "csv", "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote ")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".csv"))
}

func TestPlan_UnknownFormat(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run(t, "plan", "--format", "xml", "--out", env.dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestPlan_SettingsFile(t *testing.T) {
	env := newCLIEnv(t)
	out, _, err := env.run(t, "plan", "--settings", filepath.Join("..", "internal", "config", "testdata", "settings.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "WEALTH PHASE PLAN")

	_, _, err = env.run(t, "plan", "--settings", filepath.Join(env.dir, "missing.yaml"))
	require.Error(t, err)
}

func TestPlan_FromStoreAndHistory(t *testing.T) {
	env := newCLIEnv(t)

	_, _, err := env.run(t, "plan", "--from-store")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings init")

	out, _, err := env.run(t, "settings", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Stored default settings")

	_, stderr, err := env.run(t, "plan", "--from-store", "--save")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Saved plan ")

	out, _, err = env.run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved Plans")
	assert.Contains(t, out, "₹3,09,87,515")

	out, _, err = env.run(t, "history", "latest")
	require.NoError(t, err)
	assert.Contains(t, out, "WEALTH PHASE PLAN")

	_, _, err = env.run(t, "history", "no-such-id")
	require.Error(t, err)
}

func TestSettingsCommands(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No settings stored")

	file := filepath.Join(env.dir, "settings.yaml")
	out, _, err = env.run(t, "settings", "init", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default settings")
	require.FileExists(t, file)

	out, _, err = env.run(t, "settings", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported")

	out, _, err = env.run(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "annual_expense")
	assert.Contains(t, out, "accumulation")

	_, _, err = env.run(t, "settings", "clear")
	require.NoError(t, err)
	out, _, err = env.run(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No settings stored")
}

func TestProjectCommand(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run(t, "project")
	require.NoError(t, err)
	assert.Contains(t, out, "PHASE PROJECTION")
	assert.Contains(t, out, "Target ₹30,00,000 reached in 6 years (target crossed about 1 months before year end)")
	assert.Contains(t, out, "₹31,72,711")

	out, _, err = env.run(t, "project", "--inflation", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Without inflation ₹39,59,370")
	assert.Contains(t, out, "No inflation")

	out, _, err = env.run(t, "project", "--start", "4000000")
	require.NoError(t, err)
	assert.Contains(t, out, "already meets the ₹30,00,000 target")

	_, _, err = env.run(t, "project", "--rate", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --rate")

	_, _, err = env.run(t, "project", "--contribution", "0", "--rate", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not converge")
}

func TestSavingsCommand(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run(t, "savings", "--salary", "208333.33", "--contribution", "30000")
	require.NoError(t, err)
	assert.Contains(t, out, "Accumulation Phase savings rate: 14.40%")
	assert.Contains(t, out, "Recommended: 50.00% - 75.00%")
	assert.Contains(t, out, "below by 35.60%")

	out, _, err = env.run(t, "savings", "--salary", "100000", "--contribution", "25000", "--phase", "growth")
	require.NoError(t, err)
	assert.Contains(t, out, "Recommended: 20.00% or more")
	assert.Contains(t, out, "within band")

	_, _, err = env.run(t, "savings", "--salary", "100000", "--contribution", "1", "--phase", "abundant")
	require.Error(t, err)

	_, _, err = env.run(t, "savings", "--salary", "0", "--contribution", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")

	_, _, err = env.run(t, "savings", "--contribution", "1")
	require.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "using defaults")
	assert.Contains(t, out, "Default format:  console")
	assert.Contains(t, out, env.store)

	out, _, err = env.run(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "config.toml")

	out, _, err = env.run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: loaded")

	_, _, err = env.run(t, "config", "init")
	require.Error(t, err)
}

func TestVerboseLogging(t *testing.T) {
	env := newCLIEnv(t)

	_, stderr, err := env.run(t, "plan")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "INFO")

	_, stderr, err = env.run(t, "plan", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "INFO")
	assert.Contains(t, stderr, "plan built")
}

func TestStreamLogger(t *testing.T) {
	var buf bytes.Buffer
	quiet := newLogger(&buf, false)
	quiet.Debugf("hidden %d", 1)
	quiet.Infof("hidden %d", 2)
	quiet.Warnf("shown %d", 3)
	quiet.Errorf("shown %d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WARN  shown 3")
	assert.Contains(t, lines[1], "ERROR shown 4")

	buf.Reset()
	loud := newLogger(&buf, true)
	loud.Debugf("visible")
	assert.Contains(t, buf.String(), "DEBUG visible")
}
