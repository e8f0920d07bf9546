package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv points the database and config lookups at a temp dir.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, k := range []string{"DSAPREP_DB", "DSAPREP_CONFIG"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return dir
}

// resetFlags restores every flag to its default; cobra keeps flag values
// between Execute calls on the shared command tree.
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

// run executes the CLI and returns its output with styling stripped.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return ansi.Strip(out.String()), err
}

func mustRun(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	out, err := run(t, stdin, args...)
	require.NoError(t, err, out)
	return out
}

func TestInitIsIdempotent(t *testing.T) {
	setupEnv(t)

	out := mustRun(t, "", "init")
	assert.Contains(t, out, "Loaded Blind 75 v1.0.0: 75 new, 0 updated")

	out = mustRun(t, "", "init")
	assert.Contains(t, out, "Blind 75 is up to date (v1.0.0)")

	out = mustRun(t, "", "init", "--force")
	assert.Contains(t, out, "0 new, 75 updated")

	out = mustRun(t, "", "lists")
	assert.Contains(t, out, "Blind 75: 75 problems (0 started, 0 due)")
}

func TestSolveFlow(t *testing.T) {
	setupEnv(t)
	mustRun(t, "", "init")

	out := mustRun(t, "", "next")
	assert.Contains(t, out, "Two Sum")
	assert.Contains(t, out, "NEW")

	out = mustRun(t, "", "solve", "1", "--quality", "4")
	assert.Contains(t, out, "Problem Solved")
	assert.Contains(t, out, "in 1 days")
	assert.Contains(t, out, "First Problem Solved")

	// A line prompt is used when stdin is not a terminal.
	out = mustRun(t, "2\n", "solve", "valid anagram")
	assert.Contains(t, out, "Your rating (0-5)")
	assert.Contains(t, out, "Keep Practicing")
	assert.NotContains(t, out, "First Problem Solved")

	out = mustRun(t, "", "log", "Contains Duplicate", "easy")
	assert.Contains(t, out, "Problem Solved")

	out = mustRun(t, "", "history", "-n", "2")
	assert.Contains(t, out, "Contains Duplicate")
	assert.Contains(t, out, "Valid Anagram")
	assert.NotContains(t, out, "Two Sum")

	out = mustRun(t, "", "stats", "--filter", "started")
	assert.Contains(t, out, "Problems Started")
	assert.Contains(t, out, "Two Sum")
	assert.NotContains(t, out, "Group Anagrams")

	out = mustRun(t, "", "milestones")
	assert.Contains(t, out, "First Problem Solved")
	assert.Contains(t, out, "Next: 10 problems solved (3/10)")
}

func TestSolveRejectsBadInput(t *testing.T) {
	setupEnv(t)
	mustRun(t, "", "init")

	_, err := run(t, "", "solve", "1", "--quality", "9")
	assert.ErrorContains(t, err, "quality must be between 0 and 5")

	_, err = run(t, "", "solve", "9999", "--quality", "3")
	assert.ErrorContains(t, err, "no problem matches")

	_, err = run(t, "", "log", "1", "9")
	assert.ErrorContains(t, err, "quality must be between 0 and 5")

	// Unknown answer words count as hard: ease 2.5 - 0.14.
	out := mustRun(t, "", "log", "1", "meh")
	assert.Contains(t, out, "Problem Solved")
	assert.Contains(t, out, "Ease factor: 2.36")
}

func TestAddProblemPrompts(t *testing.T) {
	setupEnv(t)

	out := mustRun(t, "LRU Cache\nhttps://leetcode.com/problems/lru-cache/\n4\n\nhard\n", "add-problem")
	assert.Contains(t, out, "Added problem #1: LRU Cache")
	assert.Contains(t, out, "Pattern: Stack")
	assert.Contains(t, out, "List: Custom")
	assert.Contains(t, out, "Difficulty: Hard")

	_, err := run(t, "", "add-problem", "-t", "LRU Cache", "-u", "", "-p", "General", "-l", "Custom", "-d", "Hard")
	assert.ErrorContains(t, err, "already exists")
}

func TestResetNeedsConfirmation(t *testing.T) {
	setupEnv(t)
	mustRun(t, "", "init")
	mustRun(t, "", "solve", "1", "-q", "5")

	out := mustRun(t, "n\n", "reset")
	assert.Contains(t, out, "Nothing changed")

	out = mustRun(t, "", "reset", "--yes")
	assert.Contains(t, out, "Reset 75 problems in ALL lists")

	out = mustRun(t, "", "lists")
	assert.Contains(t, out, "(0 started, 0 due)")
}

func TestImportCustomList(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "grind.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Grind","version":"1.0.0","problems":[
		{"name":"Flood Fill","category":"Graph","difficulty":"Easy"},
		{"name":"Two Sum","difficulty":"Easy","pattern":"Arrays & Hashing"}]}`), 0o644))

	out := mustRun(t, "", "import", path)
	assert.Contains(t, out, "Loaded Grind 1.0.0: 2 new")

	out = mustRun(t, "", "stats", "--list", "Grind", "--pattern", "Graphs")
	assert.Contains(t, out, "Flood Fill")

	_, err := run(t, "", "import", filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestDashboard(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "", "dashboard")
	assert.ErrorContains(t, err, "dsaprep init")

	mustRun(t, "", "init")
	mustRun(t, "", "log", "1", "good")
	out := mustRun(t, "", "dashboard")
	assert.Contains(t, out, "Total: 75 problems")
	assert.Contains(t, out, "Arrays & Hashing (1/8)")
	assert.Contains(t, out, "1-day streak")
}

func TestStatsByPattern(t *testing.T) {
	setupEnv(t)
	mustRun(t, "", "init")
	mustRun(t, "", "log", "1", "good")
	out := mustRun(t, "", "stats", "--by-pattern", "--filter", "started")
	assert.Contains(t, out, "By Pattern")
	assert.Contains(t, out, "1/8")
	assert.Contains(t, out, "Two Sum")
	assert.NotContains(t, out, "Valid Anagram")
}

func TestStatsPatternAndSort(t *testing.T) {
	setupEnv(t)
	mustRun(t, "", "init")

	out := mustRun(t, "", "stats", "--pattern", "two pointers")
	assert.Contains(t, out, "Valid Palindrome")
	assert.NotContains(t, out, "Two Sum")

	_, err := run(t, "", "stats", "--pattern", "Graphs 2")
	assert.ErrorContains(t, err, "unknown pattern")

	_, err = run(t, "", "stats", "--sort", "name")
	assert.ErrorContains(t, err, "unknown sort")

	mustRun(t, "", "stats", "--sort", "pattern")
}

func TestListsShowsSource(t *testing.T) {
	setupEnv(t)
	mustRun(t, "", "init")
	out := mustRun(t, "", "lists")
	assert.Contains(t, out, "Blind 75: 75 problems (0 started, 0 due) [v1.0.0 from embedded]")
}

func TestConfigAndVersion(t *testing.T) {
	setupEnv(t)
	out := mustRun(t, "", "config")
	assert.Contains(t, out, "not found, using defaults")
	assert.Contains(t, out, "activity_days: 7")
	assert.Contains(t, out, "# database: ")
	assert.NotContains(t, out, "db_path:", "the resolved database is not written into the config")

	out = mustRun(t, "", "version")
	assert.Contains(t, out, "dsaprep (devel)")
}
