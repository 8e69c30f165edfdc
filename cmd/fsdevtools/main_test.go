package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-Spirit/FSDevTools-sub000/internal/config"
	"github.com/e-Spirit/FSDevTools-sub000/internal/sync"
	"github.com/e-Spirit/FSDevTools-sub000/internal/testutil"
)

// resetGlobals restores the flag variables and command output after a test.
func resetGlobals(t *testing.T) {
	t.Helper()
	origCfgFile, origLevel, origFormat, origBackend := cfgFile, logLevel, logFormat, logBackend
	origNoColor, origSummaryOnly, origColor := noColor, summaryOnly, color.NoColor
	t.Cleanup(func() {
		cfgFile, logLevel, logFormat, logBackend = origCfgFile, origLevel, origFormat, origBackend
		noColor, summaryOnly, color.NoColor = origNoColor, origSummaryOnly, origColor
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		for _, c := range []string{"log-level", "log-format", "log-backend", "no-color"} {
			if f := rootCmd.PersistentFlags().Lookup(c); f != nil {
				f.Changed = false
			}
		}
		if f := reportCmd.Flags().Lookup("summary-only"); f != nil {
			f.Changed = false
		}
	})

	// Keep tests independent of a developer's own configuration.
	t.Setenv("HOME", t.TempDir())
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "result.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetupLogger(t *testing.T) {
	for _, tc := range []struct {
		name      string
		logLevel  string
		logFormat string
	}{
		{name: "debug/text", logLevel: "debug", logFormat: "text"},
		{name: "info/json", logLevel: "info", logFormat: "json"},
		{name: "warn/text", logLevel: "warn", logFormat: "text"},
		{name: "error/text", logLevel: "error", logFormat: "text"},
		{name: "unknown/text", logLevel: "unknown", logFormat: "text"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotNil(t, setupLogger(io.Discard, tc.logLevel, tc.logFormat))
		})
	}
}

func TestLoadConfig_WithExplicitPath(t *testing.T) {
	resetGlobals(t)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("report:\n  align_column: 20\n"), 0o600))

	cfgFile = cfgPath
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Report.AlignColumn)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	resetGlobals(t)

	cfgFile = filepath.Join(t.TempDir(), "nonexistent.yaml")
	_, err := loadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_DefaultPath(t *testing.T) {
	resetGlobals(t)
	cfgFile = ""

	// The default config file doesn't exist, so defaults apply
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.BackendSlog, cfg.Logging.Backend)
}

func TestSetupSignalHandler(t *testing.T) {
	ctx, cancel := setupSignalHandler()
	require.NotNil(t, ctx)

	cancel()

	<-ctx.Done()
	assert.Error(t, ctx.Err())
}

func TestVersionCmd(t *testing.T) {
	// versionCmd.Run simply prints version info; should not panic.
	assert.NotPanics(t, func() { versionCmd.Run(versionCmd, []string{}) })
}

func TestReportCmd(t *testing.T) {
	resetGlobals(t)

	stdout, stderr, err := execute(t, "report", "--no-color", testutil.Testdata(t, "import-result.yaml"))
	require.NoError(t, err)

	for _, want := range []string{
		"import summary:",
		"  Created elements: 3 | project properties: 1 | store elements: 1 ( pagestore: 1 ) | entity types: 1 ( schemas: 1, entities: 12 )",
		"  Updated elements: 1 | store elements: 1 ( mediastore: 1 )",
		"  Deleted elements: 1 | project properties: 1",
		"  Moved elements: 1 | store elements: 1 ( pagestore: 1 )",
	} {
		assert.Contains(t, stdout, want+"\n")
	}

	assert.Contains(t, stderr, "- Users ( created files: 1 )")
	assert.NotContains(t, stderr, "Created files", "file details are debug only")
}

func TestReportCmd_DebugZap(t *testing.T) {
	resetGlobals(t)

	// zap writes to the process stderr, so only the summary is checked here
	stdout, _, err := execute(t, "report", "--no-color", "--log-backend", "zap", "--log-level", "debug",
		testutil.Testdata(t, "import-result.yaml"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Moved elements: 1")
}

func TestReportCmd_SummaryOnly(t *testing.T) {
	resetGlobals(t)

	_, stderr, err := execute(t, "report", "--no-color", "--summary-only", testutil.Testdata(t, "import-result.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, stderr, "project properties")
}

func TestReportCmd_OperationFailed(t *testing.T) {
	resetGlobals(t)

	doc := writeDocument(t, "operation: export\nerror: \"session closed\"\n")

	stdout, _, err := execute(t, "report", "--no-color", doc)
	assert.EqualError(t, err, "export failed: session closed")
	assert.Contains(t, stdout, "Error: session closed")
}

func TestReportCmd_MissingDocument(t *testing.T) {
	resetGlobals(t)

	_, _, err := execute(t, "report", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSummaryCmd(t *testing.T) {
	resetGlobals(t)

	stdout, _, err := execute(t, "summary", testutil.Testdata(t, "import-result.yaml"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Deleted elements: 1 | project properties: 1", lines[2])
}

func TestSummaryCmd_InvalidLogLevel(t *testing.T) {
	resetGlobals(t)

	_, _, err := execute(t, "summary", "--log-level", "bogus", testutil.Testdata(t, "import-result.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestSummaryCmd_UnnamedOperationFailed(t *testing.T) {
	resetGlobals(t)

	doc := writeDocument(t, "error: \"session closed\"\n")

	stdout, _, err := execute(t, "summary", doc)
	assert.EqualError(t, err, "operation failed: session closed")
	assert.Contains(t, stdout, "Created elements: 0")
}

func TestPrintSummary(t *testing.T) {
	resetGlobals(t)
	color.NoColor = true

	var buf bytes.Buffer
	printSummary(&buf, &sync.Outcome{
		Summaries: []sync.BucketSummary{{Line: "Created elements: 0"}},
	})

	assert.Equal(t, "Operation summary:\n  Created elements: 0\n", buf.String())
}
