package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/josephlewis42/minish/core/config"
	"github.com/josephlewis42/minish/core/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuiltinsCmd(t *testing.T) {
	out, err := execute(t, "builtins")
	require.Nil(t, err)
	assert.Equal(t, "help\nhistory\nexit\ncd\n", out)
}

func TestInitCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf")

	out, err := execute(t, "init", "--config", dir)
	require.Nil(t, err)
	assert.Contains(t, out, "Writing "+config.ConfigurationName)

	cfg, err := config.Load(dir)
	require.Nil(t, err)
	assert.Equal(t, config.Default().HistoryLimit, cfg.HistoryLimit)

	t.Run("load", func(t *testing.T) {
		cfgPath = dir
		loaded, err := loadConfig()
		require.Nil(t, err)
		assert.Equal(t, cfg.Prompt, loaded.Prompt)
	})

	t.Run("missing-falls-back", func(t *testing.T) {
		cfgPath = filepath.Join(t.TempDir(), "never-initialized")
		loaded, err := loadConfig()
		require.Nil(t, err)
		assert.Equal(t, config.Default(), loaded)
	})
}

func TestLogsReportCmd(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "events.log")
	fd, err := os.Create(logPath)
	require.Nil(t, err)

	session := logger.NewJsonLinesLogRecorder(fd).NewSession()
	require.Nil(t, session.Record(&logger.LogEntry{Type: logger.EventSessionStart}))
	require.Nil(t, session.Record(&logger.LogEntry{Type: logger.EventRunCommand, Command: []string{"ls"}}))
	require.Nil(t, session.Record(&logger.LogEntry{Type: logger.EventUnknownCommand, Command: []string{"sl"}, Error: "not found"}))
	require.Nil(t, fd.Close())

	out, err := execute(t, "logs", "report", logPath)
	require.Nil(t, err)

	var report map[string]interface{}
	require.Nil(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, float64(3), report["log_entries"])
	assert.Equal(t, float64(1), report["sessions"])
	assert.Equal(t, map[string]interface{}{"ls": float64(1)}, report["commands"])
}
