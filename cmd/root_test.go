package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"worksheet-docs/config"
	"worksheet-docs/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("DOCS_TOKEN", "from-env.json")
	t.Setenv("DOCS_CREDENTIALS", "env-credentials.json")
	envFile = filepath.Join(t.TempDir(), "missing.env")

	require.NoError(t, textCmd.ParseFlags([]string{"--token", "flag-token.json", "--log-level", "debug"}))
	t.Cleanup(func() {
		textCmd.Flags().Lookup("token").Changed = false
		textCmd.Flags().Lookup("log-level").Changed = false
		tokenPath = config.DEFAULT_TOKEN_PATH
		logLevel = config.DEFAULT_LOG_LEVEL
	})

	require.NoError(t, setup(textCmd, nil))
	assert.Equal(t, "flag-token.json", cfg.TokenPath)
	assert.Equal(t, "env-credentials.json", cfg.CredentialsPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NotNil(t, logger)
}

func TestFormatOptions(t *testing.T) {
	f, err := formatOptions{bold: true, size: 14, color: "#00ff00"}.format()
	require.NoError(t, err)
	assert.Equal(t, models.TextFormat{Bold: true, Size: 14, Color: &models.Color{Green: 1}}, f)

	_, err = formatOptions{color: "green"}.format()
	assert.Error(t, err)
}

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# Notes\n"), 0o644))

	src, err := readSource(path)
	require.NoError(t, err)
	assert.Equal(t, "# Notes\n", src)

	_, err = readSource(filepath.Join(t.TempDir(), "nope.md"))
	assert.Error(t, err)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"create", "worksheet", "activity", "text", "header", "replace", "equation", "markdown", "table", "image", "fetch", "folder", "files"} {
		assert.True(t, names[want], want)
	}

	var sub []string
	for _, c := range filesCmd.Commands() {
		sub = append(sub, c.Name())
	}
	assert.ElementsMatch(t, []string{"find", "list", "rename", "move", "copy", "delete"}, sub)
}
