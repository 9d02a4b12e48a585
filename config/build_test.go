package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netresearch/dockwatch/core"
)

func defaultFlags() *Flags {
	return &Flags{
		SocketURL:                       "ipc:///var/run/docker.sock",
		PrintAllEvents:                  true,
		RestartLimit:                    3,
		RestartThreshold:                10,
		RestartResetPeriod:              2,
		RestartNotificationEmailServer:  "smtp.example.com",
	}
}

func TestBuild_MissingMailServer_ConfigError(t *testing.T) {
	f := defaultFlags()
	f.RestartNotificationEmailServer = ""

	_, err := Build(f, &core.SimpleLogger{})
	require.Error(t, err)
}

func TestBuild_Defaults(t *testing.T) {
	settings, err := Build(defaultFlags(), &core.SimpleLogger{})
	require.NoError(t, err)

	assert.Equal(t, "ipc:///var/run/docker.sock", settings.SocketURL)
	assert.True(t, settings.PrintRawEvents)
	assert.False(t, settings.EnableRestart)
	require.Len(t, settings.NamePatterns, 1)
	assert.True(t, settings.NamePatterns[0].MatchString("anything"))
	assert.Equal(t, "root", settings.MailFromHost, "absent host-hostname file must fall back to the literal \"root\", not the real hostname")
}

func TestBuild_RestartEnabledOnlyWhenNotOverridden(t *testing.T) {
	f := defaultFlags()
	f.RestartContainersOnDie = true
	f.DoNotRestartContainersOnDie = true

	settings, err := Build(f, &core.SimpleLogger{})
	require.NoError(t, err)
	assert.False(t, settings.EnableRestart, "do-not flag must win")
}

func TestBuild_RecipientsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recipients.txt")
	writeFile(t, path, "ops@example.com\nteam@example.com\n")

	f := defaultFlags()
	f.RestartNotificationEmailAddressesPath = path

	settings, err := Build(f, &core.SimpleLogger{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ops@example.com", "team@example.com"}, settings.MailRecipients)
}

func TestBuild_EmptyRecipientsFile_ConfigError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	writeFile(t, path, "\n\n")

	f := defaultFlags()
	f.RestartNotificationEmailAddressesPath = path

	_, err := Build(f, &core.SimpleLogger{})
	require.Error(t, err)
}

func TestBuild_ConfigFileOverridesRestartLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dockwatch.yaml")
	writeFile(t, path, "restart-limit: 7\ncontainers-to-restart:\n  - \"^web-.*\"\n")

	f := defaultFlags()
	f.ConfigFile = path

	settings, err := Build(f, &core.SimpleLogger{})
	require.NoError(t, err)
	assert.Equal(t, 7, settings.RestartLimit)
	require.Len(t, settings.NamePatterns, 1)
	assert.True(t, settings.NamePatterns[0].MatchString("web-1"))
	assert.False(t, settings.NamePatterns[0].MatchString("db-1"))
}

func TestParseLevel_Invalid(t *testing.T) {
	_, err := parseLevel("nonsense")
	assert.Error(t, err)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
