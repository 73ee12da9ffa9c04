package config

import (
	"os"
	"path/filepath"
	"saltkey/pkg/define"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultWhenAbsent(t *testing.T) {
	cfg, err := load("", map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, define.DefaultSalt, cfg.Salt)
	assert.Equal(t, define.DefaultSaltSource, cfg.Source)
	assert.False(t, cfg.FromFile)
}

func TestLoadEmptyValueIsVerbatim(t *testing.T) {
	cfg, err := load("", map[string]string{define.SaltEnv: ""})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Salt)
	assert.Equal(t, define.ConfiguredSaltSource, cfg.Source)
	assert.False(t, cfg.FromFile)
}

func TestLoadEmptyValueInEnvFile(t *testing.T) {
	path := writeEnvFile(t, "MY_APP_SALT=\n")

	cfg, err := load(path, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Salt)
	assert.Equal(t, define.ConfiguredSaltSource, cfg.Source)
	assert.True(t, cfg.FromFile)
}

func TestLoadFromProcessEnvironment(t *testing.T) {
	cfg, err := load("", map[string]string{define.SaltEnv: "s3cr3t value"})
	require.NoError(t, err)

	assert.Equal(t, "s3cr3t value", cfg.Salt)
	assert.Equal(t, define.ConfiguredSaltSource, cfg.Source)
	assert.False(t, cfg.FromFile)
}

func TestLoadFromEnvFile(t *testing.T) {
	path := writeEnvFile(t, "OTHER=1\nMY_APP_SALT=from-file\n")

	cfg, err := load(path, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Salt)
	assert.Equal(t, define.ConfiguredSaltSource, cfg.Source)
	assert.True(t, cfg.FromFile)
}

func TestLoadProcessEnvironmentWinsOverFile(t *testing.T) {
	path := writeEnvFile(t, "MY_APP_SALT=from-file\n")

	cfg, err := load(path, map[string]string{define.SaltEnv: "from-env"})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Salt)
	assert.False(t, cfg.FromFile)
}

func TestLoadMissingEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.env")

	cfg, err := load(path, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, define.DefaultSalt, cfg.Salt)
}

func TestLoadUsesProcessEnvironment(t *testing.T) {
	t.Setenv(define.SaltEnv, "process-salt")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "process-salt", cfg.Salt)
	assert.Equal(t, define.ConfiguredSaltSource, cfg.Source)
}

func TestReadDotEnv(t *testing.T) {
	path := writeEnvFile(t, "MY_APP_SALT=abc\nlower_key=xyz\n")

	vars, err := ReadDotEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", vars["MY_APP_SALT"])
	assert.Equal(t, "xyz", vars["LOWER_KEY"])
}

func TestReadDotEnvUnreadablePath(t *testing.T) {
	// a directory exists but cannot be parsed as a dotenv file
	_, err := ReadDotEnv(t.TempDir())
	assert.Error(t, err)
}
