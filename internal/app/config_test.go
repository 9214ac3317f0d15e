package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crxkit/internal/domain"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("home", "", "")
	fs.String("key", "", "")
	fs.String("format", "", "")
	fs.StringP("passphrase", "p", "", "")
	fs.BoolP("verbose", "v", false, "")
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CRXKIT_HOME", "")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".crxkit"), cfg.Home)
	assert.Equal(t, "der", cfg.Format)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("format: pem\nkey_file: /tmp/a.pem\n"), 0o600))
	t.Setenv("CRXKIT_HOME", home)
	t.Setenv("CRXKIT_KEY_FILE", "/tmp/b.pem")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, "pem", cfg.Format)
	assert.Equal(t, "/tmp/b.pem", cfg.KeyFile)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CRXKIT_HOME", home)
	t.Setenv("CRXKIT_FORMAT", "pem")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--format", "der", "--key", "ext.pem", "-v"}))

	cfg, err := LoadConfig("", fs)
	require.NoError(t, err)
	assert.Equal(t, "der", cfg.Format)
	assert.Equal(t, "ext.pem", cfg.KeyFile)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CRXKIT_HOME", dir)

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"), nil)
	require.Error(t, err)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o600))
	_, err = LoadConfig(path, nil)
	require.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	for _, f := range []string{"", "der", "pem"} {
		assert.NoError(t, Config{Format: f}.Validate(), "format %q", f)
	}
	assert.ErrorIs(t, Config{Format: "jwk"}.Validate(), domain.ErrInvalidFormat)
}
