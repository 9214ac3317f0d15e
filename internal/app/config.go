package app

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"crxkit/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string `mapstructure:"home"`       // key directory, e.g. $HOME/.crxkit
	KeyFile    string `mapstructure:"key_file"`   // explicit PEM key; bypasses the store
	Format     string `mapstructure:"format"`     // public key export format
	Passphrase string `mapstructure:"passphrase"` // seals the stored key when set
	Verbose    bool   `mapstructure:"verbose"`
}

// flagKeys maps config keys to the CLI flags that override them.
var flagKeys = map[string]string{ //nolint:gochecknoglobals // static lookup
	"home":       "home",
	"key_file":   "key",
	"format":     "format",
	"passphrase": "passphrase",
	"verbose":    "verbose",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("home", "")
	v.SetDefault("key_file", "")
	v.SetDefault("format", string(domain.FormatDER))
	v.SetDefault("passphrase", "")
	v.SetDefault("verbose", false)
	v.SetEnvPrefix("CRXKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig resolves configuration from, lowest to highest precedence:
// defaults, config.yaml in the home directory (or cfgFile), CRXKIT_*
// environment variables and flags that were set explicitly.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := newViper()
	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	home := v.GetString("home")
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		home = filepath.Join(dir, ".crxkit")
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(home)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil && !isConfigNotFound(err, cfgFile) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Home == "" {
		cfg.Home = home
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be caught by flag parsing.
func (c Config) Validate() error {
	switch domain.KeyFormat(c.Format) {
	case "", domain.FormatDER, domain.FormatPEM:
		return nil
	default:
		return fmt.Errorf("invalid configuration: %w: got %q", domain.ErrInvalidFormat, c.Format)
	}
}

// isConfigNotFound reports a missing default config file. A file named
// explicitly with --config must exist.
func isConfigNotFound(err error, cfgFile string) bool {
	if cfgFile != "" {
		return false
	}
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound)
}
