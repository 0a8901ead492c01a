// Package config loads exprql CLI settings from defaults, an exprql.yaml
// file, a .env file, and EXPRQL_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/internal/logging"
)

// AppFs is the filesystem configuration files are read from.
var AppFs = afero.NewOsFs()

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "EXPRQL"

var configNames = []string{"exprql.yaml", "exprql.yml"}

// Config represents the exprql configuration.
type Config struct {
	Dialect  string         `mapstructure:"dialect"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds connection settings.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load discovers and loads configuration with precedence:
// env > .env > config file > defaults.
//
// Returns the loaded config, the path of the config file (empty if none was
// found), and any error encountered.
func Load(explicitPath string) (*Config, string, error) {
	v := viper.New()
	v.SetFs(AppFs)

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitPath)
	if err != nil {
		return nil, "", err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	dotenv, err := readDotEnv(".env")
	if err != nil {
		return nil, configPath, err
	}
	for _, key := range v.AllKeys() {
		name := envName(key)
		if _, set := os.LookupEnv(name); set {
			continue
		}
		if val, ok := dotenv[name]; ok {
			v.Set(key, val)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Database.DSN == "" {
		if url := os.Getenv("DATABASE_URL"); url != "" {
			cfg.Database.DSN = url
		} else {
			cfg.Database.DSN = dotenv["DATABASE_URL"]
		}
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dialect", string(exprql.SQLite))
	v.SetDefault("database.dsn", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// readDotEnv parses path if it exists. A missing file yields no values.
func readDotEnv(path string) (map[string]string, error) {
	f, err := AppFs.Open(path)
	if err != nil {
		return map[string]string{}, nil //nolint:nilerr // a missing .env is not an error
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return values, nil
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise it looks for exprql.yaml or exprql.yml in the working directory,
// then in ~/.config/exprql.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := AppFs.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	dirs := []string{"."}
	if home, err := homedir.Dir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "exprql"))
	}

	for _, dir := range dirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := AppFs.Stat(path); err == nil {
				return path, nil
			}
		}
	}
	return "", nil
}

// Validate checks that the dialect and log settings are usable.
func (c *Config) Validate() error {
	if c.Dialect == "" {
		return fmt.Errorf("dialect is required")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// DialectValue returns the configured dialect, normalized.
func (c *Config) DialectValue() exprql.Dialect {
	return exprql.Dialect(c.Dialect).Normalize()
}
