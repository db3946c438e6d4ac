// Package config resolves CLI settings from flags, environment, an optional
// YAML config file, an optional .env file and built-in defaults, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spektr-org/workforce/logger"
	"github.com/spektr-org/workforce/report"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. WORKFORCE_DATA_FILE.
	EnvPrefix = "WORKFORCE"

	// DefaultDataFile is read when no other location is configured.
	DefaultDataFile = "data/employee-data.json"

	configName = ".workforce"
	dotEnvFile = ".env"
)

// Keys, shared by viper, the environment and the config file.
const (
	KeyDataFile  = "data_file"
	KeyFormat    = "format"
	KeyNoColor   = "no_color"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyConfig    = "config"
)

// FlagKeys maps command-line flag names onto config keys.
var FlagKeys = map[string]string{
	"file":       KeyDataFile,
	"format":     KeyFormat,
	"no-color":   KeyNoColor,
	"log-level":  KeyLogLevel,
	"log-format": KeyLogFormat,
	"config":     KeyConfig,
}

// ErrInvalid marks a setting that was found but cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the resolved settings.
type Config struct {
	DataFile  string
	Format    report.Format
	NoColor   bool
	LogLevel  string
	LogFormat string

	// ConfigFile is the config file that was read, empty if none.
	ConfigFile string
}

// Options tells Load where to look.
type Options struct {
	Fs      afero.Fs       // defaults to the OS filesystem
	Flags   *pflag.FlagSet // may be nil
	WorkDir string         // defaults to the process working directory
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	dir := opts.WorkDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("working directory: %w", err)
		}
		dir = wd
	}

	v := viper.New()
	v.SetFs(fs)

	v.SetDefault(KeyDataFile, DefaultDataFile)
	v.SetDefault(KeyFormat, string(report.FormatText))
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeyLogLevel, "WARN")
	v.SetDefault(KeyLogFormat, "text")

	if err := loadDotEnv(v, fs, filepath.Join(dir, dotEnvFile)); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range FlagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := readConfigFile(v, dir); err != nil {
		return nil, err
	}

	cfg := &Config{
		DataFile:   v.GetString(KeyDataFile),
		NoColor:    v.GetBool(KeyNoColor),
		LogLevel:   v.GetString(KeyLogLevel),
		LogFormat:  v.GetString(KeyLogFormat),
		ConfigFile: v.ConfigFileUsed(),
	}

	format, err := report.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cfg.Format = format

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that are not already typed.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("%w: empty data file path", ErrInvalid)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

// Logger returns the logger settings.
func (c *Config) Logger() logger.Config {
	return logger.Config{Level: c.LogLevel, Format: c.LogFormat}
}

// readConfigFile reads an explicitly named file, or else searches the
// working directory, $HOME and $HOME/.config/workforce. A missing file is
// only an error when it was named explicitly.
func readConfigFile(v *viper.Viper, dir string) error {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
		v.AddConfigPath(filepath.Join(home, ".config", "workforce"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// loadDotEnv layers WORKFORCE_* entries of a .env file over the built-in
// defaults. Real environment variables still win. Other entries are ignored.
func loadDotEnv(v *viper.Viper, fs afero.Fs, path string) error {
	f, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	prefix := EnvPrefix + "_"
	for name, val := range vars {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		v.SetDefault(strings.ToLower(strings.TrimPrefix(name, prefix)), val)
	}
	return nil
}
