package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/workforce/report"
)

const workDir = "/work"

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("workforce", pflag.ContinueOnError)
	flags.String("file", DefaultDataFile, "")
	flags.String("format", "text", "")
	flags.Bool("no-color", false, "")
	flags.String("log-level", "WARN", "")
	flags.String("log-format", "text", "")
	flags.String("config", "", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Options{Fs: afero.NewMemMapFs(), WorkDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, report.FormatText, cfg.Format)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadPrecedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, workDir+"/.env", "WORKFORCE_DATA_FILE=dotenv.json\nWORKFORCE_FORMAT=json\nWORKFORCE_LOG_LEVEL=ERROR\nWORKFORCE_NO_COLOR=true\nUNRELATED=1\n")
	writeFile(t, fs, workDir+"/.workforce.yaml", "data_file: config.json\nformat: table\n")

	t.Run("dotenv over default", func(t *testing.T) {
		cfg, err := Load(Options{Fs: fs, WorkDir: workDir})
		require.NoError(t, err)
		assert.Equal(t, "ERROR", cfg.LogLevel)
		assert.True(t, cfg.NoColor)
	})

	t.Run("config file over dotenv", func(t *testing.T) {
		cfg, err := Load(Options{Fs: fs, WorkDir: workDir})
		require.NoError(t, err)
		assert.Equal(t, "config.json", cfg.DataFile)
		assert.Equal(t, report.FormatTable, cfg.Format)
		assert.Equal(t, workDir+"/.workforce.yaml", cfg.ConfigFile)
	})

	t.Run("env over config file", func(t *testing.T) {
		t.Setenv("WORKFORCE_DATA_FILE", "env.json")
		cfg, err := Load(Options{Fs: fs, WorkDir: workDir})
		require.NoError(t, err)
		assert.Equal(t, "env.json", cfg.DataFile)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("WORKFORCE_DATA_FILE", "env.json")
		cfg, err := Load(Options{Fs: fs, WorkDir: workDir, Flags: newFlags(t, "--file", "flag.json")})
		require.NoError(t, err)
		assert.Equal(t, "flag.json", cfg.DataFile)
	})

	t.Run("unset flag does not shadow lower layers", func(t *testing.T) {
		cfg, err := Load(Options{Fs: fs, WorkDir: workDir, Flags: newFlags(t)})
		require.NoError(t, err)
		assert.Equal(t, "config.json", cfg.DataFile)
	})
}

func TestLoadExplicitConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/etc/workforce.yaml", "log_format: json\n")

	cfg, err := Load(Options{Fs: fs, WorkDir: workDir, Flags: newFlags(t, "--config", "/etc/workforce.yaml")})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/etc/workforce.yaml", cfg.ConfigFile)

	_, err = Load(Options{Fs: fs, WorkDir: workDir, Flags: newFlags(t, "--config", "/etc/missing.yaml")})
	assert.ErrorContains(t, err, "read config /etc/missing.yaml")
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"format", []string{"--format", "xml"}},
		{"log level", []string{"--log-level", "TRACE"}},
		{"log format", []string{"--log-format", "logfmt"}},
		{"data file", []string{"--file", "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(Options{Fs: afero.NewMemMapFs(), WorkDir: workDir, Flags: newFlags(t, tt.args...)})
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadMalformedConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, workDir+"/.workforce.yaml", "format: [unterminated\n")

	_, err := Load(Options{Fs: fs, WorkDir: workDir})
	assert.ErrorContains(t, err, "read config")
}
