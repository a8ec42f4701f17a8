package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadWithArgs(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	DefineFlags(fs)
	require.NoError(t, fs.Parse(args))
	return Load(fs)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "better-naming.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadWithArgs(t)
	require.NoError(t, err)

	require.NotNil(t, cfg.Naming.ReadableCase)
	require.NotNil(t, cfg.Naming.ReadableConstraintNames)
	assert.True(t, *cfg.Naming.ReadableCase)
	assert.True(t, *cfg.Naming.ReadableConstraintNames)
	assert.False(t, cfg.Naming.PluralTableNames)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Validate().HasErrors())
}

func TestLoad_WithEnvVars(t *testing.T) {
	t.Setenv("BETTERNAMING_NAMING_READABLE_CASE", "false")
	t.Setenv("BETTERNAMING_LOGGING_LEVEL", "debug")
	t.Setenv("BETTERNAMING_NAMING_PLURAL_OVERRIDES", "person=persons, staff=staff")

	cfg, err := loadWithArgs(t)
	require.NoError(t, err)

	require.NotNil(t, cfg.Naming.ReadableCase)
	assert.False(t, *cfg.Naming.ReadableCase)
	assert.True(t, *cfg.Naming.ReadableConstraintNames)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, map[string]string{"person": "persons", "staff": "staff"}, cfg.Naming.PluralOverrides)
}

func TestLoad_InvalidPluralOverridesEnv(t *testing.T) {
	t.Setenv("BETTERNAMING_NAMING_PLURAL_OVERRIDES", "person")

	_, err := loadWithArgs(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected key=value")
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
naming:
  readable_constraint_names: false
  plural_table_names: true
  plural_overrides:
    person: persons
logging:
  format: json
`)

	cfg, err := loadWithArgs(t, "--config", path)
	require.NoError(t, err)

	assert.True(t, *cfg.Naming.ReadableCase)
	assert.False(t, *cfg.Naming.ReadableConstraintNames)
	assert.True(t, cfg.Naming.PluralTableNames)
	assert.Equal(t, map[string]string{"person": "persons"}, cfg.Naming.PluralOverrides)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: warn
  format: json
`)
	t.Setenv("BETTERNAMING_LOGGING_LEVEL", "error")

	cfg, err := loadWithArgs(t, "--config", path, "--logging.format", "text")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level, "env beats file")
	assert.Equal(t, "text", cfg.Logging.Format, "flag beats file")

	cfg, err = loadWithArgs(t, "--config", path, "--logging.level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level, "flag beats env")
}

func TestLoad_FlagsOverrideNaming(t *testing.T) {
	cfg, err := loadWithArgs(t,
		"--naming.readable_case=false",
		"--naming.plural_overrides", "child=kids",
	)
	require.NoError(t, err)

	assert.False(t, *cfg.Naming.ReadableCase)
	assert.Equal(t, map[string]string{"child": "kids"}, cfg.Naming.PluralOverrides)
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	path := writeConfig(t, `
naming:
  snake_case: true
`)

	_, err := loadWithArgs(t, "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snake_case")
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := loadWithArgs(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_IgnoresCommandFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	DefineFlags(fs)
	fs.Bool("quote", false, "")
	require.NoError(t, fs.Parse([]string{"--quote", "table", "User"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.True(t, *cfg.Naming.ReadableCase)
	assert.Equal(t, []string{"table", "User"}, fs.Args())
}
