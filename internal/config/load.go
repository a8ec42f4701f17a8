package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
// Example: BETTERNAMING_NAMING_READABLE_CASE=false
const EnvPrefix = "BETTERNAMING"

// Load loads configuration from multiple sources with the following
// precedence:
// 1. Command line flags set on fs
// 2. Environment variables
// 3. Config file
// 4. Default values
//
// fs must already be parsed and carry the flags from DefineFlags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults (lowest priority)
	setDefaults(v)

	// --- Config file ---
	cfgPath, _ := fs.GetString("config")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("better-naming")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/better-naming/")
		v.AddConfigPath("$HOME/.better-naming")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgPath != "" {
			return nil, fmt.Errorf("failed to read config file %q: %w", cfgPath, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// --- Environment variables ---
	// Canonical keys: dot + snake_case
	// Env vars: BETTERNAMING_NAMING_READABLE_CASE
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Maps are not resolved by AutomaticEnv; take the raw "k=v,k=v" form
	// and let the decode hook split it.
	if raw := os.Getenv(EnvPrefix + "_NAMING_PLURAL_OVERRIDES"); raw != "" {
		v.Set("naming.plural_overrides", raw)
	}

	// --- Flags binding (highest normal priority) ---
	bindChangedFlagsToViper(v, fs)

	// --- Unmarshal (strict) ---
	var cfg Config
	if err := v.UnmarshalExact(
		&cfg,
		viper.DecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				stringToStringMapHookFunc(",", "="),
			),
		),
	); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefineFlags registers the configuration flags on fs. Flag names match
// the config keys so changed flags can be copied into viper verbatim.
func DefineFlags(fs *pflag.FlagSet) {
	if fs.Lookup("config") != nil {
		return
	}
	fs.String("config", "", "Path to config file (default: better-naming.yaml in /etc/better-naming, $HOME/.better-naming, .)")

	fs.Bool("naming.readable_case", true, "Render table, column and join names in snake case")
	fs.Bool("naming.readable_constraint_names", true, "Render constraint and index names as PREFIX_table_columns")
	fs.Bool("naming.plural_table_names", false, "Pluralize derived table names (requires readable case)")
	fs.StringToString("naming.plural_overrides", nil, "Custom plurals as singular=plural pairs")

	fs.String("logging.level", "", "Log level (debug, info, warn, error)")
	fs.String("logging.format", "", "Log format (json, text)")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("naming.readable_case", true)
	v.SetDefault("naming.readable_constraint_names", true)
	v.SetDefault("naming.plural_table_names", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// bindChangedFlagsToViper copies only explicitly-set flags into Viper,
// preserving precedence: flags > env > file > defaults. Config keys are
// dotted; undotted flags belong to the command and are skipped.
func bindChangedFlagsToViper(v *viper.Viper, fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		if !strings.Contains(f.Name, ".") {
			return
		}

		switch f.Value.Type() {
		case "string":
			val, _ := fs.GetString(f.Name)
			v.Set(f.Name, val)
		case "bool":
			val, _ := fs.GetBool(f.Name)
			v.Set(f.Name, val)
		case "stringToString":
			val, _ := fs.GetStringToString(f.Name)
			v.Set(f.Name, val)
		default:
			v.Set(f.Name, f.Value.String())
		}
	})
}

// stringToStringMapHookFunc decodes "a=b,c=d" strings into map[string]string.
func stringToStringMapHookFunc(sep, kvSep string) mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(map[string]string{}) {
			return data, nil
		}

		raw := strings.TrimSpace(data.(string))
		out := map[string]string{}
		if raw == "" {
			return out, nil
		}

		for _, pair := range strings.Split(raw, sep) {
			key, value, ok := strings.Cut(pair, kvSep)
			if !ok {
				return nil, fmt.Errorf("invalid map entry %q, expected key%svalue", strings.TrimSpace(pair), kvSep)
			}
			out[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
		return out, nil
	}
}
