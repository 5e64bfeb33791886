package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the merged configuration of a generate run. Flags take
// precedence over ICONSGEN_* environment variables, which take precedence
// over iconsgen.toml.
type Config struct {
	Root              string            `mapstructure:"root"`
	Lock              string            `mapstructure:"lock"`
	RegenerateStale   bool              `mapstructure:"regenerate_stale"`
	Report            string            `mapstructure:"report"`
	ReplaceAttrValues map[string]string `mapstructure:"replace_attr_values"`
}

// flagKeys maps config keys to the generate flags bound to them.
var flagKeys = map[string]string{
	"root":             "root",
	"lock":             "lock",
	"regenerate_stale": "regenerate-stale",
	"report":           "report",
}

// loadConfig reads iconsgen.toml from configPath, or from the directory
// given by the root flag when configPath is empty. A missing default config
// file is not an error.
func loadConfig(flags *pflag.FlagSet, configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("iconsgen")
		dir := "."
		if f := flags.Lookup("root"); f != nil && f.Value.String() != "" {
			dir = f.Value.String()
		}
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("ICONSGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("root", ".")
	v.SetDefault("lock", "")
	v.SetDefault("regenerate_stale", false)
	v.SetDefault("report", "")

	for key, name := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w\nCheck the file format (must be valid TOML) and permissions", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Viper lower-cases map keys, which would break replacements of
	// upper-case hex colors, so the table is read again verbatim.
	if file := v.ConfigFileUsed(); file != "" && v.IsSet("replace_attr_values") {
		values, err := readReplaceAttrValues(file)
		if err != nil {
			return nil, err
		}
		cfg.ReplaceAttrValues = values
	}

	return cfg, nil
}

func readReplaceAttrValues(file string) (map[string]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw struct {
		ReplaceAttrValues map[string]string `toml:"replace_attr_values"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse replace_attr_values in %s: %w", file, err)
	}

	return raw.ReplaceAttrValues, nil
}
