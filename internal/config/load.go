package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "UNITCALC"

// Load reads configuration from defaults, an optional config.yaml in the
// working directory and environment variables, then validates it.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return load(v)
}

// LoadFile is like Load but reads the given YAML file, which must exist.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return load(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("simplify.recursive", true)
	v.SetDefault("simplify.substitute_named", true)
	v.SetDefault("simplify.merge_prefixes", true)
	v.SetDefault("simplify.prefer_prefix_form", true)
	v.SetDefault("output.locale", "en")
	v.SetDefault("output.precision", 6)
	v.SetDefault("output.rounding", "half_even")

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

var envKeys = []string{
	"log.level",
	"log.format",
	"simplify.recursive",
	"simplify.substitute_named",
	"simplify.merge_prefixes",
	"simplify.prefer_prefix_form",
	"output.locale",
	"output.precision",
	"output.rounding",
}

func load(v *viper.Viper) (*Config, error) {
	// Unmarshal only sees keys viper already knows about, so bind explicitly.
	for _, key := range envKeys {
		envVar := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate, err := newValidator()
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// viper lower-cases map keys; catalog names are upper case.
	if len(cfg.Registry.Aliases) > 0 {
		aliases := make(map[string][]string, len(cfg.Registry.Aliases))
		for name, values := range cfg.Registry.Aliases {
			aliases[strings.ToUpper(name)] = values
		}
		cfg.Registry.Aliases = aliases
	}

	return &cfg, nil
}

func newValidator() (*validator.Validate, error) {
	validate := validator.New()
	err := validate.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register locale validation: %w", err)
	}
	return validate, nil
}
