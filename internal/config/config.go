package config

import "github.com/unitcalc/unitcalc/internal/domain"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Simplify SimplifyConfig `mapstructure:"simplify"`
	Output   OutputConfig   `mapstructure:"output" validate:"required"`
	Registry RegistryConfig `mapstructure:"registry"`
}

// LogConfig contains the logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// SimplifyConfig holds the default flags of the simplify command.
type SimplifyConfig struct {
	Recursive        bool `mapstructure:"recursive"`
	SubstituteNamed  bool `mapstructure:"substitute_named"`
	MergePrefixes    bool `mapstructure:"merge_prefixes"`
	PreferPrefixForm bool `mapstructure:"prefer_prefix_form"`
}

// Domain converts the settings into a domain.SimplifyConfig.
func (c SimplifyConfig) Domain() domain.SimplifyConfig {
	return domain.NewSimplifyConfig(c.Recursive, c.SubstituteNamed, c.MergePrefixes, c.PreferPrefixForm)
}

// OutputConfig controls how magnitudes are rendered.
type OutputConfig struct {
	Locale    string `mapstructure:"locale" validate:"required,locale"`
	Precision int32  `mapstructure:"precision" validate:"gte=0,lte=30"`
	Rounding  string `mapstructure:"rounding" validate:"required,oneof=half_up half_even down up floor ceiling"`
}

// RegistryConfig extends the conversion registry.
type RegistryConfig struct {
	// Aliases maps a catalog unit or dimension name to extra name aliases.
	// Keys are upper-cased on load.
	Aliases map[string][]string `mapstructure:"aliases"`
}
