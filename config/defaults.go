package config

import "github.com/spf13/viper"

// SetDefaults applies default values to a Viper instance before any config
// file or environment value is merged in.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.fallback_root", "src")
	v.SetDefault("output.base_dir", "")
	v.SetDefault("output.dry_run", false)

	v.SetDefault("composer.enabled", true)
	v.SetDefault("composer.path", "composer.json")

	v.SetDefault("php.strict_types", true)
	v.SetDefault("php.header", "")
}
