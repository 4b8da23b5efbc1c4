// Package config loads the phpgen tool configuration: output settings,
// composer.json integration, and PHP rendering options.
package config

// Config is the phpgen configuration, loaded from phpgen.yaml with
// environment overrides.
type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Composer ComposerConfig `mapstructure:"composer"`
	Php      PhpConfig      `mapstructure:"php"`
}

// OutputConfig controls where generated files land.
type OutputConfig struct {
	// FallbackRoot receives artifacts whose namespace matches no mapping
	FallbackRoot string `mapstructure:"fallback_root"`
	// BaseDir roots all output; empty means the working directory
	BaseDir string `mapstructure:"base_dir"`
	// DryRun makes every run a preview unless overridden on the command line
	DryRun bool `mapstructure:"dry_run"`
	// Namespaces adds explicit prefix mappings on top of composer.json.
	// Entries are a list (not a map) so prefix case survives decoding.
	Namespaces []NamespaceMapping `mapstructure:"namespaces"`
}

// NamespaceMapping is one explicit prefix -> directory mapping. Priority
// entries land in the tier that overrides composer's regular autoload
// section.
type NamespaceMapping struct {
	Prefix    string `mapstructure:"prefix"`
	Directory string `mapstructure:"directory"`
	Priority  bool   `mapstructure:"priority"`
}

// ComposerConfig controls composer.json integration.
type ComposerConfig struct {
	// Enabled reads PSR-4 mappings from composer.json (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Path to composer.json, relative to the working directory
	Path string `mapstructure:"path"`
}

// PhpConfig controls rendering of generated source.
type PhpConfig struct {
	// StrictTypes emits declare(strict_types=1) on every file (default: true)
	StrictTypes bool `mapstructure:"strict_types"`
	// Header is an optional comment placed at the top of every file
	Header string `mapstructure:"header"`
}
