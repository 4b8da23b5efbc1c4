package config

import "github.com/nexus4812/php-class-gen/errors"

// Validate checks that the configuration is usable. Namespace mapping
// conflicts are checked separately by the resolver once composer mappings
// are merged in; this catches what is wrong before any file is read.
func (c *Config) Validate() error {
	if c.Output.FallbackRoot == "" {
		return errors.NewConfigError("output.fallback_root cannot be empty")
	}

	if c.Composer.Enabled && c.Composer.Path == "" {
		return errors.NewConfigError("composer.path cannot be empty when composer integration is enabled")
	}

	for i, m := range c.Output.Namespaces {
		if m.Prefix == "" {
			return errors.NewConfigError("output.namespaces[%d] has an empty prefix", i)
		}
		if m.Directory == "" {
			return errors.NewConfigError("output.namespaces[%d] (%q) has an empty directory", i, m.Prefix)
		}
	}

	return nil
}
