package config

import (
	"os"

	"github.com/nexus4812/php-class-gen/composer"
	"github.com/nexus4812/php-class-gen/errors"
	"github.com/nexus4812/php-class-gen/logger"
	"github.com/nexus4812/php-class-gen/psr4"
)

// BuildResolver merges composer.json PSR-4 mappings with the explicit
// mappings from phpgen.yaml into a validated resolver. Explicit entries
// override composer entries for the same prefix within their tier. A
// missing composer.json is an error only when no explicit mappings could
// take its place.
func (c *Config) BuildResolver() (*psr4.Resolver, error) {
	normal := make(map[string]string)
	priority := make(map[string]string)

	if c.Composer.Enabled {
		if _, err := os.Stat(c.Composer.Path); err == nil {
			mappings, err := composer.Load(c.Composer.Path)
			if err != nil {
				return nil, err
			}
			for prefix, dir := range mappings.Normal {
				normal[prefix] = dir
			}
			for prefix, dir := range mappings.Priority {
				priority[prefix] = dir
			}
			logger.Logger.Debugw("loaded composer mappings",
				"path", c.Composer.Path,
				"normal", len(mappings.Normal),
				"priority", len(mappings.Priority))
		} else if len(c.Output.Namespaces) == 0 {
			return nil, errors.NewConfigError(
				"composer integration is enabled but %s does not exist and no explicit namespace mappings are configured",
				c.Composer.Path)
		}
	}

	for _, m := range c.Output.Namespaces {
		if m.Priority {
			priority[m.Prefix] = m.Directory
		} else {
			normal[m.Prefix] = m.Directory
		}
	}

	resolver := psr4.NewResolver(normal, priority, c.Output.FallbackRoot)
	if err := resolver.Validate(); err != nil {
		return nil, err
	}
	return resolver, nil
}
