// Package psr4 maps PHP namespaces to output directories using a two-tier
// prefix table, the way composer's PSR-4 autoload configuration does.
package psr4

import (
	"path"
	"strings"

	"github.com/nexus4812/php-class-gen/errors"
)

const separator = `\`

// DefaultFallbackRoot receives artifacts whose namespace matches no
// configured prefix.
const DefaultFallbackRoot = "src"

// Resolver resolves qualified names or bare namespaces to directories.
// The priority tier overrides the normal tier on prefix collision; composer
// autoload-dev mappings land there so "Tests\" style prefixes win over a
// vendor mapping of the same prefix.
type Resolver struct {
	normal   map[string]string
	priority map[string]string
	fallback string
}

// NewResolver creates a resolver over the two mapping tiers. Prefixes are
// normalized to be separator-terminated; directories are cleaned. Call
// Validate before resolving anything — resolution itself never fails, so
// configuration problems must surface up front.
func NewResolver(normal, priority map[string]string, fallbackRoot string) *Resolver {
	if fallbackRoot == "" {
		fallbackRoot = DefaultFallbackRoot
	}
	return &Resolver{
		normal:   normalizeTier(normal),
		priority: normalizeTier(priority),
		fallback: path.Clean(fallbackRoot),
	}
}

func normalizeTier(tier map[string]string) map[string]string {
	out := make(map[string]string, len(tier))
	for prefix, dir := range tier {
		if prefix != "" && !strings.HasSuffix(prefix, separator) {
			prefix += separator
		}
		out[prefix] = path.Clean(strings.TrimSuffix(dir, "/"))
	}
	return out
}

// Validate checks the mapping tables: at least one mapping, no empty prefix
// or directory, and no two distinct prefixes within the same tier resolving
// to the same normalized directory. The same directory appearing in both
// tiers is fine — that is exactly the override case.
func (r *Resolver) Validate() error {
	if len(r.normal) == 0 && len(r.priority) == 0 {
		return errors.NewConfigError("no namespace mappings configured")
	}
	if err := validateTier("normal", r.normal); err != nil {
		return err
	}
	return validateTier("priority", r.priority)
}

func validateTier(name string, tier map[string]string) error {
	byDir := make(map[string]string, len(tier))
	for prefix, dir := range tier {
		if prefix == "" || prefix == separator {
			return errors.NewConfigError("%s tier contains an empty namespace prefix", name)
		}
		if dir == "" || dir == "." {
			return errors.NewConfigError("%s tier maps %q to an empty directory", name, prefix)
		}
		if other, ok := byDir[dir]; ok {
			// Deterministic error message regardless of map order
			first, second := other, prefix
			if second < first {
				first, second = second, first
			}
			return errors.NewConfigError("%s tier maps both %q and %q to directory %q", name, first, second, dir)
		}
		byDir[dir] = prefix
	}
	return nil
}

// Resolve maps a qualified name or bare namespace to a directory. When the
// final segment begins with an upper-case character the input is treated as
// a fully-qualified name and the segment is stripped before matching. The
// longest configured prefix wins, priority beating normal on an exact
// prefix tie; with no match at all the namespace lands under the fallback
// root. Resolution never fails.
func (r *Resolver) Resolve(nameOrNamespace string) string {
	namespace := stripTypeName(nameOrNamespace)
	if namespace == "" {
		return r.fallback
	}

	terminated := namespace
	if !strings.HasSuffix(terminated, separator) {
		terminated += separator
	}

	prefix, dir, found := r.match(terminated)
	if !found {
		return r.fallback + "/" + toPath(namespace)
	}

	remainder := strings.TrimSuffix(terminated[len(prefix):], separator)
	if remainder == "" {
		return dir
	}
	return dir + "/" + toPath(remainder)
}

// ResolveFile maps a qualified name to the full path of its generated file.
func (r *Resolver) ResolveFile(qualifiedName string) string {
	dir := r.Resolve(qualifiedName)
	short := finalSegment(qualifiedName)
	if short == "" {
		return dir
	}
	return dir + "/" + short + ".php"
}

// match finds the longest matching prefix across both tiers. On equal
// prefix the priority tier wins.
func (r *Resolver) match(terminated string) (prefix, dir string, found bool) {
	best := -1
	for p, d := range r.normal {
		if strings.HasPrefix(terminated, p) && len(p) > best {
			prefix, dir, found = p, d, true
			best = len(p)
		}
	}
	for p, d := range r.priority {
		// >= so a priority prefix of equal length replaces the normal one
		if strings.HasPrefix(terminated, p) && len(p) >= best {
			prefix, dir, found = p, d, true
			best = len(p)
		}
	}
	return prefix, dir, found
}

// stripTypeName removes the final segment when it looks like a type name
// (begins upper-case), leaving the namespace for prefix matching.
func stripTypeName(input string) string {
	input = strings.Trim(input, separator)
	if input == "" {
		return ""
	}
	seg := finalSegment(input)
	if seg != "" && seg[0] >= 'A' && seg[0] <= 'Z' {
		if idx := strings.LastIndex(input, separator); idx >= 0 {
			return input[:idx]
		}
		return ""
	}
	return input
}

func finalSegment(input string) string {
	input = strings.Trim(input, separator)
	if idx := strings.LastIndex(input, separator); idx >= 0 {
		return input[idx+1:]
	}
	return input
}

func toPath(namespace string) string {
	return strings.ReplaceAll(namespace, separator, "/")
}
