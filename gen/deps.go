package gen

import (
	"strings"

	"github.com/nexus4812/php-class-gen/php"
)

// CollectDependencies walks a structural instance and returns every
// externally-qualified type name it references, deduplicated in first-seen
// order. A name counts as externally qualified when it contains a namespace
// separator; bare names are built-ins or already in scope and never produce
// an import. Root-relative names ("\DateTimeImmutable") are treated as
// global classes and excluded as well.
//
// Collection order is fixed so regenerating an unchanged structure yields a
// stable use block: supertypes, implemented interfaces, traits, then method
// parameter and return types, then property types, then attribute names.
func CollectDependencies(t php.Type) []string {
	c := &depCollector{seen: make(map[string]struct{})}

	for _, name := range t.Supertypes() {
		c.scan(name)
	}
	for _, name := range t.Interfaces() {
		c.scan(name)
	}
	for _, name := range t.Traits() {
		c.scan(name)
	}
	for _, m := range t.TypeMethods() {
		for _, p := range m.Params {
			c.scan(p.Type)
		}
		c.scan(m.ReturnType)
	}
	for _, p := range t.TypeProperties() {
		c.scan(p.Type)
	}
	for _, a := range t.TypeAttributes() {
		// Only the attribute name resolves to an import; argument
		// literals are opaque strings.
		c.scan(a.Name)
	}

	return c.out
}

type depCollector struct {
	seen map[string]struct{}
	out  []string
}

// scan extracts qualified names from a type expression. Expressions may be
// compound ("?App\Foo", "App\Foo|null", "array<int,App\Bar>",
// "callable(App\Foo): App\Bar"), so every maximal identifier run is
// considered separately.
func (c *depCollector) scan(expr string) {
	if expr == "" {
		return
	}
	i := 0
	for i < len(expr) {
		if !isNameByte(expr[i]) {
			i++
			continue
		}
		j := i
		for j < len(expr) && isNameByte(expr[j]) {
			j++
		}
		c.add(expr[i:j])
		i = j
	}
}

func (c *depCollector) add(name string) {
	// A leading separator marks a root-relative global reference, not an
	// importable namespace member.
	if strings.HasPrefix(name, php.NamespaceSeparator) {
		return
	}
	if !php.IsQualified(name) {
		return
	}
	if _, ok := c.seen[name]; ok {
		return
	}
	c.seen[name] = struct{}{}
	c.out = append(c.out, name)
}

func isNameByte(b byte) bool {
	return b == '\\' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
