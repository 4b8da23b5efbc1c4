package gen

import (
	"github.com/nexus4812/php-class-gen/php"
)

// StructureFunc configures a structural instance and returns it. The same
// function runs once against a probe instance (dependency harvesting) and
// once against the real instance (assembly), so it must be pure with respect
// to anything other than the handle it receives.
type StructureFunc func(php.Type) php.Type

// Blueprint is the immutable specification of one artifact: a qualified
// name, a construct kind, an ordered deduplicated import list, and an
// optional structural function. Every mutating operation returns a new
// Blueprint; the kind is fixed at construction.
type Blueprint struct {
	qualifiedName string
	kind          php.Kind
	imports       []string
	structure     StructureFunc
}

// NewBlueprint creates a blueprint for the given qualified name and kind.
func NewBlueprint(qualifiedName string, kind php.Kind) Blueprint {
	return Blueprint{qualifiedName: qualifiedName, kind: kind}
}

// QualifiedName returns the fully-qualified artifact name.
func (b Blueprint) QualifiedName() string { return b.qualifiedName }

// Kind returns the construct kind.
func (b Blueprint) Kind() php.Kind { return b.kind }

// Namespace returns the namespace portion of the qualified name; empty for
// a name without a separator.
func (b Blueprint) Namespace() string {
	ns, _ := php.SplitName(b.qualifiedName)
	return ns
}

// ShortName returns the final segment of the qualified name.
func (b Blueprint) ShortName() string {
	_, short := php.SplitName(b.qualifiedName)
	return short
}

// Imports returns a copy of the import list in insertion order.
func (b Blueprint) Imports() []string {
	if len(b.imports) == 0 {
		return nil
	}
	out := make([]string, len(b.imports))
	copy(out, b.imports)
	return out
}

// Structure returns the stored structural function, nil if none was set.
func (b Blueprint) Structure() StructureFunc { return b.structure }

// WithImports returns a new Blueprint with the given names appended.
// Duplicates, empty strings, and the artifact's own name are skipped;
// first-insertion order is preserved.
func (b Blueprint) WithImports(names ...string) Blueprint {
	imports := make([]string, len(b.imports), len(b.imports)+len(names))
	copy(imports, b.imports)

	seen := make(map[string]struct{}, len(imports))
	for _, imp := range imports {
		seen[imp] = struct{}{}
	}
	for _, name := range names {
		if name == "" || name == b.qualifiedName {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		imports = append(imports, name)
	}

	next := b
	next.imports = imports
	return next
}

// WithStructure returns a new Blueprint carrying the structural function.
func (b Blueprint) WithStructure(fn StructureFunc) Blueprint {
	next := b
	next.structure = fn
	return next
}
