package gen

import (
	"github.com/nexus4812/php-class-gen/php"
	"github.com/nexus4812/php-class-gen/writer"
)

// Builder is the fluent accumulator around a Blueprint. Configuration calls
// replace the wrapped Blueprint rather than mutating it, so repeated Build
// calls on the same Builder always produce identical output.
type Builder struct {
	blueprint   Blueprint
	autoImports bool
}

// NewClass creates a builder for a class artifact.
func NewClass(qualifiedName string) *Builder {
	return newBuilder(qualifiedName, php.KindClass)
}

// NewInterface creates a builder for an interface artifact.
func NewInterface(qualifiedName string) *Builder {
	return newBuilder(qualifiedName, php.KindInterface)
}

// NewTrait creates a builder for a trait artifact.
func NewTrait(qualifiedName string) *Builder {
	return newBuilder(qualifiedName, php.KindTrait)
}

// NewEnum creates a builder for an enum artifact.
func NewEnum(qualifiedName string) *Builder {
	return newBuilder(qualifiedName, php.KindEnum)
}

func newBuilder(qualifiedName string, kind php.Kind) *Builder {
	return &Builder{
		blueprint:   NewBlueprint(qualifiedName, kind),
		autoImports: true,
	}
}

// WithoutAutoImports disables the probe pass; only explicit AddImport calls
// contribute to the use block.
func (b *Builder) WithoutAutoImports() *Builder {
	b.autoImports = false
	return b
}

// AddImport appends fully-qualified names to the import list. Duplicates
// are skipped, insertion order is preserved.
func (b *Builder) AddImport(names ...string) *Builder {
	b.blueprint = b.blueprint.WithImports(names...)
	return b
}

// WithStructure stores the structural function. When auto-imports are
// enabled the function is first run against a throwaway probe instance of
// the blueprint's kind and every qualified type it references is appended
// to the import list. The function runs again at assembly time against the
// real instance, so it must not have side effects beyond its handle.
func (b *Builder) WithStructure(fn StructureFunc) *Builder {
	if fn != nil && b.autoImports {
		probe := php.NewType(b.blueprint.Kind(), b.blueprint.ShortName())
		configured := fn(probe)
		if configured == nil {
			configured = probe
		}
		b.blueprint = b.blueprint.WithImports(CollectDependencies(configured)...)
	}
	b.blueprint = b.blueprint.WithStructure(fn)
	return b
}

// Blueprint returns the current immutable blueprint.
func (b *Builder) Blueprint() Blueprint {
	return b.blueprint
}

// Build hands the finished blueprint to the assembler. Assembler failures
// propagate unchanged.
func (b *Builder) Build(assembler Assembler) (*writer.FileArtifact, error) {
	return assembler.Assemble(b.blueprint)
}

// ClassStructure adapts a class-typed configuration function to a
// StructureFunc. Handles of a different kind pass through untouched.
func ClassStructure(fn func(*php.ClassType) *php.ClassType) StructureFunc {
	return func(t php.Type) php.Type {
		if c, ok := t.(*php.ClassType); ok {
			return fn(c)
		}
		return t
	}
}

// InterfaceStructure adapts an interface-typed configuration function.
func InterfaceStructure(fn func(*php.InterfaceType) *php.InterfaceType) StructureFunc {
	return func(t php.Type) php.Type {
		if i, ok := t.(*php.InterfaceType); ok {
			return fn(i)
		}
		return t
	}
}

// TraitStructure adapts a trait-typed configuration function.
func TraitStructure(fn func(*php.TraitType) *php.TraitType) StructureFunc {
	return func(t php.Type) php.Type {
		if tr, ok := t.(*php.TraitType); ok {
			return fn(tr)
		}
		return t
	}
}

// EnumStructure adapts an enum-typed configuration function.
func EnumStructure(fn func(*php.EnumType) *php.EnumType) StructureFunc {
	return func(t php.Type) php.Type {
		if e, ok := t.(*php.EnumType); ok {
			return fn(e)
		}
		return t
	}
}
