package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus4812/php-class-gen/php"
	"github.com/nexus4812/php-class-gen/writer"
)

// countingAssembler records Assemble calls for purity checks.
type countingAssembler struct {
	calls int
	last  Blueprint
}

func (a *countingAssembler) Assemble(bp Blueprint) (*writer.FileArtifact, error) {
	a.calls++
	a.last = bp
	return &writer.FileArtifact{
		QualifiedName: bp.QualifiedName(),
		Namespace:     bp.Namespace(),
		Name:          bp.ShortName(),
		Content:       "stub",
	}, nil
}

func TestBuilder_AutoImportsFromStructure(t *testing.T) {
	builder := NewClass(`Ns\User`).WithStructure(ClassStructure(func(c *php.ClassType) *php.ClassType {
		return c.
			AddImplement(`Ns\Contracts\HasId`).
			AddProperty(php.NewProperty("address", `Ns\Models\Address`))
	}))

	assert.Equal(t, []string{`Ns\Contracts\HasId`, `Ns\Models\Address`}, builder.Blueprint().Imports())
}

func TestBuilder_ProbeRunsOnceAndAssemblyAgain(t *testing.T) {
	invocations := 0
	builder := NewClass(`Ns\User`).WithStructure(func(handle php.Type) php.Type {
		invocations++
		return handle
	})
	require.Equal(t, 1, invocations, "probe pass should run the structural function once")

	assembler := NewAssembler(true)
	_, err := builder.Build(assembler)
	require.NoError(t, err)
	assert.Equal(t, 2, invocations, "assembly runs the structural function a second time")
}

func TestBuilder_WithoutAutoImports(t *testing.T) {
	invocations := 0
	builder := NewClass(`Ns\User`).
		WithoutAutoImports().
		WithStructure(func(handle php.Type) php.Type {
			invocations++
			if c, ok := handle.(*php.ClassType); ok {
				c.AddImplement(`Ns\Contracts\HasId`)
			}
			return handle
		})

	assert.Equal(t, 0, invocations, "no probe pass with auto-imports disabled")
	assert.Empty(t, builder.Blueprint().Imports())
}

func TestBuilder_ExplicitImportsPrecedeHarvested(t *testing.T) {
	builder := NewClass(`Ns\User`).
		AddImport(`Vendor\Lib\Helper`).
		WithStructure(ClassStructure(func(c *php.ClassType) *php.ClassType {
			return c.SetExtends(`Ns\Base`)
		}))

	assert.Equal(t, []string{`Vendor\Lib\Helper`, `Ns\Base`}, builder.Blueprint().Imports())
}

func TestBuilder_RepeatedBuildIsIdentical(t *testing.T) {
	builder := NewClass(`Ns\User`).WithStructure(ClassStructure(func(c *php.ClassType) *php.ClassType {
		return c.AddProperty(php.NewProperty("id", "int"))
	}))

	assembler := NewAssembler(true)
	first, err := builder.Build(assembler)
	require.NoError(t, err)
	second, err := builder.Build(assembler)
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content, "no hidden incrementing state between builds")
}

func TestBuilder_KindFactories(t *testing.T) {
	tests := []struct {
		builder *Builder
		want    php.Kind
	}{
		{NewClass(`A\B`), php.KindClass},
		{NewInterface(`A\B`), php.KindInterface},
		{NewTrait(`A\B`), php.KindTrait},
		{NewEnum(`A\B`), php.KindEnum},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.builder.Blueprint().Kind())
	}
}

func TestBuilder_NilStructureReturnUsesProbe(t *testing.T) {
	// A structural function returning nil falls back to the mutated probe
	builder := NewClass(`Ns\User`).WithStructure(func(handle php.Type) php.Type {
		if c, ok := handle.(*php.ClassType); ok {
			c.AddImplement(`Ns\Contracts\HasId`)
		}
		return nil
	})

	assert.Equal(t, []string{`Ns\Contracts\HasId`}, builder.Blueprint().Imports())
}

func TestBuilder_BuildDelegatesToAssembler(t *testing.T) {
	assembler := &countingAssembler{}
	builder := NewEnum(`Ns\Status`)

	artifact, err := builder.Build(assembler)
	require.NoError(t, err)
	assert.Equal(t, 1, assembler.calls)
	assert.Equal(t, php.KindEnum, assembler.last.Kind())
	assert.Equal(t, "Status", artifact.Name)
}
