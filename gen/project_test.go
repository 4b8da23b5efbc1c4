package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus4812/php-class-gen/errors"
	"github.com/nexus4812/php-class-gen/php"
)

func TestProject_DisambiguatesDuplicateNames(t *testing.T) {
	project := NewProject().
		Add(NewClass(`Ns\Foo`)).
		Add(NewInterface(`Ns\Foo`)).
		Add(NewTrait(`Ns\Foo`))

	assert.Equal(t, []string{`Ns\Foo`, `Ns\Foo_1`, `Ns\Foo_2`}, project.Keys())

	artifacts, err := project.Build(NewAssembler(true))
	require.NoError(t, err)
	require.Len(t, artifacts, 3)
	assert.Equal(t, `Ns\Foo`, artifacts[0].Key)
	assert.Equal(t, `Ns\Foo_1`, artifacts[1].Key)
	assert.Equal(t, `Ns\Foo_2`, artifacts[2].Key)
}

func TestProject_InsertionOrderPreserved(t *testing.T) {
	project := NewProject().
		Add(NewClass(`Z\Last`)).
		Add(NewClass(`A\First`)).
		Add(NewClass(`M\Middle`))

	artifacts, err := project.Build(NewAssembler(true))
	require.NoError(t, err)

	var names []string
	for _, a := range artifacts {
		names = append(names, a.File.QualifiedName)
	}
	assert.Equal(t, []string{`Z\Last`, `A\First`, `M\Middle`}, names)
}

func TestProject_FactoryPanicAbortsBatch(t *testing.T) {
	project := NewProject().
		Add(NewClass(`Ns\Good`)).
		AddFactory(`Ns\Bad`, func() any { panic("factory exploded") }).
		Add(NewClass(`Ns\Never`))

	artifacts, err := project.Build(NewAssembler(true))
	require.Error(t, err)
	assert.Nil(t, artifacts, "no partial batch on failure")
	assert.True(t, errors.IsFatalBatchError(err))
	assert.Contains(t, err.Error(), `Ns\Bad`, "error must identify the offending key")
}

func TestProject_WrongShapedFactoryResultAbortsBatch(t *testing.T) {
	project := NewProject().
		AddFactory(`Ns\NotABuilder`, func() any { return "just a string" })

	_, err := project.Build(NewAssembler(true))
	require.Error(t, err)
	assert.True(t, errors.IsFatalBatchError(err))
	assert.Contains(t, err.Error(), `Ns\NotABuilder`)
}

func TestProject_AssemblerErrorWrappedWithKey(t *testing.T) {
	// An invalid kind makes the assembler fail
	bad := &Builder{blueprint: NewBlueprint(`Ns\Broken`, php.Kind("mystery"))}
	project := NewProject().
		Add(NewClass(`Ns\Fine`)).
		Add(bad)

	_, err := project.Build(NewAssembler(true))
	require.Error(t, err)
	assert.True(t, errors.IsFatalBatchError(err))
	assert.Contains(t, err.Error(), `Ns\Broken`)
}

func TestProject_StructuralFunctionPanicAbortsBatch(t *testing.T) {
	project := NewProject().
		Add(NewClass(`Ns\Volatile`).
			WithoutAutoImports(). // keep the probe pass from panicking before Build
			WithStructure(func(handle php.Type) php.Type {
				panic("structural function misbehaved")
			}))

	_, err := project.Build(NewAssembler(true))
	require.Error(t, err)
	assert.True(t, errors.IsFatalBatchError(err))
	assert.Contains(t, err.Error(), `Ns\Volatile`)
}

func TestProject_EmptyBatch(t *testing.T) {
	artifacts, err := NewProject().Build(NewAssembler(true))
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestProject_AddIsChainable(t *testing.T) {
	project := NewProject()
	assert.Same(t, project, project.Add(NewClass(`A\B`)))
	assert.Equal(t, 1, project.Len())
}
