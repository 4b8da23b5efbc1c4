package gen

import (
	"fmt"
	"strconv"

	"github.com/nexus4812/php-class-gen/errors"
	"github.com/nexus4812/php-class-gen/writer"
)

// BlueprintBuilder is the shape Project.Build requires of every factory
// result. *Builder satisfies it; anything else aborts the batch.
type BlueprintBuilder interface {
	Blueprint() Blueprint
	Build(Assembler) (*writer.FileArtifact, error)
}

// ProjectArtifact pairs a finished artifact with its disambiguated batch key.
type ProjectArtifact struct {
	Key  string
	File *writer.FileArtifact
}

// Project is an ordered batch of builders keyed by qualified name. Adding
// the same qualified name more than once disambiguates the later entries as
// Name_1, Name_2, ... so a batch can generate several artifacts sharing a
// naming scheme (a query, its result, its handler) without overwriting one
// another.
//
// Build is fail-fast: one bad entry aborts the whole batch. Generated
// artifacts are often mutually referential, and a partially generated
// source tree is worse than none.
type Project struct {
	order     []string
	factories map[string]func() any
}

// NewProject creates an empty batch.
func NewProject() *Project {
	return &Project{factories: make(map[string]func() any)}
}

// Add stores a builder under the next free key for its qualified name and
// returns the project for chaining.
func (p *Project) Add(b *Builder) *Project {
	return p.AddFactory(b.Blueprint().QualifiedName(), func() any { return b })
}

// AddFactory stores a zero-argument factory under the next free key for the
// given qualified name. The factory runs during Build and must return a
// BlueprintBuilder-compatible value.
func (p *Project) AddFactory(qualifiedName string, factory func() any) *Project {
	key := p.disambiguate(qualifiedName)
	p.factories[key] = factory
	p.order = append(p.order, key)
	return p
}

// Keys returns the batch keys in insertion order.
func (p *Project) Keys() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Len returns the number of entries in the batch.
func (p *Project) Len() int { return len(p.order) }

// Build assembles every entry in insertion order. The first factory that
// panics, errors, or returns a value that is not builder-shaped aborts the
// batch with a fatal error naming the offending key; no partial result is
// returned.
func (p *Project) Build(assembler Assembler) ([]ProjectArtifact, error) {
	artifacts := make([]ProjectArtifact, 0, len(p.order))

	for _, key := range p.order {
		artifact, err := p.buildOne(key, assembler)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, ProjectArtifact{Key: key, File: artifact})
	}

	return artifacts, nil
}

func (p *Project) buildOne(key string, assembler Assembler) (artifact *writer.FileArtifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			artifact = nil
			err = errors.NewFatalBatchError(key, errors.Newf("panic: %v", r))
		}
	}()

	value := p.factories[key]()
	builder, ok := value.(BlueprintBuilder)
	if !ok {
		return nil, errors.NewFatalBatchError(key, errors.Newf("factory returned %T, not a blueprint builder", value))
	}

	artifact, err = builder.Build(assembler)
	if err != nil {
		return nil, errors.NewFatalBatchError(key, err)
	}
	return artifact, nil
}

// disambiguate returns qualifiedName if unused, otherwise the first free
// qualifiedName_N starting from N=1.
func (p *Project) disambiguate(qualifiedName string) string {
	if qualifiedName == "" {
		qualifiedName = "artifact"
	}
	if _, taken := p.factories[qualifiedName]; !taken {
		return qualifiedName
	}
	for i := 1; ; i++ {
		key := qualifiedName + "_" + strconv.Itoa(i)
		if _, taken := p.factories[key]; !taken {
			return key
		}
	}
}

// String describes the batch for log output.
func (p *Project) String() string {
	return fmt.Sprintf("project with %d artifacts", len(p.order))
}
