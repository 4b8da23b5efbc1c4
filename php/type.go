// Package php holds the mutable structural model for generated PHP
// constructs and the printer that renders them to source text.
//
// The model is the handle passed to blueprint structural functions: a
// function receives a *ClassType (or interface/trait/enum equivalent),
// mutates it through the fluent Add*/Set* methods, and returns it. The same
// function runs once against a throwaway probe instance for dependency
// harvesting and once against the real instance during assembly, so it must
// not carry side effects beyond the handle it is given.
package php

// Type is the common view over the four construct models. The dependency
// analyzer and the printer both operate on this surface, so extraction rules
// apply uniformly regardless of construct kind.
type Type interface {
	Kind() Kind
	TypeName() string

	// Supertypes returns extended types: the base class for a class
	// (zero or one entry), extended interfaces for an interface.
	Supertypes() []string
	// Interfaces returns implemented interface names (classes and enums).
	Interfaces() []string
	// Traits returns used trait names.
	Traits() []string

	TypeMethods() []*Method
	TypeProperties() []*Property
	TypeConstants() []Constant
	TypeAttributes() []Attribute
}

// NewType creates an empty structural instance for the given kind. Used for
// both the probe pass and real assembly.
func NewType(kind Kind, name string) Type {
	switch kind {
	case KindInterface:
		return NewInterfaceType(name)
	case KindTrait:
		return NewTraitType(name)
	case KindEnum:
		return NewEnumType(name)
	default:
		return NewClassType(name)
	}
}

// ClassType models a PHP class declaration.
type ClassType struct {
	name       string
	extends    string
	implements []string
	traits     []string
	methods    []*Method
	properties []*Property
	constants  []Constant
	attributes []Attribute
	final      bool
	abstract   bool
	comment    string
}

// NewClassType creates an empty class model with the given short name.
func NewClassType(name string) *ClassType {
	return &ClassType{name: name}
}

func (c *ClassType) Kind() Kind       { return KindClass }
func (c *ClassType) TypeName() string { return c.name }

func (c *ClassType) Supertypes() []string {
	if c.extends == "" {
		return nil
	}
	return []string{c.extends}
}

func (c *ClassType) Interfaces() []string        { return c.implements }
func (c *ClassType) Traits() []string            { return c.traits }
func (c *ClassType) TypeMethods() []*Method      { return c.methods }
func (c *ClassType) TypeProperties() []*Property { return c.properties }
func (c *ClassType) TypeConstants() []Constant   { return c.constants }
func (c *ClassType) TypeAttributes() []Attribute { return c.attributes }

// Extends returns the base class name, empty for none.
func (c *ClassType) Extends() string { return c.extends }

// IsFinal reports the final modifier.
func (c *ClassType) IsFinal() bool { return c.final }

// IsAbstract reports the abstract modifier.
func (c *ClassType) IsAbstract() bool { return c.abstract }

// Comment returns the class-level doc comment.
func (c *ClassType) Comment() string { return c.comment }

// SetExtends sets the base class. PHP has single inheritance; a second call
// replaces the first.
func (c *ClassType) SetExtends(name string) *ClassType {
	c.extends = name
	return c
}

// AddImplement appends an implemented interface.
func (c *ClassType) AddImplement(name string) *ClassType {
	c.implements = append(c.implements, name)
	return c
}

// AddTrait appends a use-trait declaration.
func (c *ClassType) AddTrait(name string) *ClassType {
	c.traits = append(c.traits, name)
	return c
}

// AddMethod appends a method.
func (c *ClassType) AddMethod(m *Method) *ClassType {
	c.methods = append(c.methods, m)
	return c
}

// AddProperty appends a property.
func (c *ClassType) AddProperty(p *Property) *ClassType {
	c.properties = append(c.properties, p)
	return c
}

// AddConstant appends a class constant.
func (c *ClassType) AddConstant(name, value string) *ClassType {
	c.constants = append(c.constants, Constant{Name: name, Value: value, Visibility: Public})
	return c
}

// AddAttribute appends a PHP attribute to the class declaration.
func (c *ClassType) AddAttribute(a Attribute) *ClassType {
	c.attributes = append(c.attributes, a)
	return c
}

// SetFinal marks the class final.
func (c *ClassType) SetFinal() *ClassType {
	c.final = true
	return c
}

// SetAbstract marks the class abstract.
func (c *ClassType) SetAbstract() *ClassType {
	c.abstract = true
	return c
}

// SetComment sets the class-level doc comment.
func (c *ClassType) SetComment(comment string) *ClassType {
	c.comment = comment
	return c
}

// InterfaceType models a PHP interface declaration.
type InterfaceType struct {
	name       string
	extends    []string
	methods    []*Method
	constants  []Constant
	attributes []Attribute
	comment    string
}

// NewInterfaceType creates an empty interface model.
func NewInterfaceType(name string) *InterfaceType {
	return &InterfaceType{name: name}
}

func (i *InterfaceType) Kind() Kind                   { return KindInterface }
func (i *InterfaceType) TypeName() string             { return i.name }
func (i *InterfaceType) Supertypes() []string         { return i.extends }
func (i *InterfaceType) Interfaces() []string         { return nil }
func (i *InterfaceType) Traits() []string             { return nil }
func (i *InterfaceType) TypeMethods() []*Method       { return i.methods }
func (i *InterfaceType) TypeProperties() []*Property  { return nil }
func (i *InterfaceType) TypeConstants() []Constant    { return i.constants }
func (i *InterfaceType) TypeAttributes() []Attribute  { return i.attributes }

// Comment returns the interface-level doc comment.
func (i *InterfaceType) Comment() string { return i.comment }

// AddExtend appends an extended interface; interfaces may extend several.
func (i *InterfaceType) AddExtend(name string) *InterfaceType {
	i.extends = append(i.extends, name)
	return i
}

// AddMethod appends a method signature. Interface methods render without
// bodies regardless of any body lines set on the method.
func (i *InterfaceType) AddMethod(m *Method) *InterfaceType {
	i.methods = append(i.methods, m)
	return i
}

// AddConstant appends an interface constant.
func (i *InterfaceType) AddConstant(name, value string) *InterfaceType {
	i.constants = append(i.constants, Constant{Name: name, Value: value, Visibility: Public})
	return i
}

// AddAttribute appends a PHP attribute to the interface declaration.
func (i *InterfaceType) AddAttribute(a Attribute) *InterfaceType {
	i.attributes = append(i.attributes, a)
	return i
}

// SetComment sets the interface-level doc comment.
func (i *InterfaceType) SetComment(comment string) *InterfaceType {
	i.comment = comment
	return i
}

// TraitType models a PHP trait declaration.
type TraitType struct {
	name       string
	traits     []string
	methods    []*Method
	properties []*Property
	attributes []Attribute
	comment    string
}

// NewTraitType creates an empty trait model.
func NewTraitType(name string) *TraitType {
	return &TraitType{name: name}
}

func (t *TraitType) Kind() Kind                  { return KindTrait }
func (t *TraitType) TypeName() string            { return t.name }
func (t *TraitType) Supertypes() []string        { return nil }
func (t *TraitType) Interfaces() []string        { return nil }
func (t *TraitType) Traits() []string            { return t.traits }
func (t *TraitType) TypeMethods() []*Method      { return t.methods }
func (t *TraitType) TypeProperties() []*Property { return t.properties }
func (t *TraitType) TypeConstants() []Constant   { return nil }
func (t *TraitType) TypeAttributes() []Attribute { return t.attributes }

// Comment returns the trait-level doc comment.
func (t *TraitType) Comment() string { return t.comment }

// AddTrait appends a nested use-trait declaration.
func (t *TraitType) AddTrait(name string) *TraitType {
	t.traits = append(t.traits, name)
	return t
}

// AddMethod appends a method.
func (t *TraitType) AddMethod(m *Method) *TraitType {
	t.methods = append(t.methods, m)
	return t
}

// AddProperty appends a property.
func (t *TraitType) AddProperty(p *Property) *TraitType {
	t.properties = append(t.properties, p)
	return t
}

// AddAttribute appends a PHP attribute to the trait declaration.
func (t *TraitType) AddAttribute(a Attribute) *TraitType {
	t.attributes = append(t.attributes, a)
	return t
}

// SetComment sets the trait-level doc comment.
func (t *TraitType) SetComment(comment string) *TraitType {
	t.comment = comment
	return t
}

// EnumType models a PHP 8.1 enum declaration.
type EnumType struct {
	name       string
	backing    string // "int" or "string"; empty for a pure enum
	implements []string
	cases      []EnumCase
	methods    []*Method
	constants  []Constant
	attributes []Attribute
	comment    string
}

// NewEnumType creates an empty pure enum model.
func NewEnumType(name string) *EnumType {
	return &EnumType{name: name}
}

func (e *EnumType) Kind() Kind                  { return KindEnum }
func (e *EnumType) TypeName() string            { return e.name }
func (e *EnumType) Supertypes() []string        { return nil }
func (e *EnumType) Interfaces() []string        { return e.implements }
func (e *EnumType) Traits() []string            { return nil }
func (e *EnumType) TypeMethods() []*Method      { return e.methods }
func (e *EnumType) TypeProperties() []*Property { return nil }
func (e *EnumType) TypeConstants() []Constant   { return e.constants }
func (e *EnumType) TypeAttributes() []Attribute { return e.attributes }

// Backing returns the backing type, empty for a pure enum.
func (e *EnumType) Backing() string { return e.backing }

// Cases returns the declared cases in insertion order.
func (e *EnumType) Cases() []EnumCase { return e.cases }

// Comment returns the enum-level doc comment.
func (e *EnumType) Comment() string { return e.comment }

// SetBacking sets the backing type ("int" or "string").
func (e *EnumType) SetBacking(typ string) *EnumType {
	e.backing = typ
	return e
}

// AddCase appends a case. value is a raw PHP literal for backed enums and
// should be empty for pure enums.
func (e *EnumType) AddCase(name, value string) *EnumType {
	e.cases = append(e.cases, EnumCase{Name: name, Value: value})
	return e
}

// AddImplement appends an implemented interface.
func (e *EnumType) AddImplement(name string) *EnumType {
	e.implements = append(e.implements, name)
	return e
}

// AddMethod appends a method.
func (e *EnumType) AddMethod(m *Method) *EnumType {
	e.methods = append(e.methods, m)
	return e
}

// AddAttribute appends a PHP attribute to the enum declaration.
func (e *EnumType) AddAttribute(a Attribute) *EnumType {
	e.attributes = append(e.attributes, a)
	return e
}

// SetComment sets the enum-level doc comment.
func (e *EnumType) SetComment(comment string) *EnumType {
	e.comment = comment
	return e
}
