package php

// Visibility is a PHP member visibility modifier.
type Visibility string

const (
	Public    Visibility = "public"
	Protected Visibility = "protected"
	Private   Visibility = "private"
)

// Parameter is a method parameter declaration.
type Parameter struct {
	Name    string
	Type    string // type expression, may be qualified ("App\Models\User") or compound ("?int")
	Default string // raw PHP literal, empty for no default
}

// Method is a method declaration with an optional body.
type Method struct {
	Name       string
	Visibility Visibility
	Static     bool
	Abstract   bool
	Params     []Parameter
	ReturnType string
	Body       []string // raw PHP statements, one per line; nil renders an empty body
	Comment    string   // single-line doc comment, empty for none
}

// NewMethod creates a public method with the given name.
func NewMethod(name string) *Method {
	return &Method{Name: name, Visibility: Public}
}

// AddParam appends a typed parameter and returns the method for chaining.
func (m *Method) AddParam(name, typ string) *Method {
	m.Params = append(m.Params, Parameter{Name: name, Type: typ})
	return m
}

// AddParamDefault appends a parameter with a default value literal.
func (m *Method) AddParamDefault(name, typ, def string) *Method {
	m.Params = append(m.Params, Parameter{Name: name, Type: typ, Default: def})
	return m
}

// SetReturnType sets the declared return type.
func (m *Method) SetReturnType(typ string) *Method {
	m.ReturnType = typ
	return m
}

// SetVisibility overrides the default public visibility.
func (m *Method) SetVisibility(v Visibility) *Method {
	m.Visibility = v
	return m
}

// SetStatic marks the method static.
func (m *Method) SetStatic() *Method {
	m.Static = true
	return m
}

// SetAbstract marks the method abstract; abstract methods render without a body.
func (m *Method) SetAbstract() *Method {
	m.Abstract = true
	return m
}

// AddBody appends one line of PHP to the method body.
func (m *Method) AddBody(line string) *Method {
	m.Body = append(m.Body, line)
	return m
}

// SetComment sets a one-line doc comment.
func (m *Method) SetComment(comment string) *Method {
	m.Comment = comment
	return m
}

// Property is a typed class/trait property.
type Property struct {
	Name       string
	Visibility Visibility
	Type       string
	Default    string // raw PHP literal, empty for no default
	Static     bool
	Readonly   bool
	Comment    string
}

// NewProperty creates a private typed property, the common case for
// generated value objects.
func NewProperty(name, typ string) *Property {
	return &Property{Name: name, Visibility: Private, Type: typ}
}

// SetVisibility overrides the default private visibility.
func (p *Property) SetVisibility(v Visibility) *Property {
	p.Visibility = v
	return p
}

// SetDefault sets the default value literal.
func (p *Property) SetDefault(def string) *Property {
	p.Default = def
	return p
}

// SetReadonly marks the property readonly.
func (p *Property) SetReadonly() *Property {
	p.Readonly = true
	return p
}

// SetComment sets a one-line doc comment.
func (p *Property) SetComment(comment string) *Property {
	p.Comment = comment
	return p
}

// Constant is a class constant declaration.
type Constant struct {
	Name       string
	Value      string // raw PHP literal
	Visibility Visibility
}

// Attribute is a PHP 8 attribute applied to a construct.
// Args are raw PHP literals and are treated as opaque strings; only Name
// participates in dependency resolution.
type Attribute struct {
	Name string
	Args []string
}

// EnumCase is one case of an enum. Value is a raw literal for backed enums
// and empty for pure enums.
type EnumCase struct {
	Name  string
	Value string
}
