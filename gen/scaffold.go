package gen

import (
	"strings"

	"github.com/nexus4812/php-class-gen/errors"
	"github.com/nexus4812/php-class-gen/php"
)

// ScaffoldSpec is a declarative scaffold request as it arrives from the CLI
// flags or a tool-server call. Builder() turns it into a configured Builder
// so both entry points share one construction path.
type ScaffoldSpec struct {
	Kind       php.Kind
	Name       string // fully qualified
	Fields     []Field
	Extends    string
	Implements []string
	Traits     []string
	Cases      []Field // enum cases; Type carries the raw value literal
	Backing    string  // enum backing type, empty for pure enums
	Final      bool
	Abstract   bool
	Getters    bool // emit a getter per field
	Construct  bool // emit a constructor assigning every field
}

// Validate rejects requests no structural function could express.
func (s ScaffoldSpec) Validate() error {
	if !s.Kind.Valid() {
		return errors.NewConfigError("unknown artifact kind %q", s.Kind)
	}
	if strings.Trim(s.Name, php.NamespaceSeparator) == "" {
		return errors.NewConfigError("artifact name is required")
	}
	if s.Kind != php.KindEnum && (len(s.Cases) > 0 || s.Backing != "") {
		return errors.NewConfigError("cases and backing apply to enums only")
	}
	if s.Kind != php.KindClass && (s.Extends != "" && s.Kind != php.KindInterface) {
		return errors.NewConfigError("extends applies to classes and interfaces only")
	}
	return nil
}

// Builder constructs the configured builder for this spec.
func (s ScaffoldSpec) Builder() *Builder {
	switch s.Kind {
	case php.KindInterface:
		return NewInterface(s.Name).WithStructure(InterfaceStructure(s.interfaceStructure))
	case php.KindTrait:
		return NewTrait(s.Name).WithStructure(TraitStructure(s.traitStructure))
	case php.KindEnum:
		return NewEnum(s.Name).WithStructure(EnumStructure(s.enumStructure))
	default:
		return NewClass(s.Name).WithStructure(ClassStructure(s.classStructure))
	}
}

func (s ScaffoldSpec) classStructure(c *php.ClassType) *php.ClassType {
	if s.Final {
		c.SetFinal()
	}
	if s.Abstract {
		c.SetAbstract()
	}
	if s.Extends != "" {
		c.SetExtends(s.Extends)
	}
	for _, name := range s.Implements {
		c.AddImplement(name)
	}
	for _, name := range s.Traits {
		c.AddTrait(name)
	}
	for _, f := range s.Fields {
		c.AddProperty(php.NewProperty(f.Name, f.Type))
	}
	if s.Construct && len(s.Fields) > 0 {
		c.AddMethod(s.constructor())
	}
	if s.Getters {
		for _, f := range s.Fields {
			c.AddMethod(getter(f))
		}
	}
	return c
}

func (s ScaffoldSpec) interfaceStructure(i *php.InterfaceType) *php.InterfaceType {
	if s.Extends != "" {
		i.AddExtend(s.Extends)
	}
	for _, name := range s.Implements {
		// "implements" on an interface request reads as extended interfaces
		i.AddExtend(name)
	}
	for _, f := range s.Fields {
		i.AddMethod(php.NewMethod(getterName(f.Name)).SetReturnType(f.Type))
	}
	return i
}

func (s ScaffoldSpec) traitStructure(t *php.TraitType) *php.TraitType {
	for _, name := range s.Traits {
		t.AddTrait(name)
	}
	for _, f := range s.Fields {
		t.AddProperty(php.NewProperty(f.Name, f.Type))
	}
	if s.Getters {
		for _, f := range s.Fields {
			t.AddMethod(getter(f))
		}
	}
	return t
}

func (s ScaffoldSpec) enumStructure(e *php.EnumType) *php.EnumType {
	if s.Backing != "" {
		e.SetBacking(s.Backing)
	}
	for _, name := range s.Implements {
		e.AddImplement(name)
	}
	for _, c := range s.Cases {
		e.AddCase(c.Name, c.Type)
	}
	return e
}

func (s ScaffoldSpec) constructor() *php.Method {
	m := php.NewMethod("__construct")
	for _, f := range s.Fields {
		m.AddParam(f.Name, f.Type)
		m.AddBody("$this->" + f.Name + " = $" + f.Name + ";")
	}
	return m
}

func getter(f Field) *php.Method {
	return php.NewMethod(getterName(f.Name)).
		SetReturnType(f.Type).
		AddBody("return $this->" + f.Name + ";")
}

func getterName(field string) string {
	if field == "" {
		return "get"
	}
	return "get" + strings.ToUpper(field[:1]) + field[1:]
}
