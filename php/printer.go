package php

import (
	"fmt"
	"strings"
)

// File is one printable PHP source unit: a namespace, its use block, and a
// single construct. Assembly produces exactly one File per blueprint.
type File struct {
	Namespace   string
	Imports     []string // fully-qualified names, insertion order, already deduplicated
	StrictTypes bool
	Header      string // optional comment placed under the <?php tag
	Type        Type
}

// Printer renders a File to PHP source text. Output is deterministic for a
// given File: members print in insertion order and the use block preserves
// import order, so regenerating an unchanged blueprint yields a byte-identical
// file.
type Printer struct {
	indent string
}

// NewPrinter creates a printer with 4-space indentation (PSR-12).
func NewPrinter() *Printer {
	return &Printer{indent: "    "}
}

// PrintFile renders the complete source file.
func (p *Printer) PrintFile(f *File) string {
	var sb strings.Builder

	sb.WriteString("<?php\n\n")
	if f.StrictTypes {
		sb.WriteString("declare(strict_types=1);\n\n")
	}
	if f.Header != "" {
		for _, line := range strings.Split(f.Header, "\n") {
			sb.WriteString("// " + line + "\n")
		}
		sb.WriteString("\n")
	}
	if f.Namespace != "" {
		sb.WriteString("namespace " + f.Namespace + ";\n\n")
	}

	if len(f.Imports) > 0 {
		for _, imp := range f.Imports {
			sb.WriteString("use " + imp + ";\n")
		}
		sb.WriteString("\n")
	}

	short := newShortener(f.Imports, f.Namespace)
	p.printType(&sb, f.Type, short)

	return sb.String()
}

func (p *Printer) printType(sb *strings.Builder, t Type, short *shortener) {
	switch v := t.(type) {
	case *ClassType:
		p.printClass(sb, v, short)
	case *InterfaceType:
		p.printInterface(sb, v, short)
	case *TraitType:
		p.printTrait(sb, v, short)
	case *EnumType:
		p.printEnum(sb, v, short)
	}
}

func (p *Printer) printClass(sb *strings.Builder, c *ClassType, short *shortener) {
	p.printDocComment(sb, c.Comment(), "")
	p.printAttributes(sb, c.TypeAttributes(), short, "")

	var decl strings.Builder
	if c.IsFinal() {
		decl.WriteString("final ")
	}
	if c.IsAbstract() {
		decl.WriteString("abstract ")
	}
	decl.WriteString("class " + c.TypeName())
	if c.Extends() != "" {
		decl.WriteString(" extends " + short.apply(c.Extends()))
	}
	if len(c.Interfaces()) > 0 {
		decl.WriteString(" implements " + short.applyList(c.Interfaces()))
	}
	sb.WriteString(decl.String() + "\n{\n")

	var sections []string
	if body := p.printTraitUses(c.Traits(), short); body != "" {
		sections = append(sections, body)
	}
	if body := p.printConstants(c.TypeConstants()); body != "" {
		sections = append(sections, body)
	}
	if body := p.printProperties(c.TypeProperties(), short); body != "" {
		sections = append(sections, body)
	}
	if body := p.printMethods(c.TypeMethods(), short, false); body != "" {
		sections = append(sections, body)
	}
	sb.WriteString(strings.Join(sections, "\n"))

	sb.WriteString("}\n")
}

func (p *Printer) printInterface(sb *strings.Builder, i *InterfaceType, short *shortener) {
	p.printDocComment(sb, i.Comment(), "")
	p.printAttributes(sb, i.TypeAttributes(), short, "")

	decl := "interface " + i.TypeName()
	if len(i.Supertypes()) > 0 {
		decl += " extends " + short.applyList(i.Supertypes())
	}
	sb.WriteString(decl + "\n{\n")

	var sections []string
	if body := p.printConstants(i.TypeConstants()); body != "" {
		sections = append(sections, body)
	}
	if body := p.printMethods(i.TypeMethods(), short, true); body != "" {
		sections = append(sections, body)
	}
	sb.WriteString(strings.Join(sections, "\n"))

	sb.WriteString("}\n")
}

func (p *Printer) printTrait(sb *strings.Builder, t *TraitType, short *shortener) {
	p.printDocComment(sb, t.Comment(), "")
	p.printAttributes(sb, t.TypeAttributes(), short, "")

	sb.WriteString("trait " + t.TypeName() + "\n{\n")

	var sections []string
	if body := p.printTraitUses(t.Traits(), short); body != "" {
		sections = append(sections, body)
	}
	if body := p.printProperties(t.TypeProperties(), short); body != "" {
		sections = append(sections, body)
	}
	if body := p.printMethods(t.TypeMethods(), short, false); body != "" {
		sections = append(sections, body)
	}
	sb.WriteString(strings.Join(sections, "\n"))

	sb.WriteString("}\n")
}

func (p *Printer) printEnum(sb *strings.Builder, e *EnumType, short *shortener) {
	p.printDocComment(sb, e.Comment(), "")
	p.printAttributes(sb, e.TypeAttributes(), short, "")

	decl := "enum " + e.TypeName()
	if e.Backing() != "" {
		decl += ": " + e.Backing()
	}
	if len(e.Interfaces()) > 0 {
		decl += " implements " + short.applyList(e.Interfaces())
	}
	sb.WriteString(decl + "\n{\n")

	var sections []string
	if len(e.Cases()) > 0 {
		var cases strings.Builder
		for _, c := range e.Cases() {
			if c.Value != "" {
				cases.WriteString(fmt.Sprintf("%scase %s = %s;\n", p.indent, c.Name, c.Value))
			} else {
				cases.WriteString(fmt.Sprintf("%scase %s;\n", p.indent, c.Name))
			}
		}
		sections = append(sections, cases.String())
	}
	if body := p.printConstants(e.TypeConstants()); body != "" {
		sections = append(sections, body)
	}
	if body := p.printMethods(e.TypeMethods(), short, false); body != "" {
		sections = append(sections, body)
	}
	sb.WriteString(strings.Join(sections, "\n"))

	sb.WriteString("}\n")
}

func (p *Printer) printTraitUses(traits []string, short *shortener) string {
	if len(traits) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, t := range traits {
		sb.WriteString(p.indent + "use " + short.apply(t) + ";\n")
	}
	return sb.String()
}

func (p *Printer) printConstants(constants []Constant) string {
	if len(constants) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range constants {
		vis := c.Visibility
		if vis == "" {
			vis = Public
		}
		sb.WriteString(fmt.Sprintf("%s%s const %s = %s;\n", p.indent, vis, c.Name, c.Value))
	}
	return sb.String()
}

func (p *Printer) printProperties(properties []*Property, short *shortener) string {
	if len(properties) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, prop := range properties {
		if prop.Comment != "" {
			sb.WriteString(p.indent + "/** " + prop.Comment + " */\n")
		}
		var decl strings.Builder
		decl.WriteString(p.indent)
		vis := prop.Visibility
		if vis == "" {
			vis = Private
		}
		decl.WriteString(string(vis))
		if prop.Static {
			decl.WriteString(" static")
		}
		if prop.Readonly {
			decl.WriteString(" readonly")
		}
		if prop.Type != "" {
			decl.WriteString(" " + short.apply(prop.Type))
		}
		decl.WriteString(" $" + prop.Name)
		if prop.Default != "" {
			decl.WriteString(" = " + prop.Default)
		}
		sb.WriteString(decl.String() + ";\n")
	}
	return sb.String()
}

// printMethods renders all methods. signatureOnly forces body-less
// declarations (interface methods).
func (p *Printer) printMethods(methods []*Method, short *shortener, signatureOnly bool) string {
	if len(methods) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, m := range methods {
		if i > 0 {
			sb.WriteString("\n")
		}
		if m.Comment != "" {
			sb.WriteString(p.indent + "/** " + m.Comment + " */\n")
		}

		var sig strings.Builder
		sig.WriteString(p.indent)
		if m.Abstract && !signatureOnly {
			sig.WriteString("abstract ")
		}
		vis := m.Visibility
		if vis == "" {
			vis = Public
		}
		sig.WriteString(string(vis))
		if m.Static {
			sig.WriteString(" static")
		}
		sig.WriteString(" function " + m.Name + "(")
		for j, param := range m.Params {
			if j > 0 {
				sig.WriteString(", ")
			}
			if param.Type != "" {
				sig.WriteString(short.apply(param.Type) + " ")
			}
			sig.WriteString("$" + param.Name)
			if param.Default != "" {
				sig.WriteString(" = " + param.Default)
			}
		}
		sig.WriteString(")")
		if m.ReturnType != "" {
			sig.WriteString(": " + short.apply(m.ReturnType))
		}

		if signatureOnly || m.Abstract {
			sb.WriteString(sig.String() + ";\n")
			continue
		}

		sb.WriteString(sig.String() + "\n" + p.indent + "{\n")
		for _, line := range m.Body {
			if line == "" {
				sb.WriteString("\n")
				continue
			}
			sb.WriteString(p.indent + p.indent + line + "\n")
		}
		sb.WriteString(p.indent + "}\n")
	}
	return sb.String()
}

func (p *Printer) printDocComment(sb *strings.Builder, comment, indent string) {
	if comment == "" {
		return
	}
	sb.WriteString(indent + "/**\n")
	for _, line := range strings.Split(comment, "\n") {
		sb.WriteString(indent + " * " + line + "\n")
	}
	sb.WriteString(indent + " */\n")
}

func (p *Printer) printAttributes(sb *strings.Builder, attrs []Attribute, short *shortener, indent string) {
	for _, a := range attrs {
		if len(a.Args) == 0 {
			sb.WriteString(indent + "#[" + short.apply(a.Name) + "]\n")
			continue
		}
		sb.WriteString(indent + "#[" + short.apply(a.Name) + "(" + strings.Join(a.Args, ", ") + ")]\n")
	}
}

// shortener rewrites qualified names inside type expressions to their short
// form when the name is imported or lives in the file's own namespace.
type shortener struct {
	imported map[string]string // fully-qualified -> short name
}

func newShortener(imports []string, namespace string) *shortener {
	s := &shortener{imported: make(map[string]string, len(imports))}
	for _, imp := range imports {
		_, short := SplitName(imp)
		s.imported[imp] = short
	}
	_ = namespace
	return s
}

// apply rewrites every qualified name in a type expression that matches an
// import. Compound expressions (nullable, unions, generics in docblocks)
// keep their punctuation; only maximal identifier runs are considered.
func (s *shortener) apply(expr string) string {
	if len(s.imported) == 0 {
		return expr
	}
	var sb strings.Builder
	i := 0
	for i < len(expr) {
		if !isIdentByte(expr[i]) {
			sb.WriteByte(expr[i])
			i++
			continue
		}
		j := i
		for j < len(expr) && isIdentByte(expr[j]) {
			j++
		}
		word := expr[i:j]
		if short, ok := s.imported[word]; ok {
			sb.WriteString(short)
		} else {
			sb.WriteString(word)
		}
		i = j
	}
	return sb.String()
}

func (s *shortener) applyList(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = s.apply(n)
	}
	return strings.Join(out, ", ")
}

func isIdentByte(b byte) bool {
	return b == '\\' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
