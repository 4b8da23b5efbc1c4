// Package gen is the artifact-specification pipeline: blueprints describe a
// PHP construct declaratively, builders harvest dependencies from the
// structural function and accumulate imports, and projects assemble batches
// of blueprints in insertion order.
package gen

import "strings"

// Field is one parsed name:type pair from a compact field list.
type Field struct {
	Name string
	Type string
}

// ParseFieldList parses a compact property/parameter list such as
// "id:int,items:array<Item>" into ordered name:type pairs.
//
// The scan is a single left-to-right pass over the input with a nesting
// depth counter for <> and (). A ':' at depth 0 ends the name portion; a
// ',' at depth 0 ends the entry. Inside a nested region both are literal
// content, which keeps generics ("array<string,mixed>") and callable
// signatures ("callable(string):bool") intact. Whitespace around names and
// types is trimmed.
//
// The parser never fails: entries with an empty name or an empty type are
// dropped, which tolerates trailing commas and malformed fragments.
func ParseFieldList(input string) []Field {
	var fields []Field
	var name, typ strings.Builder
	depth := 0
	inType := false

	flush := func() {
		n := strings.TrimSpace(name.String())
		t := strings.TrimSpace(typ.String())
		name.Reset()
		typ.Reset()
		inType = false
		if n == "" || t == "" {
			return
		}
		fields = append(fields, Field{Name: n, Type: t})
	}

	write := func(r rune) {
		if inType {
			typ.WriteRune(r)
		} else {
			name.WriteRune(r)
		}
	}

	for _, r := range input {
		switch {
		case r == '<' || r == '(':
			depth++
			write(r)
		case r == '>' || r == ')':
			if depth > 0 {
				depth--
			}
			write(r)
		case r == ':' && depth == 0 && !inType:
			inType = true
		case r == ',' && depth == 0:
			flush()
		default:
			write(r)
		}
	}
	flush()

	return fields
}
