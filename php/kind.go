package php

// Kind identifies the construct an artifact declares.
type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindTrait     Kind = "trait"
	KindEnum      Kind = "enum"
)

// Valid reports whether k is one of the four supported constructs.
func (k Kind) Valid() bool {
	switch k {
	case KindClass, KindInterface, KindTrait, KindEnum:
		return true
	}
	return false
}

// NamespaceSeparator is the PHP namespace separator.
const NamespaceSeparator = `\`

// SplitName splits a fully-qualified name into its namespace and short name.
// A name without a separator has an empty namespace.
func SplitName(qualified string) (namespace, short string) {
	for i := len(qualified) - 1; i >= 0; i-- {
		if qualified[i] == '\\' {
			return qualified[:i], qualified[i+1:]
		}
	}
	return "", qualified
}

// IsQualified reports whether a type name carries a namespace separator.
// Only qualified names participate in import resolution; bare names are
// built-ins or already in scope.
func IsQualified(name string) bool {
	for i := 0; i < len(name); i++ {
		if name[i] == '\\' {
			return true
		}
	}
	return false
}
