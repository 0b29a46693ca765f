package coerce

import (
	"fmt"
	"strings"
)

// Type is the declared semantic type of a settings field.
type Type string

const (
	TypeBoolean     Type = "boolean"
	TypeInteger     Type = "integer"
	TypeFloat       Type = "float"
	TypeString      Type = "string"
	TypeStructured  Type = "structured"
	TypeMultiselect Type = "multiselect"
)

// Types lists the semantic types in declaration order.
func Types() []Type {
	return []Type{TypeBoolean, TypeInteger, TypeFloat, TypeString, TypeStructured, TypeMultiselect}
}

// Valid reports whether t is one of the declared semantic types.
func (t Type) Valid() bool {
	switch t {
	case TypeBoolean, TypeInteger, TypeFloat, TypeString, TypeStructured, TypeMultiselect:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	return string(t)
}

// Hint carries widget information implied by a host cast name that is not part
// of the semantic type itself.
type Hint string

const (
	HintNone       Hint = ""
	HintRichText   Hint = "html"
	HintDatePicker Hint = "datepicker"
)

// ParseType resolves a host cast name (as emitted on the editing surface) into
// a semantic type. Host aliases are folded: generic/list/set are structured
// text, html and datepicker are strings with a widget hint.
func ParseType(name string) (Type, Hint, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boolean", "bool":
		return TypeBoolean, HintNone, nil
	case "integer", "int":
		return TypeInteger, HintNone, nil
	case "float", "number":
		return TypeFloat, HintNone, nil
	case "", "string", "text":
		return TypeString, HintNone, nil
	case "structured", "generic", "list", "set":
		return TypeStructured, HintNone, nil
	case "multiselect", "list-set":
		return TypeMultiselect, HintNone, nil
	case "html":
		return TypeString, HintRichText, nil
	case "datepicker":
		return TypeString, HintDatePicker, nil
	default:
		return "", HintNone, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}
