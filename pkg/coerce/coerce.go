package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Coerce converts raw into the canonical value for typ.
//
//   - boolean: "true" and "1" are true, anything else is false.
//   - integer: base-10 int64; float: finite float64. Parse failures, NaN and
//     infinities return ErrInvalidNumber.
//   - structured/multiselect: trimmed; empty is nil, otherwise decoded JSON.
//     Decode failures return ErrMalformedValue.
//   - string: returned unchanged, including surrounding whitespace.
func Coerce(raw string, typ Type) (any, error) {
	switch typ {
	case TypeBoolean:
		return raw == "true" || raw == "1", nil
	case TypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, &ValidationError{Type: typ, Raw: raw, Err: ErrInvalidNumber}
		}
		return n, nil
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &ValidationError{Type: typ, Raw: raw, Err: ErrInvalidNumber}
		}
		return f, nil
	case TypeStructured, TypeMultiselect:
		return Structured(raw)
	case TypeString:
		return raw, nil
	default:
		return nil, &ValidationError{Type: typ, Raw: raw, Err: ErrUnknownType}
	}
}

// Structured decodes JSON text edited in a raw textarea. Whitespace-only input
// is an explicit "no value" and yields nil.
func Structured(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		return nil, &ValidationError{Type: TypeStructured, Raw: raw, Err: ErrMalformedValue}
	}
	return out, nil
}

// Option decodes the value attribute of one checkbox option. Options carry
// JSON literals ("1", "\"en\"") so set membership compares parsed values.
func Option(raw string) (any, error) {
	var out any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &out); err != nil {
		return nil, &ValidationError{Type: TypeMultiselect, Raw: raw, Err: ErrMalformedValue}
	}
	return out, nil
}
