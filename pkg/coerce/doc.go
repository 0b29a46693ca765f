// Package coerce maps raw widget strings onto canonical settings values.
//
// Every editable field carries a semantic Type that is fixed when the editing
// surface is discovered. Coerce is a pure function of the raw widget value and
// that type; it never mutates state and never caches. Numeric and structured
// inputs that cannot be parsed fail with a *ValidationError instead of leaking
// NaN or partially parsed JSON into a save payload.
package coerce
