// Package field adapts heterogeneous settings widgets to a single contract.
//
// A Field is selected once, at discovery time, from a closed set of variants:
//
//   - Scalar wraps one text-like input (text, number, boolean select,
//     structured JSON textarea, date input).
//   - RichText wraps an input that is also driven by a detachable rich-text
//     editor.
//   - CheckboxSet wraps a list of checkbox options whose checked values form
//     the field value.
//
// Every variant embeds a Tracker. The tracker owns the DEFAULT/OVERRIDDEN
// state and the reset indicator, and both only change through its single
// transition function so they can never disagree.
package field
