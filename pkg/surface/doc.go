// Package surface describes an editing surface the way the host renders it:
// one entry per settable field carrying its settings key, cast name, default
// attribute, whether it was already set, and any checkbox options.
//
// Descriptors can be loaded from JSON or YAML documents, derived from an
// OpenAPI component schema, or taken from a built-in block definition such as
// VideoPlayerDescriptor. The registry package turns a Descriptor into live
// fields.
package surface
