package surface

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	extensionCast         = "x-studio-cast"
	extensionOrder        = "x-studio-order"
	extensionCurrentValue = "x-current-value"
)

// FromOpenAPI derives a descriptor from the object schema components/schemas/
// <schemaName> of an OpenAPI 3 document.
//
// Properties map onto fields: boolean, integer and number keep their types,
// strings with format html or date become rich-text and date fields, arrays
// with an enum on their items become checkbox sets, and other arrays and
// objects become structured text. x-studio-cast overrides the derived cast,
// x-studio-order sorts fields (ties break on name), and x-current-value marks
// a field as already set with that value.
func FromOpenAPI(ctx context.Context, data []byte, schemaName string) (Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return Descriptor{}, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return Descriptor{}, ErrEmptyDocument
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return Descriptor{}, fmt.Errorf("surface: load openapi document: %w", err)
	}
	if doc.Components == nil || doc.Components.Schemas == nil {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, schemaName)
	}
	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, schemaName)
	}

	type ordered struct {
		spec  FieldSpec
		order float64
	}
	entries := make([]ordered, 0, len(ref.Value.Properties))
	for name, property := range ref.Value.Properties {
		if property == nil || property.Value == nil {
			continue
		}
		spec, err := fieldFromSchema(name, property.Value)
		if err != nil {
			return Descriptor{}, err
		}
		entries = append(entries, ordered{spec: spec, order: extensionNumber(property.Value.Extensions, extensionOrder)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].order == entries[j].order {
			return entries[i].spec.Name < entries[j].spec.Name
		}
		return entries[i].order < entries[j].order
	})

	desc := Descriptor{Block: schemaName, Fields: make([]FieldSpec, 0, len(entries))}
	for _, entry := range entries {
		desc.Fields = append(desc.Fields, entry.spec)
	}
	if err := desc.Validate(); err != nil {
		return Descriptor{}, err
	}
	return desc, nil
}

func fieldFromSchema(name string, schema *openapi3.Schema) (FieldSpec, error) {
	spec := FieldSpec{
		Name:  name,
		Label: schema.Title,
		Help:  schema.Description,
		Cast:  castFromSchema(schema),
	}

	def, err := attrText(schema.Default)
	if err != nil {
		return FieldSpec{}, fmt.Errorf("surface: field %q default: %w", name, err)
	}
	spec.Default = Attr(def)

	if cast, ok := schema.Extensions[extensionCast].(string); ok && strings.TrimSpace(cast) != "" {
		spec.Cast = strings.TrimSpace(cast)
	}

	if schema.Items != nil && schema.Items.Value != nil && len(schema.Items.Value.Enum) > 0 {
		for _, value := range schema.Items.Value.Enum {
			encoded, err := json.Marshal(value)
			if err != nil {
				return FieldSpec{}, fmt.Errorf("surface: field %q option: %w", name, err)
			}
			spec.Options = append(spec.Options, OptionSpec{Value: Attr(encoded), Label: fmt.Sprint(value)})
		}
		spec.Cast = "multiselect"
	}

	if current, ok := schema.Extensions[extensionCurrentValue]; ok && current != nil {
		text, err := attrText(current)
		if err != nil {
			return FieldSpec{}, fmt.Errorf("surface: field %q current value: %w", name, err)
		}
		value := Attr(text)
		spec.Value = &value
		spec.Set = true
	}
	return spec, nil
}

func castFromSchema(schema *openapi3.Schema) string {
	switch firstSchemaType(schema.Type) {
	case openapi3.TypeBoolean:
		return "boolean"
	case openapi3.TypeInteger:
		return "integer"
	case openapi3.TypeNumber:
		return "float"
	case openapi3.TypeArray:
		return "list"
	case openapi3.TypeObject:
		return "generic"
	}
	switch strings.ToLower(schema.Format) {
	case "html":
		return "html"
	case "date":
		return "datepicker"
	}
	return "string"
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func extensionNumber(ext map[string]any, key string) float64 {
	raw, ok := ext[key]
	if !ok {
		return 0
	}
	switch typed := raw.(type) {
	case float64:
		return typed
	case int:
		return float64(typed)
	case json.RawMessage:
		var out float64
		if err := json.Unmarshal(typed, &out); err == nil {
			return out
		}
	}
	return 0
}
