package formschema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// Schema is an ordered list of field definitions. Order is display order
// and also the order answers are listed back to admins, so it is
// semantically significant.
type Schema []FieldDefinition

// Parse decodes a stored field configuration. Absence of configuration is a
// valid state: nil, empty and JSON null all yield an empty Schema.
func Parse(raw datatypes.JSON) (Schema, error) {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Schema{}, nil
	}

	var s Schema
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, fmt.Errorf("invalid field configuration: %w", err)
	}
	return s, nil
}

func (s Schema) Encode() (datatypes.JSON, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// Resolve picks the schema to render: primary when it has at least one
// field, otherwise fallback. The two are never merged; mixing partial
// configs would orphan answer-map keys.
func Resolve(primary, fallback Schema) Schema {
	if len(primary) > 0 {
		return primary
	}
	return fallback
}

// FieldByID returns the field with the given id, or false.
func (s Schema) FieldByID(id string) (FieldDefinition, bool) {
	for _, f := range s {
		if f.ID == id {
			return f, true
		}
	}
	return FieldDefinition{}, false
}
