package formschema

import (
	"strings"

	"github.com/google/uuid"
)

// FieldPatch is a partial update; nil members leave the field untouched.
type FieldPatch struct {
	LabelAr  *string    `json:"label_ar,omitempty"`
	LabelEn  *string    `json:"label_en,omitempty"`
	Type     *FieldType `json:"type,omitempty"`
	Required *bool      `json:"required,omitempty"`
	Options  *[]string  `json:"options,omitempty"`
}

// AddField appends a fresh text field with a generated id. New fields are
// required by default; admins opt out per field.
func AddField(s Schema) Schema {
	out := make(Schema, len(s), len(s)+1)
	copy(out, s)
	return append(out, FieldDefinition{
		ID:       uuid.NewString(),
		Type:     FieldText,
		Required: true,
	})
}

func RemoveField(s Schema, id string) Schema {
	out := make(Schema, 0, len(s))
	for _, f := range s {
		if f.ID != id {
			out = append(out, f)
		}
	}
	return out
}

// UpdateField merges patch into the field matching id. Unknown ids are a
// silent no-op: builder UI state can legitimately race with a removal.
func UpdateField(s Schema, id string, patch FieldPatch) Schema {
	out := make(Schema, len(s))
	copy(out, s)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if patch.LabelAr != nil {
			out[i].LabelAr = *patch.LabelAr
		}
		if patch.LabelEn != nil {
			out[i].LabelEn = *patch.LabelEn
		}
		if patch.Type != nil {
			out[i].Type = *patch.Type
		}
		if patch.Required != nil {
			out[i].Required = *patch.Required
		}
		if patch.Options != nil {
			out[i].Options = append([]string(nil), (*patch.Options)...)
		}
		break
	}
	return out
}

// MoveField shifts the field matching id by delta positions, clamped to the
// slice bounds. A pure splice; ids and other fields are untouched.
func MoveField(s Schema, id string, delta int) Schema {
	out := make(Schema, len(s))
	copy(out, s)

	from := -1
	for i := range out {
		if out[i].ID == id {
			from = i
			break
		}
	}
	if from < 0 || delta == 0 {
		return out
	}

	to := from + delta
	if to < 0 {
		to = 0
	}
	if to > len(out)-1 {
		to = len(out) - 1
	}

	f := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append(Schema{f}, out[to:]...)...)
	return out
}

// AddOption appends one option to a field's list, trimming whitespace.
// Empty strings are silently dropped.
func AddOption(s Schema, id, option string) Schema {
	option = strings.TrimSpace(option)
	if option == "" {
		return s
	}
	out := make(Schema, len(s))
	copy(out, s)
	for i := range out {
		if out[i].ID == id {
			out[i].Options = append(append([]string(nil), out[i].Options...), option)
			break
		}
	}
	return out
}

func RemoveOption(s Schema, id string, index int) Schema {
	out := make(Schema, len(s))
	copy(out, s)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if index < 0 || index >= len(out[i].Options) {
			break
		}
		opts := append([]string(nil), out[i].Options...)
		out[i].Options = append(opts[:index], opts[index+1:]...)
		break
	}
	return out
}

// ReplaceOptions overwrites a field's entire option list. Used by the
// preset bulk-insert; it never appends.
func ReplaceOptions(s Schema, id string, options []string) Schema {
	out := make(Schema, len(s))
	copy(out, s)
	for i := range out {
		if out[i].ID == id {
			out[i].Options = append([]string(nil), options...)
			break
		}
	}
	return out
}

// ApplyOptionPreset bulk-replaces a field's options with a named preset
// list. An unknown preset name is a no-op.
func ApplyOptionPreset(s Schema, id, preset string) Schema {
	opts, ok := PresetOptions(preset)
	if !ok {
		return s
	}
	return ReplaceOptions(s, id, opts)
}
