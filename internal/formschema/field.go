package formschema

// FieldType is the closed set of input kinds a form field can take. Adding
// a type means touching every switch over this set.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldEmail    FieldType = "email"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
)

func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldTextarea, FieldNumber, FieldEmail, FieldDate, FieldSelect:
		return true
	default:
		return false
	}
}

// FieldDefinition describes one input of a dynamic form. The ID doubles as
// the answer-map key and the persisted-data key, so once submissions exist
// it must never be reused for a different semantic field; rename the label
// instead.
type FieldDefinition struct {
	ID       string    `json:"id"`
	LabelAr  string    `json:"label_ar"`
	LabelEn  string    `json:"label_en"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

// Label resolves the display label for a locale, falling back to the other
// language so the UI always has a non-empty label when one is set at all.
func (f FieldDefinition) Label(locale string) string {
	if locale == "en" {
		if f.LabelEn != "" {
			return f.LabelEn
		}
		return f.LabelAr
	}
	if f.LabelAr != "" {
		return f.LabelAr
	}
	return f.LabelEn
}
