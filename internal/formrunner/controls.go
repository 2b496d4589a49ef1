package formrunner

import "jaz-events-api/internal/formschema"

type ControlKind string

const (
	ControlInput    ControlKind = "input"
	ControlTextarea ControlKind = "textarea"
	ControlSelect   ControlKind = "select"
)

// Control is the render model for one field: everything a client needs to
// draw the input without consulting the schema again.
type Control struct {
	ID        string      `json:"id"`
	Label     string      `json:"label"`
	Kind      ControlKind `json:"kind"`
	InputType string      `json:"input_type,omitempty"`
	Required  bool        `json:"required"`
	Options   []string    `json:"options,omitempty"`
	Value     string      `json:"value"`
	Disabled  bool        `json:"disabled"`
}

// Controls builds the ordered render model for the runner's schema. Inputs
// are disabled while a submission is in flight and after success. An empty
// schema yields an empty slice; callers render that as "no fields
// available", not as an error.
func (r *Runner) Controls() []Control {
	disabled := r.state != StateEditing

	out := make([]Control, 0, len(r.schema))
	for _, f := range r.schema {
		ctrl := Control{
			ID:       f.ID,
			Label:    f.Label(r.locale),
			Required: f.Required,
			Value:    r.answers[f.ID],
			Disabled: disabled,
		}

		switch f.Type {
		case formschema.FieldText:
			ctrl.Kind = ControlInput
			ctrl.InputType = "text"
		case formschema.FieldEmail:
			ctrl.Kind = ControlInput
			ctrl.InputType = "email"
		case formschema.FieldNumber:
			ctrl.Kind = ControlInput
			ctrl.InputType = "number"
		case formschema.FieldDate:
			ctrl.Kind = ControlInput
			ctrl.InputType = "date"
		case formschema.FieldTextarea:
			ctrl.Kind = ControlTextarea
		case formschema.FieldSelect:
			ctrl.Kind = ControlSelect
			// an empty option list renders as a placeholder-only select;
			// tolerated, not an error
			ctrl.Options = append([]string(nil), f.Options...)
		default:
			ctrl.Kind = ControlInput
			ctrl.InputType = "text"
		}

		out = append(out, ctrl)
	}
	return out
}
