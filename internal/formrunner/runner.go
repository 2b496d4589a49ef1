package formrunner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jaz-events-api/internal/formschema"
)

type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
)

var (
	ErrSubmitInFlight  = errors.New("a submission is already in flight")
	ErrAlreadyComplete = errors.New("form already submitted; reset to edit again")
	ErrRequiredMissing = errors.New("required field not answered")
)

// SubmitFunc persists one answer map. The runner never retries or cancels;
// it only awaits success or failure.
type SubmitFunc func(ctx context.Context, answers map[string]string) error

// Runner drives one in-progress form: it owns the answer map, gates
// required fields, and guards against overlapping submissions. One Runner
// per form instance; Runners share nothing.
type Runner struct {
	schema  formschema.Schema
	locale  string
	answers map[string]string
	state   State
	notice  string
}

func New(schema formschema.Schema, locale string) *Runner {
	return &Runner{
		schema:  schema,
		locale:  locale,
		answers: map[string]string{},
		state:   StateEditing,
	}
}

func (r *Runner) State() State { return r.state }

// Notice is the user-facing message after a failed submit: a generic
// localized string, never the storage error itself.
func (r *Runner) Notice() string { return r.notice }

// Answers returns a copy of the current answer map.
func (r *Runner) Answers() map[string]string {
	out := make(map[string]string, len(r.answers))
	for k, v := range r.answers {
		out[k] = v
	}
	return out
}

// SetAnswer records one field edit. Edits are rejected while a submission
// is in flight and after success, matching the disabled-inputs invariant.
func (r *Runner) SetAnswer(id, value string) error {
	switch r.state {
	case StateSubmitting:
		return ErrSubmitInFlight
	case StateSuccess:
		return ErrAlreadyComplete
	}
	r.answers[id] = value
	return nil
}

// MissingRequired lists required fields with no usable answer, in schema
// order. Absent keys and whitespace-only values both count as unanswered.
func (r *Runner) MissingRequired() []string {
	var missing []string
	for _, f := range r.schema {
		if !f.Required {
			continue
		}
		if strings.TrimSpace(r.answers[f.ID]) == "" {
			missing = append(missing, f.ID)
		}
	}
	return missing
}

// Submit runs the submission pipeline once. Re-entrant calls while a
// submission is in flight are rejected before fn is invoked; this flag is
// the sole duplicate-write guard. On failure the runner stays editable with
// the answer map intact and exposes a localized generic notice; the
// underlying error is returned for the caller to log.
func (r *Runner) Submit(ctx context.Context, fn SubmitFunc) error {
	switch r.state {
	case StateSubmitting:
		return ErrSubmitInFlight
	case StateSuccess:
		return ErrAlreadyComplete
	}

	if missing := r.MissingRequired(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrRequiredMissing, missing[0])
	}

	r.state = StateSubmitting
	r.notice = ""

	if err := fn(ctx, r.answers); err != nil {
		r.state = StateEditing
		r.notice = SubmitFailedMessage(r.locale)
		return err
	}

	r.state = StateSuccess
	return nil
}

// Reset clears the answer map and returns to the editable state so a
// second, independent response can be submitted. Only an explicit reset
// leaves the success state.
func (r *Runner) Reset() {
	r.answers = map[string]string{}
	r.state = StateEditing
	r.notice = ""
}

// SubmitFailedMessage is the generic persistence-failure string shown to
// end users in place of storage internals.
func SubmitFailedMessage(locale string) string {
	if locale == "en" {
		return "Something went wrong while sending your request. Please try again."
	}
	return "حدث خطأ أثناء إرسال طلبك. الرجاء المحاولة مرة أخرى."
}
