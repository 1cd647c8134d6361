// Package quote models the three-step quote-request wizard: pick a service,
// leave contact details, optionally describe the project. The gating rules
// live here so the form handlers and the sidebar partials share one source
// of truth.
package quote

import "strings"

const (
	StepService = 1
	StepContact = 2
	StepDetails = 3
)

// Form is the wizard's accumulated input across steps.
type Form struct {
	ServiceType    string
	Name           string
	Email          string
	Phone          string
	ProjectDetails string
}

// Wizard tracks the current step of one quote flow. The flow is strictly
// linear: forward only when the current step's requirements are met,
// backward always.
type Wizard struct {
	Step int
	Form Form
}

// New starts a wizard at the service-selection step.
func New() *Wizard {
	return &Wizard{Step: StepService}
}

// CanAdvance reports whether the current step's required fields are filled.
// Step 1 needs a service type, step 2 needs name, email and phone, step 3
// has no hard requirement.
func (w *Wizard) CanAdvance() bool {
	switch w.Step {
	case StepService:
		return w.Form.ServiceType != ""
	case StepContact:
		return strings.TrimSpace(w.Form.Name) != "" &&
			strings.TrimSpace(w.Form.Email) != "" &&
			strings.TrimSpace(w.Form.Phone) != ""
	}
	return true
}

// Next advances one step when allowed; it reports whether it moved.
func (w *Wizard) Next() bool {
	if w.Step >= StepDetails || !w.CanAdvance() {
		return false
	}
	w.Step++
	return true
}

// Prev steps back; it reports whether it moved.
func (w *Wizard) Prev() bool {
	if w.Step <= StepService {
		return false
	}
	w.Step--
	return true
}

// CanSubmit reports whether the wizard has everything a submission needs:
// it must be at the final step with steps 1 and 2 satisfied.
func (w *Wizard) CanSubmit() bool {
	return w.Step == StepDetails &&
		w.Form.ServiceType != "" &&
		strings.TrimSpace(w.Form.Name) != "" &&
		strings.TrimSpace(w.Form.Email) != "" &&
		strings.TrimSpace(w.Form.Phone) != ""
}

// Reset returns the wizard to a blank first step, as after a successful
// submission.
func (w *Wizard) Reset() {
	w.Step = StepService
	w.Form = Form{}
}
