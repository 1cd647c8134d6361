package quote

import "testing"

func TestCannotAdvanceWithoutServiceType(t *testing.T) {
	w := New()

	if w.Next() {
		t.Fatal("advanced past step 1 without a service type")
	}
	if w.Step != StepService {
		t.Fatalf("step = %d, want %d", w.Step, StepService)
	}

	w.Form.ServiceType = "dakreparatie"
	if !w.Next() {
		t.Fatal("could not advance with a service type selected")
	}
	if w.Step != StepContact {
		t.Fatalf("step = %d, want %d", w.Step, StepContact)
	}
}

func TestContactStepRequiresAllThreeFields(t *testing.T) {
	w := &Wizard{Step: StepContact, Form: Form{ServiceType: "dakreparatie"}}

	cases := []Form{
		{ServiceType: "dakreparatie"},
		{ServiceType: "dakreparatie", Name: "Jan"},
		{ServiceType: "dakreparatie", Name: "Jan", Email: "jan@example.com"},
		{ServiceType: "dakreparatie", Name: "Jan", Email: "jan@example.com", Phone: "   "},
	}
	for _, form := range cases {
		w.Form = form
		if w.Next() {
			t.Fatalf("advanced past step 2 with incomplete contact details: %+v", form)
		}
	}

	w.Form.Phone = "+31612345678"
	if !w.Next() {
		t.Fatal("could not advance with full contact details")
	}
}

func TestCannotSubmitBeforeFinalStep(t *testing.T) {
	w := New()
	w.Form = Form{ServiceType: "dakreparatie", Name: "Jan", Email: "jan@example.com", Phone: "+31612345678"}

	if w.CanSubmit() {
		t.Fatal("submit allowed at step 1")
	}
	w.Next()
	if w.CanSubmit() {
		t.Fatal("submit allowed at step 2")
	}
	w.Next()
	if !w.CanSubmit() {
		t.Fatal("submit refused at step 3 with all required fields")
	}
}

func TestSubmitRefusedWhenEarlierStepsIncomplete(t *testing.T) {
	// A wizard forced to step 3 without contact details cannot submit.
	w := &Wizard{Step: StepDetails, Form: Form{ServiceType: "dakreparatie"}}
	if w.CanSubmit() {
		t.Fatal("submit allowed without contact details")
	}
}

func TestPrevAlwaysAllowed(t *testing.T) {
	w := &Wizard{Step: StepDetails}
	if !w.Prev() || w.Step != StepContact {
		t.Fatalf("prev from step 3 failed, step = %d", w.Step)
	}
	if !w.Prev() || w.Step != StepService {
		t.Fatalf("prev from step 2 failed, step = %d", w.Step)
	}
	if w.Prev() {
		t.Fatal("prev allowed at step 1")
	}
}

func TestResetClearsEverything(t *testing.T) {
	w := &Wizard{Step: StepDetails, Form: Form{ServiceType: "dakreparatie", Name: "Jan"}}
	w.Reset()
	if w.Step != StepService || w.Form != (Form{}) {
		t.Fatalf("reset left state behind: %+v", w)
	}
}
