package model

import "testing"

func TestApplicationTransitions(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{ApplicationStatusPending, ApplicationStatusApproved, true},
		{ApplicationStatusPending, ApplicationStatusRejected, true},
		{ApplicationStatusApproved, ApplicationStatusUpcoming, true},

		{ApplicationStatusApproved, ApplicationStatusRejected, false},
		{ApplicationStatusApproved, ApplicationStatusPending, false},
		{ApplicationStatusRejected, ApplicationStatusApproved, false},
		{ApplicationStatusRejected, ApplicationStatusPending, false},
		{ApplicationStatusUpcoming, ApplicationStatusApproved, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestDecisionStatesAreFinal(t *testing.T) {
	if !IsDecision(ApplicationStatusApproved) || !IsDecision(ApplicationStatusRejected) {
		t.Fatal("approved and rejected are decision states")
	}
	if IsDecision(ApplicationStatusPending) || IsDecision(ApplicationStatusUpcoming) {
		t.Fatal("pending and upcoming are not decision states")
	}
}

func TestShiftHasCapacity(t *testing.T) {
	cases := []struct {
		name             string
		approved         int64
		vacancy, standby int
		want             bool
	}{
		{"empty shift", 0, 2, 1, true},
		{"one slot left", 2, 2, 1, true},
		{"full including standby", 3, 2, 1, false},
		{"over capacity", 4, 2, 1, false},
		{"no standby", 2, 2, 0, false},
		{"standby only slot", 2, 2, 1, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ShiftHasCapacity(c.approved, c.vacancy, c.standby); got != c.want {
				t.Errorf("ShiftHasCapacity(%d, %d, %d) = %v, want %v",
					c.approved, c.vacancy, c.standby, got, c.want)
			}
		})
	}
}

func TestApplicationUnknownStatus(t *testing.T) {
	weird := ApplicationStatus("waitlisted")
	if weird.Valid() {
		t.Fatalf("unexpected valid status %q", weird)
	}
	if CanTransition(weird, ApplicationStatusApproved) {
		t.Error("unknown status must be terminal")
	}
	if got := weird.Label(); got != "waitlisted" {
		t.Errorf("unknown status label = %q, want the raw value", got)
	}
}
