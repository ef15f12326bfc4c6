package model

import (
	"testing"
	"time"
)

func TestJobTransitions(t *testing.T) {
	cases := []struct {
		from, to JobStatus
		want     bool
	}{
		{JobStatusPending, JobStatusActive, true},
		{JobStatusPending, JobStatusCancelled, true},
		{JobStatusPending, JobStatusDeactivated, true},
		{JobStatusActive, JobStatusUpcoming, true},
		{JobStatusActive, JobStatusOngoing, true},
		{JobStatusUpcoming, JobStatusOngoing, true},
		{JobStatusOngoing, JobStatusCompleted, true},

		{JobStatusOngoing, JobStatusCancelled, false},
		{JobStatusCompleted, JobStatusActive, false},
		{JobStatusCancelled, JobStatusActive, false},
		{JobStatusDeactivated, JobStatusActive, false},
		{JobStatusPending, JobStatusCompleted, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestJobUnknownStatusIsTerminal(t *testing.T) {
	weird := JobStatus("archived")
	if weird.Valid() {
		t.Fatalf("unexpected valid status %q", weird)
	}
	for _, to := range []JobStatus{JobStatusActive, JobStatusCancelled, JobStatusCompleted} {
		if CanTransition(weird, to) {
			t.Errorf("unknown status must be terminal, got transition to %s", to)
		}
	}
	if got := weird.Label(); got != "archived" {
		t.Errorf("unknown status label = %q, want the raw value", got)
	}
}

func TestCanCancel(t *testing.T) {
	for _, s := range []JobStatus{JobStatusPending, JobStatusActive, JobStatusUpcoming} {
		if !CanCancel(s) {
			t.Errorf("CanCancel(%s) = false, want true", s)
		}
	}
	for _, s := range []JobStatus{JobStatusOngoing, JobStatusCompleted, JobStatusCancelled, JobStatusDeactivated} {
		if CanCancel(s) {
			t.Errorf("CanCancel(%s) = true, want false", s)
		}
	}
}

func TestComputeWage(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		end          time.Time
		breakMinutes int
		breakPaid    bool
		hourlyRate   float64
		penalty      float64
		want         float64
	}{
		{"plain 8h shift", start.Add(8 * time.Hour), 0, false, 15, 0, 120},
		{"unpaid break excluded", start.Add(8 * time.Hour), 60, false, 15, 0, 105},
		{"paid break kept", start.Add(8 * time.Hour), 60, true, 15, 0, 120},
		{"penalty reduces wage", start.Add(8 * time.Hour), 0, false, 15, 20, 100},
		{"penalty never goes negative", start.Add(1 * time.Hour), 0, false, 10, 50, 0},
		{"rounds to cents", start.Add(7*time.Hour + 45*time.Minute), 0, false, 13.33, 0, 103.31},
		{"end before start", start.Add(-time.Hour), 0, false, 15, 0, 0},
		{"break longer than shift", start.Add(30 * time.Minute), 90, false, 15, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputeWage(start, c.end, c.breakMinutes, c.breakPaid, c.hourlyRate, c.penalty)
			if got != c.want {
				t.Errorf("ComputeWage = %.4f, want %.4f", got, c.want)
			}
		})
	}
}
