package dto

import "testing"

func TestTrimmedNotes(t *testing.T) {
	str := func(s string) *string { return &s }

	cases := []struct {
		name  string
		notes *string
		want  *string
	}{
		{"nil stays nil", nil, nil},
		{"blank becomes nil", str("   "), nil},
		{"tabs and newlines become nil", str("\t\n"), nil},
		{"surrounding whitespace stripped", str("  good worker  "), str("good worker")},
		{"clean value unchanged", str("on time"), str("on time")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ApproveApplicationRequest{Notes: c.notes}.TrimmedNotes()
			switch {
			case c.want == nil && got != nil:
				t.Errorf("TrimmedNotes() = %q, want nil", *got)
			case c.want != nil && got == nil:
				t.Errorf("TrimmedNotes() = nil, want %q", *c.want)
			case c.want != nil && *got != *c.want:
				t.Errorf("TrimmedNotes() = %q, want %q", *got, *c.want)
			}
		})
	}
}
