package helper

import "testing"

func TestNormalizePaging(t *testing.T) {
	cases := []struct {
		name          string
		page, perPage string
		def, max      int
		wantPage      int
		wantPerPage   int
		wantOffset    int
	}{
		{"defaults", "", "", 20, 100, 1, 20, 0},
		{"explicit", "3", "25", 20, 100, 3, 25, 50},
		{"page floors at one", "0", "10", 20, 100, 1, 10, 0},
		{"negative page floors", "-4", "10", 20, 100, 1, 10, 0},
		{"garbage page", "abc", "10", 20, 100, 1, 10, 0},
		{"per_page clamped to max", "1", "500", 20, 100, 1, 100, 0},
		{"zero per_page falls back", "2", "0", 20, 100, 2, 20, 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NormalizePaging(c.page, c.perPage, c.def, c.max)
			if got.Page != c.wantPage {
				t.Errorf("Page = %d, want %d", got.Page, c.wantPage)
			}
			if got.PerPage != c.wantPerPage {
				t.Errorf("PerPage = %d, want %d", got.PerPage, c.wantPerPage)
			}
			if got.Offset != c.wantOffset {
				t.Errorf("Offset = %d, want %d", got.Offset, c.wantOffset)
			}
			if got.Limit != got.PerPage {
				t.Errorf("Limit = %d, want %d", got.Limit, got.PerPage)
			}
		})
	}
}

func TestBuildPagination(t *testing.T) {
	pg := BuildPagination(95, 2, 20, 20)
	if pg.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Errorf("middle page must have both neighbours, got next=%v prev=%v", pg.HasNext, pg.HasPrev)
	}

	last := BuildPagination(95, 5, 20, 15)
	if last.HasNext {
		t.Error("last page must not report a next page")
	}

	// Empty result sets still render a well-formed first page.
	empty := BuildPagination(0, 1, 20, 0)
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev || empty.Count != 0 {
		t.Errorf("empty pagination malformed: %+v", empty)
	}
}
