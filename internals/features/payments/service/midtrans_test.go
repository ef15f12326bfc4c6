package service

import "testing"

func TestGrossAmount(t *testing.T) {
	cases := []struct {
		dollars float64
		want    int64
	}{
		{42.50, 4250},
		{0, 0},
		{0.07, 7},
		// Values whose float form sits just under the cent boundary;
		// truncation would drop a cent here.
		{19.99, 1999},
		{29.09, 2909},
		{120.50, 12050},
	}
	for _, c := range cases {
		if got := grossAmount(c.dollars); got != c.want {
			t.Errorf("grossAmount(%.2f) = %d, want %d", c.dollars, got, c.want)
		}
	}
}
