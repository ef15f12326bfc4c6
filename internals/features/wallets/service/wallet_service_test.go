package service

import "testing"

func TestApplyRelease(t *testing.T) {
	cases := []struct {
		name                  string
		balance, debt, amount float64
		wantBalance, wantDebt float64
		wantCredited          float64
		wantRemaining         float64
	}{
		{"no debt", 10, 0, 50, 60, 0, 50, 0},
		{"debt fully settled", 10, 20, 50, 40, 0, 30, 0},
		{"debt exceeds amount", 10, 100, 50, 10, 50, 0, 50},
		{"debt equals amount", 0, 50, 50, 0, 0, 0, 0},
		{"partial with cents", 0, 42.50, 100, 57.50, 0, 57.50, 0},
		{"remaining with cents", 0, 142.50, 100, 0, 42.50, 0, 42.50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gotBalance, gotDebt, gotCredited, gotRemaining := ApplyRelease(c.balance, c.debt, c.amount)
			if gotBalance != c.wantBalance {
				t.Errorf("balance = %.2f, want %.2f", gotBalance, c.wantBalance)
			}
			if gotDebt != c.wantDebt {
				t.Errorf("debt = %.2f, want %.2f", gotDebt, c.wantDebt)
			}
			if gotCredited != c.wantCredited {
				t.Errorf("credited = %.2f, want %.2f", gotCredited, c.wantCredited)
			}
			if gotRemaining != c.wantRemaining {
				t.Errorf("remaining = %.2f, want %.2f", gotRemaining, c.wantRemaining)
			}
		})
	}
}

func TestApplyDebit(t *testing.T) {
	cases := []struct {
		name                  string
		balance, debt, amount float64
		wantBalance, wantDebt float64
		wantShortfall         float64
	}{
		{"covered", 100, 0, 40, 60, 0, 0},
		{"exact", 40, 0, 40, 0, 0, 0},
		{"shortfall becomes debt", 10, 0, 52.50, 0, 42.50, 42.50},
		{"shortfall stacks on debt", 0, 10, 30, 0, 40, 30},
		{"empty wallet", 0, 0, 25, 0, 25, 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gotBalance, gotDebt, gotShortfall := ApplyDebit(c.balance, c.debt, c.amount)
			if gotBalance != c.wantBalance {
				t.Errorf("balance = %.2f, want %.2f", gotBalance, c.wantBalance)
			}
			if gotDebt != c.wantDebt {
				t.Errorf("debt = %.2f, want %.2f", gotDebt, c.wantDebt)
			}
			if gotShortfall != c.wantShortfall {
				t.Errorf("shortfall = %.2f, want %.2f", gotShortfall, c.wantShortfall)
			}
		})
	}
}

// A refund that outruns the balance must be recoverable by the next
// release in full.
func TestDebtRoundTrip(t *testing.T) {
	balance, debt, shortfall := ApplyDebit(10, 0, 52.50)
	if shortfall != 42.50 {
		t.Fatalf("shortfall = %.2f, want 42.50", shortfall)
	}
	balance, debt, credited, remaining := ApplyRelease(balance, debt, 100)
	if remaining != 0 || debt != 0 {
		t.Fatalf("debt not cleared: remaining %.2f debt %.2f", remaining, debt)
	}
	if credited != 57.50 || balance != 57.50 {
		t.Fatalf("credited %.2f balance %.2f, want 57.50 each", credited, balance)
	}
}
