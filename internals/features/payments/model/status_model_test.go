package model

import "testing"

func TestTransactionTransitions(t *testing.T) {
	cases := []struct {
		from, to TransactionStatus
		want     bool
	}{
		{TransactionStatusPending, TransactionStatusProcessing, true},
		{TransactionStatusPending, TransactionStatusCompleted, true},
		{TransactionStatusPending, TransactionStatusRejected, true},
		{TransactionStatusProcessing, TransactionStatusPending, true},
		{TransactionStatusProcessing, TransactionStatusCompleted, true},
		{TransactionStatusProcessing, TransactionStatusRejected, true},
		{TransactionStatusCompleted, TransactionStatusRefunded, true},

		{TransactionStatusCompleted, TransactionStatusPending, false},
		{TransactionStatusCompleted, TransactionStatusRejected, false},
		{TransactionStatusRejected, TransactionStatusPending, false},
		{TransactionStatusRefunded, TransactionStatusCompleted, false},
		{TransactionStatusPending, TransactionStatusRefunded, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestActionGuards(t *testing.T) {
	all := []TransactionStatus{
		TransactionStatusPending,
		TransactionStatusProcessing,
		TransactionStatusCompleted,
		TransactionStatusRejected,
		TransactionStatusRefunded,
	}
	for _, s := range all {
		open := s == TransactionStatusPending || s == TransactionStatusProcessing
		if CanApprove(s) != open {
			t.Errorf("CanApprove(%s) = %v", s, CanApprove(s))
		}
		if CanReject(s) != open {
			t.Errorf("CanReject(%s) = %v", s, CanReject(s))
		}
		if CanRegenerate(s) != open {
			t.Errorf("CanRegenerate(%s) = %v", s, CanRegenerate(s))
		}
		if CanRefund(s) != (s == TransactionStatusCompleted) {
			t.Errorf("CanRefund(%s) = %v", s, CanRefund(s))
		}
		if CanPayWithCard(s) != (s == TransactionStatusPending) {
			t.Errorf("CanPayWithCard(%s) = %v", s, CanPayWithCard(s))
		}
	}
}

func TestClassifySettlement(t *testing.T) {
	cases := []struct {
		name         string
		current      TransactionStatus
		notification string
		want         SettlementOutcome
	}{
		{"capture settles processing", TransactionStatusProcessing, "capture", SettlementRelease},
		{"settlement settles processing", TransactionStatusProcessing, "settlement", SettlementRelease},
		{"settlement settles pending", TransactionStatusPending, "settlement", SettlementRelease},
		{"replay on settled row is a no-op", TransactionStatusCompleted, "settlement", SettlementIgnore},
		{"replay on refunded row is a no-op", TransactionStatusRefunded, "capture", SettlementIgnore},

		{"expire reopens processing", TransactionStatusProcessing, "expire", SettlementReopen},
		{"cancel reopens processing", TransactionStatusProcessing, "cancel", SettlementReopen},
		{"deny reopens processing", TransactionStatusProcessing, "deny", SettlementReopen},
		{"expire after settlement is a no-op", TransactionStatusCompleted, "expire", SettlementIgnore},
		{"expire on pending is a no-op", TransactionStatusPending, "expire", SettlementIgnore},

		{"unknown notification ignored", TransactionStatusProcessing, "refund", SettlementIgnore},
		{"pending intent denied is a no-op", TransactionStatusRejected, "deny", SettlementIgnore},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifySettlement(c.current, c.notification); got != c.want {
				t.Errorf("ClassifySettlement(%s, %q) = %d, want %d", c.current, c.notification, got, c.want)
			}
		})
	}
}

func TestStatusLabels(t *testing.T) {
	if got := TransactionStatusCompleted.Label(); got != "Paid" {
		t.Errorf("completed label = %q, want Paid", got)
	}
	if got := TransactionStatus("chargeback").Label(); got != "chargeback" {
		t.Errorf("unknown status label = %q, want the raw value", got)
	}
}

func TestRateTypes(t *testing.T) {
	for _, r := range []RateType{RateTypeSalary, RateTypeIncentive, RateTypeReferral, RateTypePenalty, RateTypeOthers} {
		if !r.Valid() {
			t.Errorf("rate type %s should be valid", r)
		}
	}
	if RateType("bonus").Valid() {
		t.Error("unknown rate type should be invalid")
	}
}
