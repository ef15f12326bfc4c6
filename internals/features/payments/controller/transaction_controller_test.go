package controller

import (
	"strings"
	"testing"

	model "staffly_backend/internals/features/payments/model"
)

func TestApprovalNotice(t *testing.T) {
	title, body := approvalNotice(model.RateTypeSalary, 120.50)
	if title != "Payment released" {
		t.Errorf("salary title = %q", title)
	}
	if !strings.Contains(body, "$120.50") || !strings.Contains(body, "released to your wallet") {
		t.Errorf("salary body = %q", body)
	}

	title, body = approvalNotice(model.RateTypePenalty, 15)
	if title != "Penalty applied" {
		t.Errorf("penalty title = %q", title)
	}
	if !strings.Contains(body, "$15.00") || !strings.Contains(body, "deducted from your wallet") {
		t.Errorf("penalty body = %q", body)
	}
	if strings.Contains(body, "released") {
		t.Errorf("penalty body must not read as a release: %q", body)
	}
}
