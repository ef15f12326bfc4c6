package model

/* ===================== Cash transaction enums ===================== */

type CashTransactionStatus string

const (
	CashTransactionStatusPending   CashTransactionStatus = "pending"
	CashTransactionStatusProcessed CashTransactionStatus = "processed"
	CashTransactionStatusFailed    CashTransactionStatus = "failed"
)

var cashStatusLabels = map[CashTransactionStatus]string{
	CashTransactionStatusPending:   "Pending",
	CashTransactionStatusProcessed: "Processed",
	CashTransactionStatusFailed:    "Failed",
}

func (s CashTransactionStatus) Valid() bool {
	_, ok := cashStatusLabels[s]
	return ok
}

func (s CashTransactionStatus) Label() string {
	if l, ok := cashStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Only pending rows may be processed; processed and failed are terminal.
func CanProcess(s CashTransactionStatus) bool {
	return s == CashTransactionStatusPending
}

type CashMethod string

const (
	CashMethodPayNow      CashMethod = "paynow"
	CashMethodBankAccount CashMethod = "bank_account"
)

func (m CashMethod) Valid() bool {
	return m == CashMethodPayNow || m == CashMethodBankAccount
}

const (
	DirectionCashIn  = "cash_in"
	DirectionCashOut = "cash_out"
)
