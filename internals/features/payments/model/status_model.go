package model

/* ===================== Transaction status ===================== */
/* Mirrors the transaction_status ENUM in PostgreSQL. */

type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusCompleted  TransactionStatus = "completed"
	TransactionStatusRejected   TransactionStatus = "rejected"
	TransactionStatusRefunded   TransactionStatus = "refunded"
)

var transactionStatusLabels = map[TransactionStatus]string{
	TransactionStatusPending:    "Pending",
	TransactionStatusProcessing: "Processing",
	TransactionStatusCompleted:  "Paid",
	TransactionStatusRejected:   "Rejected",
	TransactionStatusRefunded:   "Refunded",
}

var transactionTransitions = map[TransactionStatus]map[TransactionStatus]bool{
	TransactionStatusPending:    {TransactionStatusProcessing: true, TransactionStatusCompleted: true, TransactionStatusRejected: true},
	TransactionStatusProcessing: {TransactionStatusPending: true, TransactionStatusCompleted: true, TransactionStatusRejected: true},
	TransactionStatusCompleted:  {TransactionStatusRefunded: true},
}

func (s TransactionStatus) Valid() bool {
	_, ok := transactionStatusLabels[s]
	return ok
}

func (s TransactionStatus) Label() string {
	if l, ok := transactionStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s TransactionStatus) String() string { return string(s) }

func CanTransition(from, to TransactionStatus) bool {
	return transactionTransitions[from][to]
}

// Approve, Reject and Regenerate apply only while money has not moved.
func CanApprove(s TransactionStatus) bool {
	return s == TransactionStatusPending || s == TransactionStatusProcessing
}

func CanReject(s TransactionStatus) bool {
	return s == TransactionStatusPending || s == TransactionStatusProcessing
}

func CanRegenerate(s TransactionStatus) bool {
	return s == TransactionStatusPending || s == TransactionStatusProcessing
}

// Refund is offered only once the transaction is paid out.
func CanRefund(s TransactionStatus) bool {
	return s == TransactionStatusCompleted
}

// Card intents are created from pending only; processing already has one.
func CanPayWithCard(s TransactionStatus) bool {
	return s == TransactionStatusPending
}

/* ===================== Webhook settlement ===================== */

type SettlementOutcome int

const (
	SettlementIgnore SettlementOutcome = iota
	SettlementRelease
	SettlementReopen
)

// ClassifySettlement maps a gateway notification status onto the action
// for a transaction currently in the given status. Replays against
// settled rows, and expiries for rows that already left processing,
// fall through to ignore.
func ClassifySettlement(current TransactionStatus, notification string) SettlementOutcome {
	switch notification {
	case "capture", "settlement":
		if CanApprove(current) {
			return SettlementRelease
		}
	case "expire", "cancel", "deny":
		if current == TransactionStatusProcessing {
			return SettlementReopen
		}
	}
	return SettlementIgnore
}

/* ===================== Rate type ===================== */

type RateType string

const (
	RateTypeSalary    RateType = "salary"
	RateTypeIncentive RateType = "incentive"
	RateTypeReferral  RateType = "referral"
	RateTypePenalty   RateType = "penalty"
	RateTypeOthers    RateType = "others"
)

var rateTypeLabels = map[RateType]string{
	RateTypeSalary:    "Salary",
	RateTypeIncentive: "Incentive",
	RateTypeReferral:  "Referral",
	RateTypePenalty:   "Penalty",
	RateTypeOthers:    "Others",
}

func (r RateType) Valid() bool {
	_, ok := rateTypeLabels[r]
	return ok
}

func (r RateType) Label() string {
	if l, ok := rateTypeLabels[r]; ok {
		return l
	}
	return string(r)
}
