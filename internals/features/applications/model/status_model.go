package model

/* ===================== Application admin status ===================== */

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
	// Bookkeeping state set after approval once the shift is scheduled;
	// only reachable through the generic status endpoint.
	ApplicationStatusUpcoming ApplicationStatus = "upcoming"
)

var applicationStatusLabels = map[ApplicationStatus]string{
	ApplicationStatusPending:  "Pending",
	ApplicationStatusApproved: "Approved",
	ApplicationStatusRejected: "Rejected",
	ApplicationStatusUpcoming: "Upcoming",
}

var applicationTransitions = map[ApplicationStatus]map[ApplicationStatus]bool{
	ApplicationStatusPending:  {ApplicationStatusApproved: true, ApplicationStatusRejected: true},
	ApplicationStatusApproved: {ApplicationStatusUpcoming: true},
}

func (s ApplicationStatus) Valid() bool {
	_, ok := applicationStatusLabels[s]
	return ok
}

func (s ApplicationStatus) Label() string {
	if l, ok := applicationStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s ApplicationStatus) String() string { return string(s) }

func CanTransition(from, to ApplicationStatus) bool {
	return applicationTransitions[from][to]
}

// Terminal for the admin: approved and rejected only move through the
// dedicated endpoints, never the generic one.
func IsDecision(s ApplicationStatus) bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// ShiftHasCapacity reports whether one more approval fits under the
// shift's vacancy plus standby headcount.
func ShiftHasCapacity(approved int64, vacancy, standby int) bool {
	return approved < int64(vacancy+standby)
}
