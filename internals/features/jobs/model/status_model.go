package model

/* ===================== Job status enum ===================== */
/* Canonical lowercase values mirror the job_status ENUM in
   PostgreSQL; display labels live only in Label(). */

type JobStatus string

const (
	JobStatusPending     JobStatus = "pending"
	JobStatusActive      JobStatus = "active"
	JobStatusUpcoming    JobStatus = "upcoming"
	JobStatusOngoing     JobStatus = "ongoing"
	JobStatusCompleted   JobStatus = "completed"
	JobStatusCancelled   JobStatus = "cancelled"
	JobStatusDeactivated JobStatus = "deactivated"
)

var jobStatusLabels = map[JobStatus]string{
	JobStatusPending:     "Pending",
	JobStatusActive:      "Active",
	JobStatusUpcoming:    "Upcoming",
	JobStatusOngoing:     "Ongoing",
	JobStatusCompleted:   "Completed",
	JobStatusCancelled:   "Cancelled",
	JobStatusDeactivated: "Deactivated",
}

// Legal transitions. Statuses absent from the map (including anything
// unrecognized coming back from the DB) are terminal.
var jobTransitions = map[JobStatus]map[JobStatus]bool{
	JobStatusPending:  {JobStatusActive: true, JobStatusCancelled: true, JobStatusDeactivated: true},
	JobStatusActive:   {JobStatusUpcoming: true, JobStatusOngoing: true, JobStatusCancelled: true, JobStatusDeactivated: true},
	JobStatusUpcoming: {JobStatusOngoing: true, JobStatusCancelled: true},
	JobStatusOngoing:  {JobStatusCompleted: true},
}

func (s JobStatus) Valid() bool {
	_, ok := jobStatusLabels[s]
	return ok
}

// Label returns the display label; unknown statuses render verbatim.
func (s JobStatus) Label() string {
	if l, ok := jobStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s JobStatus) String() string { return string(s) }

func CanTransition(from, to JobStatus) bool {
	return jobTransitions[from][to]
}

// CanCancel reports whether the admin Cancel action applies: only before
// work starts.
func CanCancel(s JobStatus) bool {
	return CanTransition(s, JobStatusCancelled)
}
