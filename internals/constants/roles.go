package constants

const (
	RoleAdmin    = "admin"
	RoleEmployer = "employer"
	RoleWorker   = "worker"
)

var AdminOnly = []string{RoleAdmin}
