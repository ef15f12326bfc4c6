package helper

import "gorm.io/gorm/clause"

// LockForUpdate is the row lock used by transition handlers so two admin
// actions on the same entity serialize at the database.
func LockForUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}
