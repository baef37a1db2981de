package db

import "time"

// AssignmentChange is one audit-trail row recording an admin's assignment
// write. Deleted marks a cleared assignment; Status and TeamID then hold the
// zero value.
type AssignmentChange struct {
	ID            string
	EventID       string
	ApplicantID   string
	ScheduleID    string
	Status        string
	TeamID        string
	Deleted       bool
	ChangedAt     time.Time
	ChangedByUID  string
	ChangedByName string
}
