package db

import "context"

// AuditStore defines the interface for the assignment audit trail.
type AuditStore interface {
	InsertAssignmentChange(ctx context.Context, change *AssignmentChange) error
	GetAssignmentChanges(ctx context.Context, eventID string) ([]AssignmentChange, error)
}
