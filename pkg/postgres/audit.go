package postgres

import (
	"context"
	"fmt"

	"github.com/ymatsuda/gl-console/pkg/db"
)

// InsertAssignmentChange records one assignment write in the audit trail.
func (d *AuditDB) InsertAssignmentChange(ctx context.Context, change *db.AssignmentChange) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO assignment_change (id, event_id, applicant_id, schedule_id, status, team_id, deleted, changed_at, changed_by_uid, changed_by_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, change.ID, change.EventID, change.ApplicantID, change.ScheduleID, change.Status, change.TeamID, change.Deleted, change.ChangedAt, change.ChangedByUID, change.ChangedByName)
	if err != nil {
		return fmt.Errorf("failed to insert assignment change: %w", err)
	}
	return nil
}

// GetAssignmentChanges retrieves the audit trail for one event, oldest first.
func (d *AuditDB) GetAssignmentChanges(ctx context.Context, eventID string) ([]db.AssignmentChange, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, event_id, applicant_id, schedule_id, status, team_id, deleted, changed_at, changed_by_uid, changed_by_name
		FROM assignment_change
		WHERE event_id = $1
		ORDER BY changed_at, id
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignment changes: %w", err)
	}
	defer rows.Close()

	var changes []db.AssignmentChange
	for rows.Next() {
		var change db.AssignmentChange
		if err := rows.Scan(&change.ID, &change.EventID, &change.ApplicantID, &change.ScheduleID, &change.Status, &change.TeamID, &change.Deleted, &change.ChangedAt, &change.ChangedByUID, &change.ChangedByName); err != nil {
			return nil, fmt.Errorf("failed to scan assignment change: %w", err)
		}
		changes = append(changes, change)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment changes: %w", err)
	}

	return changes, nil
}
