package rtdbclient

import (
	"context"
	"fmt"

	"github.com/ymatsuda/gl-console/pkg/core/model"
)

// GetAssignmentSnapshot reads the raw assignment tree for an event. The
// snapshot is returned unnormalized so callers can run it through
// assignment.NormalizeAssignmentSnapshot, which understands the legacy
// layouts still present in older events.
func (c *Client) GetAssignmentSnapshot(ctx context.Context, eventID string) (map[string]any, error) {
	var raw map[string]any
	if err := c.database.NewRef(assignmentsPath(eventID)).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to read assignments for event %s: %w", eventID, err)
	}
	return raw, nil
}

// SetAssignment writes one per-schedule assignment record, always in the
// nested schedules shape. A nil record deletes the node, which reads back as
// unassigned.
func (c *Client) SetAssignment(ctx context.Context, eventID, applicantID, scheduleID string, record *model.Assignment) error {
	path := fmt.Sprintf("%s/%s/schedules/%s", assignmentsPath(eventID), applicantID, scheduleID)
	ref := c.database.NewRef(path)

	if record == nil {
		if err := ref.Delete(ctx); err != nil {
			return fmt.Errorf("failed to clear assignment %s/%s for event %s: %w", applicantID, scheduleID, eventID, err)
		}
		return nil
	}

	doc := map[string]any{
		"status":    record.Status,
		"updatedAt": record.UpdatedAt,
	}
	if record.TeamID != "" {
		doc["teamId"] = record.TeamID
	}
	if record.UpdatedByUID != "" {
		doc["updatedByUid"] = record.UpdatedByUID
	}
	if record.UpdatedByName != "" {
		doc["updatedByName"] = record.UpdatedByName
	}

	if err := ref.Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to save assignment %s/%s for event %s: %w", applicantID, scheduleID, eventID, err)
	}
	return nil
}
