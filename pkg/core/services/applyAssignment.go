package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ymatsuda/gl-console/internal/config"
	"github.com/ymatsuda/gl-console/pkg/core/assignment"
	"github.com/ymatsuda/gl-console/pkg/core/model"
	"github.com/ymatsuda/gl-console/pkg/db"
)

// ApplyAssignmentStore defines the database operations needed to write an
// assignment
type ApplyAssignmentStore interface {
	SetAssignment(ctx context.Context, eventID, applicantID, scheduleID string, record *model.Assignment) error
}

// ApplyAssignmentResult reports the persisted record. Record is nil when the
// value cleared the assignment.
type ApplyAssignmentResult struct {
	Value  string
	Record *model.Assignment
}

// ApplyAssignment persists one assignment decision for an (applicant,
// schedule) pair. An empty value deletes the record. The write is stamped
// with the operator identity from the configuration. When an audit store is
// provided the change is also recorded there; audit failures are logged and
// do not fail the write.
func ApplyAssignment(
	ctx context.Context,
	store ApplyAssignmentStore,
	audit db.AuditStore,
	cfg *config.Config,
	logger *zap.Logger,
	applicantID, scheduleID, value string,
) (*ApplyAssignmentResult, error) {
	if applicantID == "" || scheduleID == "" {
		return nil, fmt.Errorf("applicant ID and schedule ID are required")
	}
	// The "__" namespace is reserved for the sentinel statuses; a mistyped
	// sentinel must not be persisted as a team name.
	if strings.HasPrefix(value, "__") {
		switch value {
		case model.ValueAbsent, model.ValueStaff, model.ValueUnavailable:
		default:
			return nil, fmt.Errorf("unknown assignment value %q", value)
		}
	}

	status, teamID := assignment.ResolveAssignmentStatus(value)
	logger.Debug("Applying assignment",
		zap.String("applicant_id", applicantID),
		zap.String("schedule_id", scheduleID),
		zap.String("value", value),
		zap.String("status", status))

	var record *model.Assignment
	if status != model.StatusNone {
		record = &model.Assignment{
			Status:        status,
			TeamID:        teamID,
			UpdatedAt:     time.Now().UnixMilli(),
			UpdatedByUID:  cfg.OperatorUID,
			UpdatedByName: cfg.OperatorName,
		}
	}

	if err := store.SetAssignment(ctx, cfg.EventID, applicantID, scheduleID, record); err != nil {
		return nil, fmt.Errorf("failed to save assignment: %w", err)
	}

	if audit != nil {
		change := &db.AssignmentChange{
			ID:            uuid.New().String(),
			EventID:       cfg.EventID,
			ApplicantID:   applicantID,
			ScheduleID:    scheduleID,
			Status:        status,
			TeamID:        teamID,
			Deleted:       record == nil,
			ChangedAt:     time.Now(),
			ChangedByUID:  cfg.OperatorUID,
			ChangedByName: cfg.OperatorName,
		}
		if err := audit.InsertAssignmentChange(ctx, change); err != nil {
			logger.Warn("Failed to record assignment change in audit trail",
				zap.String("applicant_id", applicantID),
				zap.String("schedule_id", scheduleID),
				zap.Error(err))
		}
	}

	return &ApplyAssignmentResult{Value: value, Record: record}, nil
}
