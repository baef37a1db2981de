package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ymatsuda/gl-console/pkg/core/assignment"
	"github.com/ymatsuda/gl-console/pkg/core/model"
	"github.com/ymatsuda/gl-console/pkg/core/teamconfig"
)

// AssignmentOptionsResult contains the dropdown option list for one
// (applicant, schedule) pair along with the currently selected value.
type AssignmentOptionsResult struct {
	Application  *model.Application
	Options      []model.AssignmentOption
	CurrentValue string
}

// ViewAssignmentOptions resolves the selectable assignment options for one
// applicant on one schedule, with the persisted value marked as current.
func ViewAssignmentOptions(ctx context.Context, store BoardStore, logger *zap.Logger, eventID, applicantID, scheduleID string) (*AssignmentOptionsResult, error) {
	logger.Debug("Viewing assignment options",
		zap.String("applicant_id", applicantID),
		zap.String("schedule_id", scheduleID))

	cfg, err := store.GetGLConfig(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gl config: %w", err)
	}

	applications, err := store.ListApplications(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}
	var app *model.Application
	for i := range applications {
		if applications[i].ID == applicantID {
			app = &applications[i]
			break
		}
	}
	if app == nil {
		return nil, fmt.Errorf("applicant %s not found", applicantID)
	}

	snapshot, err := store.GetAssignmentSnapshot(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignment snapshot: %w", err)
	}
	assignments := assignment.NormalizeAssignmentSnapshot(snapshot)
	record := assignment.EffectiveAssignment(assignments[applicantID], scheduleID)

	teams := teamconfig.GetScheduleTeams(cfg, scheduleID)
	options := assignment.BuildAssignmentOptionsForApplication(app, teams)

	return &AssignmentOptionsResult{
		Application:  app,
		Options:      options,
		CurrentValue: assignment.ResolveAssignmentValue(record),
	}, nil
}
