package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ymatsuda/gl-console/pkg/core/assignment"
	"github.com/ymatsuda/gl-console/pkg/core/model"
)

// ApplicantResponse is one applicant's shift answer for a schedule.
type ApplicantResponse struct {
	Application  model.Application
	Available    bool
	ResponseText string
}

// ViewResponsesResult contains the per-applicant shift responses for one
// schedule.
type ViewResponsesResult struct {
	ScheduleID     string
	Responses      []ApplicantResponse
	AvailableCount int
}

// ViewResponsesStore defines the database operations needed to list responses
type ViewResponsesStore interface {
	ListApplications(ctx context.Context, eventID string) ([]model.Application, error)
}

// ViewScheduleResponses resolves every applicant's availability and display
// text for one schedule.
func ViewScheduleResponses(ctx context.Context, store ViewResponsesStore, logger *zap.Logger, eventID, scheduleID string) (*ViewResponsesResult, error) {
	logger.Debug("Viewing schedule responses",
		zap.String("event_id", eventID),
		zap.String("schedule_id", scheduleID))

	applications, err := store.ListApplications(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	responses := make([]ApplicantResponse, 0, len(applications))
	availableCount := 0
	for _, app := range applications {
		available := assignment.IsApplicantAvailableForSchedule(&app, scheduleID)
		if available {
			availableCount++
		}
		responses = append(responses, ApplicantResponse{
			Application:  app,
			Available:    available,
			ResponseText: assignment.FormatScheduleResponseText(assignment.ResolveScheduleResponseValue(&app, scheduleID)),
		})
	}

	logger.Debug("Responses resolved",
		zap.Int("applicants", len(responses)),
		zap.Int("available", availableCount))

	return &ViewResponsesResult{
		ScheduleID:     scheduleID,
		Responses:      responses,
		AvailableCount: availableCount,
	}, nil
}
