package rtdbclient

import (
	"context"
	"fmt"
	"sort"

	"github.com/ymatsuda/gl-console/pkg/core/model"
)

type eventDoc struct {
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}

type scheduleDoc struct {
	Label            string `json:"label"`
	Location         string `json:"location,omitempty"`
	StartAt          int64  `json:"startAt"`
	EndAt            int64  `json:"endAt,omitempty"`
	ParticipantCount int    `json:"participantCount,omitempty"`
	RecruitGL        bool   `json:"recruitGL,omitempty"`
	CreatedAt        int64  `json:"createdAt,omitempty"`
	UpdatedAt        int64  `json:"updatedAt,omitempty"`
}

// GetEvent reads one event record.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*model.Event, error) {
	var doc eventDoc
	if err := c.database.NewRef(eventPath(eventID)).Get(ctx, &doc); err != nil {
		return nil, fmt.Errorf("failed to read event %s: %w", eventID, err)
	}
	return &model.Event{
		ID:        eventID,
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// ListSchedules reads an event's schedules, ordered by start time then ID.
func (c *Client) ListSchedules(ctx context.Context, eventID string) ([]model.Schedule, error) {
	var docs map[string]scheduleDoc
	if err := c.database.NewRef(schedulesPath(eventID)).Get(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read schedules for event %s: %w", eventID, err)
	}

	schedules := make([]model.Schedule, 0, len(docs))
	for id, doc := range docs {
		schedules = append(schedules, model.Schedule{
			ID:               id,
			Label:            doc.Label,
			Location:         doc.Location,
			StartAt:          doc.StartAt,
			EndAt:            doc.EndAt,
			ParticipantCount: doc.ParticipantCount,
			RecruitGL:        doc.RecruitGL,
			CreatedAt:        doc.CreatedAt,
			UpdatedAt:        doc.UpdatedAt,
		})
	}

	sort.Slice(schedules, func(i, j int) bool {
		if schedules[i].StartAt != schedules[j].StartAt {
			return schedules[i].StartAt < schedules[j].StartAt
		}
		return schedules[i].ID < schedules[j].ID
	})

	return schedules, nil
}

// CreateSchedules writes a batch of schedule records in one multi-path
// update.
func (c *Client) CreateSchedules(ctx context.Context, eventID string, schedules []model.Schedule) error {
	if len(schedules) == 0 {
		return nil
	}

	updates := make(map[string]interface{}, len(schedules))
	for _, schedule := range schedules {
		updates[schedule.ID] = scheduleDoc{
			Label:            schedule.Label,
			Location:         schedule.Location,
			StartAt:          schedule.StartAt,
			EndAt:            schedule.EndAt,
			ParticipantCount: schedule.ParticipantCount,
			RecruitGL:        schedule.RecruitGL,
			CreatedAt:        schedule.CreatedAt,
			UpdatedAt:        schedule.UpdatedAt,
		}
	}

	if err := c.database.NewRef(schedulesPath(eventID)).Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to create schedules for event %s: %w", eventID, err)
	}
	return nil
}
