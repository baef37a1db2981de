package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/ymatsuda/gl-console/internal/config"
	"github.com/ymatsuda/gl-console/pkg/core/model"
)

// DefineSchedulesStore defines the database operations needed to create
// schedules
type DefineSchedulesStore interface {
	ListSchedules(ctx context.Context, eventID string) ([]model.Schedule, error)
	CreateSchedules(ctx context.Context, eventID string, schedules []model.Schedule) error
}

// DefineSchedulesResult represents the result of generating schedules
type DefineSchedulesResult struct {
	Created []model.Schedule
	Skipped int
}

// DefineSchedules expands the configured recurrence rules into schedule
// slots and writes them in one batch. Each rule contributes up to count
// occurrences on or after start. Occurrences that match an existing
// schedule's label and start time are skipped, so re-running is safe.
func DefineSchedules(
	ctx context.Context,
	store DefineSchedulesStore,
	cfg *config.Config,
	logger *zap.Logger,
	start time.Time,
	count int,
) (*DefineSchedulesResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("occurrence count must be positive, got %d", count)
	}
	if len(cfg.ScheduleRules) == 0 {
		return nil, fmt.Errorf("no schedule rules configured")
	}

	logger.Debug("Defining schedules",
		zap.Time("start", start),
		zap.Int("count", count),
		zap.Int("rules", len(cfg.ScheduleRules)))

	existing, err := store.ListSchedules(ctx, cfg.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing schedules: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, schedule := range existing {
		seen[scheduleSlotKey(schedule.Label, schedule.StartAt)] = true
	}

	now := time.Now().UnixMilli()
	var created []model.Schedule
	skipped := 0

	for i, rule := range cfg.ScheduleRules {
		r, err := rrule.StrToRRule(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in scheduleRules[%d]: %w", i, err)
		}
		r.DTStart(start)

		next := r.Iterator()
		for generated := 0; generated < count; {
			occurrence, ok := next()
			if !ok {
				break
			}
			if occurrence.Before(start) {
				continue
			}
			generated++

			startAt := occurrence.UnixMilli()
			key := scheduleSlotKey(rule.Label, startAt)
			if seen[key] {
				skipped++
				continue
			}
			seen[key] = true

			schedule := model.Schedule{
				ID:        uuid.New().String(),
				Label:     rule.Label,
				Location:  rule.Location,
				StartAt:   startAt,
				RecruitGL: true,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if rule.DurationMinutes > 0 {
				schedule.EndAt = occurrence.Add(time.Duration(rule.DurationMinutes) * time.Minute).UnixMilli()
			}
			created = append(created, schedule)
		}
	}

	if err := store.CreateSchedules(ctx, cfg.EventID, created); err != nil {
		return nil, fmt.Errorf("failed to create schedules: %w", err)
	}

	logger.Debug("Schedules defined",
		zap.Int("created", len(created)),
		zap.Int("skipped", skipped))

	return &DefineSchedulesResult{Created: created, Skipped: skipped}, nil
}

func scheduleSlotKey(label string, startAt int64) string {
	return fmt.Sprintf("%s@%d", label, startAt)
}
