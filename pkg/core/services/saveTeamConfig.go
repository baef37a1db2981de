package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ymatsuda/gl-console/pkg/core/model"
	"github.com/ymatsuda/gl-console/pkg/core/teamconfig"
)

// TeamConfigStore defines the database operations needed to update the team
// configuration
type TeamConfigStore interface {
	GetGLConfig(ctx context.Context, eventID string) (*model.GLConfig, error)
	SaveGLConfig(ctx context.Context, eventID string, cfg *model.GLConfig) error
	ListSchedules(ctx context.Context, eventID string) ([]model.Schedule, error)
}

// TeamOverrideInput carries the team form input: an explicit team list, a raw
// count field, or a request to clear the override.
type TeamOverrideInput struct {
	Teams []string
	Count string
	Clear bool
}

// SaveScheduleTeams updates one schedule's team override and writes the full
// configuration document back. Explicit teams win over a count; a count of
// zero means "no teams for this schedule"; Clear removes the override so the
// schedule falls back to the event default.
func SaveScheduleTeams(ctx context.Context, store TeamConfigStore, logger *zap.Logger, eventID, scheduleID string, input TeamOverrideInput) (*model.GLConfig, error) {
	if scheduleID == "" {
		return nil, fmt.Errorf("schedule ID is required")
	}

	cfg, err := store.GetGLConfig(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gl config: %w", err)
	}
	if cfg.ScheduleTeams == nil {
		cfg.ScheduleTeams = make(map[string]model.ScheduleTeamOverride)
	}

	switch {
	case input.Clear:
		logger.Debug("Clearing schedule team override", zap.String("schedule_id", scheduleID))
		delete(cfg.ScheduleTeams, scheduleID)
	case len(input.Teams) > 0:
		teams := teamconfig.NormalizeTeams(input.Teams)
		logger.Debug("Setting explicit schedule teams",
			zap.String("schedule_id", scheduleID),
			zap.Strings("teams", teams))
		cfg.ScheduleTeams[scheduleID] = model.ScheduleTeamOverride{Teams: teams}
	default:
		count, err := teamconfig.ParseTeamCount(input.Count)
		if err != nil {
			return nil, err
		}
		logger.Debug("Setting schedule team count",
			zap.String("schedule_id", scheduleID),
			zap.Int("count", count))
		cfg.ScheduleTeams[scheduleID] = model.ScheduleTeamOverride{TeamCount: &count}
	}

	if err := persistTeamConfig(ctx, store, cfg, eventID); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveDefaultTeams replaces the event-wide default team list and writes the
// full configuration document back.
func SaveDefaultTeams(ctx context.Context, store TeamConfigStore, logger *zap.Logger, eventID string, input TeamOverrideInput) (*model.GLConfig, error) {
	cfg, err := store.GetGLConfig(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gl config: %w", err)
	}

	if len(input.Teams) > 0 {
		cfg.DefaultTeams = teamconfig.NormalizeTeams(input.Teams)
	} else {
		count, err := teamconfig.ParseTeamCount(input.Count)
		if err != nil {
			return nil, err
		}
		cfg.DefaultTeams = teamconfig.BuildSequentialTeams(count)
	}

	logger.Debug("Setting default teams", zap.Strings("teams", cfg.DefaultTeams))

	if err := persistTeamConfig(ctx, store, cfg, eventID); err != nil {
		return nil, err
	}
	return cfg, nil
}

// persistTeamConfig refreshes the schedule summary cache from the live
// schedule list, stamps the document and saves it whole.
func persistTeamConfig(ctx context.Context, store TeamConfigStore, cfg *model.GLConfig, eventID string) error {
	schedules, err := store.ListSchedules(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to fetch schedules: %w", err)
	}

	cfg.Schedules = make(map[string]model.ScheduleSummary, len(schedules))
	for _, schedule := range schedules {
		cfg.Schedules[schedule.ID] = model.ScheduleSummary{
			ID:    schedule.ID,
			Label: schedule.Label,
			Date:  time.UnixMilli(schedule.StartAt).UTC().Format("2006-01-02"),
		}
	}

	now := time.Now().UnixMilli()
	if cfg.CreatedAt == 0 {
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now

	if err := store.SaveGLConfig(ctx, eventID, cfg); err != nil {
		return fmt.Errorf("failed to save gl config: %w", err)
	}
	return nil
}
