package rtdbclient

import (
	"context"
	"fmt"

	"github.com/ymatsuda/gl-console/pkg/core/model"
	"github.com/ymatsuda/gl-console/pkg/core/teamconfig"
)

// GetGLConfig reads and normalizes an event's GL configuration document.
// A missing document yields an empty config rather than an error.
func (c *Client) GetGLConfig(ctx context.Context, eventID string) (*model.GLConfig, error) {
	var raw map[string]any
	if err := c.database.NewRef(glConfigPath(eventID)).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to read gl config for event %s: %w", eventID, err)
	}
	return teamconfig.NormalizeConfigDocument(raw), nil
}

// SaveGLConfig writes a fully-formed replacement configuration document,
// including the schedule summary cache, in a single set. Field-level config
// patches are never issued.
func (c *Client) SaveGLConfig(ctx context.Context, eventID string, cfg *model.GLConfig) error {
	doc := map[string]any{
		"defaultTeams":  cfg.DefaultTeams,
		"scheduleTeams": encodeScheduleTeams(cfg.ScheduleTeams),
		"schedules":     encodeScheduleSummaries(cfg.Schedules),
		"slug":          cfg.Slug,
		"guidance":      cfg.Guidance,
		"createdAt":     cfg.CreatedAt,
		"updatedAt":     cfg.UpdatedAt,
	}
	if cfg.Faculties != nil {
		doc["faculties"] = cfg.Faculties
	}

	if err := c.database.NewRef(glConfigPath(eventID)).Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to save gl config for event %s: %w", eventID, err)
	}
	return nil
}

func encodeScheduleTeams(overrides map[string]model.ScheduleTeamOverride) map[string]any {
	encoded := make(map[string]any, len(overrides))
	for scheduleID, override := range overrides {
		entry := map[string]any{}
		if len(override.Teams) > 0 {
			entry["teams"] = override.Teams
		}
		if override.TeamCount != nil {
			entry["teamCount"] = *override.TeamCount
		}
		if len(entry) == 0 {
			continue
		}
		encoded[scheduleID] = entry
	}
	return encoded
}

func encodeScheduleSummaries(summaries map[string]model.ScheduleSummary) map[string]any {
	encoded := make(map[string]any, len(summaries))
	for scheduleID, summary := range summaries {
		encoded[scheduleID] = map[string]any{
			"id":    scheduleID,
			"label": summary.Label,
			"date":  summary.Date,
		}
	}
	return encoded
}
