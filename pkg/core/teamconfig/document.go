package teamconfig

import (
	"strings"

	"github.com/ymatsuda/gl-console/pkg/core/model"
)

// NormalizeConfigDocument parses a raw GL configuration document into a
// GLConfig. Fields of unexpected shape degrade to empty values; the
// faculties taxonomy is carried through untouched.
func NormalizeConfigDocument(raw map[string]any) *model.GLConfig {
	cfg := &model.GLConfig{
		ScheduleTeams: map[string]model.ScheduleTeamOverride{},
		Schedules:     map[string]model.ScheduleSummary{},
	}
	if raw == nil {
		return cfg
	}

	if teams, ok := raw["defaultTeams"].([]any); ok {
		cfg.DefaultTeams = NormalizeTeams(toStringSlice(teams))
	}
	if overrides, ok := raw["scheduleTeams"].(map[string]any); ok {
		cfg.ScheduleTeams = ParseScheduleTeamOverrides(overrides)
	}
	if summaries, ok := raw["schedules"].(map[string]any); ok {
		for scheduleID, value := range summaries {
			summary, ok := value.(map[string]any)
			if !ok {
				continue
			}
			cfg.Schedules[scheduleID] = model.ScheduleSummary{
				ID:    scheduleID,
				Label: docString(summary["label"]),
				Date:  docString(summary["date"]),
			}
		}
	}
	cfg.Faculties = raw["faculties"]
	cfg.Slug = docString(raw["slug"])
	cfg.Guidance = docString(raw["guidance"])
	cfg.CreatedAt = docInt64(raw["createdAt"])
	cfg.UpdatedAt = docInt64(raw["updatedAt"])
	return cfg
}

func docString(value any) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}

func docInt64(value any) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}
