package teamconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ymatsuda/gl-console/pkg/core/model"
)

// MaxTeams caps every team list read from or written to the configuration
// document.
const MaxTeams = 50

// Validation errors carry the exact messages surfaced to the admin.
var (
	ErrTeamCountNotInteger = errors.New("班の数は0以上の整数で入力してください。")
	ErrTeamCountTooLarge   = errors.New("班は最大50班まで設定できます。")
)

// BuildSequentialTeams returns the canonical team list "1班".."<count>班".
func BuildSequentialTeams(count int) []string {
	if count <= 0 {
		return []string{}
	}
	if count > MaxTeams {
		count = MaxTeams
	}
	teams := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		teams = append(teams, fmt.Sprintf("%d班", i))
	}
	return teams
}

// ParseTeamCount parses the team-count form input. Empty input parses to
// zero without error; anything outside 0..MaxTeams is rejected.
func ParseTeamCount(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, nil
	}
	count, err := strconv.Atoi(trimmed)
	if err != nil || count < 0 {
		return 0, ErrTeamCountNotInteger
	}
	if count > MaxTeams {
		return 0, ErrTeamCountTooLarge
	}
	return count, nil
}

// NormalizeTeams trims entries, drops empties and duplicates (first
// occurrence wins) and caps the list at MaxTeams.
func NormalizeTeams(teams []string) []string {
	normalized := make([]string, 0, len(teams))
	seen := make(map[string]bool, len(teams))
	for _, team := range teams {
		name := strings.TrimSpace(team)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		normalized = append(normalized, name)
		if len(normalized) == MaxTeams {
			break
		}
	}
	return normalized
}

// DeriveSequentialTeamCount returns n when teams is exactly "1班".."n班",
// else 0. Used to prefill the count input only for sequential lists.
func DeriveSequentialTeamCount(teams []string) int {
	for i, team := range teams {
		if team != fmt.Sprintf("%d班", i+1) {
			return 0
		}
	}
	return len(teams)
}

// ResolvedScheduleTeams is one normalized per-schedule override: the
// effective team list and its count.
type ResolvedScheduleTeams struct {
	Teams     []string
	TeamCount int
}

// NormalizeScheduleTeamConfig parses the raw scheduleTeams blob into a map
// from schedule ID to its effective team list. Explicit team lists win over
// explicit counts, which win over the caller-supplied defaults. A schedule
// with neither teams nor a count, and no usable default, is left out of the
// result entirely so readers fall back to the event default.
func NormalizeScheduleTeamConfig(raw map[string]any, fallbackDefaultTeams []string) map[string]ResolvedScheduleTeams {
	result := make(map[string]ResolvedScheduleTeams)
	for scheduleID, override := range ParseScheduleTeamOverrides(raw) {
		switch {
		case len(override.Teams) > 0:
			result[scheduleID] = ResolvedScheduleTeams{Teams: override.Teams, TeamCount: len(override.Teams)}
		case override.TeamCount != nil:
			// A count of zero is a real override: "no teams for this schedule".
			count := *override.TeamCount
			result[scheduleID] = ResolvedScheduleTeams{Teams: BuildSequentialTeams(count), TeamCount: count}
		default:
			fallback := NormalizeTeams(fallbackDefaultTeams)
			if len(fallback) > 0 {
				result[scheduleID] = ResolvedScheduleTeams{Teams: fallback, TeamCount: len(fallback)}
			}
		}
	}
	return result
}

// ParseScheduleTeamOverrides decodes the raw scheduleTeams blob without
// resolving fallbacks. Each entry may be a bare team list or an object
// carrying teams and/or teamCount.
func ParseScheduleTeamOverrides(raw map[string]any) map[string]model.ScheduleTeamOverride {
	overrides := make(map[string]model.ScheduleTeamOverride, len(raw))
	for scheduleID, value := range raw {
		if strings.TrimSpace(scheduleID) == "" {
			continue
		}
		switch v := value.(type) {
		case []any:
			overrides[scheduleID] = model.ScheduleTeamOverride{Teams: NormalizeTeams(toStringSlice(v))}
		case map[string]any:
			override := model.ScheduleTeamOverride{}
			if teams, ok := v["teams"].([]any); ok {
				override.Teams = NormalizeTeams(toStringSlice(teams))
			}
			if count, ok := toCount(v["teamCount"]); ok {
				override.TeamCount = &count
			}
			overrides[scheduleID] = override
		}
	}
	return overrides
}

// GetScheduleTeams resolves the effective team list for a schedule at read
// time: explicit override teams, then an explicit override count, then the
// event's default teams.
func GetScheduleTeams(cfg *model.GLConfig, scheduleID string) []string {
	if cfg == nil {
		return []string{}
	}
	if override, ok := cfg.ScheduleTeams[scheduleID]; ok {
		if teams := NormalizeTeams(override.Teams); len(teams) > 0 {
			return teams
		}
		if override.TeamCount != nil {
			return BuildSequentialTeams(*override.TeamCount)
		}
	}
	return NormalizeTeams(cfg.DefaultTeams)
}

func toStringSlice(values []any) []string {
	strs := make([]string, 0, len(values))
	for _, value := range values {
		if s, ok := value.(string); ok {
			strs = append(strs, s)
		}
	}
	return strs
}

// toCount coerces a decoded JSON value into a team count. Negative and
// non-numeric values are treated as "no count set".
func toCount(value any) (int, bool) {
	var count int
	switch v := value.(type) {
	case float64:
		count = int(v)
	case int:
		count = v
	case int64:
		count = int(v)
	case string:
		parsed, err := ParseTeamCount(v)
		if err != nil || strings.TrimSpace(v) == "" {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
	if count < 0 {
		return 0, false
	}
	if count > MaxTeams {
		count = MaxTeams
	}
	return count, true
}
