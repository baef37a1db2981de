package assignment

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ymatsuda/gl-console/pkg/core/model"
)

// Keyword lists matched against trimmed, case-folded string responses.
var (
	positiveResponses = map[string]bool{
		"yes": true, "true": true, "1": true, "available": true, "参加": true, "ok": true,
	}
	negativeResponses = map[string]bool{
		"no": true, "false": true, "0": true, "unavailable": true, "不可": true, "欠席": true,
	}
)

// IsApplicantAvailableForSchedule decides whether an applicant marked
// themselves available for a schedule. The per-schedule answer wins, then
// the event-wide default answer. Applicants with no shift data at all
// predate per-schedule collection and are treated as available.
func IsApplicantAvailableForSchedule(app *model.Application, scheduleID string) bool {
	if app == nil || len(app.Shifts) == 0 {
		return true
	}
	value, ok := app.Shifts[scheduleID]
	if !ok {
		value, ok = app.Shifts[model.DefaultShiftKey]
	}
	if !ok {
		// The applicant answered the shift form but did not opt in to this
		// schedule.
		return false
	}
	return coerceAvailability(value)
}

func coerceAvailability(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if negativeResponses[s] {
			return false
		}
		if positiveResponses[s] {
			return true
		}
		return s != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	}
	// Objects and lists carry some answer, which counts as available.
	return true
}

// ResolveScheduleResponseValue returns the raw shift answer for a schedule,
// falling back to the event-wide default answer.
func ResolveScheduleResponseValue(app *model.Application, scheduleID string) any {
	if app == nil {
		return nil
	}
	if value, ok := app.Shifts[scheduleID]; ok {
		return value
	}
	if value, ok := app.Shifts[model.DefaultShiftKey]; ok {
		return value
	}
	return nil
}

// responseTextKeys are probed, in order, when a shift answer is an object.
var responseTextKeys = []string{"label", "text", "status", "value", "answer"}

// FormatScheduleResponseText renders a human-readable response string from
// a raw shift answer. Display only; availability uses
// IsApplicantAvailableForSchedule.
func FormatScheduleResponseText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return "参加可能"
		}
		return "参加不可"
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case map[string]any:
		for _, key := range responseTextKeys {
			if inner, ok := v[key]; ok {
				if text := FormatScheduleResponseText(inner); text != "" {
					return text
				}
			}
		}
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			if text := FormatScheduleResponseText(v[key]); text != "" {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, "、")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if text := FormatScheduleResponseText(item); text != "" {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, "、")
	}
	return ""
}
