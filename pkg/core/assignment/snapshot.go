package assignment

import (
	"github.com/ymatsuda/gl-console/pkg/core/model"
)

// reservedEntryKeys are assignment-record fields that can never be schedule
// IDs when scanning a legacy flat record for sibling overrides.
var reservedEntryKeys = map[string]bool{
	"status":        true,
	"teamId":        true,
	"updatedAt":     true,
	"updatedByUid":  true,
	"updatedByName": true,
	"schedules":     true,
}

// NormalizeAssignmentEntry parses one raw assignment record. It returns nil
// unless the record carries a status or a team; a team without a status is
// promoted to a team assignment.
func NormalizeAssignmentEntry(raw any) *model.Assignment {
	entry, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	status := toString(entry["status"])
	teamID := toString(entry["teamId"])
	if status == "" && teamID == "" {
		return nil
	}
	if status == "" {
		status = model.StatusTeam
	}
	return &model.Assignment{
		Status:        status,
		TeamID:        teamID,
		UpdatedAt:     toInt64(entry["updatedAt"]),
		UpdatedByUID:  toString(entry["updatedByUid"]),
		UpdatedByName: toString(entry["updatedByName"]),
	}
}

// NormalizeAssignmentSnapshot merges the assignment snapshot's coexisting
// storage shapes into one record per applicant:
//
//   - current: {applicantID: {schedules: {scheduleID: entry}}} with optional
//     same-level status/teamId acting as the applicant-wide fallback,
//   - legacy flat: {applicantID: {status, teamId, scheduleID: entry, ...}},
//   - legacy schedule-indexed: {scheduleID: {applicantID: entry}}.
//
// Both legacy shapes stay readable indefinitely; historical data is never
// migrated in place. Explicit nested schedules entries are applied last and
// win over anything the legacy shapes contributed.
func NormalizeAssignmentSnapshot(snapshot map[string]any) map[string]*model.ApplicantAssignments {
	result := make(map[string]*model.ApplicantAssignments)

	// Legacy schedule-indexed entries first, so applicant-keyed records can
	// override them below.
	for key, value := range snapshot {
		entryMap, ok := value.(map[string]any)
		if !ok || isApplicantRecord(entryMap) {
			continue
		}
		for applicantID, rawEntry := range entryMap {
			if entry := NormalizeAssignmentEntry(rawEntry); entry != nil {
				applicantFor(result, applicantID).Schedules[key] = entry
			}
		}
	}

	for key, value := range snapshot {
		entryMap, ok := value.(map[string]any)
		if !ok || !isApplicantRecord(entryMap) {
			continue
		}
		applicant := applicantFor(result, key)
		if fallback := NormalizeAssignmentEntry(value); fallback != nil {
			applicant.Fallback = fallback
			// Legacy flat shape keeps per-schedule overrides as sibling keys
			// on the same record.
			for sibling, rawOverride := range entryMap {
				if reservedEntryKeys[sibling] {
					continue
				}
				if override := NormalizeAssignmentEntry(rawOverride); override != nil {
					applicant.Schedules[sibling] = override
				}
			}
		}
		if nested, ok := entryMap["schedules"].(map[string]any); ok {
			for scheduleID, rawEntry := range nested {
				if entry := NormalizeAssignmentEntry(rawEntry); entry != nil {
					applicant.Schedules[scheduleID] = entry
				}
			}
		}
	}

	return result
}

// isApplicantRecord reports whether a top-level snapshot value is keyed by
// applicant: it either normalizes as a flat assignment entry or carries the
// nested schedules shape. Anything else is treated as a schedule-indexed
// legacy map.
func isApplicantRecord(entry map[string]any) bool {
	if NormalizeAssignmentEntry(entry) != nil {
		return true
	}
	_, hasNested := entry["schedules"].(map[string]any)
	return hasNested
}

func applicantFor(result map[string]*model.ApplicantAssignments, applicantID string) *model.ApplicantAssignments {
	if applicant, ok := result[applicantID]; ok {
		return applicant
	}
	applicant := &model.ApplicantAssignments{Schedules: map[string]*model.Assignment{}}
	result[applicantID] = applicant
	return applicant
}

// EffectiveAssignment picks the per-schedule entry for a schedule, falling
// back to the applicant-wide record when none exists.
func EffectiveAssignment(entry *model.ApplicantAssignments, scheduleID string) *model.Assignment {
	if entry == nil {
		return nil
	}
	if a, ok := entry.Schedules[scheduleID]; ok {
		return a
	}
	return entry.Fallback
}

func toString(value any) string {
	s, _ := value.(string)
	return s
}

func toInt64(value any) int64 {
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
