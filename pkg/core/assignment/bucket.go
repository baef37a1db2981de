package assignment

import (
	"strings"

	"github.com/ymatsuda/gl-console/pkg/core/model"
)

// ResolveAssignmentValue derives the single assignment value encoded by a
// record's redundant status/teamId pair: a team name, one of the reserved
// sentinels, or empty for unassigned.
func ResolveAssignmentValue(a *model.Assignment) string {
	if a == nil {
		return ""
	}
	switch a.Status {
	case model.StatusAbsent:
		return model.ValueAbsent
	case model.StatusStaff:
		return model.ValueStaff
	case model.StatusUnavailable:
		return model.ValueUnavailable
	case model.StatusTeam:
		return a.TeamID
	}
	// Records written with a team but no status still mean a team assignment.
	return a.TeamID
}

// ResolveAssignmentStatus is the inverse of ResolveAssignmentValue: it maps
// an assignment value back to the status/teamId pair to persist.
func ResolveAssignmentStatus(value string) (status string, teamID string) {
	switch value {
	case "":
		return model.StatusNone, ""
	case model.ValueAbsent:
		return model.StatusAbsent, ""
	case model.ValueStaff:
		return model.StatusStaff, ""
	case model.ValueUnavailable:
		return model.StatusUnavailable, ""
	}
	return model.StatusTeam, value
}

// ResolveEffectiveAssignmentValue computes the value fed into the bucket
// resolver. Internal staff with no explicit assignment fall back to their
// free-text role, except the default "GL" role which is a no-op. A role that
// happens to equal a team name will land in that team's bucket; the source
// data has no guard for that collision and none is added here.
func ResolveEffectiveAssignmentValue(app *model.Application, a *model.Assignment) string {
	if value := ResolveAssignmentValue(a); value != "" {
		return value
	}
	if app != nil && app.SourceType == model.SourceInternal {
		role := strings.TrimSpace(app.Role)
		if role != "" && role != DefaultInternalRole {
			return role
		}
	}
	return ""
}

// ResolveAssignmentBucket classifies one (assignment value, availability)
// pair into exactly one display bucket. An explicit value always wins;
// self-reported unavailability only surfaces when no explicit value exists.
func ResolveAssignmentBucket(value string, available bool) model.Bucket {
	switch value {
	case model.ValueAbsent:
		return model.Bucket{Kind: model.BucketAbsent}
	case model.ValueStaff:
		return model.Bucket{Kind: model.BucketStaff}
	case model.ValueUnavailable:
		return model.Bucket{Kind: model.BucketUnavailable}
	}
	if value != "" {
		return model.TeamBucket(value)
	}
	if !available {
		return model.Bucket{Kind: model.BucketUnavailable}
	}
	return model.Bucket{Kind: model.BucketUnassigned}
}
