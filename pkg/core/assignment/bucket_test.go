package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymatsuda/gl-console/pkg/core/model"
)

func TestResolveAssignmentValue_StatusMapping(t *testing.T) {
	assert.Equal(t, "", ResolveAssignmentValue(nil))
	assert.Equal(t, model.ValueAbsent, ResolveAssignmentValue(&model.Assignment{Status: model.StatusAbsent}))
	assert.Equal(t, model.ValueStaff, ResolveAssignmentValue(&model.Assignment{Status: model.StatusStaff}))
	assert.Equal(t, model.ValueUnavailable, ResolveAssignmentValue(&model.Assignment{Status: model.StatusUnavailable}))
	assert.Equal(t, "2班", ResolveAssignmentValue(&model.Assignment{Status: model.StatusTeam, TeamID: "2班"}))
	// Legacy record with a team but no status.
	assert.Equal(t, "2班", ResolveAssignmentValue(&model.Assignment{TeamID: "2班"}))
	assert.Equal(t, "", ResolveAssignmentValue(&model.Assignment{}))
}

func TestResolveAssignmentStatus_RoundTripsOverOptionValues(t *testing.T) {
	external := &model.Application{SourceType: model.SourceExternal}
	internal := &model.Application{SourceType: model.SourceInternal, Role: "撮影"}
	teams := []string{"1班", "2班", "赤組"}

	for _, app := range []*model.Application{external, internal} {
		for _, option := range BuildAssignmentOptionsForApplication(app, teams) {
			status, teamID := ResolveAssignmentStatus(option.Value)
			record := &model.Assignment{Status: status, TeamID: teamID}
			assert.Equal(t, option.Value, ResolveAssignmentValue(record),
				"option %q must survive the status/value round trip", option.Value)
		}
	}
}

func TestResolveAssignmentBucket_ExplicitValues(t *testing.T) {
	for _, available := range []bool{true, false} {
		assert.Equal(t, model.BucketAbsent, ResolveAssignmentBucket(model.ValueAbsent, available).Kind)
		assert.Equal(t, model.BucketStaff, ResolveAssignmentBucket(model.ValueStaff, available).Kind)
		assert.Equal(t, model.BucketUnavailable, ResolveAssignmentBucket(model.ValueUnavailable, available).Kind)

		bucket := ResolveAssignmentBucket("3班", available)
		assert.Equal(t, model.BucketTeam, bucket.Kind)
		assert.Equal(t, "3班", bucket.TeamID)
		assert.Equal(t, "team:3班", bucket.Key())
	}
}

func TestResolveAssignmentBucket_UnassignedFollowsAvailability(t *testing.T) {
	assert.Equal(t, model.BucketUnassigned, ResolveAssignmentBucket("", true).Kind)
	assert.Equal(t, model.BucketUnavailable, ResolveAssignmentBucket("", false).Kind)
}

func TestResolveAssignmentBucket_IsTotalAndIdempotent(t *testing.T) {
	values := []string{"1班", model.ValueAbsent, model.ValueStaff, model.ValueUnavailable, ""}
	knownKeys := map[string]bool{
		model.BucketKeyUnassigned:  true,
		model.BucketKeyAbsent:      true,
		model.BucketKeyStaff:       true,
		model.BucketKeyUnavailable: true,
		"team:1班":                  true,
	}
	for _, value := range values {
		for _, available := range []bool{true, false} {
			first := ResolveAssignmentBucket(value, available)
			second := ResolveAssignmentBucket(value, available)
			assert.Equal(t, first, second)
			assert.True(t, knownKeys[first.Key()], "unexpected bucket %q", first.Key())
		}
	}
}

func TestResolveEffectiveAssignmentValue_InternalRoleFallback(t *testing.T) {
	internal := &model.Application{SourceType: model.SourceInternal, Role: "司会"}
	assert.Equal(t, "司会", ResolveEffectiveAssignmentValue(internal, nil))

	// The default GL role is a no-op, not an assignment.
	defaultRole := &model.Application{SourceType: model.SourceInternal, Role: "GL"}
	assert.Equal(t, "", ResolveEffectiveAssignmentValue(defaultRole, nil))

	// An explicit assignment always wins over the role.
	record := &model.Assignment{Status: model.StatusTeam, TeamID: "1班"}
	assert.Equal(t, "1班", ResolveEffectiveAssignmentValue(internal, record))
}

func TestResolveEffectiveAssignmentValue_ExternalNeverUsesRole(t *testing.T) {
	external := &model.Application{SourceType: model.SourceExternal, Role: "司会"}
	assert.Equal(t, "", ResolveEffectiveAssignmentValue(external, nil))
}

func TestResolveEffectiveAssignmentValue_RoleCollidingWithTeamName(t *testing.T) {
	// A free-text role equal to a team name is classified as that team;
	// the behavior is preserved from the source data model.
	internal := &model.Application{SourceType: model.SourceInternal, Role: "1班"}
	value := ResolveEffectiveAssignmentValue(internal, nil)
	require.Equal(t, "1班", value)
	assert.Equal(t, model.BucketTeam, ResolveAssignmentBucket(value, true).Kind)
}
