package teamconfig

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymatsuda/gl-console/pkg/core/model"
)

func intPtr(n int) *int { return &n }

func TestBuildSequentialTeams_Form(t *testing.T) {
	teams := BuildSequentialTeams(3)
	assert.Equal(t, []string{"1班", "2班", "3班"}, teams)
}

func TestBuildSequentialTeams_ZeroAndNegative(t *testing.T) {
	assert.Empty(t, BuildSequentialTeams(0))
	assert.Empty(t, BuildSequentialTeams(-4))
}

func TestBuildSequentialTeams_RoundTripsThroughDerive(t *testing.T) {
	for n := 0; n <= MaxTeams; n++ {
		teams := BuildSequentialTeams(n)
		require.Len(t, teams, n)
		for i, team := range teams {
			assert.Equal(t, fmt.Sprintf("%d班", i+1), team)
		}
		assert.Equal(t, n, DeriveSequentialTeamCount(teams))
	}
}

func TestDeriveSequentialTeamCount_NonSequentialList(t *testing.T) {
	assert.Equal(t, 0, DeriveSequentialTeamCount([]string{"1班", "3班"}))
	assert.Equal(t, 0, DeriveSequentialTeamCount([]string{"赤組", "白組"}))
}

func TestParseTeamCount_EmptyInput(t *testing.T) {
	count, err := ParseTeamCount("")
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestParseTeamCount_Valid(t *testing.T) {
	count, err := ParseTeamCount(" 12 ")
	assert.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestParseTeamCount_OverMax(t *testing.T) {
	_, err := ParseTeamCount("51")
	require.Error(t, err)
	assert.Equal(t, "班は最大50班まで設定できます。", err.Error())
}

func TestParseTeamCount_NegativeAndNonNumeric(t *testing.T) {
	for _, input := range []string{"-1", "abc", "1.5"} {
		_, err := ParseTeamCount(input)
		require.Error(t, err, "input %q", input)
		assert.Equal(t, "班の数は0以上の整数で入力してください。", err.Error())
	}
}

func TestNormalizeTeams_TrimDedupeCap(t *testing.T) {
	teams := NormalizeTeams([]string{" 1班 ", "1班", "", "2班", "2班 "})
	assert.Equal(t, []string{"1班", "2班"}, teams)

	long := make([]string, 0, MaxTeams+10)
	for i := 0; i < MaxTeams+10; i++ {
		long = append(long, fmt.Sprintf("team-%d", i))
	}
	assert.Len(t, NormalizeTeams(long), MaxTeams)
}

func TestNormalizeScheduleTeamConfig_ExplicitTeamsWin(t *testing.T) {
	raw := map[string]any{
		"s1": map[string]any{
			"teams":     []any{"赤組", "白組"},
			"teamCount": float64(5),
		},
	}
	result := NormalizeScheduleTeamConfig(raw, []string{"1班"})
	require.Contains(t, result, "s1")
	assert.Equal(t, []string{"赤組", "白組"}, result["s1"].Teams)
	assert.Equal(t, 2, result["s1"].TeamCount)
}

func TestNormalizeScheduleTeamConfig_BareListEntry(t *testing.T) {
	raw := map[string]any{
		"s1": []any{"A班", "B班"},
	}
	result := NormalizeScheduleTeamConfig(raw, nil)
	require.Contains(t, result, "s1")
	assert.Equal(t, []string{"A班", "B班"}, result["s1"].Teams)
}

func TestNormalizeScheduleTeamConfig_ZeroCountIsARealOverride(t *testing.T) {
	raw := map[string]any{
		"s1": map[string]any{"teamCount": float64(0)},
	}
	result := NormalizeScheduleTeamConfig(raw, []string{"1班", "2班"})
	require.Contains(t, result, "s1")
	assert.Empty(t, result["s1"].Teams)
	assert.Equal(t, 0, result["s1"].TeamCount)
}

func TestNormalizeScheduleTeamConfig_FallsBackToDefaults(t *testing.T) {
	raw := map[string]any{
		"s1": map[string]any{},
	}
	result := NormalizeScheduleTeamConfig(raw, []string{"1班", "2班"})
	require.Contains(t, result, "s1")
	assert.Equal(t, []string{"1班", "2班"}, result["s1"].Teams)
	assert.Equal(t, 2, result["s1"].TeamCount)
}

func TestNormalizeScheduleTeamConfig_OmitsEmptyOverrides(t *testing.T) {
	// No teams, no count, no usable default: the schedule must be absent
	// from the result, not recorded as a zero-team override.
	raw := map[string]any{
		"s1": map[string]any{},
	}
	result := NormalizeScheduleTeamConfig(raw, nil)
	assert.NotContains(t, result, "s1")
}

func TestGetScheduleTeams_ThreeTierResolution(t *testing.T) {
	cfg := &model.GLConfig{
		DefaultTeams: []string{"1班", "2班"},
		ScheduleTeams: map[string]model.ScheduleTeamOverride{
			"s1": {TeamCount: intPtr(0)},
			"s3": {Teams: []string{"赤組"}},
			"s4": {TeamCount: intPtr(3)},
		},
	}

	// Explicit zero-count override means no teams.
	assert.Empty(t, GetScheduleTeams(cfg, "s1"))
	// No override falls back to the event defaults.
	assert.Equal(t, []string{"1班", "2班"}, GetScheduleTeams(cfg, "s2"))
	// Explicit teams win over everything.
	assert.Equal(t, []string{"赤組"}, GetScheduleTeams(cfg, "s3"))
	// An explicit count synthesizes a sequential list.
	assert.Equal(t, []string{"1班", "2班", "3班"}, GetScheduleTeams(cfg, "s4"))
}

func TestGetScheduleTeams_NilConfig(t *testing.T) {
	assert.Empty(t, GetScheduleTeams(nil, "s1"))
}
