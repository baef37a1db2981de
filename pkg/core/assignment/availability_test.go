package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ymatsuda/gl-console/pkg/core/model"
)

func TestIsApplicantAvailableForSchedule_EmptyShiftsMeansAvailable(t *testing.T) {
	app := &model.Application{Shifts: map[string]any{}}
	assert.True(t, IsApplicantAvailableForSchedule(app, "any-id"))
	assert.True(t, IsApplicantAvailableForSchedule(nil, "any-id"))
}

func TestIsApplicantAvailableForSchedule_StringAnswers(t *testing.T) {
	app := &model.Application{Shifts: map[string]any{
		"s1": "不可",
		"s2": "参加",
		"s3": " OK ",
		"s4": "no",
		"s5": "何か別の回答",
		"s6": "",
	}}

	assert.False(t, IsApplicantAvailableForSchedule(app, "s1"))
	assert.True(t, IsApplicantAvailableForSchedule(app, "s2"))
	assert.True(t, IsApplicantAvailableForSchedule(app, "s3"))
	assert.False(t, IsApplicantAvailableForSchedule(app, "s4"))
	// Unrecognized non-empty strings count as available.
	assert.True(t, IsApplicantAvailableForSchedule(app, "s5"))
	assert.False(t, IsApplicantAvailableForSchedule(app, "s6"))
}

func TestIsApplicantAvailableForSchedule_BooleanAndNumberAnswers(t *testing.T) {
	app := &model.Application{Shifts: map[string]any{
		"s1": true,
		"s2": false,
		"s3": float64(1),
		"s4": float64(0),
	}}

	assert.True(t, IsApplicantAvailableForSchedule(app, "s1"))
	assert.False(t, IsApplicantAvailableForSchedule(app, "s2"))
	assert.True(t, IsApplicantAvailableForSchedule(app, "s3"))
	assert.False(t, IsApplicantAvailableForSchedule(app, "s4"))
}

func TestIsApplicantAvailableForSchedule_DefaultKeyFallback(t *testing.T) {
	app := &model.Application{Shifts: map[string]any{
		model.DefaultShiftKey: "参加",
		"s1":                  "不可",
	}}

	assert.False(t, IsApplicantAvailableForSchedule(app, "s1"))
	assert.True(t, IsApplicantAvailableForSchedule(app, "s2"))
}

func TestIsApplicantAvailableForSchedule_AnsweredButSkippedSchedule(t *testing.T) {
	// A non-empty shifts record without this schedule or the default key is
	// an answered form that did not opt in.
	app := &model.Application{Shifts: map[string]any{"s1": true}}
	assert.False(t, IsApplicantAvailableForSchedule(app, "s2"))
}

func TestResolveScheduleResponseValue_FallbackChain(t *testing.T) {
	app := &model.Application{Shifts: map[string]any{
		model.DefaultShiftKey: "参加",
		"s1":                  false,
	}}

	assert.Equal(t, false, ResolveScheduleResponseValue(app, "s1"))
	assert.Equal(t, "参加", ResolveScheduleResponseValue(app, "s2"))
	assert.Nil(t, ResolveScheduleResponseValue(&model.Application{}, "s1"))
}

func TestFormatScheduleResponseText_Scalars(t *testing.T) {
	assert.Equal(t, "参加可能", FormatScheduleResponseText(true))
	assert.Equal(t, "参加不可", FormatScheduleResponseText(false))
	assert.Equal(t, "午前のみ", FormatScheduleResponseText("  午前のみ "))
	assert.Equal(t, "3", FormatScheduleResponseText(float64(3)))
	assert.Equal(t, "", FormatScheduleResponseText(nil))
}

func TestFormatScheduleResponseText_ObjectProbesKnownKeys(t *testing.T) {
	assert.Equal(t, "午後から参加", FormatScheduleResponseText(map[string]any{
		"label": "午後から参加",
		"extra": "ignored",
	}))
	// status is probed after label and text.
	assert.Equal(t, "ok", FormatScheduleResponseText(map[string]any{"status": "ok"}))
}

func TestFormatScheduleResponseText_JoinsNestedValues(t *testing.T) {
	assert.Equal(t, "午前、午後", FormatScheduleResponseText([]any{"午前", "午後"}))
	assert.Equal(t, "参加可能、午前", FormatScheduleResponseText(map[string]any{
		"a": true,
		"b": "午前",
	}))
}
