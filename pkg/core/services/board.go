package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ymatsuda/gl-console/pkg/core/assignment"
	"github.com/ymatsuda/gl-console/pkg/core/model"
	"github.com/ymatsuda/gl-console/pkg/core/teamconfig"
)

// BoardEntry is one applicant's row on the assignment board.
type BoardEntry struct {
	Application  model.Application
	Assignment   *model.Assignment
	Value        string
	Available    bool
	ResponseText string
}

// BoardGroup is one bucket column of the board: a team or one of the fixed
// status buckets.
type BoardGroup struct {
	Key     string
	Label   string
	Entries []BoardEntry
}

// AssignmentBoardResult contains the assignment board for one schedule.
type AssignmentBoardResult struct {
	ScheduleID string
	Teams      []string
	Groups     []BoardGroup
	Total      int
}

// BoardStore defines the database operations needed to build the board
type BoardStore interface {
	GetGLConfig(ctx context.Context, eventID string) (*model.GLConfig, error)
	ListApplications(ctx context.Context, eventID string) ([]model.Application, error)
	GetAssignmentSnapshot(ctx context.Context, eventID string) (map[string]any, error)
}

// BuildAssignmentBoard groups every applicant into exactly one bucket for a
// schedule. Team groups follow the configured team order, with any team that
// only exists in assignment data appended after them; the fixed status
// groups come last. filter narrows the groups using the board filter names.
func BuildAssignmentBoard(ctx context.Context, store BoardStore, logger *zap.Logger, eventID, scheduleID, filter string) (*AssignmentBoardResult, error) {
	logger.Debug("Building assignment board",
		zap.String("event_id", eventID),
		zap.String("schedule_id", scheduleID),
		zap.String("filter", filter))

	cfg, err := store.GetGLConfig(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gl config: %w", err)
	}

	applications, err := store.ListApplications(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	snapshot, err := store.GetAssignmentSnapshot(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignment snapshot: %w", err)
	}
	assignments := assignment.NormalizeAssignmentSnapshot(snapshot)

	teams := teamconfig.GetScheduleTeams(cfg, scheduleID)
	logger.Debug("Resolved schedule teams", zap.Strings("teams", teams))

	grouped := make(map[string][]BoardEntry)
	for _, app := range applications {
		record := assignment.EffectiveAssignment(assignments[app.ID], scheduleID)
		available := assignment.IsApplicantAvailableForSchedule(&app, scheduleID)
		value := assignment.ResolveEffectiveAssignmentValue(&app, record)
		bucket := assignment.ResolveAssignmentBucket(value, available)

		grouped[bucket.Key()] = append(grouped[bucket.Key()], BoardEntry{
			Application:  app,
			Assignment:   record,
			Value:        value,
			Available:    available,
			ResponseText: assignment.FormatScheduleResponseText(assignment.ResolveScheduleResponseValue(&app, scheduleID)),
		})
	}

	matcher := assignment.CreateBucketMatcher(filter)

	var groups []BoardGroup
	total := 0
	appendGroup := func(key, label string) {
		if !matcher(key) {
			return
		}
		entries := grouped[key]
		delete(grouped, key)
		groups = append(groups, BoardGroup{Key: key, Label: label, Entries: entries})
		total += len(entries)
	}

	for _, team := range teams {
		appendGroup(model.TeamBucket(team).Key(), team)
	}

	// Teams present only in assignment data, e.g. after a config shrink or a
	// role that collided with no configured team.
	var extra []string
	for key := range grouped {
		if strings.HasPrefix(key, model.TeamBucketPrefix) {
			extra = append(extra, strings.TrimPrefix(key, model.TeamBucketPrefix))
		}
	}
	sort.Strings(extra)
	for _, team := range extra {
		appendGroup(model.TeamBucket(team).Key(), team)
	}

	appendGroup(model.BucketKeyUnassigned, assignment.LabelUnassigned)
	appendGroup(model.BucketKeyAbsent, assignment.LabelAbsent)
	appendGroup(model.BucketKeyStaff, assignment.LabelStaff)
	appendGroup(model.BucketKeyUnavailable, assignment.LabelUnavailable)

	logger.Debug("Assignment board built",
		zap.Int("groups", len(groups)),
		zap.Int("total", total))

	return &AssignmentBoardResult{
		ScheduleID: scheduleID,
		Teams:      teams,
		Groups:     groups,
		Total:      total,
	}, nil
}
