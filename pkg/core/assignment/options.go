package assignment

import (
	"regexp"
	"slices"
	"strings"

	"github.com/ymatsuda/gl-console/pkg/core/model"
)

// Option labels shown in the assignment dropdowns.
const (
	LabelUnassigned  = "未割当"
	LabelUnavailable = "参加不可"
	LabelAbsent      = "欠席"
	LabelStaff       = "運営待機"
)

// DefaultInternalRole is the default role for internal staff. It never acts
// as an assignment value.
const DefaultInternalRole = "GL"

// InternalRoleSuggestions is the fixed role catalog offered for internal
// staff; the applicant's own free-text role is appended when missing.
var InternalRoleSuggestions = []string{"司会", "受付", "ラジオ", "機材", "GL", "撮影", "その他"}

var sequentialTeamName = regexp.MustCompile(`^([0-9]+)班$`)

// FormatTeamOptionLabel compacts purely numeric team names ("3班" -> "3")
// and prefixes everything else with "班: ".
func FormatTeamOptionLabel(team string) string {
	if m := sequentialTeamName.FindStringSubmatch(team); m != nil {
		return m[1]
	}
	return "班: " + team
}

// BuildAssignmentOptionsForApplication builds the selectable option list for
// one applicant's assignment dropdown given the schedule's team list.
// External applicants choose between teams and the three sentinel statuses;
// internal staff choose between teams and role values, with no staff
// sentinel since roles serve that purpose.
func BuildAssignmentOptionsForApplication(app *model.Application, teams []string) []model.AssignmentOption {
	options := make([]model.AssignmentOption, 0, len(teams)+8)
	options = append(options, model.AssignmentOption{Value: "", Label: LabelUnassigned})
	for _, team := range teams {
		options = append(options, model.AssignmentOption{Value: team, Label: FormatTeamOptionLabel(team)})
	}

	if app != nil && app.SourceType == model.SourceInternal {
		roles := slices.Clone(InternalRoleSuggestions)
		if role := strings.TrimSpace(app.Role); role != "" && !slices.Contains(roles, role) {
			roles = append(roles, role)
		}
		for _, role := range roles {
			options = append(options, model.AssignmentOption{Value: role, Label: role})
		}
		return append(options,
			model.AssignmentOption{Value: model.ValueUnavailable, Label: LabelUnavailable},
			model.AssignmentOption{Value: model.ValueAbsent, Label: LabelAbsent},
		)
	}

	return append(options,
		model.AssignmentOption{Value: model.ValueUnavailable, Label: LabelUnavailable},
		model.AssignmentOption{Value: model.ValueAbsent, Label: LabelAbsent},
		model.AssignmentOption{Value: model.ValueStaff, Label: LabelStaff},
	)
}
