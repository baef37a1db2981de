package rtdbclient

import (
	"context"
	"fmt"
	"sort"

	"github.com/ymatsuda/gl-console/pkg/core/assignment"
	"github.com/ymatsuda/gl-console/pkg/core/model"
)

// ListApplications reads all applications for an event, ordered by creation
// time then ID. Entries that cannot be normalized are skipped.
func (c *Client) ListApplications(ctx context.Context, eventID string) ([]model.Application, error) {
	var raw map[string]any
	if err := c.database.NewRef(applicationsPath(eventID)).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to read applications for event %s: %w", eventID, err)
	}

	applications := make([]model.Application, 0, len(raw))
	for id, value := range raw {
		app := assignment.NormalizeApplication(id, value)
		if app == nil {
			continue
		}
		applications = append(applications, *app)
	}

	sort.Slice(applications, func(i, j int) bool {
		if applications[i].CreatedAt != applications[j].CreatedAt {
			return applications[i].CreatedAt < applications[j].CreatedAt
		}
		return applications[i].ID < applications[j].ID
	})

	return applications, nil
}

// SaveApplication writes one application record.
func (c *Client) SaveApplication(ctx context.Context, eventID string, app *model.Application) error {
	doc := map[string]any{
		"name":       app.Name,
		"sourceType": string(app.SourceType),
		"createdAt":  app.CreatedAt,
		"updatedAt":  app.UpdatedAt,
	}
	optional := map[string]string{
		"phonetic":   app.Phonetic,
		"email":      app.Email,
		"grade":      app.Grade,
		"gender":     app.Gender,
		"faculty":    app.Faculty,
		"department": app.Department,
		"club":       app.Club,
		"studentId":  app.StudentID,
		"note":       app.Note,
		"role":       app.Role,
	}
	for key, value := range optional {
		if value != "" {
			doc[key] = value
		}
	}
	if len(app.AcademicPath) > 0 {
		doc["academicPath"] = app.AcademicPath
	}
	if len(app.Shifts) > 0 {
		doc["shifts"] = app.Shifts
	}

	path := applicationsPath(eventID) + "/" + app.ID
	if err := c.database.NewRef(path).Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to save application %s for event %s: %w", app.ID, eventID, err)
	}
	return nil
}
