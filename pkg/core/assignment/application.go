package assignment

import (
	"strings"

	"github.com/ymatsuda/gl-console/pkg/core/model"
)

// NormalizeApplication parses one raw applicant document. Unknown source
// types degrade to external; malformed fields degrade to empty values.
func NormalizeApplication(id string, raw any) *model.Application {
	doc, ok := raw.(map[string]any)
	if !ok {
		return &model.Application{ID: id, SourceType: model.SourceExternal, Shifts: map[string]any{}}
	}

	sourceType := model.SourceType(strings.TrimSpace(toString(doc["sourceType"])))
	if !sourceType.IsValid() {
		sourceType = model.SourceExternal
	}

	app := &model.Application{
		ID:         id,
		SourceType: sourceType,
		Name:       strings.TrimSpace(toString(doc["name"])),
		Phonetic:   strings.TrimSpace(toString(doc["phonetic"])),
		Email:      strings.TrimSpace(toString(doc["email"])),
		Grade:      strings.TrimSpace(toString(doc["grade"])),
		Gender:     strings.TrimSpace(toString(doc["gender"])),
		Faculty:    strings.TrimSpace(toString(doc["faculty"])),
		Department: strings.TrimSpace(toString(doc["department"])),
		Club:       strings.TrimSpace(toString(doc["club"])),
		StudentID:  strings.TrimSpace(toString(doc["studentId"])),
		Note:       toString(doc["note"]),
		Role:       strings.TrimSpace(toString(doc["role"])),
		Shifts:     map[string]any{},
		CreatedAt:  toInt64(doc["createdAt"]),
		UpdatedAt:  toInt64(doc["updatedAt"]),
	}

	if path, ok := doc["academicPath"].([]any); ok {
		for _, segment := range path {
			if s := strings.TrimSpace(toString(segment)); s != "" {
				app.AcademicPath = append(app.AcademicPath, s)
			}
		}
	}
	if shifts, ok := doc["shifts"].(map[string]any); ok {
		for key, value := range shifts {
			app.Shifts[key] = value
		}
	}
	return app
}
