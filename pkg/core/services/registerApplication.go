package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ymatsuda/gl-console/pkg/core/assignment"
	"github.com/ymatsuda/gl-console/pkg/core/model"
)

// RegisterApplicationStore defines the database operations needed to register
// an applicant
type RegisterApplicationStore interface {
	SaveApplication(ctx context.Context, eventID string, app *model.Application) error
}

// StaffInput carries the admin-entered fields for an internal staff record.
type StaffInput struct {
	Name       string `validate:"required"`
	Phonetic   string
	Email      string `validate:"omitempty,email"`
	Grade      string
	Faculty    string
	Department string
	Role       string
}

var staffValidate = validator.New()

// RegisterStaffApplication creates an internal applicant record from admin
// input. The role defaults to the standard GL role when left empty.
func RegisterStaffApplication(ctx context.Context, store RegisterApplicationStore, logger *zap.Logger, eventID string, input StaffInput) (*model.Application, error) {
	if err := staffValidate.Struct(input); err != nil {
		return nil, fmt.Errorf("staff input validation failed: %w", err)
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = assignment.DefaultInternalRole
	}

	now := time.Now().UnixMilli()
	app := &model.Application{
		ID:         uuid.New().String(),
		SourceType: model.SourceInternal,
		Name:       strings.TrimSpace(input.Name),
		Phonetic:   strings.TrimSpace(input.Phonetic),
		Email:      strings.TrimSpace(input.Email),
		Grade:      strings.TrimSpace(input.Grade),
		Faculty:    strings.TrimSpace(input.Faculty),
		Department: strings.TrimSpace(input.Department),
		Role:       role,
		Shifts:     map[string]any{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	logger.Debug("Registering staff application",
		zap.String("application_id", app.ID),
		zap.String("name", app.Name),
		zap.String("role", app.Role))

	if err := store.SaveApplication(ctx, eventID, app); err != nil {
		return nil, fmt.Errorf("failed to save application: %w", err)
	}

	return app, nil
}
