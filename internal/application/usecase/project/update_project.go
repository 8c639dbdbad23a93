// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// UpdateProjectInput represents the input for project updates.
// Nil fields are left unchanged.
type UpdateProjectInput struct {
	ProjectID   uuid.UUID
	OwnerID     uuid.UUID
	Name        *string
	Description *string
	Color       *string
}

// UpdateProjectOutput represents the output of a project update.
type UpdateProjectOutput struct {
	Project *entity.Project
}

// UpdateProjectUseCase handles project update logic.
type UpdateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewUpdateProjectUseCase creates a new UpdateProjectUseCase instance.
func NewUpdateProjectUseCase(projectRepo adapter.ProjectRepository) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project update.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if project.OwnerID != input.OwnerID {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeNotAuthorizedProject,
			"not authorized to modify project",
			domainerror.ErrNotAuthorizedToModifyProject,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectNameRequired,
				"project name is required",
				domainerror.ErrProjectNameRequired,
			)
		}
		if len(name) > entity.MaxProjectNameLength {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectNameTooLong,
				"project name too long",
				domainerror.ErrProjectNameTooLong,
			)
		}

		exists, err := uc.projectRepo.ExistsByOwnerAndName(ctx, input.OwnerID, name, &input.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to check project name: %w", err)
		}
		if exists {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectNameExists,
				"a project with this name already exists",
				domainerror.ErrProjectNameExists,
			)
		}

		project.Name = name
	}

	if input.Description != nil {
		if len(*input.Description) > entity.MaxProjectDescriptionLength {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectDescriptionTooLong,
				"project description too long",
				domainerror.ErrProjectDescriptionTooLong,
			)
		}
		project.Description = *input.Description
	}

	if input.Color != nil {
		color, err := entity.NormalizeProjectColor(*input.Color)
		if err != nil {
			return nil, err
		}
		project.Color = color
	}

	project.UpdatedAt = time.Now().UTC()

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return &UpdateProjectOutput{Project: project}, nil
}
