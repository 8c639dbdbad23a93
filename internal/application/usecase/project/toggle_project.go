// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// ToggleProjectInput represents the input for archiving or reactivating a project.
type ToggleProjectInput struct {
	ProjectID uuid.UUID
	OwnerID   uuid.UUID
}

// ToggleProjectOutput represents the output of a project toggle.
type ToggleProjectOutput struct {
	Project *entity.Project
}

// ToggleProjectUseCase archives or reactivates a project. Archiving hides it
// from the default listing; the history is preserved and the flag can be
// flipped back at any time.
type ToggleProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewToggleProjectUseCase creates a new ToggleProjectUseCase instance.
func NewToggleProjectUseCase(projectRepo adapter.ProjectRepository) *ToggleProjectUseCase {
	return &ToggleProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute flips the active flag.
func (uc *ToggleProjectUseCase) Execute(ctx context.Context, input ToggleProjectInput) (*ToggleProjectOutput, error) {
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

	project.IsActive = !project.IsActive
	project.UpdatedAt = time.Now().UTC()

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to toggle project: %w", err)
	}

	return &ToggleProjectOutput{Project: project}, nil
}
