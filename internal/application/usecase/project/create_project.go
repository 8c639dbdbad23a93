// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// CreateProjectInput represents the input for project creation.
type CreateProjectInput struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
	Color       string
}

// CreateProjectOutput represents the output of project creation.
type CreateProjectOutput struct {
	Project *entity.Project
}

// CreateProjectUseCase handles project creation.
type CreateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewCreateProjectUseCase creates a new CreateProjectUseCase instance.
func NewCreateProjectUseCase(projectRepo adapter.ProjectRepository) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project creation. Names are unique per owner,
// case-insensitively.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	project, err := entity.NewProject(input.OwnerID, input.Name, input.Description, input.Color)
	if err != nil {
		return nil, err
	}

	exists, err := uc.projectRepo.ExistsByOwnerAndName(ctx, input.OwnerID, project.Name, nil)
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

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &CreateProjectOutput{Project: project}, nil
}
