// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
)

// ListProjectsInput represents the input for listing projects.
type ListProjectsInput struct {
	OwnerID         uuid.UUID
	IncludeArchived bool
}

// ListProjectsOutput represents the output of a project listing.
type ListProjectsOutput struct {
	Projects []*entity.Project
}

// ListProjectsUseCase lists an owner's projects. Archived projects are
// excluded unless asked for.
type ListProjectsUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewListProjectsUseCase creates a new ListProjectsUseCase instance.
func NewListProjectsUseCase(projectRepo adapter.ProjectRepository) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
	}
}

// Execute retrieves the projects, name ascending.
func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.FindByOwner(ctx, input.OwnerID, !input.IncludeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &ListProjectsOutput{Projects: projects}, nil
}
