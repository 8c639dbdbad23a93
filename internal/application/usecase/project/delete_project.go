// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/application/adapter"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

// DeleteProjectInput represents the input for project deletion.
type DeleteProjectInput struct {
	ProjectID uuid.UUID
	OwnerID   uuid.UUID
}

// DeleteProjectUseCase handles project deletion. Linked transactions are
// detached, not deleted; the ledger survives its groupings.
type DeleteProjectUseCase struct {
	projectRepo     adapter.ProjectRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteProjectUseCase creates a new DeleteProjectUseCase instance.
func NewDeleteProjectUseCase(
	projectRepo adapter.ProjectRepository,
	transactionRepo adapter.TransactionRepository,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo:     projectRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the hard delete.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return err
	}

	if project.OwnerID != input.OwnerID {
		return domainerror.NewProjectError(
			domainerror.ErrCodeNotAuthorizedProject,
			"not authorized to modify project",
			domainerror.ErrNotAuthorizedToModifyProject,
		)
	}

	if err := uc.transactionRepo.ClearProject(ctx, input.ProjectID); err != nil {
		return fmt.Errorf("failed to detach project transactions: %w", err)
	}

	if err := uc.projectRepo.Delete(ctx, input.ProjectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
