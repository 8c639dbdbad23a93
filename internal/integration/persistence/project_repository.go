package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
	"github.com/swiftbudget/backend/internal/integration/persistence/model"
)

// projectRepository implements the adapter.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance.
func NewProjectRepository(db *gorm.DB) adapter.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// Create creates a new project in the database.
func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectModel := model.ProjectFromEntity(project)
	result := r.db.WithContext(ctx).Create(projectModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a project by its ID.
func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectModel model.ProjectModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&projectModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProjectNotFound
		}
		return nil, result.Error
	}
	return projectModel.ToEntity(), nil
}

// FindByOwner retrieves the owner's projects, name ascending.
func (r *projectRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, activeOnly bool) ([]*entity.Project, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var projectModels []model.ProjectModel
	result := query.Order("name ASC").Find(&projectModels)
	if result.Error != nil {
		return nil, result.Error
	}

	projects := make([]*entity.Project, len(projectModels))
	for i, m := range projectModels {
		projects[i] = m.ToEntity()
	}
	return projects, nil
}

// ExistsByOwnerAndName checks for a case-insensitive name collision within an
// owner's projects, optionally excluding one project ID (for renames).
func (r *projectRepository) ExistsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("owner_id = ? AND LOWER(name) = ?", ownerID, strings.ToLower(name))
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	result := query.Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing project in the database.
func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectModel := model.ProjectFromEntity(project)
	result := r.db.WithContext(ctx).Save(projectModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProjectNotFound
	}
	return nil
}

// Delete removes a project from the database.
func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProjectNotFound
	}
	return nil
}
