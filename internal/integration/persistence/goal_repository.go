package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/swiftbudget/backend/internal/application/adapter"
	"github.com/swiftbudget/backend/internal/domain/entity"
	domainerror "github.com/swiftbudget/backend/internal/domain/error"
	"github.com/swiftbudget/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new budget goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new budget goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.BudgetGoal) error {
	goalModel := model.BudgetGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a budget goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetGoal, error) {
	var goalModel model.BudgetGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByOwner retrieves the owner's budget goals, newest first.
func (r *goalRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, activeOnly bool) ([]*entity.BudgetGoal, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var goalModels []model.BudgetGoalModel
	result := query.Order("created_at DESC").Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.BudgetGoal, len(goalModels))
	for i, m := range goalModels {
		goals[i] = m.ToEntity()
	}
	return goals, nil
}

// ExistsActive checks whether an active goal already exists for the
// (owner, category, period) triple, optionally excluding one goal ID.
func (r *goalRepository) ExistsActive(ctx context.Context, ownerID, categoryID uuid.UUID, period entity.GoalPeriod, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.BudgetGoalModel{}).
		Where("owner_id = ? AND category_id = ? AND period = ? AND is_active = ?",
			ownerID, categoryID, string(period), true)
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

// ExistsByCategory checks whether any goal targets the category.
func (r *goalRepository) ExistsByCategory(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.BudgetGoalModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing budget goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.BudgetGoal) error {
	goalModel := model.BudgetGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// Delete removes a budget goal from the database.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BudgetGoalModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// ListOwnersWithActiveGoals returns the distinct owners that have at least
// one active goal.
func (r *goalRepository) ListOwnersWithActiveGoals(ctx context.Context) ([]uuid.UUID, error) {
	var ownerIDs []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.BudgetGoalModel{}).
		Where("is_active = ?", true).
		Distinct("owner_id").
		Pluck("owner_id", &ownerIDs)
	if result.Error != nil {
		return nil, result.Error
	}
	return ownerIDs, nil
}
