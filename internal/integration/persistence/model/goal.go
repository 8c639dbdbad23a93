package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

// BudgetGoalModel represents the budget_goals table in the database.
type BudgetGoalModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	LimitAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Period         string          `gorm:"type:varchar(10);not null"`
	AlertThreshold int             `gorm:"not null;default:80"`
	StartDate      time.Time       `gorm:"type:date;not null"`
	EndDate        *time.Time      `gorm:"type:date"`
	IsActive       bool            `gorm:"not null;default:true;index"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the BudgetGoalModel.
func (BudgetGoalModel) TableName() string {
	return "budget_goals"
}

// ToEntity converts a BudgetGoalModel to a domain BudgetGoal entity.
func (m *BudgetGoalModel) ToEntity() *entity.BudgetGoal {
	return &entity.BudgetGoal{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		CategoryID:     m.CategoryID,
		LimitAmount:    m.LimitAmount,
		Period:         entity.GoalPeriod(m.Period),
		AlertThreshold: m.AlertThreshold,
		StartDate:      entity.DateOnly(m.StartDate),
		EndDate:        m.EndDate,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// BudgetGoalFromEntity creates a BudgetGoalModel from a domain BudgetGoal entity.
func BudgetGoalFromEntity(goal *entity.BudgetGoal) *BudgetGoalModel {
	return &BudgetGoalModel{
		ID:             goal.ID,
		OwnerID:        goal.OwnerID,
		CategoryID:     goal.CategoryID,
		LimitAmount:    goal.LimitAmount,
		Period:         string(goal.Period),
		AlertThreshold: goal.AlertThreshold,
		StartDate:      goal.StartDate,
		EndDate:        goal.EndDate,
		IsActive:       goal.IsActive,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}
