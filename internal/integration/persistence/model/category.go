package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_categories_owner_name,unique"`
	Name      string    `gorm:"type:varchar(50);not null;index:idx_categories_owner_name,unique"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		OwnerID:   category.OwnerID,
		Name:      category.Name,
		IsDefault: category.IsDefault,
		CreatedAt: category.CreatedAt,
	}
}
