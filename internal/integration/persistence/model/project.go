package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

// ProjectModel represents the projects table in the database.
type ProjectModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_projects_owner_name,unique"`
	Name        string    `gorm:"type:varchar(100);not null;index:idx_projects_owner_name,unique"`
	Description string    `gorm:"type:varchar(500)"`
	Color       string    `gorm:"type:varchar(7);not null"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ProjectModel.
func (ProjectModel) TableName() string {
	return "projects"
}

// ToEntity converts a ProjectModel to a domain Project entity.
func (m *ProjectModel) ToEntity() *entity.Project {
	return &entity.Project{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		Color:       m.Color,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProjectFromEntity creates a ProjectModel from a domain Project entity.
func ProjectFromEntity(project *entity.Project) *ProjectModel {
	return &ProjectModel{
		ID:          project.ID,
		OwnerID:     project.OwnerID,
		Name:        project.Name,
		Description: project.Description,
		Color:       project.Color,
		IsActive:    project.IsActive,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
