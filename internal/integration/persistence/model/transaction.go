// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/swiftbudget/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Kind       string           `gorm:"type:varchar(10);not null;index"`
	Date       time.Time        `gorm:"type:date;not null;index"`
	Note       string           `gorm:"type:varchar(200)"`
	ProjectID  *uuid.UUID       `gorm:"type:uuid;index"`
	Quantity   *int             `gorm:"type:integer"`
	UnitPrice  *decimal.Decimal `gorm:"type:decimal(10,2)"`
	CreatedAt  time.Time        `gorm:"not null"`
	UpdatedAt  time.Time        `gorm:"not null"`
	DeletedAt  gorm.DeletedAt   `gorm:"index"` // Soft-delete support

	// Relationship (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
		Kind:       entity.TransactionKind(m.Kind),
		Date:       entity.DateOnly(m.Date),
		Note:       m.Note,
		ProjectID:  m.ProjectID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(txn *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if txn.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *txn.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:         txn.ID,
		OwnerID:    txn.OwnerID,
		CategoryID: txn.CategoryID,
		Amount:     txn.Amount,
		Kind:       string(txn.Kind),
		Date:       txn.Date,
		Note:       txn.Note,
		ProjectID:  txn.ProjectID,
		Quantity:   txn.Quantity,
		UnitPrice:  txn.UnitPrice,
		CreatedAt:  txn.CreatedAt,
		UpdatedAt:  txn.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
