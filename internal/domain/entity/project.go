// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

const (
	// MaxProjectNameLength is the maximum length for a project name.
	MaxProjectNameLength = 100

	// MaxProjectDescriptionLength is the maximum length for a project description.
	MaxProjectDescriptionLength = 500

	// DefaultProjectColor is the color assigned when none is supplied.
	DefaultProjectColor = "#6c757d"
)

// Project groups related transactions under a named purpose, such as a
// renovation or a trip. Projects are archived rather than lost: toggling
// IsActive off hides a project from the default listing while keeping its
// transaction history intact.
type Project struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Color       string // Hex color code, e.g. #FF5733
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProject creates a new Project entity, validating the name and
// description bounds and normalizing the color to a hex code. Per-owner
// name uniqueness is enforced by the application layer.
func NewProject(ownerID uuid.UUID, name, description, color string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNameRequired,
			"project name is required",
			domainerror.ErrProjectNameRequired,
		)
	}

	if len(name) > MaxProjectNameLength {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNameTooLong,
			"project name too long",
			domainerror.ErrProjectNameTooLong,
		)
	}

	if len(description) > MaxProjectDescriptionLength {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectDescriptionTooLong,
			"project description too long",
			domainerror.ErrProjectDescriptionTooLong,
		)
	}

	color, err := NormalizeProjectColor(color)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Project{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Color:       color,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NormalizeProjectColor coerces the input to a #RRGGBB hex code. An empty
// input falls back to the default color, and a missing leading '#' is added.
func NormalizeProjectColor(color string) (string, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return DefaultProjectColor, nil
	}
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}
	if len(color) != 7 || !isHexDigits(color[1:]) {
		return "", domainerror.NewProjectError(
			domainerror.ErrCodeInvalidProjectColor,
			"color must be a #RRGGBB hex code",
			domainerror.ErrInvalidProjectColor,
		)
	}
	return strings.ToLower(color), nil
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// ProjectStatistics summarizes a project's transaction activity. NetSpending
// is expenses minus income: a positive value means the project cost money.
type ProjectStatistics struct {
	TransactionCount int
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetSpending      decimal.Decimal
}
