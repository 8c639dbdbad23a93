package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/swiftbudget/backend/internal/domain/error"
)

func TestNewCategory(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates a valid category", func(t *testing.T) {
		category, err := NewCategory(ownerID, "Coffee", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if category.Name != "Coffee" {
			t.Errorf("expected name Coffee, got %s", category.Name)
		}
		if category.IsDefault {
			t.Error("expected non-default category")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCategory(ownerID, "", false)
		if !errors.Is(err, domainerror.ErrCategoryNameRequired) {
			t.Errorf("expected ErrCategoryNameRequired, got %v", err)
		}
	})

	t.Run("rejects overlong name", func(t *testing.T) {
		_, err := NewCategory(ownerID, strings.Repeat("x", MaxCategoryNameLength+1), false)
		if !errors.Is(err, domainerror.ErrCategoryNameTooLong) {
			t.Errorf("expected ErrCategoryNameTooLong, got %v", err)
		}
	})

	t.Run("accepts name at the length limit", func(t *testing.T) {
		_, err := NewCategory(ownerID, strings.Repeat("x", MaxCategoryNameLength), false)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestDefaultCategoryNames(t *testing.T) {
	if len(DefaultCategoryNames) != 10 {
		t.Errorf("expected 10 default categories, got %d", len(DefaultCategoryNames))
	}

	seen := make(map[string]bool)
	for _, name := range DefaultCategoryNames {
		if name == "" || len(name) > MaxCategoryNameLength {
			t.Errorf("default category name %q violates name bounds", name)
		}
		lower := strings.ToLower(name)
		if seen[lower] {
			t.Errorf("duplicate default category name %q", name)
		}
		seen[lower] = true
	}
}
