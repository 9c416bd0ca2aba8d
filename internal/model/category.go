package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCategoryName   = errors.New("model: category name is required")
	ErrCategoryNameTooLong = errors.New("model: category name exceeds 50 characters")
)

const maxCategoryNameLen = 50

type Category struct {
	ID        string
	Name      string
	Color     string
	TaskCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCategory(name, color string, now time.Time) Category {
	return Category{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryUpdate describes a partial category update.
type CategoryUpdate struct {
	Name  *string
	Color *string
}

func ApplyCategoryUpdate(c Category, u CategoryUpdate, now time.Time) Category {
	out := c
	if u.Name != nil {
		out.Name = *u.Name
	}
	if u.Color != nil {
		out.Color = *u.Color
	}
	if now.After(out.UpdatedAt) {
		out.UpdatedAt = now
	}
	return out
}

func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyCategoryName
	}
	if len([]rune(name)) > maxCategoryNameLen {
		return ErrCategoryNameTooLong
	}
	return nil
}

// DefaultCategories is the fixed set synthesized on first run so the
// application is never empty before the user creates their own.
func DefaultCategories(now time.Time) []Category {
	seeds := []struct {
		name  string
		color string
	}{
		{"Personal", "#2563EB"},
		{"Work", "#059669"},
		{"Study", "#D97706"},
		{"Life", "#DC2626"},
	}
	out := make([]Category, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, NewCategory(s.name, s.color, now))
	}
	return out
}
