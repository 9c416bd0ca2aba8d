package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrEmptyTitle      = errors.New("model: task title is required")
	ErrTitleTooLong    = errors.New("model: task title exceeds 200 characters")
	ErrDescTooLong     = errors.New("model: task description exceeds 1000 characters")
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Rank maps priorities onto a sortable scale: low=1, medium=2, high=3.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	default:
		return 0
	}
}

type Status string

const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAll, StatusActive, StatusCompleted:
		return true
	default:
		return false
	}
}

type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	DueDate     *time.Time
	CategoryID  string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskInput carries the user-editable fields for task construction.
type TaskInput struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	CategoryID  string
	Tags        []string
}

// NewTask builds a task from input at the given instant. Tag deduplication
// is the caller's concern; the entity stores tags as given.
func NewTask(in TaskInput, now time.Time) Task {
	priority := in.Priority
	if !priority.IsValid() {
		priority = PriorityMedium
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		DueDate:     in.DueDate,
		CategoryID:  in.CategoryID,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TaskUpdate describes a partial update; nil fields are left untouched.
// DueDate is double-pointer so an update can distinguish "leave alone"
// (nil) from "clear the date" (pointer to nil).
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *Priority
	DueDate     **time.Time
	CategoryID  *string
	Tags        []string
}

// ApplyUpdate returns a copy of the task with the update applied and
// UpdatedAt refreshed, even when no field changes. ID and CreatedAt are
// never modified, so UpdatedAt >= CreatedAt holds on every update path.
func ApplyUpdate(t Task, u TaskUpdate, now time.Time) Task {
	out := t
	if u.Title != nil {
		out.Title = *u.Title
	}
	if u.Description != nil {
		out.Description = *u.Description
	}
	if u.Completed != nil {
		out.Completed = *u.Completed
	}
	if u.Priority != nil && u.Priority.IsValid() {
		out.Priority = *u.Priority
	}
	if u.DueDate != nil {
		out.DueDate = *u.DueDate
	}
	if u.CategoryID != nil {
		out.CategoryID = *u.CategoryID
	}
	if u.Tags != nil {
		out.Tags = u.Tags
	}
	if now.After(out.UpdatedAt) {
		out.UpdatedAt = now
	}
	return out
}

// ToggleComplete flips the completion flag through the normal update path,
// so applying it twice restores the original flag.
func ToggleComplete(t Task, now time.Time) Task {
	completed := !t.Completed
	return ApplyUpdate(t, TaskUpdate{Completed: &completed}, now)
}

// ValidateTaskInput enforces the edge limits on user-supplied fields.
func ValidateTaskInput(in TaskInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrEmptyTitle
	}
	if len([]rune(in.Title)) > maxTitleLen {
		return ErrTitleTooLong
	}
	if len([]rune(in.Description)) > maxDescriptionLen {
		return ErrDescTooLong
	}
	if in.Priority != "" && !in.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, in.Priority)
	}
	return nil
}
