package query

import (
	"strings"
	"time"

	"github.com/sandeepkv93/seeygo/internal/model"
	"github.com/sandeepkv93/seeygo/internal/timeutil"
)

type View string

const (
	ViewAll       View = "all"
	ViewToday     View = "today"
	ViewImportant View = "important"
	ViewCompleted View = "completed"
	ViewCategory  View = "category"
)

func (v View) IsValid() bool {
	switch v {
	case ViewAll, ViewToday, ViewImportant, ViewCompleted, ViewCategory:
		return true
	default:
		return false
	}
}

// importantWindow is how far ahead a due date still counts as "important".
const importantWindow = 3 * 24 * time.Hour

// FilterByView derives the named subset of the collection. The category
// view requires categoryID; other views ignore it.
func FilterByView(tasks []model.Task, view View, categoryID string, now time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchesView(t, view, categoryID, now) {
			out = append(out, t)
		}
	}
	return out
}

func matchesView(t model.Task, view View, categoryID string, now time.Time) bool {
	switch view {
	case ViewToday:
		return t.DueDate != nil && timeutil.IsToday(*t.DueDate, now)
	case ViewImportant:
		return isImportant(t, now)
	case ViewCompleted:
		return t.Completed
	case ViewCategory:
		return categoryID != "" && t.CategoryID == categoryID
	default:
		return true
	}
}

// isImportant: high priority, or due within the next three days and not
// already overdue. A task without a due date is never important by date.
func isImportant(t model.Task, now time.Time) bool {
	if t.Priority == model.PriorityHigh {
		return true
	}
	if t.DueDate == nil {
		return false
	}
	due := *t.DueDate
	return !due.After(now.Add(importantWindow)) && !timeutil.IsOverdue(due, now)
}

// Filters is the user-adjustable filter specification. Zero-valued fields
// impose no constraint.
type Filters struct {
	Search     string
	Priority   *model.Priority
	CategoryID *string
	Tags       []string
	DateFrom   *time.Time
	DateTo     *time.Time
	Status     model.Status
}

func DefaultFilters() Filters {
	return Filters{Status: model.StatusAll}
}

// IsEmpty reports whether no constraint is active.
func (f Filters) IsEmpty() bool {
	return f.Search == "" && f.Priority == nil && f.CategoryID == nil &&
		len(f.Tags) == 0 && f.DateFrom == nil && f.DateTo == nil &&
		(f.Status == "" || f.Status == model.StatusAll)
}

// ApplyFilters keeps tasks matching the conjunction of every present
// constraint.
func ApplyFilters(tasks []model.Task, f Filters) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchesFilters(t, f) {
			out = append(out, t)
		}
	}
	return out
}

func matchesFilters(t model.Task, f Filters) bool {
	if !MatchesSearch(t, f.Search) {
		return false
	}
	switch f.Status {
	case model.StatusActive:
		if t.Completed {
			return false
		}
	case model.StatusCompleted:
		if !t.Completed {
			return false
		}
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.CategoryID != nil && t.CategoryID != *f.CategoryID {
		return false
	}
	if len(f.Tags) > 0 && !tagsIntersect(t.Tags, f.Tags) {
		return false
	}
	if f.DateFrom != nil || f.DateTo != nil {
		if t.DueDate == nil || !timeutil.InRange(*t.DueDate, f.DateFrom, f.DateTo) {
			return false
		}
	}
	return true
}

// MatchesSearch reports whether the task matches the search text with a
// case-insensitive substring check over title, description and tags. Empty
// search matches everything.
func MatchesSearch(t model.Task, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), needle) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func tagsIntersect(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
