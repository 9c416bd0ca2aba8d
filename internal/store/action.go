package store

import (
	"time"

	"github.com/sandeepkv93/seeygo/internal/model"
	"github.com/sandeepkv93/seeygo/internal/query"
)

// Action is the closed set of intents the reducer accepts. The unexported
// marker method keeps the set sealed: a new intent has to be declared here,
// next to the reducer that handles it.
type Action interface {
	isAction()
}

// Task intents.

type SetTasks struct{ Tasks []model.Task }

type AddTask struct{ Task model.Task }

type UpdateTask struct{ Task model.Task }

type DeleteTask struct{ ID string }

type DeleteTasks struct{ IDs []string }

// ToggleTask flips completion at the given instant so the reduction stays
// a pure function of its inputs.
type ToggleTask struct {
	ID string
	At time.Time
}

// Category intents.

type SetCategories struct{ Categories []model.Category }

type AddCategory struct{ Category model.Category }

type UpdateCategory struct{ Category model.Category }

type DeleteCategory struct{ ID string }

// AdjustCategoryCount shifts a category's denormalized task counter by
// Delta, clamped at zero.
type AdjustCategoryCount struct {
	ID    string
	Delta int
	At    time.Time
}

// Filter intents.

type SetSearch struct{ Search string }

type SetPriorityFilter struct{ Priority *model.Priority }

type SetCategoryFilter struct{ CategoryID *string }

type SetTagFilter struct{ Tags []string }

type SetDateFilter struct{ From, To *time.Time }

type SetStatusFilter struct{ Status model.Status }

type ClearFilters struct{}

// Sort intent.

type SetSort struct{ Sort query.Sort }

// UI intents.

type SetView struct {
	View       query.View
	CategoryID string
}

type ToggleSidebar struct{}

type SetShowCompleted struct{ Show bool }

type SetActiveModal struct{ Modal string }

func (SetTasks) isAction()            {}
func (AddTask) isAction()             {}
func (UpdateTask) isAction()          {}
func (DeleteTask) isAction()          {}
func (DeleteTasks) isAction()         {}
func (ToggleTask) isAction()          {}
func (SetCategories) isAction()       {}
func (AddCategory) isAction()         {}
func (UpdateCategory) isAction()      {}
func (DeleteCategory) isAction()      {}
func (AdjustCategoryCount) isAction() {}
func (SetSearch) isAction()           {}
func (SetPriorityFilter) isAction()   {}
func (SetCategoryFilter) isAction()   {}
func (SetTagFilter) isAction()        {}
func (SetDateFilter) isAction()       {}
func (SetStatusFilter) isAction()     {}
func (ClearFilters) isAction()        {}
func (SetSort) isAction()             {}
func (SetView) isAction()             {}
func (ToggleSidebar) isAction()       {}
func (SetShowCompleted) isAction()    {}
func (SetActiveModal) isAction()      {}
