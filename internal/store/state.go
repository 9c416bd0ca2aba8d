package store

import (
	"github.com/sandeepkv93/seeygo/internal/model"
	"github.com/sandeepkv93/seeygo/internal/query"
)

// UIState is the persisted slice of view chrome: which view is open, the
// sidebar, completed visibility and the active modal.
type UIState struct {
	CurrentView      query.View
	CategoryID       string
	SidebarCollapsed bool
	ShowCompleted    bool
	ActiveModal      string
}

func DefaultUIState() UIState {
	return UIState{
		CurrentView:   query.ViewAll,
		ShowCompleted: true,
	}
}

// State is the single state tree: the canonical task and category
// collections plus the active filter, sort and UI selections. Consumers
// select slices from it; nothing outside the reducer mutates it.
type State struct {
	Tasks      []model.Task
	Categories []model.Category
	Filters    query.Filters
	Sort       query.Sort
	UI         UIState
}

func InitialState() State {
	return State{
		Tasks:      []model.Task{},
		Categories: []model.Category{},
		Filters:    query.DefaultFilters(),
		Sort:       query.DefaultSort(),
		UI:         DefaultUIState(),
	}
}
