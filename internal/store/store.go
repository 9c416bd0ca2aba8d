package store

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sandeepkv93/seeygo/internal/model"
	"github.com/sandeepkv93/seeygo/internal/query"
	"github.com/sandeepkv93/seeygo/internal/storage"
)

// Store owns the canonical state tree for one running application and
// mirrors it into the persistent key-value adapter after every accepted
// mutation. It is single-writer: only Dispatch mutates state, and the store
// is owned by the UI event loop goroutine.
//
// Lifecycle: New -> Hydrate -> (ready) -> Close.
type Store struct {
	kv    *storage.KV
	log   *logrus.Logger
	state State
	ready bool
	now   func() time.Time
}

func New(kv *storage.KV, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.New()
	}
	return &Store{
		kv:    kv,
		log:   log,
		state: InitialState(),
		now:   time.Now,
	}
}

// Hydrate loads the persisted collections, synthesizing the default
// category set when none is stored and reconciling each category's
// denormalized task counter against the loaded task collection. Storage
// failures degrade to an empty first run.
func (s *Store) Hydrate() {
	now := s.now()

	var storedTasks []storage.StoredTask
	if s.kv.Get(storage.KeyTasks, &storedTasks) && len(storedTasks) > 0 {
		tasks, err := storage.DecodeTasks(storedTasks)
		if err != nil {
			s.log.WithError(err).Warn("some stored tasks could not be decoded")
		}
		s.state = Reduce(s.state, SetTasks{Tasks: tasks})
	}

	var storedCategories []storage.StoredCategory
	if s.kv.Get(storage.KeyCategories, &storedCategories) && len(storedCategories) > 0 {
		categories, err := storage.DecodeCategories(storedCategories)
		if err != nil {
			s.log.WithError(err).Warn("some stored categories could not be decoded")
		}
		s.state = Reduce(s.state, SetCategories{Categories: categories})
	} else {
		s.state = Reduce(s.state, SetCategories{Categories: model.DefaultCategories(now)})
	}

	s.reconcileCategoryCounts()

	var ui storage.StoredUIState
	if s.kv.Get(storage.KeyUIState, &ui) {
		s.state = Reduce(s.state, SetView{View: query.View(ui.CurrentView), CategoryID: ui.CategoryID})
		if ui.SidebarCollapsed != s.state.UI.SidebarCollapsed {
			s.state = Reduce(s.state, ToggleSidebar{})
		}
		s.state = Reduce(s.state, SetShowCompleted{Show: ui.ShowCompleted})
	}

	s.ready = true
}

// Ready reports whether hydration has completed.
func (s *Store) Ready() bool {
	return s.ready
}

// Dispatch applies the action to the state tree, then mirrors whichever
// slice it touched back into persistent storage. Empty task and category
// collections are not written, so a dispatch racing ahead of hydration
// cannot clobber stored data with the initial empty state.
func (s *Store) Dispatch(a Action) {
	if a == nil {
		return
	}
	s.state = Reduce(s.state, a)

	switch a.(type) {
	case SetTasks, AddTask, UpdateTask, DeleteTask, DeleteTasks, ToggleTask:
		s.persistTasks()
	case SetCategories, AddCategory, UpdateCategory, DeleteCategory, AdjustCategoryCount:
		s.persistCategories()
	case SetView, ToggleSidebar, SetShowCompleted, SetActiveModal:
		s.persistUI()
	}
}

// Close flushes the UI slice and marks the store no longer ready.
func (s *Store) Close() {
	if !s.ready {
		return
	}
	s.persistUI()
	s.ready = false
}

// State returns the current state snapshot.
func (s *Store) State() State {
	return s.state
}

// Task looks a task up by id. Absence is an expected condition, not an
// error.
func (s *Store) Task(id string) (model.Task, bool) {
	for _, t := range s.state.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (s *Store) Category(id string) (model.Category, bool) {
	for _, c := range s.state.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// VisibleTasks composes the read pipeline: current view, then active
// filters, then the active sort.
func (s *Store) VisibleTasks(now time.Time) []model.Task {
	tasks := query.FilterByView(s.state.Tasks, s.state.UI.CurrentView, s.state.UI.CategoryID, now)
	tasks = query.ApplyFilters(tasks, s.state.Filters)
	if !s.state.UI.ShowCompleted && s.state.UI.CurrentView != query.ViewCompleted {
		tasks = query.ApplyFilters(tasks, query.Filters{Status: model.StatusActive})
	}
	return query.SortTasks(tasks, s.state.Sort)
}

func (s *Store) Stats(now time.Time) query.Stats {
	return query.ComputeStats(s.state.Tasks, now)
}

// reconcileCategoryCounts recomputes every TaskCount from the task
// collection. Counters are maintained incrementally at runtime and can
// drift if an adjustment is skipped on an error path; hydration is the
// repair point.
func (s *Store) reconcileCategoryCounts() {
	counts := make(map[string]int)
	for _, t := range s.state.Tasks {
		if t.CategoryID != "" {
			counts[t.CategoryID]++
		}
	}
	categories := make([]model.Category, len(s.state.Categories))
	for i, c := range s.state.Categories {
		c.TaskCount = counts[c.ID]
		categories[i] = c
	}
	s.state = Reduce(s.state, SetCategories{Categories: categories})
}

func (s *Store) persistTasks() {
	if len(s.state.Tasks) == 0 {
		return
	}
	s.kv.Set(storage.KeyTasks, storage.EncodeTasks(s.state.Tasks))
}

func (s *Store) persistCategories() {
	if len(s.state.Categories) == 0 {
		return
	}
	s.kv.Set(storage.KeyCategories, storage.EncodeCategories(s.state.Categories))
}

func (s *Store) persistUI() {
	ui := s.state.UI
	s.kv.Set(storage.KeyUIState, storage.StoredUIState{
		CurrentView:      string(ui.CurrentView),
		CategoryID:       ui.CategoryID,
		SidebarCollapsed: ui.SidebarCollapsed,
		ShowCompleted:    ui.ShowCompleted,
		ActiveModal:      ui.ActiveModal,
	})
}
