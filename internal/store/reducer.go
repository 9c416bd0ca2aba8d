package store

import (
	"github.com/sandeepkv93/seeygo/internal/model"
	"github.com/sandeepkv93/seeygo/internal/query"
)

// Reduce maps (state, action) to the next state. It is total: a nil action
// returns the state unchanged, and actions targeting an absent id leave the
// matching collection as it was.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case SetTasks:
		s.Tasks = act.Tasks
	case AddTask:
		s.Tasks = append(append([]model.Task{}, s.Tasks...), act.Task)
	case UpdateTask:
		s.Tasks = replaceTask(s.Tasks, act.Task)
	case DeleteTask:
		s.Tasks = removeTasks(s.Tasks, map[string]bool{act.ID: true})
	case DeleteTasks:
		ids := make(map[string]bool, len(act.IDs))
		for _, id := range act.IDs {
			ids[id] = true
		}
		s.Tasks = removeTasks(s.Tasks, ids)
	case ToggleTask:
		s.Tasks = mapTasks(s.Tasks, func(t model.Task) model.Task {
			if t.ID == act.ID {
				return model.ToggleComplete(t, act.At)
			}
			return t
		})
	case SetCategories:
		s.Categories = act.Categories
	case AddCategory:
		s.Categories = append(append([]model.Category{}, s.Categories...), act.Category)
	case UpdateCategory:
		s.Categories = replaceCategory(s.Categories, act.Category)
	case DeleteCategory:
		out := make([]model.Category, 0, len(s.Categories))
		for _, c := range s.Categories {
			if c.ID != act.ID {
				out = append(out, c)
			}
		}
		s.Categories = out
	case AdjustCategoryCount:
		s.Categories = mapCategories(s.Categories, func(c model.Category) model.Category {
			if c.ID != act.ID {
				return c
			}
			count := c.TaskCount + act.Delta
			if count < 0 {
				count = 0
			}
			c.TaskCount = count
			if act.At.After(c.UpdatedAt) {
				c.UpdatedAt = act.At
			}
			return c
		})
	case SetSearch:
		s.Filters.Search = act.Search
	case SetPriorityFilter:
		s.Filters.Priority = act.Priority
	case SetCategoryFilter:
		s.Filters.CategoryID = act.CategoryID
	case SetTagFilter:
		s.Filters.Tags = act.Tags
	case SetDateFilter:
		s.Filters.DateFrom = act.From
		s.Filters.DateTo = act.To
	case SetStatusFilter:
		if act.Status.IsValid() {
			s.Filters.Status = act.Status
		}
	case ClearFilters:
		s.Filters = query.DefaultFilters()
	case SetSort:
		if act.Sort.Field.IsValid() {
			s.Sort = act.Sort
		}
	case SetView:
		if act.View.IsValid() {
			s.UI.CurrentView = act.View
			s.UI.CategoryID = act.CategoryID
		}
	case ToggleSidebar:
		s.UI.SidebarCollapsed = !s.UI.SidebarCollapsed
	case SetShowCompleted:
		s.UI.ShowCompleted = act.Show
	case SetActiveModal:
		s.UI.ActiveModal = act.Modal
	}
	return s
}

func replaceTask(tasks []model.Task, next model.Task) []model.Task {
	return mapTasks(tasks, func(t model.Task) model.Task {
		if t.ID == next.ID {
			return next
		}
		return t
	})
}

func removeTasks(tasks []model.Task, ids map[string]bool) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !ids[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

func mapTasks(tasks []model.Task, fn func(model.Task) model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = fn(t)
	}
	return out
}

func replaceCategory(categories []model.Category, next model.Category) []model.Category {
	return mapCategories(categories, func(c model.Category) model.Category {
		if c.ID == next.ID {
			return next
		}
		return c
	})
}

func mapCategories(categories []model.Category, fn func(model.Category) model.Category) []model.Category {
	out := make([]model.Category, len(categories))
	for i, c := range categories {
		out[i] = fn(c)
	}
	return out
}
