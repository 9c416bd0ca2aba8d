package store

import (
	"testing"
	"time"

	"github.com/sandeepkv93/seeygo/internal/model"
	"github.com/sandeepkv93/seeygo/internal/query"
)

var now = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func task(id string) model.Task {
	return model.Task{ID: id, Title: id, Priority: model.PriorityMedium, CreatedAt: now, UpdatedAt: now}
}

func TestReduceNilActionIsNoop(t *testing.T) {
	s := InitialState()
	s.Tasks = []model.Task{task("a")}
	out := Reduce(s, nil)
	if len(out.Tasks) != 1 || out.Tasks[0].ID != "a" {
		t.Fatal("nil action must leave state unchanged")
	}
}

func TestReduceAddTaskDoesNotMutatePrior(t *testing.T) {
	s := InitialState()
	s1 := Reduce(s, AddTask{Task: task("a")})
	s2 := Reduce(s1, AddTask{Task: task("b")})
	if len(s1.Tasks) != 1 {
		t.Fatalf("earlier snapshot changed: %d tasks", len(s1.Tasks))
	}
	if len(s2.Tasks) != 2 || s2.Tasks[1].ID != "b" {
		t.Fatalf("append order wrong: %+v", s2.Tasks)
	}
}

func TestReduceUpdateTaskUnknownID(t *testing.T) {
	s := InitialState()
	s.Tasks = []model.Task{task("a")}
	out := Reduce(s, UpdateTask{Task: task("ghost")})
	if len(out.Tasks) != 1 || out.Tasks[0].ID != "a" {
		t.Fatal("updating an absent id must change nothing")
	}
}

func TestReduceDeleteTasks(t *testing.T) {
	s := InitialState()
	s.Tasks = []model.Task{task("a"), task("b"), task("c")}
	out := Reduce(s, DeleteTasks{IDs: []string{"a", "c", "ghost"}})
	if len(out.Tasks) != 1 || out.Tasks[0].ID != "b" {
		t.Fatalf("batch delete left %+v", out.Tasks)
	}
}

func TestReduceToggleTask(t *testing.T) {
	s := InitialState()
	s.Tasks = []model.Task{task("a")}
	later := now.Add(time.Minute)
	out := Reduce(s, ToggleTask{ID: "a", At: later})
	if !out.Tasks[0].Completed {
		t.Fatal("toggle must flip completion")
	}
	if !out.Tasks[0].UpdatedAt.Equal(later) {
		t.Fatalf("toggle must refresh UpdatedAt, got %v", out.Tasks[0].UpdatedAt)
	}
	back := Reduce(out, ToggleTask{ID: "a", At: later.Add(time.Minute)})
	if back.Tasks[0].Completed {
		t.Fatal("second toggle must flip back")
	}
}

func TestReduceAdjustCategoryCountClampsAtZero(t *testing.T) {
	s := InitialState()
	s.Categories = []model.Category{{ID: "c1", Name: "Work", TaskCount: 1, CreatedAt: now, UpdatedAt: now}}
	out := Reduce(s, AdjustCategoryCount{ID: "c1", Delta: -5, At: now.Add(time.Minute)})
	if out.Categories[0].TaskCount != 0 {
		t.Fatalf("counter must clamp at zero, got %d", out.Categories[0].TaskCount)
	}
	out = Reduce(out, AdjustCategoryCount{ID: "c1", Delta: 2, At: now.Add(2 * time.Minute)})
	if out.Categories[0].TaskCount != 2 {
		t.Fatalf("counter = %d", out.Categories[0].TaskCount)
	}
}

func TestReduceSetStatusFilterRejectsInvalid(t *testing.T) {
	s := InitialState()
	out := Reduce(s, SetStatusFilter{Status: model.Status("bogus")})
	if out.Filters.Status != model.StatusAll {
		t.Fatalf("invalid status must be ignored, got %q", out.Filters.Status)
	}
	out = Reduce(s, SetStatusFilter{Status: model.StatusActive})
	if out.Filters.Status != model.StatusActive {
		t.Fatalf("valid status must apply, got %q", out.Filters.Status)
	}
}

func TestReduceSetViewRejectsInvalid(t *testing.T) {
	s := InitialState()
	out := Reduce(s, SetView{View: query.View("bogus")})
	if out.UI.CurrentView != query.ViewAll {
		t.Fatalf("invalid view must be ignored, got %q", out.UI.CurrentView)
	}
	out = Reduce(s, SetView{View: query.ViewCategory, CategoryID: "c1"})
	if out.UI.CurrentView != query.ViewCategory || out.UI.CategoryID != "c1" {
		t.Fatalf("view not applied: %+v", out.UI)
	}
}

func TestReduceClearFilters(t *testing.T) {
	s := InitialState()
	prio := model.PriorityHigh
	s.Filters.Search = "x"
	s.Filters.Priority = &prio
	out := Reduce(s, ClearFilters{})
	if !out.Filters.IsEmpty() {
		t.Fatalf("filters must reset, got %+v", out.Filters)
	}
}

func TestReduceToggleSidebar(t *testing.T) {
	s := InitialState()
	out := Reduce(s, ToggleSidebar{})
	if !out.UI.SidebarCollapsed {
		t.Fatal("sidebar must collapse")
	}
	if Reduce(out, ToggleSidebar{}).UI.SidebarCollapsed {
		t.Fatal("sidebar must expand again")
	}
}
