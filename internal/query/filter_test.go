package query

import (
	"testing"
	"time"

	"github.com/sandeepkv93/seeygo/internal/model"
)

var now = time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func fixture() []model.Task {
	return []model.Task{
		{ID: "t1", Title: "Plan sprint", Priority: model.PriorityHigh, CategoryID: "work", Tags: []string{"planning"}},
		{ID: "t2", Title: "Buy groceries", Priority: model.PriorityMedium, CategoryID: "personal", DueDate: datePtr(now.Add(2 * time.Hour))},
		{ID: "t3", Title: "Pay rent", Priority: model.PriorityMedium, CategoryID: "personal", DueDate: datePtr(now.AddDate(0, 0, 2)), Completed: true},
		{ID: "t4", Title: "Read paper", Priority: model.PriorityLow, CategoryID: "study", DueDate: datePtr(now.AddDate(0, 0, -2))},
		{ID: "t5", Title: "Water plants", Priority: model.PriorityLow, CategoryID: "personal", Tags: []string{"home", "weekly"}},
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func sameIDs(got []model.Task, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, t := range got {
		if t.ID != want[i] {
			return false
		}
	}
	return true
}

func TestFilterByViewAll(t *testing.T) {
	got := FilterByView(fixture(), ViewAll, "", now)
	if len(got) != 5 {
		t.Fatalf("all view must keep everything, got %d", len(got))
	}
}

func TestFilterByViewToday(t *testing.T) {
	got := FilterByView(fixture(), ViewToday, "", now)
	if !sameIDs(got, "t2") {
		t.Fatalf("today view = %v", ids(got))
	}
}

func TestFilterByViewImportant(t *testing.T) {
	// t1 is high priority, t2 and t3 are due within three days, t4 is
	// overdue so due-date importance does not apply.
	got := FilterByView(fixture(), ViewImportant, "", now)
	if !sameIDs(got, "t1", "t2", "t3") {
		t.Fatalf("important view = %v", ids(got))
	}
}

func TestFilterByViewCompletedPartition(t *testing.T) {
	tasks := fixture()
	done := FilterByView(tasks, ViewCompleted, "", now)
	for _, task := range done {
		if !task.Completed {
			t.Fatalf("completed view leaked active task %s", task.ID)
		}
	}
	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	if len(done) != completed {
		t.Fatalf("completed view has %d tasks, collection holds %d completed", len(done), completed)
	}
}

func TestFilterByViewCategory(t *testing.T) {
	got := FilterByView(fixture(), ViewCategory, "personal", now)
	if !sameIDs(got, "t2", "t3", "t5") {
		t.Fatalf("category view = %v", ids(got))
	}
	if got := FilterByView(fixture(), ViewCategory, "", now); len(got) != 0 {
		t.Fatalf("category view without an id must be empty, got %v", ids(got))
	}
}

func TestApplyFiltersConjunction(t *testing.T) {
	prio := model.PriorityLow
	cat := "personal"
	f := Filters{Priority: &prio, CategoryID: &cat, Status: model.StatusAll}
	got := ApplyFilters(fixture(), f)
	if !sameIDs(got, "t5") {
		t.Fatalf("conjunction = %v", ids(got))
	}
}

func TestApplyFiltersStatus(t *testing.T) {
	f := DefaultFilters()
	f.Status = model.StatusActive
	for _, task := range ApplyFilters(fixture(), f) {
		if task.Completed {
			t.Fatalf("active filter leaked completed task %s", task.ID)
		}
	}
	f.Status = model.StatusCompleted
	if got := ApplyFilters(fixture(), f); !sameIDs(got, "t3") {
		t.Fatalf("completed filter = %v", ids(got))
	}
}

func TestApplyFiltersDateRangeExcludesUndated(t *testing.T) {
	from := now.AddDate(0, 0, -7)
	to := now.AddDate(0, 0, 7)
	got := ApplyFilters(fixture(), Filters{DateFrom: &from, DateTo: &to, Status: model.StatusAll})
	if !sameIDs(got, "t2", "t3", "t4") {
		t.Fatalf("date range = %v", ids(got))
	}
}

func TestApplyFiltersTags(t *testing.T) {
	got := ApplyFilters(fixture(), Filters{Tags: []string{"weekly", "missing"}, Status: model.StatusAll})
	if !sameIDs(got, "t5") {
		t.Fatalf("tag filter = %v", ids(got))
	}
}

func TestMatchesSearch(t *testing.T) {
	task := model.Task{Title: "Write Report", Description: "Quarterly numbers", Tags: []string{"finance"}}
	if !MatchesSearch(task, "report") {
		t.Fatal("title match is case-insensitive")
	}
	if !MatchesSearch(task, "quarterly") {
		t.Fatal("description should match")
	}
	if !MatchesSearch(task, "FIN") {
		t.Fatal("tags should match")
	}
	if MatchesSearch(task, "absent") {
		t.Fatal("non-matching search must exclude")
	}
	if !MatchesSearch(task, "") {
		t.Fatal("empty search matches everything")
	}
}

func TestFiltersIsEmpty(t *testing.T) {
	if !DefaultFilters().IsEmpty() {
		t.Fatal("default filters are empty")
	}
	f := DefaultFilters()
	f.Search = "x"
	if f.IsEmpty() {
		t.Fatal("search makes filters non-empty")
	}
}
