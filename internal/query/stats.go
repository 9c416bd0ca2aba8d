package query

import (
	"time"

	"github.com/sandeepkv93/seeygo/internal/model"
	"github.com/sandeepkv93/seeygo/internal/timeutil"
)

// Stats are the summary counts shown in the navigation sidebar.
type Stats struct {
	Total     int
	Completed int
	Active    int
	DueToday  int
	Important int
	Overdue   int
}

// ComputeStats aggregates the collection in one pass. Active is always
// Total - Completed, and Overdue counts only unfinished tasks.
func ComputeStats(tasks []model.Task, now time.Time) Stats {
	var s Stats
	s.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
		if t.DueDate != nil && timeutil.IsToday(*t.DueDate, now) {
			s.DueToday++
		}
		if isImportant(t, now) {
			s.Important++
		}
		if t.DueDate != nil && timeutil.IsOverdue(*t.DueDate, now) && !t.Completed {
			s.Overdue++
		}
	}
	s.Active = s.Total - s.Completed
	return s
}
