package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sandeepkv93/seeygo/internal/model"
)

type SortField string

const (
	SortByTitle     SortField = "title"
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByDueDate   SortField = "dueDate"
	SortByPriority  SortField = "priority"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortByTitle, SortByCreatedAt, SortByUpdatedAt, SortByDueDate, SortByPriority:
		return true
	default:
		return false
	}
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type Sort struct {
	Field SortField
	Order SortOrder
}

func DefaultSort() Sort {
	return Sort{Field: SortByCreatedAt, Order: SortDesc}
}

var titleCollator = collate.New(language.Und, collate.Loose)

// SortTasks returns a sorted copy of the collection. The sort is stable:
// equal keys keep their input order, which keeps re-rendered lists from
// jittering. A missing due date compares as infinitely late; descending
// order negates the whole comparison, so undated tasks lead a descending
// due-date sort.
func SortTasks(tasks []model.Task, s Sort) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareTasks(out[i], out[j], s.Field)
		if s.Order == SortDesc {
			c = -c
		}
		return c < 0
	})
	return out
}

func compareTasks(a, b model.Task, field SortField) int {
	switch field {
	case SortByTitle:
		return titleCollator.CompareString(a.Title, b.Title)
	case SortByUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case SortByDueDate:
		return compareDueDates(a, b)
	case SortByPriority:
		return a.Priority.Rank() - b.Priority.Rank()
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func compareDueDates(a, b model.Task) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	default:
		return a.DueDate.Compare(*b.DueDate)
	}
}
