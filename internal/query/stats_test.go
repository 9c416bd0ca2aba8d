package query

import (
	"testing"
)

func TestComputeStats(t *testing.T) {
	s := ComputeStats(fixture(), now)
	if s.Total != 5 {
		t.Fatalf("Total = %d", s.Total)
	}
	if s.Completed != 1 {
		t.Fatalf("Completed = %d", s.Completed)
	}
	if s.DueToday != 1 {
		t.Fatalf("DueToday = %d", s.DueToday)
	}
	if s.Important != 3 {
		t.Fatalf("Important = %d", s.Important)
	}
	if s.Overdue != 1 {
		t.Fatalf("Overdue = %d", s.Overdue)
	}
}

func TestComputeStatsActiveIdentity(t *testing.T) {
	s := ComputeStats(fixture(), now)
	if s.Completed+s.Active != s.Total {
		t.Fatalf("completed(%d) + active(%d) != total(%d)", s.Completed, s.Active, s.Total)
	}
}

func TestComputeStatsOverdueIgnoresCompleted(t *testing.T) {
	tasks := fixture()
	for i := range tasks {
		tasks[i].Completed = true
	}
	s := ComputeStats(tasks, now)
	if s.Overdue != 0 {
		t.Fatalf("completed tasks must not count as overdue, got %d", s.Overdue)
	}
	if s.Active != 0 {
		t.Fatalf("Active = %d", s.Active)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil, now)
	if s != (Stats{}) {
		t.Fatalf("empty collection must yield zero stats, got %+v", s)
	}
}
