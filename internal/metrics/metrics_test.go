package metrics

import (
	"testing"
	"time"
)

func TestRecordAndStats(t *testing.T) {
	c := NewCollector()
	c.Record("render", 10, "ms")
	c.Record("render", 20, "ms")
	c.Record("render", 30, "ms")

	s, ok := c.Stats("render")
	if !ok {
		t.Fatal("expected stats for recorded metric")
	}
	if s.Count != 3 || s.Min != 10 || s.Max != 30 || s.Avg != 20 {
		t.Fatalf("stats = %+v", s)
	}
}

func TestStatsUnknownName(t *testing.T) {
	if _, ok := NewCollector().Stats("absent"); ok {
		t.Fatal("unrecorded metric must report absence")
	}
}

func TestRetentionCap(t *testing.T) {
	c := NewCollector()
	for i := 0; i < maxSamplesPerName+50; i++ {
		c.Record("busy", float64(i), "ms")
	}
	s, _ := c.Stats("busy")
	if s.Count != maxSamplesPerName {
		t.Fatalf("retained %d samples, cap is %d", s.Count, maxSamplesPerName)
	}
	// The oldest 50 samples were evicted, so the minimum is sample 50.
	if s.Min != 50 {
		t.Fatalf("eviction must drop oldest first, min = %v", s.Min)
	}
}

func TestStartTimerRecordsElapsedMillis(t *testing.T) {
	c := NewCollector()
	instant := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return instant }

	stop := c.StartTimer("op")
	instant = instant.Add(250 * time.Millisecond)
	stop()

	s, ok := c.Stats("op")
	if !ok {
		t.Fatal("timer must record a sample")
	}
	if s.Count != 1 || s.Avg != 250 {
		t.Fatalf("stats = %+v", s)
	}
}

func TestNamesAndClear(t *testing.T) {
	c := NewCollector()
	c.Record("a", 1, "ms")
	c.Record("b", 2, "ms")
	if len(c.Names()) != 2 {
		t.Fatalf("names = %v", c.Names())
	}
	c.Clear()
	if len(c.Names()) != 0 {
		t.Fatal("clear must drop every metric")
	}
}
