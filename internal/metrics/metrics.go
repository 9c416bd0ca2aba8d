package metrics

import "time"

// Collector records operation timings, keeping the most recent samples per
// name for ad-hoc inspection. It is owned by the event loop goroutine like
// everything else in the core, so it carries no locking.
type Collector struct {
	samples map[string][]Sample
	now     func() time.Time
}

type Sample struct {
	Value float64
	Unit  string
	At    time.Time
}

// SampleStats summarizes the retained samples of one metric.
type SampleStats struct {
	Count int
	Avg   float64
	Min   float64
	Max   float64
}

const maxSamplesPerName = 100

func NewCollector() *Collector {
	return &Collector{
		samples: make(map[string][]Sample),
		now:     time.Now,
	}
}

// Record appends one sample, evicting the oldest beyond the retention cap.
func (c *Collector) Record(name string, value float64, unit string) {
	list := append(c.samples[name], Sample{Value: value, Unit: unit, At: c.now()})
	if len(list) > maxSamplesPerName {
		list = list[len(list)-maxSamplesPerName:]
	}
	c.samples[name] = list
}

// StartTimer begins timing an operation; the returned func stops the timer
// and records the elapsed milliseconds.
func (c *Collector) StartTimer(name string) func() {
	start := c.now()
	return func() {
		elapsed := c.now().Sub(start)
		c.Record(name, float64(elapsed.Microseconds())/1000.0, "ms")
	}
}

// Stats summarizes a metric, or reports false when nothing was recorded.
func (c *Collector) Stats(name string) (SampleStats, bool) {
	list := c.samples[name]
	if len(list) == 0 {
		return SampleStats{}, false
	}
	out := SampleStats{
		Count: len(list),
		Min:   list[0].Value,
		Max:   list[0].Value,
	}
	sum := 0.0
	for _, s := range list {
		sum += s.Value
		if s.Value < out.Min {
			out.Min = s.Value
		}
		if s.Value > out.Max {
			out.Max = s.Value
		}
	}
	out.Avg = sum / float64(out.Count)
	return out, true
}

// Names lists every metric with retained samples.
func (c *Collector) Names() []string {
	out := make([]string, 0, len(c.samples))
	for name := range c.samples {
		out = append(out, name)
	}
	return out
}

// Clear drops all retained samples.
func (c *Collector) Clear() {
	c.samples = make(map[string][]Sample)
}
