package frameq

import "sort"

// Queue defers work until the host's next render boundary. Tasks enqueue
// with a priority (0 is highest) and run in priority order, stable within
// a priority, when the owner calls Flush once per tick. The contract is
// "after current synchronous work, before the next paint"; work enqueued
// while flushing waits for the following flush.
type Queue struct {
	tasks  []task
	nextID int
}

type task struct {
	id       int
	priority int
	seq      int
	fn       func()
}

func New() *Queue {
	return &Queue{}
}

// Enqueue adds fn at the given priority and returns an id usable with
// Cancel.
func (q *Queue) Enqueue(fn func(), priority int) int {
	id := q.nextID
	q.nextID++
	q.tasks = append(q.tasks, task{id: id, priority: priority, seq: id, fn: fn})
	return id
}

// Cancel drops a pending task and reports whether it was still queued.
func (q *Queue) Cancel(id int) bool {
	for i, t := range q.tasks {
		if t.id == id {
			q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Flush drains the queue and runs the drained tasks in priority order.
func (q *Queue) Flush() {
	if len(q.tasks) == 0 {
		return
	}
	drained := q.tasks
	q.tasks = nil
	sort.SliceStable(drained, func(i, j int) bool {
		if drained[i].priority != drained[j].priority {
			return drained[i].priority < drained[j].priority
		}
		return drained[i].seq < drained[j].seq
	})
	for _, t := range drained {
		t.fn()
	}
}

// Len reports the number of pending tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Clear drops all pending tasks without running them.
func (q *Queue) Clear() {
	q.tasks = nil
}
