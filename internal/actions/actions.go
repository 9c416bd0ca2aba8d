package actions

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sandeepkv93/seeygo/internal/frameq"
	"github.com/sandeepkv93/seeygo/internal/metrics"
	"github.com/sandeepkv93/seeygo/internal/model"
	"github.com/sandeepkv93/seeygo/internal/store"
)

// ToastDuration is how long a transient notice stays visible before the UI
// auto-dismisses it.
const ToastDuration = 3 * time.Second

// Notice is a transient user-facing notification emitted alongside a
// mutation.
type Notice struct {
	Text    string
	IsError bool
	At      time.Time
}

// Actions pairs each domain mutation with its side effects: dependent
// counter bookkeeping, a structured log entry, a timing measurement and a
// toast. Every public method catches its own failures and reports success
// explicitly; nothing propagates to the UI event handler as a panic or
// error value.
type Actions struct {
	store   *store.Store
	log     *logrus.Logger
	metrics *metrics.Collector
	frames  *frameq.Queue
	notify  func(Notice)
	now     func() time.Time
}

func New(st *store.Store, log *logrus.Logger, collector *metrics.Collector, frames *frameq.Queue, notify func(Notice)) *Actions {
	if log == nil {
		log = logrus.New()
	}
	if collector == nil {
		collector = metrics.NewCollector()
	}
	if frames == nil {
		frames = frameq.New()
	}
	if notify == nil {
		notify = func(Notice) {}
	}
	return &Actions{
		store:   st,
		log:     log,
		metrics: collector,
		frames:  frames,
		notify:  notify,
		now:     time.Now,
	}
}

// Frames exposes the deferred-task queue so the update loop can flush it
// once per tick.
func (a *Actions) Frames() *frameq.Queue {
	return a.frames
}

// CreateTask validates the input, adds the task and increments the owning
// category's counter when one is referenced.
func (a *Actions) CreateTask(in model.TaskInput) (model.Task, bool) {
	stop := a.metrics.StartTimer("task_creation")
	defer stop()

	if err := model.ValidateTaskInput(in); err != nil {
		a.log.WithError(err).Warn("task creation rejected")
		a.toastError(fmt.Sprintf("Could not create task: %v", err))
		return model.Task{}, false
	}

	task := model.NewTask(in, a.now())
	a.store.Dispatch(store.AddTask{Task: task})
	if task.CategoryID != "" {
		a.store.Dispatch(store.AdjustCategoryCount{ID: task.CategoryID, Delta: 1, At: a.now()})
	}

	a.log.WithFields(logrus.Fields{
		"task_id":     task.ID,
		"category_id": task.CategoryID,
	}).Info("task created")
	a.toast("Task created")
	return task, true
}

// CreateFromDraft feeds an accepted optimization draft through the normal
// creation path.
func (a *Actions) CreateFromDraft(draft model.TaskDraft, categoryID string) (model.Task, bool) {
	return a.CreateTask(draft.Input(categoryID))
}

// UpdateTask applies a partial update. An unknown id is an expected
// absence and reports false without a toast. A category change moves the
// counter from the old category to the new one.
func (a *Actions) UpdateTask(id string, u model.TaskUpdate) bool {
	stop := a.metrics.StartTimer("task_update")
	defer stop()

	current, ok := a.store.Task(id)
	if !ok {
		a.log.WithField("task_id", id).Warn("update of unknown task")
		return false
	}
	next := model.ApplyUpdate(current, u, a.now())
	a.store.Dispatch(store.UpdateTask{Task: next})
	if next.CategoryID != current.CategoryID {
		if current.CategoryID != "" {
			a.store.Dispatch(store.AdjustCategoryCount{ID: current.CategoryID, Delta: -1, At: a.now()})
		}
		if next.CategoryID != "" {
			a.store.Dispatch(store.AdjustCategoryCount{ID: next.CategoryID, Delta: 1, At: a.now()})
		}
	}

	a.log.WithField("task_id", id).Info("task updated")
	a.toast("Task updated")
	return true
}

// DeleteTask removes the task and decrements its category's counter.
func (a *Actions) DeleteTask(id string) bool {
	stop := a.metrics.StartTimer("task_deletion")
	defer stop()

	task, ok := a.store.Task(id)
	if !ok {
		a.log.WithField("task_id", id).Warn("delete of unknown task")
		return false
	}
	a.store.Dispatch(store.DeleteTask{ID: id})
	if task.CategoryID != "" {
		a.store.Dispatch(store.AdjustCategoryCount{ID: task.CategoryID, Delta: -1, At: a.now()})
	}

	a.log.WithField("task_id", id).Info("task deleted")
	a.toast("Task deleted")
	return true
}

// ToggleTask defers the completion flip through the frame queue so it
// applies after the current synchronous work, before the next paint. The
// toggle still lands even if the originating UI element is gone by then,
// since it mutates global state.
func (a *Actions) ToggleTask(id string) bool {
	stop := a.metrics.StartTimer("task_completion_toggle")
	defer stop()

	if _, ok := a.store.Task(id); !ok {
		a.log.WithField("task_id", id).Warn("toggle of unknown task")
		return false
	}
	a.frames.Enqueue(func() {
		a.store.Dispatch(store.ToggleTask{ID: id, At: a.now()})
	}, 0)

	a.log.WithField("task_id", id).Info("task completion toggled")
	return true
}

// DeleteTasks bulk-removes tasks. The per-category tally is taken before
// the removal because the task-to-category mapping is gone afterwards.
func (a *Actions) DeleteTasks(ids []string) bool {
	stop := a.metrics.StartTimer("batch_task_deletion")
	defer stop()

	byCategory := make(map[string]int)
	for _, id := range ids {
		if task, ok := a.store.Task(id); ok && task.CategoryID != "" {
			byCategory[task.CategoryID]++
		}
	}

	a.store.Dispatch(store.DeleteTasks{IDs: ids})
	for categoryID, count := range byCategory {
		a.store.Dispatch(store.AdjustCategoryCount{ID: categoryID, Delta: -count, At: a.now()})
	}

	a.log.WithField("count", len(ids)).Info("tasks deleted")
	a.toast(fmt.Sprintf("Deleted %d tasks", len(ids)))
	return true
}

// CreateCategory validates the name and adds the category.
func (a *Actions) CreateCategory(name, color string) (model.Category, bool) {
	stop := a.metrics.StartTimer("category_creation")
	defer stop()

	if err := model.ValidateCategoryName(name); err != nil {
		a.log.WithError(err).Warn("category creation rejected")
		a.toastError(fmt.Sprintf("Could not create category: %v", err))
		return model.Category{}, false
	}

	category := model.NewCategory(name, color, a.now())
	a.store.Dispatch(store.AddCategory{Category: category})

	a.log.WithField("category_id", category.ID).Info("category created")
	a.toast("Category created")
	return category, true
}

func (a *Actions) UpdateCategory(id string, u model.CategoryUpdate) bool {
	stop := a.metrics.StartTimer("category_update")
	defer stop()

	current, ok := a.store.Category(id)
	if !ok {
		a.log.WithField("category_id", id).Warn("update of unknown category")
		return false
	}
	if u.Name != nil {
		if err := model.ValidateCategoryName(*u.Name); err != nil {
			a.log.WithError(err).Warn("category update rejected")
			a.toastError(fmt.Sprintf("Could not update category: %v", err))
			return false
		}
	}
	a.store.Dispatch(store.UpdateCategory{Category: model.ApplyCategoryUpdate(current, u, a.now())})

	a.log.WithField("category_id", id).Info("category updated")
	a.toast("Category updated")
	return true
}

// DeleteCategory removes the category. Tasks keep their CategoryID; an
// orphaned reference reads as uncategorized.
func (a *Actions) DeleteCategory(id string) bool {
	stop := a.metrics.StartTimer("category_deletion")
	defer stop()

	if _, ok := a.store.Category(id); !ok {
		a.log.WithField("category_id", id).Warn("delete of unknown category")
		return false
	}
	a.store.Dispatch(store.DeleteCategory{ID: id})

	a.log.WithField("category_id", id).Info("category deleted")
	a.toast("Category deleted")
	return true
}

func (a *Actions) toast(text string) {
	a.notify(Notice{Text: text, At: a.now()})
}

func (a *Actions) toastError(text string) {
	a.notify(Notice{Text: text, IsError: true, At: a.now()})
}
