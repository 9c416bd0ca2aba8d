package storage

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/seeygo/internal/model"
)

// Date-bearing fields cross the persistence boundary as explicit RFC 3339
// strings rather than relying on ambient time encoding.
const dateLayout = time.RFC3339Nano

// StoredTask is the wire shape of a task in the key-value store.
type StoredTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Completed   bool     `json:"completed"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"dueDate,omitempty"`
	CategoryID  string   `json:"categoryId,omitempty"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type StoredCategory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	TaskCount int    `json:"taskCount"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type StoredUIState struct {
	CurrentView      string `json:"currentView"`
	CategoryID       string `json:"categoryId,omitempty"`
	SidebarCollapsed bool   `json:"sidebarCollapsed"`
	ShowCompleted    bool   `json:"showCompleted"`
	ActiveModal      string `json:"activeModal,omitempty"`
}

func EncodeTask(t model.Task) StoredTask {
	out := StoredTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		CategoryID:  t.CategoryID,
		Tags:        t.Tags,
		CreatedAt:   encodeTime(t.CreatedAt),
		UpdatedAt:   encodeTime(t.UpdatedAt),
	}
	if t.DueDate != nil {
		out.DueDate = encodeTime(*t.DueDate)
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}

func DecodeTask(s StoredTask) (model.Task, error) {
	createdAt, err := decodeTime(s.CreatedAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %s createdAt: %w", s.ID, err)
	}
	updatedAt, err := decodeTime(s.UpdatedAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %s updatedAt: %w", s.ID, err)
	}
	out := model.Task{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Completed:   s.Completed,
		Priority:    model.Priority(s.Priority),
		CategoryID:  s.CategoryID,
		Tags:        s.Tags,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if !out.Priority.IsValid() {
		out.Priority = model.PriorityMedium
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if s.DueDate != "" {
		due, err := decodeTime(s.DueDate)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %s dueDate: %w", s.ID, err)
		}
		out.DueDate = &due
	}
	return out, nil
}

func EncodeCategory(c model.Category) StoredCategory {
	return StoredCategory{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		TaskCount: c.TaskCount,
		CreatedAt: encodeTime(c.CreatedAt),
		UpdatedAt: encodeTime(c.UpdatedAt),
	}
}

func DecodeCategory(s StoredCategory) (model.Category, error) {
	createdAt, err := decodeTime(s.CreatedAt)
	if err != nil {
		return model.Category{}, fmt.Errorf("category %s createdAt: %w", s.ID, err)
	}
	updatedAt, err := decodeTime(s.UpdatedAt)
	if err != nil {
		return model.Category{}, fmt.Errorf("category %s updatedAt: %w", s.ID, err)
	}
	return model.Category{
		ID:        s.ID,
		Name:      s.Name,
		Color:     s.Color,
		TaskCount: s.TaskCount,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func EncodeTasks(tasks []model.Task) []StoredTask {
	out := make([]StoredTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, EncodeTask(t))
	}
	return out
}

// DecodeTasks skips records that fail to decode instead of dropping the
// whole collection.
func DecodeTasks(stored []StoredTask) ([]model.Task, error) {
	out := make([]model.Task, 0, len(stored))
	var firstErr error
	for _, s := range stored {
		t, err := DecodeTask(s)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, t)
	}
	return out, firstErr
}

func EncodeCategories(categories []model.Category) []StoredCategory {
	out := make([]StoredCategory, 0, len(categories))
	for _, c := range categories {
		out = append(out, EncodeCategory(c))
	}
	return out
}

func DecodeCategories(stored []StoredCategory) ([]model.Category, error) {
	out := make([]model.Category, 0, len(stored))
	var firstErr error
	for _, s := range stored {
		c, err := DecodeCategory(s)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, c)
	}
	return out, firstErr
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func decodeTime(raw string) (time.Time, error) {
	return time.Parse(dateLayout, raw)
}
