package model

import "time"

// TaskDraft is the structured task proposal produced by the optimization
// workflow. It is not persisted directly; the user confirms it first and it
// becomes a Task through the normal creation path.
type TaskDraft struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	Tags        []string
	Reasoning   string
}

// Input converts the draft into task construction input, attaching the
// category the draft was requested under.
func (d TaskDraft) Input(categoryID string) TaskInput {
	return TaskInput{
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		DueDate:     d.DueDate,
		CategoryID:  categoryID,
		Tags:        d.Tags,
	}
}
