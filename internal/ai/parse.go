package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/seeygo/internal/model"
)

var (
	ErrNoJSON       = errors.New("ai: no JSON object found in response")
	ErrBadJSON      = errors.New("ai: response JSON could not be decoded")
	ErrMissingTitle = errors.New("ai: response is missing a title")
)

const maxDraftTags = 5

// rawDraft is the loosely-typed shape the model returns. Nothing of this
// shape escapes the parse step.
type rawDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"dueDate"`
	Tags        []string `json:"tags"`
	Reasoning   string   `json:"reasoning"`
}

// ParseDraft extracts and validates the model's JSON answer from its full
// response text. Title is the only hard requirement. Priority falls back to
// medium, an unparseable due date is dropped and tags default to empty;
// those fields are best-effort enrichment.
func ParseDraft(content string) (model.TaskDraft, error) {
	object, ok := extractJSONObject(content)
	if !ok {
		return model.TaskDraft{}, ErrNoJSON
	}

	var raw rawDraft
	if err := json.Unmarshal([]byte(object), &raw); err != nil {
		// A mismatched field type (tags as a string, priority as a
		// number) degrades to that field's default; the decoder still
		// fills the well-typed fields. Only malformed JSON fails.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return model.TaskDraft{}, fmt.Errorf("%w: %v", ErrBadJSON, err)
		}
	}
	if strings.TrimSpace(raw.Title) == "" {
		return model.TaskDraft{}, ErrMissingTitle
	}

	draft := model.TaskDraft{
		Title:       raw.Title,
		Description: raw.Description,
		Priority:    model.Priority(raw.Priority),
		Tags:        raw.Tags,
		Reasoning:   raw.Reasoning,
	}
	if !draft.Priority.IsValid() {
		draft.Priority = model.PriorityMedium
	}
	if raw.DueDate != "" {
		if due, ok := parseDueDate(raw.DueDate); ok {
			draft.DueDate = &due
		}
	}
	if draft.Tags == nil {
		draft.Tags = []string{}
	}
	if len(draft.Tags) > maxDraftTags {
		draft.Tags = draft.Tags[:maxDraftTags]
	}
	return draft, nil
}

// extractJSONObject finds the first balanced top-level {...} substring.
// The model is not guaranteed to return only JSON, so surrounding prose is
// ignored. Braces inside JSON strings do not count toward the balance.
func extractJSONObject(content string) (string, bool) {
	start := strings.IndexByte(content, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		ch := content[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return content[start : i+1], true
			}
		}
	}
	return "", false
}

func parseDueDate(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
