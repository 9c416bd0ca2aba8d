package ai

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/seeygo/internal/model"
)

func TestParseDraftPlainJSON(t *testing.T) {
	draft, err := ParseDraft(`{"title":"Buy milk","description":"2 liters","priority":"low","tags":["errands"],"reasoning":"simple errand"}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if draft.Title != "Buy milk" || draft.Description != "2 liters" {
		t.Fatalf("fields lost: %+v", draft)
	}
	if draft.Priority != model.PriorityLow {
		t.Fatalf("priority = %q", draft.Priority)
	}
	if len(draft.Tags) != 1 || draft.Tags[0] != "errands" {
		t.Fatalf("tags = %v", draft.Tags)
	}
}

func TestParseDraftSurroundedByProse(t *testing.T) {
	content := `Here is the result: {"title":"Buy milk","priority":"high"} Let me know if you need changes.`
	draft, err := ParseDraft(content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if draft.Title != "Buy milk" || draft.Priority != model.PriorityHigh {
		t.Fatalf("draft = %+v", draft)
	}
}

func TestParseDraftBracesInsideStrings(t *testing.T) {
	draft, err := ParseDraft(`{"title":"Fix {braces} bug","description":"closing } inside"}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if draft.Title != "Fix {braces} bug" {
		t.Fatalf("title = %q", draft.Title)
	}
}

func TestParseDraftNoJSON(t *testing.T) {
	if _, err := ParseDraft("I could not produce a task for that input."); !errors.Is(err, ErrNoJSON) {
		t.Fatalf("want ErrNoJSON, got %v", err)
	}
}

func TestParseDraftMissingTitle(t *testing.T) {
	if _, err := ParseDraft(`{"title":"  ","priority":"low"}`); !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("want ErrMissingTitle, got %v", err)
	}
}

func TestParseDraftCoercesUnknownPriority(t *testing.T) {
	draft, err := ParseDraft(`{"title":"x","priority":"urgent"}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if draft.Priority != model.PriorityMedium {
		t.Fatalf("unknown priority must coerce to medium, got %q", draft.Priority)
	}
}

func TestParseDraftDueDateFormats(t *testing.T) {
	draft, err := ParseDraft(`{"title":"x","dueDate":"2026-09-04"}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	if draft.DueDate == nil || !draft.DueDate.Equal(want) {
		t.Fatalf("date-only due date = %v", draft.DueDate)
	}

	draft, err = ParseDraft(`{"title":"x","dueDate":"2026-09-04T10:00:00Z"}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if draft.DueDate == nil || draft.DueDate.Hour() != 10 {
		t.Fatalf("rfc3339 due date = %v", draft.DueDate)
	}

	// An unparseable date drops silently rather than failing the draft.
	draft, err = ParseDraft(`{"title":"x","dueDate":"next tuesday"}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if draft.DueDate != nil {
		t.Fatalf("unparseable due date must drop, got %v", draft.DueDate)
	}
}

func TestParseDraftCapsTags(t *testing.T) {
	draft, err := ParseDraft(`{"title":"x","tags":["a","b","c","d","e","f","g"]}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(draft.Tags) != maxDraftTags {
		t.Fatalf("tags must cap at %d, got %d", maxDraftTags, len(draft.Tags))
	}
}

func TestParseDraftNonArrayTags(t *testing.T) {
	draft, err := ParseDraft(`{"title":"Buy milk","tags":"shopping"}`)
	if err != nil {
		t.Fatalf("non-array tags must not fail the draft: %v", err)
	}
	if draft.Title != "Buy milk" {
		t.Fatalf("well-typed fields must survive, got %+v", draft)
	}
	if draft.Tags == nil || len(draft.Tags) != 0 {
		t.Fatalf("mistyped tags must coerce to empty, got %v", draft.Tags)
	}
}

func TestParseDraftNumericPriority(t *testing.T) {
	draft, err := ParseDraft(`{"title":"Buy milk","priority":2}`)
	if err != nil {
		t.Fatalf("numeric priority must not fail the draft: %v", err)
	}
	if draft.Priority != model.PriorityMedium {
		t.Fatalf("mistyped priority must coerce to medium, got %q", draft.Priority)
	}
}

func TestParseDraftMalformedObject(t *testing.T) {
	if _, err := ParseDraft(`{"title":}`); !errors.Is(err, ErrBadJSON) {
		t.Fatalf("want ErrBadJSON, got %v", err)
	}
}

func TestParseDraftNilTagsBecomeEmpty(t *testing.T) {
	draft, err := ParseDraft(`{"title":"x"}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if draft.Tags == nil || len(draft.Tags) != 0 {
		t.Fatalf("tags = %v", draft.Tags)
	}
}

func TestExtractJSONObjectUnbalanced(t *testing.T) {
	if _, ok := extractJSONObject(`{"title":"never closed`); ok {
		t.Fatal("unbalanced object must not extract")
	}
}
