package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/seeygo/internal/actions"
	"github.com/sandeepkv93/seeygo/internal/ai"
	"github.com/sandeepkv93/seeygo/internal/model"
	"github.com/sandeepkv93/seeygo/internal/store"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	All       string
	Today     string
	Important string
	Completed string
	Category  string
	Add       string
	Search    string
	Optimize  string
	Help      string
	Quit      string
}

// OptimizePhase is the per-invocation state machine of the optimize modal.
type OptimizePhase string

const (
	OptimizeIdle       OptimizePhase = "idle"
	OptimizeRequesting OptimizePhase = "requesting"
	OptimizeSucceeded  OptimizePhase = "succeeded"
	OptimizeFailed     OptimizePhase = "failed"
)

type OptimizeState struct {
	Active  bool
	Phase   OptimizePhase
	Content string
	Draft   model.TaskDraft
	Err     error
	// gen identifies the in-flight request; results from a superseded
	// generation are discarded instead of applied.
	gen int
	// cancel stops the in-flight request's producer goroutine. Set while
	// a request runs, invoked on close, supersede or completion.
	cancel context.CancelFunc
}

// Model is the bubbletea presentation model. All domain state lives in the
// injected store; this struct holds only view chrome.
type Model struct {
	Store     *store.Store
	Acts      *actions.Actions
	Optimizer *ai.Optimizer

	Cursor      int
	Toasts      []actions.Notice
	Optimize    OptimizeState
	Status      StatusBar
	Keys        GlobalKeyMap
	HelpVisible bool
	Quitting    bool

	captureMode   bool
	searchMode    bool
	quickAddInput textinput.Model
	searchInput   textinput.Model
	optimizeInput textinput.Model
	optSpinner    spinner.Model
	optViewport   viewport.Model
	notices       *NoticeBuffer
	now           func() time.Time
}

type ToastExpiredMsg struct{}

type OptimizeEventMsg struct {
	Event  ai.Event
	Gen    int
	Stream <-chan ai.Event
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

func NewModel(st *store.Store, acts *actions.Actions, optimizer *ai.Optimizer) Model {
	quickAdd := textinput.New()
	quickAdd.Placeholder = "task title"
	quickAdd.CharLimit = 200

	search := textinput.New()
	search.Placeholder = "search"

	optimize := textinput.New()
	optimize.Placeholder = "describe the task in your own words"
	optimize.CharLimit = 1000

	vp := viewport.New(80, 10)

	return Model{
		Store:     st,
		Acts:      acts,
		Optimizer: optimizer,
		Optimize:  OptimizeState{Phase: OptimizeIdle},
		Keys: GlobalKeyMap{
			All:       "1",
			Today:     "2",
			Important: "3",
			Completed: "4",
			Category:  "c",
			Add:       "a",
			Search:    "/",
			Optimize:  "o",
			Help:      "?",
			Quit:      "q",
		},
		quickAddInput: quickAdd,
		searchInput:   search,
		optimizeInput: optimize,
		optSpinner:    spinner.New(),
		optViewport:   vp,
		now:           time.Now,
	}
}
