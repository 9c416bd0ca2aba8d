package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/seeygo/internal/actions"
	"github.com/sandeepkv93/seeygo/internal/model"
	"github.com/sandeepkv93/seeygo/internal/query"
	"github.com/sandeepkv93/seeygo/internal/store"
	"github.com/sandeepkv93/seeygo/internal/timeutil"
	"github.com/sandeepkv93/seeygo/internal/views"
)

// NoticeBuffer collects toasts emitted by the actions layer so the model
// can drain them on its next update. Single-goroutine, like the store.
type NoticeBuffer struct {
	items []actions.Notice
}

func NewNoticeBuffer() *NoticeBuffer {
	return &NoticeBuffer{}
}

func (b *NoticeBuffer) Push(n actions.Notice) {
	b.items = append(b.items, n)
}

func (b *NoticeBuffer) Drain() []actions.Notice {
	out := b.items
	b.items = nil
	return out
}

// WithNotices wires the actions layer's toast sink to the model.
func (m Model) WithNotices(buf *NoticeBuffer) Model {
	m.notices = buf
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch typed := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(typed)
	case spinner.TickMsg:
		if m.Optimize.Active && m.Optimize.Phase == OptimizeRequesting {
			m.optSpinner, cmd = m.optSpinner.Update(typed)
		}
	case OptimizeEventMsg:
		m, cmd = m.handleOptimizeEvent(typed)
	case ToastExpiredMsg:
		m.pruneToasts()
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
	}

	// Deferred mutations apply after the current handler, before the next
	// render.
	m.Acts.Frames().Flush()

	if m.notices != nil {
		if drained := m.notices.Drain(); len(drained) > 0 {
			m.Toasts = append(m.Toasts, drained...)
			cmd = batchCmds(cmd, tea.Tick(actions.ToastDuration, func(time.Time) tea.Msg { return ToastExpiredMsg{} }))
		}
	}
	m.pruneToasts()
	m.clampCursor()
	return m, cmd
}

func (m Model) handleKey(key tea.KeyMsg) (Model, tea.Cmd) {
	if m.Optimize.Active {
		return m.handleOptimizeKey(key)
	}
	if m.captureMode {
		return m.handleCaptureKey(key)
	}
	if m.searchMode {
		return m.handleSearchKey(key)
	}

	switch key.String() {
	case m.Keys.All:
		m.Store.Dispatch(store.SetView{View: query.ViewAll})
	case m.Keys.Today:
		m.Store.Dispatch(store.SetView{View: query.ViewToday})
	case m.Keys.Important:
		m.Store.Dispatch(store.SetView{View: query.ViewImportant})
	case m.Keys.Completed:
		m.Store.Dispatch(store.SetView{View: query.ViewCompleted})
	case m.Keys.Category:
		m.cycleCategoryView()
	case m.Keys.Add:
		m.captureMode = true
		m.quickAddInput.Focus()
		m.quickAddInput.SetValue("")
	case m.Keys.Search:
		m.searchMode = true
		m.searchInput.Focus()
		m.searchInput.SetValue(m.Store.State().Filters.Search)
	case m.Keys.Optimize:
		return m.openOptimizeModal()
	case "j", "down":
		m.Cursor++
	case "k", "up":
		m.Cursor--
	case " ", "enter":
		if task, ok := m.selectedTask(); ok {
			m.Acts.ToggleTask(task.ID)
		}
	case "d":
		if task, ok := m.selectedTask(); ok {
			m.Acts.DeleteTask(task.ID)
		}
	case "p":
		if task, ok := m.selectedTask(); ok {
			next := nextPriority(task.Priority)
			m.Acts.UpdateTask(task.ID, model.TaskUpdate{Priority: &next})
		}
	case "x":
		m.Store.Dispatch(store.SetShowCompleted{Show: !m.Store.State().UI.ShowCompleted})
	case "b":
		m.Store.Dispatch(store.ToggleSidebar{})
	case "X":
		m.Store.Dispatch(store.ClearFilters{})
		m.Status = StatusBar{Text: "filters cleared"}
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		m.Store.Close()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleCaptureKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.captureMode = false
		m.quickAddInput.Blur()
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.quickAddInput.Value())
		if title != "" {
			in := model.TaskInput{Title: title}
			if m.Store.State().UI.CurrentView == query.ViewCategory {
				in.CategoryID = m.Store.State().UI.CategoryID
			}
			m.Acts.CreateTask(in)
		}
		m.captureMode = false
		m.quickAddInput.Blur()
		m.quickAddInput.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(key)
	return m, cmd
}

func (m Model) handleSearchKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		m.Store.Dispatch(store.SetSearch{Search: ""})
		return m, nil
	case "enter":
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(key)
	m.Store.Dispatch(store.SetSearch{Search: m.searchInput.Value()})
	return m, cmd
}

func (m *Model) cycleCategoryView() {
	st := m.Store.State()
	if len(st.Categories) == 0 {
		return
	}
	next := 0
	if st.UI.CurrentView == query.ViewCategory {
		for i, c := range st.Categories {
			if c.ID == st.UI.CategoryID {
				next = (i + 1) % len(st.Categories)
				break
			}
		}
	}
	m.Store.Dispatch(store.SetView{View: query.ViewCategory, CategoryID: st.Categories[next].ID})
}

func (m Model) selectedTask() (model.Task, bool) {
	tasks := m.Store.VisibleTasks(m.now())
	if m.Cursor < 0 || m.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.Store.VisibleTasks(m.now()))
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m *Model) pruneToasts() {
	now := m.now()
	kept := m.Toasts[:0]
	for _, t := range m.Toasts {
		if now.Sub(t.At) < actions.ToastDuration {
			kept = append(kept, t)
		}
	}
	m.Toasts = kept
}

func nextPriority(p model.Priority) model.Priority {
	switch p {
	case model.PriorityLow:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityHigh
	default:
		return model.PriorityLow
	}
}

func batchCmds(cmds ...tea.Cmd) tea.Cmd {
	nonNil := make([]tea.Cmd, 0, len(cmds))
	for _, c := range cmds {
		if c != nil {
			nonNil = append(nonNil, c)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return tea.Batch(nonNil...)
	}
}

func (m Model) View() string {
	now := m.now()
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	main := m.renderTaskList(now)
	if m.Optimize.Active {
		main = m.renderOptimizePane()
	} else if m.HelpVisible {
		main = views.RenderMarkdown(helpText)
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("seeygo | view: %s", m.currentViewLabel()),
		Sidebar:    m.renderSidebar(now),
		MainPane:   main,
		StatusLine: status,
		Toasts:     m.renderToasts(),
		Footer: fmt.Sprintf("keys: %s all | %s today | %s important | %s done | %s cat | %s add | %s search | %s ai | %s help | %s quit",
			m.Keys.All, m.Keys.Today, m.Keys.Important, m.Keys.Completed, m.Keys.Category,
			m.Keys.Add, m.Keys.Search, m.Keys.Optimize, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) currentViewLabel() string {
	st := m.Store.State()
	if st.UI.CurrentView == query.ViewCategory {
		if c, ok := m.Store.Category(st.UI.CategoryID); ok {
			return "category: " + c.Name
		}
	}
	return string(st.UI.CurrentView)
}

func (m Model) renderSidebar(now time.Time) string {
	st := m.Store.State()
	if st.UI.SidebarCollapsed {
		return "»"
	}
	stats := m.Store.Stats(now)
	var b strings.Builder
	fmt.Fprintf(&b, "All        %d\n", stats.Total)
	fmt.Fprintf(&b, "Today      %d\n", stats.DueToday)
	fmt.Fprintf(&b, "Important  %d\n", stats.Important)
	fmt.Fprintf(&b, "Completed  %d\n", stats.Completed)
	fmt.Fprintf(&b, "Overdue    %d\n", stats.Overdue)
	b.WriteString("\ncategories:\n")
	for _, c := range st.Categories {
		fmt.Fprintf(&b, "  %s (%d)\n", c.Name, c.TaskCount)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderTaskList(now time.Time) string {
	var b strings.Builder
	if m.captureMode {
		fmt.Fprintf(&b, "new task: %s\n\n", m.quickAddInput.View())
	}
	if m.searchMode || m.Store.State().Filters.Search != "" {
		fmt.Fprintf(&b, "search: %s\n\n", m.searchInput.View())
	}
	tasks := m.Store.VisibleTasks(now)
	if len(tasks) == 0 {
		b.WriteString("no tasks here")
		return b.String()
	}
	for i, t := range tasks {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}
		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}
		due := ""
		if t.DueDate != nil {
			due = " due " + t.DueDate.Format("2006-01-02")
			if timeutil.IsOverdue(*t.DueDate, now) && !t.Completed {
				due += " (overdue)"
			}
		}
		tags := ""
		if len(t.Tags) > 0 {
			tags = " #" + strings.Join(t.Tags, " #")
		}
		fmt.Fprintf(&b, "%s%s %s [%s]%s%s · %s\n",
			cursor, check, t.Title, t.Priority, due, tags, timeutil.RelativeTime(t.UpdatedAt, now))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderToasts() string {
	if len(m.Toasts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.Toasts))
	for _, t := range m.Toasts {
		prefix := "✓"
		if t.IsError {
			prefix = "✗"
		}
		parts = append(parts, prefix+" "+t.Text)
	}
	return strings.Join(parts, "\n")
}

const helpText = `# seeygo

Navigate views with the number keys, move with j/k, toggle with space.

- **a** add a task in the current view
- **/** search title, description and tags
- **o** optimize free text into a task with the configured LLM
- **p** cycle the selected task's priority
- **d** delete the selected task
- **x** hide or show completed tasks
- **X** clear all filters
`
