package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/seeygo/internal/ai"
	"github.com/sandeepkv93/seeygo/internal/query"
	"github.com/sandeepkv93/seeygo/internal/store"
	"github.com/sandeepkv93/seeygo/internal/views"
)

func (m Model) openOptimizeModal() (Model, tea.Cmd) {
	m.Optimize = OptimizeState{Active: true, Phase: OptimizeIdle, gen: m.Optimize.gen}
	m.optimizeInput.Focus()
	m.optimizeInput.SetValue("")
	m.Store.Dispatch(store.SetActiveModal{Modal: "optimize"})
	return m, nil
}

func (m Model) closeOptimizeModal() Model {
	// Closing supersedes any in-flight request: cancel it so the producer
	// goroutine shuts down instead of blocking on a terminal send nobody
	// reads, and bump the generation so late events are dropped.
	if m.Optimize.cancel != nil {
		m.Optimize.cancel()
	}
	m.Optimize = OptimizeState{Phase: OptimizeIdle, gen: m.Optimize.gen + 1}
	m.optimizeInput.Blur()
	m.Store.Dispatch(store.SetActiveModal{Modal: ""})
	return m
}

func (m Model) handleOptimizeKey(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		return m.closeOptimizeModal(), nil
	case "enter":
		switch m.Optimize.Phase {
		case OptimizeIdle, OptimizeFailed:
			return m.startOptimize()
		case OptimizeSucceeded:
			categoryID := ""
			if st := m.Store.State(); st.UI.CurrentView == query.ViewCategory {
				categoryID = st.UI.CategoryID
			}
			m.Acts.CreateFromDraft(m.Optimize.Draft, categoryID)
			return m.closeOptimizeModal(), nil
		}
		return m, nil
	}
	if m.Optimize.Phase == OptimizeIdle || m.Optimize.Phase == OptimizeFailed {
		var cmd tea.Cmd
		m.optimizeInput, cmd = m.optimizeInput.Update(key)
		return m, cmd
	}
	return m, nil
}

func (m Model) startOptimize() (Model, tea.Cmd) {
	input := strings.TrimSpace(m.optimizeInput.Value())
	if input == "" {
		return m, nil
	}
	req := ai.Request{Input: input}
	if st := m.Store.State(); st.UI.CurrentView == query.ViewCategory {
		if c, ok := m.Store.Category(st.UI.CategoryID); ok {
			req.CategoryID = c.ID
			req.CategoryName = c.Name
		}
	}

	// A retry supersedes the previous request outright.
	if m.Optimize.cancel != nil {
		m.Optimize.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())

	m.Optimize.Phase = OptimizeRequesting
	m.Optimize.Content = ""
	m.Optimize.Err = nil
	m.Optimize.cancel = cancel
	m.Optimize.gen++
	gen := m.Optimize.gen

	stream := m.Optimizer.OptimizeStream(ctx, req)
	return m, tea.Batch(m.optSpinner.Tick, waitForOptimizeEvent(stream, gen))
}

func waitForOptimizeEvent(stream <-chan ai.Event, gen int) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-stream
		if !ok {
			return nil
		}
		return OptimizeEventMsg{Event: ev, Gen: gen, Stream: stream}
	}
}

// releaseOptimize frees the finished request's context.
func (m Model) releaseOptimize() Model {
	if m.Optimize.cancel != nil {
		m.Optimize.cancel()
		m.Optimize.cancel = nil
	}
	return m
}

func (m Model) handleOptimizeEvent(msg OptimizeEventMsg) (Model, tea.Cmd) {
	if msg.Gen != m.Optimize.gen || !m.Optimize.Active {
		// Stale result from a superseded or closed interaction.
		return m, nil
	}
	switch msg.Event.Kind {
	case ai.EventChunk:
		m.Optimize.Content += msg.Event.Content
		m.optViewport.SetContent(m.Optimize.Content)
		m.optViewport.GotoBottom()
		return m, waitForOptimizeEvent(msg.Stream, msg.Gen)
	case ai.EventComplete:
		m.Optimize.Phase = OptimizeSucceeded
		m.Optimize.Draft = msg.Event.Draft
		m = m.releaseOptimize()
		return m, nil
	case ai.EventError:
		m.Optimize.Phase = OptimizeFailed
		m.Optimize.Err = msg.Event.Err
		m = m.releaseOptimize()
		return m, nil
	}
	return m, nil
}

func (m Model) renderOptimizePane() string {
	var b strings.Builder
	b.WriteString("optimize task with AI\n\n")
	switch m.Optimize.Phase {
	case OptimizeIdle:
		fmt.Fprintf(&b, "input: %s\n\nenter to optimize, esc to cancel", m.optimizeInput.View())
	case OptimizeRequesting:
		fmt.Fprintf(&b, "%s thinking...\n\n%s", m.optSpinner.View(), m.optViewport.View())
	case OptimizeSucceeded:
		d := m.Optimize.Draft
		fmt.Fprintf(&b, "title:    %s\n", d.Title)
		if d.Description != "" {
			fmt.Fprintf(&b, "desc:     %s\n", d.Description)
		}
		fmt.Fprintf(&b, "priority: %s\n", d.Priority)
		if d.DueDate != nil {
			fmt.Fprintf(&b, "due:      %s\n", d.DueDate.Format("2006-01-02"))
		}
		if len(d.Tags) > 0 {
			fmt.Fprintf(&b, "tags:     #%s\n", strings.Join(d.Tags, " #"))
		}
		if d.Reasoning != "" {
			b.WriteString("\n" + views.RenderMarkdown(d.Reasoning) + "\n")
		}
		b.WriteString("\nenter to accept, esc to discard")
	case OptimizeFailed:
		fmt.Fprintf(&b, "error: %v\n\nenter to retry, esc to close", m.Optimize.Err)
	}
	return b.String()
}
