package ai

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sandeepkv93/seeygo/internal/model"
)

// Optimizer turns free-text task descriptions into structured TaskDrafts
// via the chat-completion endpoint. Each invocation either succeeds with a
// draft or fails with a tagged error; nothing is retried internally.
type Optimizer struct {
	client *Client
	log    *logrus.Logger
}

func NewOptimizer(cfg Config, log *logrus.Logger) *Optimizer {
	if log == nil {
		log = logrus.New()
	}
	return &Optimizer{client: NewClient(cfg), log: log}
}

// Optimize runs the blocking variant: one request, full response, one
// parse.
func (o *Optimizer) Optimize(ctx context.Context, req Request) (model.TaskDraft, error) {
	content, err := o.client.Complete(ctx, systemPrompt, userPrompt(req))
	if err != nil {
		o.log.WithError(err).Error("task optimization request failed")
		return model.TaskDraft{}, err
	}
	draft, err := ParseDraft(content)
	if err != nil {
		o.log.WithError(err).Error("task optimization response unusable")
		return model.TaskDraft{}, err
	}
	o.log.WithField("title", draft.Title).Info("task optimized")
	return draft, nil
}

// EventKind tags the entries of a streamed optimization.
type EventKind string

const (
	EventChunk    EventKind = "chunk"
	EventComplete EventKind = "complete"
	EventError    EventKind = "error"
)

// Event is one entry of the finite stream OptimizeStream produces:
// any number of chunks, then exactly one complete or error event.
type Event struct {
	Kind    EventKind
	Content string
	Draft   model.TaskDraft
	Err     error
}

// OptimizeStream runs the streaming variant. The returned channel yields
// chunk events as text arrives, then one terminal event, and is closed.
// The sequence is not restartable. A caller that loses interest cancels
// ctx; every send selects on ctx.Done, so the producer goroutine exits
// even when nobody is left reading.
func (o *Optimizer) OptimizeStream(ctx context.Context, req Request) <-chan Event {
	events := make(chan Event)
	send := func(ev Event) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}
	go func() {
		defer close(events)
		content, err := o.client.Stream(ctx, systemPrompt, userPrompt(req), func(chunk string) {
			send(Event{Kind: EventChunk, Content: chunk})
		})
		if err != nil {
			o.log.WithError(err).Error("streamed task optimization failed")
			send(Event{Kind: EventError, Err: err})
			return
		}
		draft, err := ParseDraft(content)
		if err != nil {
			o.log.WithError(err).Error("streamed task optimization response unusable")
			send(Event{Kind: EventError, Err: err})
			return
		}
		send(Event{Kind: EventComplete, Draft: draft})
	}()
	return events
}
