// Package widget implements the chat widget controller: it mediates between
// user input events, the session store and the completion gateway, and owns
// the open/minimized/closed display transitions.
package widget

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/qmuntal/stateless"

	"github.com/lilswapnil/scotty/internal/logger"
	"github.com/lilswapnil/scotty/internal/session"
)

// FSM states for widget visibility.
type FSMState = stateless.State

var (
	StateMinimized FSMState = "Minimized"
	StateOpen      FSMState = "Open"
	StateClosed    FSMState = "Closed" // Terminal: widget dismissed until a new instance is created
)

// FSM triggers.
type FSMTrigger = stateless.Trigger

var (
	TriggerOpen     FSMTrigger = "Open"
	TriggerMinimize FSMTrigger = "Minimize"
	TriggerClose    FSMTrigger = "Close"
)

// FallbackReply is the only failure text a user ever sees in the transcript.
const FallbackReply = "I'm having trouble responding right now. Please try again later!"

var (
	// ErrBusy is returned when a submit arrives while a completion request
	// is still in flight. Callers may retry once the current turn settles.
	ErrBusy = errors.New("a reply is still in flight")
	// ErrClosed is returned for events after the widget has been dismissed
	// or torn down.
	ErrClosed = errors.New("widget is closed")
	// ErrEmptyInput is returned when the submitted text is blank.
	ErrEmptyInput = errors.New("empty input")
)

// Completer produces a reply for a transcript framed by the persona
// instruction. Both gateway.Gateway and gateway.Client satisfy it.
type Completer interface {
	Complete(ctx context.Context, transcript []session.Message, personaText string) (string, error)
}

// Controller orchestrates one widget instance. Visibility transitions run
// through a state machine so an illegal transition (e.g. reopening a closed
// widget) is rejected rather than silently applied.
type Controller struct {
	store       *session.Store
	completer   Completer
	personaText string

	mu         sync.Mutex
	busy       bool
	generation uint64
	tornDown   bool

	fsm *stateless.StateMachine
}

// New creates a controller over the given store. The widget starts
// minimized, matching the store's initial state.
func New(store *session.Store, completer Completer, personaText string) *Controller {
	c := &Controller{
		store:       store,
		completer:   completer,
		personaText: personaText,
	}

	fsm := stateless.NewStateMachine(StateMinimized)

	fsm.Configure(StateMinimized).
		OnEntry(func(_ context.Context, _ ...any) error {
			store.SetMinimized(true)
			return nil
		}).
		Permit(TriggerOpen, StateOpen).
		Permit(TriggerClose, StateClosed)

	fsm.Configure(StateOpen).
		OnEntry(func(_ context.Context, _ ...any) error {
			store.SetMinimized(false)
			return nil
		}).
		Permit(TriggerMinimize, StateMinimized).
		Permit(TriggerClose, StateClosed)

	// Closed is absorbing: no outbound transitions are configured.
	fsm.Configure(StateClosed).
		OnEntry(func(_ context.Context, _ ...any) error {
			store.SetClosed(true)
			return nil
		})

	c.fsm = fsm
	return c
}

// Store returns the session store owned by this controller's widget.
func (c *Controller) Store() *session.Store {
	return c.store
}

// State returns the current visibility state.
func (c *Controller) State() FSMState {
	return c.fsm.MustState()
}

// Toggle flips between the launcher and the open widget.
func (c *Controller) Toggle() error {
	if c.State() == StateClosed {
		return ErrClosed
	}
	if c.State() == StateMinimized {
		return c.fsm.Fire(TriggerOpen)
	}
	return c.fsm.Fire(TriggerMinimize)
}

// OpenWithQuestion forces the widget open and auto-submits question as the
// first user turn. An empty question just opens the widget.
func (c *Controller) OpenWithQuestion(ctx context.Context, question string) error {
	if c.State() == StateClosed {
		return ErrClosed
	}
	if c.State() == StateMinimized {
		if err := c.fsm.Fire(TriggerOpen); err != nil {
			return err
		}
	}
	if strings.TrimSpace(question) == "" {
		return nil
	}
	return c.Submit(ctx, question)
}

// ClickOutside minimizes the widget when it is open. In any other state it
// is a no-op, matching the desktop presentation.
func (c *Controller) ClickOutside() {
	if c.State() != StateOpen {
		return
	}
	if err := c.fsm.Fire(TriggerMinimize); err != nil {
		logger.L.Warn("minimize on outside click failed", "error", err)
	}
}

// Close dismisses the widget. The transcript stays in the store but no
// further events reach it; an in-flight reply, if any, is discarded when it
// lands. Loading is cleared here because the discarded turn will no longer
// touch the store.
func (c *Controller) Close() error {
	if c.State() == StateClosed {
		return nil
	}
	if err := c.fsm.Fire(TriggerClose); err != nil {
		return err
	}
	c.mu.Lock()
	c.generation++
	c.mu.Unlock()
	c.store.SetLoading(false)
	return nil
}

// Teardown invalidates the controller, e.g. when the hosting page goes away
// while a call is outstanding. The in-flight response, if it arrives, is
// discarded rather than applied to a stale store.
func (c *Controller) Teardown() {
	c.mu.Lock()
	c.tornDown = true
	c.generation++
	c.mu.Unlock()
	c.store.SetLoading(false)
}

// Submit appends text as a user turn, invokes the completer with the full
// transcript, and appends either the reply or FallbackReply. It blocks until
// the turn settles; run it on its own goroutine from event-loop callers.
//
// Exactly one request may be in flight per controller: a concurrent submit
// is rejected with ErrBusy instead of racing two responses.
func (c *Controller) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyInput
	}

	c.mu.Lock()
	if c.tornDown || c.State() == StateClosed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	c.busy = true
	gen := c.generation
	c.mu.Unlock()

	c.store.AddMessage(session.Message{Role: session.RoleUser, Content: text})
	c.store.SetLoading(true)

	// Cleanup runs on every path out of this function, so loading can never
	// stay stuck on a failed turn.
	defer func() {
		c.mu.Lock()
		live := gen == c.generation && !c.tornDown
		c.busy = false
		c.mu.Unlock()
		if live {
			c.store.SetLoading(false)
		}
	}()

	reply, err := c.completer.Complete(ctx, c.store.Messages(), c.personaText)
	if err != nil {
		logger.L.Warn("completion failed, substituting fallback reply", "session", c.store.ID(), "error", err)
		reply = FallbackReply
	}

	c.mu.Lock()
	live := gen == c.generation && !c.tornDown
	c.mu.Unlock()
	if !live {
		logger.L.Debug("discarding reply for stale widget", "session", c.store.ID())
		return nil
	}

	c.store.AddMessage(session.Message{Role: session.RoleAssistant, Content: reply})
	return nil
}
