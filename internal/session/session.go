// Package session holds the in-memory state of one chat widget session:
// the ordered transcript plus the loading/minimized/closed visibility flags.
// State lives for the lifetime of the widget instance and is never persisted.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single transcript entry. Messages are append-only and ordered;
// position is the only identity a message has.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Store owns the session state for a single widget instance. All mutators
// are safe to call from the UI goroutine and a completion goroutine
// concurrently. An optional subscriber callback is invoked (outside the
// lock) after every mutation so a view can re-render.
type Store struct {
	mu        sync.Mutex
	id        string
	messages  []Message
	loading   bool
	minimized bool
	closed    bool

	subscriber func()
}

// NewStore creates a session store with the widget's initial state:
// empty transcript, minimized launcher, not closed, not loading.
func NewStore() *Store {
	return &Store{
		id:        uuid.NewString(),
		minimized: true,
	}
}

// ID returns the session identifier. It is generated once per store and is
// only used for log correlation.
func (s *Store) ID() string {
	return s.id
}

// Subscribe registers a callback fired after every state change. Passing nil
// removes the current subscriber.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subscriber = fn
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	fn := s.subscriber
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// AddMessage appends a message to the transcript. Append order is exactly
// call order; nothing is validated, dropped or reordered.
func (s *Store) AddMessage(msg Message) {
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	s.notify()
}

// ClearMessages resets the transcript to empty. Visibility flags are left
// untouched.
func (s *Store) ClearMessages() {
	s.mu.Lock()
	s.messages = nil
	s.mu.Unlock()
	s.notify()
}

// Messages returns a copy of the transcript in append order.
func (s *Store) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of transcript messages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// SetLoading records whether a completion request is in flight.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
	s.notify()
}

// Loading reports whether a completion request is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// SetMinimized records whether the widget is collapsed to its launcher.
func (s *Store) SetMinimized(v bool) {
	s.mu.Lock()
	s.minimized = v
	s.mu.Unlock()
	s.notify()
}

// Minimized reports whether the widget is collapsed to its launcher.
func (s *Store) Minimized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.minimized
}

// SetClosed records whether the widget has been dismissed.
func (s *Store) SetClosed(v bool) {
	s.mu.Lock()
	s.closed = v
	s.mu.Unlock()
	s.notify()
}

// Closed reports whether the widget has been dismissed.
func (s *Store) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
