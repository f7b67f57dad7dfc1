package widget

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lilswapnil/scotty/internal/session"
)

// stubCompleter answers immediately, capturing the transcript it was given.
type stubCompleter struct {
	mu         sync.Mutex
	transcript []session.Message
	persona    string
	reply      string
	err        error
}

func (s *stubCompleter) Complete(_ context.Context, transcript []session.Message, personaText string) (string, error) {
	s.mu.Lock()
	s.transcript = transcript
	s.persona = personaText
	s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// blockingCompleter parks every call until released, so tests can observe
// the in-flight window.
type blockingCompleter struct {
	started chan struct{}
	release chan struct{}
	reply   string
}

func newBlockingCompleter() *blockingCompleter {
	return &blockingCompleter{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		reply:   "late reply",
	}
}

func (b *blockingCompleter) Complete(_ context.Context, _ []session.Message, _ string) (string, error) {
	b.started <- struct{}{}
	<-b.release
	return b.reply, nil
}

func newController(c Completer) (*Controller, *session.Store) {
	store := session.NewStore()
	return New(store, c, "test persona"), store
}

func TestController_InitialState(t *testing.T) {
	c, store := newController(&stubCompleter{reply: "hi"})
	require.Equal(t, StateMinimized, c.State())
	require.True(t, store.Minimized())
	require.False(t, store.Closed())
	require.False(t, store.Loading())
	require.Empty(t, store.Messages())
}

// Scenario A: submit a question, transcript gains the user turn and the
// provider's reply, and the completer sees the full transcript.
func TestController_SubmitSuccess(t *testing.T) {
	stub := &stubCompleter{reply: "I have 2+ years of experience."}
	c, store := newController(stub)
	require.NoError(t, c.Toggle())

	require.NoError(t, c.Submit(context.Background(), "What is your experience?"))

	msgs := store.Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, session.Message{Role: session.RoleUser, Content: "What is your experience?"}, msgs[0])
	require.Equal(t, session.Message{Role: session.RoleAssistant, Content: "I have 2+ years of experience."}, msgs[1])

	require.Equal(t, []session.Message{msgs[0]}, stub.transcript)
	require.Equal(t, "test persona", stub.persona)
	require.False(t, store.Loading())
}

// Scenario B: on failure exactly one assistant message is appended, with the
// fixed fallback text and never the raw error.
func TestController_SubmitFailureAppendsFallback(t *testing.T) {
	stub := &stubCompleter{err: errors.New("upstream 500: secret detail")}
	c, store := newController(stub)
	require.NoError(t, c.Toggle())

	require.NoError(t, c.Submit(context.Background(), "hello"))

	msgs := store.Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, session.RoleAssistant, msgs[1].Role)
	require.Equal(t, FallbackReply, msgs[1].Content)
	require.NotContains(t, msgs[1].Content, "secret")
	require.False(t, store.Loading(), "loading must be reset on the failure path")
}

func TestController_SubmitEmptyInput(t *testing.T) {
	c, store := newController(&stubCompleter{reply: "hi"})
	require.NoError(t, c.Toggle())

	require.ErrorIs(t, c.Submit(context.Background(), "   "), ErrEmptyInput)
	require.Empty(t, store.Messages())
}

// A second submit while one is in flight is rejected, not raced.
func TestController_SubmitWhileBusy(t *testing.T) {
	blocking := newBlockingCompleter()
	c, store := newController(blocking)
	require.NoError(t, c.Toggle())

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background(), "first") }()
	<-blocking.started

	require.True(t, store.Loading())
	require.ErrorIs(t, c.Submit(context.Background(), "second"), ErrBusy)

	close(blocking.release)
	require.NoError(t, <-done)

	msgs := store.Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, "first", msgs[0].Content)
	require.Equal(t, "late reply", msgs[1].Content)
	require.False(t, store.Loading())

	// The guard lifts once the turn settles.
	require.NoError(t, c.Submit(context.Background(), "third"))
}

func TestController_ToggleAndClickOutside(t *testing.T) {
	c, store := newController(&stubCompleter{reply: "hi"})

	require.NoError(t, c.Toggle())
	require.Equal(t, StateOpen, c.State())
	require.False(t, store.Minimized())

	c.ClickOutside()
	require.Equal(t, StateMinimized, c.State())
	require.True(t, store.Minimized())

	// Outside clicks while minimized are no-ops.
	c.ClickOutside()
	require.Equal(t, StateMinimized, c.State())
}

func TestController_OpenWithQuestion(t *testing.T) {
	stub := &stubCompleter{reply: "about swapnil"}
	c, store := newController(stub)

	require.NoError(t, c.OpenWithQuestion(context.Background(), "Tell me about Swapnil"))

	require.Equal(t, StateOpen, c.State())
	msgs := store.Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, "Tell me about Swapnil", msgs[0].Content)
}

// Scenario D: close is absorbing; no event reaches the transcript afterwards.
func TestController_CloseIsAbsorbing(t *testing.T) {
	c, store := newController(&stubCompleter{reply: "hi"})
	require.NoError(t, c.Toggle())
	require.NoError(t, c.Submit(context.Background(), "hello"))

	require.NoError(t, c.Close())
	require.Equal(t, StateClosed, c.State())
	require.True(t, store.Closed())

	require.ErrorIs(t, c.Toggle(), ErrClosed)
	require.ErrorIs(t, c.Submit(context.Background(), "again"), ErrClosed)
	require.ErrorIs(t, c.OpenWithQuestion(context.Background(), "q"), ErrClosed)
	require.NoError(t, c.Close(), "closing twice is a no-op")

	require.Len(t, store.Messages(), 2)
}

// A reply that lands after teardown is discarded, never applied.
func TestController_StaleReplyDiscardedAfterTeardown(t *testing.T) {
	blocking := newBlockingCompleter()
	c, store := newController(blocking)
	require.NoError(t, c.Toggle())

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background(), "hello") }()
	<-blocking.started

	c.Teardown()
	require.False(t, store.Loading(), "teardown clears the loading flag immediately")

	close(blocking.release)
	require.NoError(t, <-done)

	msgs := store.Messages()
	require.Len(t, msgs, 1, "stale assistant reply must not be appended")
	require.Equal(t, session.RoleUser, msgs[0].Role)
	require.False(t, store.Loading())

	require.ErrorIs(t, c.Submit(context.Background(), "after teardown"), ErrClosed)
}

// A reply that lands after close is likewise discarded.
func TestController_StaleReplyDiscardedAfterClose(t *testing.T) {
	blocking := newBlockingCompleter()
	c, store := newController(blocking)
	require.NoError(t, c.Toggle())

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background(), "hello") }()
	<-blocking.started

	require.NoError(t, c.Close())
	require.False(t, store.Loading(), "close clears the loading flag immediately")

	close(blocking.release)
	require.NoError(t, <-done)

	require.Len(t, store.Messages(), 1)
	require.False(t, store.Loading(), "a dismissed widget never stays stuck loading")
}

// Loading is true strictly during the in-flight window.
func TestController_LoadingWindow(t *testing.T) {
	blocking := newBlockingCompleter()
	c, store := newController(blocking)
	require.NoError(t, c.Toggle())

	require.False(t, store.Loading())

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background(), "hello") }()
	<-blocking.started
	require.True(t, store.Loading())

	close(blocking.release)
	require.NoError(t, <-done)

	require.Eventually(t, func() bool { return !store.Loading() },
		time.Second, 5*time.Millisecond)
}
