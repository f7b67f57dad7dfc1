package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lilswapnil/scotty/internal/session"
	"github.com/lilswapnil/scotty/internal/widget"
)

type echoCompleter struct{}

func (echoCompleter) Complete(_ context.Context, transcript []session.Message, _ string) (string, error) {
	return "echo: " + transcript[len(transcript)-1].Content, nil
}

func newTestModel() (Model, *widget.Controller) {
	c := widget.New(session.NewStore(), echoCompleter{}, "persona")
	return NewModel(c), c
}

func TestView_MinimizedShowsLauncher(t *testing.T) {
	m, _ := newTestModel()
	view := m.View()
	require.Contains(t, view, "Ask Scotty")
	require.NotContains(t, view, "enter send")
}

func TestView_OpenShowsTranscript(t *testing.T) {
	m, c := newTestModel()
	require.NoError(t, c.Toggle())
	require.NoError(t, c.Submit(context.Background(), "hello"))

	view := m.View()
	require.Contains(t, view, "You: hello")
	require.Contains(t, view, "Scotty: echo: hello")
	require.Contains(t, view, "enter send")
}

func TestView_ClosedShowsGoodbye(t *testing.T) {
	m, c := newTestModel()
	require.NoError(t, c.Toggle())
	require.NoError(t, c.Close())

	view := m.View()
	require.True(t, strings.Contains(view, "closed"))
	require.NotContains(t, view, "enter send")
}

// A submit rejected while another turn is in flight must not eat the typed
// text: the model hands it back to the input field.
func TestUpdate_BusyRejectRestoresInput(t *testing.T) {
	m, c := newTestModel()
	require.NoError(t, c.Toggle())

	next, _ := m.Update(turnDoneMsg{text: "tell me about musix", err: widget.ErrBusy})
	m = next.(Model)

	require.Equal(t, "tell me about musix", m.input.Value())
	require.Contains(t, m.View(), "Still thinking...")
}

// If the user already started retyping, the rejected text is dropped rather
// than clobbering the new draft.
func TestUpdate_BusyRejectKeepsNewDraft(t *testing.T) {
	m, _ := newTestModel()
	m.input.SetValue("a newer question")

	next, _ := m.Update(turnDoneMsg{text: "the old question", err: widget.ErrBusy})
	m = next.(Model)

	require.Equal(t, "a newer question", m.input.Value())
}

func TestUpdate_SettledTurnClearsStatus(t *testing.T) {
	m, _ := newTestModel()
	m.status = "Still thinking..."

	next, _ := m.Update(turnDoneMsg{text: "hello", err: nil})
	m = next.(Model)

	require.Empty(t, m.status)
	require.Empty(t, m.input.Value())
}

func TestRolePrefixesCoverAllRoles(t *testing.T) {
	require.Contains(t, rolePrefixes, session.RoleUser)
	require.Contains(t, rolePrefixes, session.RoleAssistant)
}
