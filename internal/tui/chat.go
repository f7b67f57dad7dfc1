// Package tui is a terminal front-end for the chat widget. The keymap
// mirrors the widget events: enter submits, ctrl+t toggles the launcher,
// esc acts as a click outside the widget, ctrl+q closes it for good.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lilswapnil/scotty/internal/session"
	"github.com/lilswapnil/scotty/internal/widget"
)

// RefreshMsg asks the UI to re-render after a session store mutation from
// outside the update loop (e.g. an auto-submitted first question).
type RefreshMsg struct{}

// turnDoneMsg is emitted when a submit settles (reply or fallback applied).
// text carries the submitted input so a rejected turn can hand it back.
type turnDoneMsg struct {
	text string
	err  error
}

// Model is the bubbletea model wrapping one widget controller.
type Model struct {
	controller *widget.Controller
	input      textinput.Model
	spin       spinner.Model
	status     string
	width      int
	height     int
}

// NewModel creates the chat model. The widget starts minimized, showing
// only the launcher line.
func NewModel(controller *widget.Controller) Model {
	input := textinput.New()
	input.Placeholder = "Ask Scotty about Swapnil..."
	input.CharLimit = 500
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = thinkingStyle

	return Model{
		controller: controller,
		input:      input,
		spin:       spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case RefreshMsg:
		if m.controller.Store().Loading() {
			return m, m.spin.Tick
		}
		return m, nil

	case turnDoneMsg:
		switch {
		case msg.err == nil:
			m.status = ""
		case errors.Is(msg.err, widget.ErrBusy):
			m.status = "Still thinking..."
			// The turn never started, so give the typed text back unless
			// the user has already typed something new.
			if m.input.Value() == "" {
				m.input.SetValue(msg.text)
				m.input.CursorEnd()
			}
		case errors.Is(msg.err, widget.ErrEmptyInput):
			m.status = ""
		case errors.Is(msg.err, widget.ErrClosed):
			m.status = "Chat is closed."
		default:
			m.status = msg.err.Error()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		if m.controller.Store().Loading() {
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.controller.Teardown()
			return m, tea.Quit

		case "ctrl+q":
			if err := m.controller.Close(); err != nil {
				m.status = err.Error()
			}
			return m, tea.Quit

		case "ctrl+t":
			if err := m.controller.Toggle(); err != nil {
				m.status = err.Error()
			}
			return m, nil

		case "esc":
			m.controller.ClickOutside()
			return m, nil

		case "enter":
			if m.controller.State() != widget.StateOpen {
				return m, nil
			}
			text := m.input.Value()
			m.input.Reset()
			return m, tea.Batch(m.submitCmd(text), m.spin.Tick)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitCmd runs the blocking widget submit off the UI loop.
func (m Model) submitCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return turnDoneMsg{text: text, err: m.controller.Submit(context.Background(), text)}
	}
}

// rolePrefixes is the fixed role-to-label lookup table.
var rolePrefixes = map[session.Role]string{
	session.RoleUser:      "You",
	session.RoleAssistant: "Scotty",
}

// View implements tea.Model.
func (m Model) View() string {
	store := m.controller.Store()

	if store.Closed() {
		return closedStyle.Render("Ask Scotty is closed. Goodbye!") + "\n"
	}
	if store.Minimized() {
		return launcherStyle.Render("● Ask Scotty") +
			helpStyle.Render("  ctrl+t open · ctrl+c quit") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Ask Scotty"))
	b.WriteString("\n\n")

	messages := store.Messages()
	if len(messages) == 0 {
		b.WriteString(emptyStyle.Render("Hi! I'm Scotty. Ask me anything about Swapnil's work."))
		b.WriteString("\n")
	}
	for _, msg := range messages {
		prefix := rolePrefixes[msg.Role]
		style := assistantStyle
		if msg.Role == session.RoleUser {
			style = userStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s: %s", prefix, msg.Content)))
		b.WriteString("\n")
	}

	if store.Loading() {
		b.WriteString(m.spin.View())
		b.WriteString(thinkingStyle.Render("thinking..."))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter send · esc minimize · ctrl+q close · ctrl+c quit"))
	b.WriteString("\n")
	return b.String()
}
