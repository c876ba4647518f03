// Package footer renders the help and status lines under the picker grid,
// and hosts the jump-to-date prompt.
package footer

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datepick/pkg/tui/events"
	"tableflip.dev/datepick/pkg/tui/theme"
)

// Model tracks footer rendering state.
type Model struct {
	theme    theme.Theme
	helpLine string
	status   string

	jumping bool
	prompt  textinput.Model
}

// New returns a footer with the default key help.
func New(th theme.Theme) Model {
	prompt := textinput.New()
	prompt.Prompt = "jump: "
	prompt.Placeholder = "2006-01-02"

	return Model{
		theme:    th,
		helpLine: "hjkl move · enter pick · u up · [ ] page · g jump · q quit",
		prompt:   prompt,
	}
}

// SetStatus replaces the status line.
func (m *Model) SetStatus(status string) {
	m.status = status
}

// SetHelp replaces the help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// BeginJump opens the jump prompt in place of the help line.
func (m *Model) BeginJump() tea.Cmd {
	m.jumping = true
	m.prompt.SetValue("")
	return m.prompt.Focus()
}

// ExitJump closes the jump prompt.
func (m *Model) ExitJump() {
	m.jumping = false
	m.prompt.Blur()
}

// Jumping reports whether the jump prompt is open and capturing keys.
func (m *Model) Jumping() bool { return m.jumping }

// Update feeds keys to the jump prompt while it is open. Enter submits the
// typed value as a JumpSubmitMsg; esc abandons it.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.jumping {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.ExitJump()
			return nil
		case "enter":
			value := strings.TrimSpace(m.prompt.Value())
			m.ExitJump()
			if value == "" {
				return nil
			}
			return func() tea.Msg { return events.JumpSubmitMsg{Value: value} }
		}
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

// Height returns the number of lines the footer occupies.
func (m *Model) Height() int {
	if m.status == "" {
		return 1
	}
	return 2
}

// View renders the footer.
func (m *Model) View() string {
	bottom := m.theme.Help.Render(m.helpLine)
	if m.jumping {
		bottom = m.prompt.View()
	}
	lines := []string{bottom}
	if m.status != "" {
		lines = append([]string{m.theme.Status.Render(m.status)}, lines...)
	}
	return strings.Join(lines, "\n")
}
