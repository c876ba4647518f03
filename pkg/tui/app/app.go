// Package app hosts the Bubble Tea program for the interactive picker.
package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepick/pkg/civil"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/store"
	"tableflip.dev/datepick/pkg/tui/components/footer"
	"tableflip.dev/datepick/pkg/tui/components/pickergrid"
	"tableflip.dev/datepick/pkg/tui/events"
	"tableflip.dev/datepick/pkg/tui/theme"
)

// Model composes the picker grid and the footer into a full-screen app.
type Model struct {
	grid   *pickergrid.Model
	bottom footer.Model

	width  int
	height int
}

// New builds the app model around engine options, decorating days from the
// marks store when one is supplied.
func New(opts picker.Options, marks store.Persistence) *Model {
	th := theme.Default()
	grid := pickergrid.New(opts, th)

	if marks != nil {
		marked := map[string]bool{}
		for _, mk := range marks.List(context.Background()) {
			marked[mk.Date.String()] = true
		}
		grid.SetMarked(marked)
	}

	return &Model{
		grid:   grid,
		bottom: footer.New(th),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return m.grid.Init() }

// Update routes keys to the grid and mirrors pick events on the status line.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if m.bottom.Jumping() {
			return m, m.bottom.Update(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "g":
			return m, m.bottom.BeginJump()
		}
	case events.JumpSubmitMsg:
		return m, m.jumpTo(msg.Value)
	case events.PickMsg:
		m.bottom.SetStatus(msg.Describe())
		return m, nil
	case events.RangePickMsg:
		m.bottom.SetStatus(msg.Describe())
		return m, nil
	case events.PageChangedMsg, events.GranularityMsg:
		return m, nil
	case events.MarksReloadedMsg:
		m.grid.SetMarked(msg.Marked)
		return m, nil
	}

	next, cmd := m.grid.Update(msg)
	if g, ok := next.(*pickergrid.Model); ok {
		m.grid = g
	}
	return m, cmd
}

// jumpTo parses a typed jump value and pages the grid to it. Month and year
// values land on the first cell of the period.
func (m *Model) jumpTo(value string) tea.Cmd {
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return m.grid.JumpTo(civil.FromTime(t))
		}
	}
	m.bottom.SetStatus(fmt.Sprintf("cannot jump to %q", value))
	return nil
}

// View stacks the grid over the footer.
func (m *Model) View() string {
	body := m.grid.View()
	if m.height > 0 {
		filler := m.height - lipgloss.Height(body) - m.bottom.Height()
		for i := 0; i < filler; i++ {
			body += "\n"
		}
	} else {
		body += "\n"
	}
	return body + "\n" + m.bottom.View()
}

// Run launches the interactive picker program. When a marks store is
// supplied its changes are streamed into the UI, so marks added from
// another terminal appear without a restart.
func Run(opts picker.Options, marks store.Persistence) error {
	p := tea.NewProgram(New(opts, marks), tea.WithAltScreen())

	if marks != nil {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if ch, err := marks.Watch(ctx); err == nil {
			go func() {
				for range ch {
					marked := map[string]bool{}
					for _, mk := range marks.List(ctx) {
						marked[mk.Date.String()] = true
					}
					p.Send(events.MarksReloadedMsg{Marked: marked})
				}
			}()
		}
	}

	_, err := p.Run()
	return err
}
