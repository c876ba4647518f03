package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/datepick/pkg/civil"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/selection"
	"tableflip.dev/datepick/pkg/tui/events"
)

func stripANSIString(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func testModel() *Model {
	return New(picker.Options{
		Mode:  selection.Single,
		Today: civil.NewDate(2024, time.July, 9),
	}, nil)
}

func TestViewStacksGridAndFooter(t *testing.T) {
	m := testModel()

	view := stripANSIString(m.View())
	if !strings.Contains(view, "July 2024") {
		t.Fatalf("view missing grid title:\n%s", view)
	}
	if !strings.Contains(view, "q quit") {
		t.Fatalf("view missing footer help:\n%s", view)
	}
}

func TestPickUpdatesStatusLine(t *testing.T) {
	m := testModel()

	next, _ := m.Update(events.PickMsg{Date: civil.NewDate(2024, time.July, 4)})
	m = next.(*Model)

	view := stripANSIString(m.View())
	if !strings.Contains(view, "picked 2024-07-04") {
		t.Fatalf("status line missing pick:\n%s", view)
	}
}

func TestJumpPromptRepositionsGrid(t *testing.T) {
	m := testModel()

	next, _ := m.Update(tea.KeyPressMsg{Text: "g", Code: 'g'})
	m = next.(*Model)
	if view := stripANSIString(m.View()); !strings.Contains(view, "jump:") {
		t.Fatalf("prompt not open:\n%s", view)
	}

	for _, r := range "2024-12-25" {
		next, _ = m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
		m = next.(*Model)
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter produced no submit command")
	}
	sub, ok := cmd().(events.JumpSubmitMsg)
	if !ok {
		t.Fatalf("expected JumpSubmitMsg, got %T", cmd())
	}
	if sub.Value != "2024-12-25" {
		t.Fatalf("unexpected submitted value %q", sub.Value)
	}

	next, _ = m.Update(sub)
	m = next.(*Model)
	if view := stripANSIString(m.View()); !strings.Contains(view, "December 2024") {
		t.Fatalf("grid did not jump:\n%s", view)
	}
}

func TestJumpIgnoresUnparsableValue(t *testing.T) {
	m := testModel()

	next, _ := m.Update(events.JumpSubmitMsg{Value: "not-a-date"})
	m = next.(*Model)

	view := stripANSIString(m.View())
	if !strings.Contains(view, "July 2024") {
		t.Fatalf("grid moved on bad input:\n%s", view)
	}
	if !strings.Contains(view, "cannot jump") {
		t.Fatalf("missing error status:\n%s", view)
	}
}

func TestQuitKeys(t *testing.T) {
	m := testModel()

	for _, key := range []tea.KeyPressMsg{
		{Text: "q", Code: 'q'},
		{Code: tea.KeyEscape},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("key %v did not quit", key)
		}
	}
}
