// Package pickergrid renders the picker engine as an interactive grid with
// vim-style cursor movement.
package pickergrid

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepick/pkg/civil"
	"tableflip.dev/datepick/pkg/grid"
	"tableflip.dev/datepick/pkg/navigator"
	"tableflip.dev/datepick/pkg/picker"
	"tableflip.dev/datepick/pkg/selection"
	"tableflip.dev/datepick/pkg/tui/events"
	"tableflip.dev/datepick/pkg/tui/theme"
)

// Model wraps a picker engine as a Bubble Tea component.
type Model struct {
	engine *picker.Picker
	theme  theme.Theme

	cursor int
	marked map[string]bool

	// pending collects engine callbacks fired during the current Update so
	// they can be re-emitted as messages.
	pending []tea.Msg

	width  int
	height int
}

// New builds a component around engine options. The component installs its
// own callbacks; hosts observe picks through the emitted messages.
func New(opts picker.Options, th theme.Theme) *Model {
	m := &Model{theme: th, marked: map[string]bool{}}

	opts.OnPick = func(d civil.Date) {
		m.pending = append(m.pending, events.PickMsg{Date: d})
	}
	opts.OnRangePick = func(r selection.DateRange) {
		m.pending = append(m.pending, events.RangePickMsg{Range: r})
	}
	m.engine = picker.New(opts)
	m.cursor = m.initialCursor()
	return m
}

// Engine exposes the underlying picker for queries.
func (m *Model) Engine() *picker.Picker { return m.engine }

// SetMarked flags the days that carry stored marks, keyed by
// civil.Date.String().
func (m *Model) SetMarked(marked map[string]bool) {
	if marked == nil {
		marked = map[string]bool{}
	}
	m.marked = marked
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles navigation keys and window sizing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "left", "h":
		return m.moveCursor(-1)
	case "right", "l":
		return m.moveCursor(1)
	case "up", "k":
		return m.moveCursor(-m.columns())
	case "down", "j":
		return m.moveCursor(m.columns())
	case "enter", " ":
		return m.tapCursor()
	case "u", "backspace":
		return m.drillUp()
	case "[":
		return m.page(m.engine.TapPrevArrow())
	case "]":
		return m.page(m.engine.TapNextArrow())
	case "pgup":
		return m.swipe(-1)
	case "pgdown":
		return m.swipe(1)
	}
	return nil
}

// columns is the grid width for cursor movement at each granularity.
func (m *Model) columns() int {
	switch m.engine.Granularity() {
	case navigator.Month:
		return 4
	case navigator.Year:
		return 5
	default:
		return 7
	}
}

func (m *Model) cells() []grid.Cell {
	return m.engine.CurrentCells()
}

// initialCursor puts the cursor on today, the selection, or the first
// in-period cell.
func (m *Model) initialCursor() int {
	cells := m.cells()
	for i, c := range cells {
		if c.IsToday || c.IsSelected || c.IsRangeStart {
			return i
		}
	}
	for i, c := range cells {
		if c.IsCurrentPeriod {
			return i
		}
	}
	return 0
}

func (m *Model) moveCursor(delta int) tea.Cmd {
	if delta == 0 {
		return nil
	}
	next := m.cursor + delta
	if next < 0 {
		return m.overflow(-1, delta)
	}
	if next >= len(m.cells()) {
		return m.overflow(1, delta)
	}
	m.cursor = next
	return nil
}

// overflow pages the grid when the cursor walks off its edge, keeping the
// cursor on the equivalent row/column of the new page.
func (m *Model) overflow(dir, delta int) tea.Cmd {
	var moves []navigator.Move
	if dir < 0 {
		moves = m.engine.TapPrevArrow()
	} else {
		moves = m.engine.TapNextArrow()
	}
	if moves == nil {
		return nil // clamped at the span edge
	}
	cells := m.cells()
	next := m.cursor + delta
	for next < 0 {
		next += m.columns()
	}
	for next >= len(cells) {
		next -= m.columns()
	}
	m.cursor = next
	return m.pageChanged()
}

func (m *Model) tapCursor() tea.Cmd {
	cells := m.cells()
	if m.cursor < 0 || m.cursor >= len(cells) {
		return nil
	}
	before := m.engine.Granularity()
	m.engine.TapCell(cells[m.cursor].Date)

	cmds := m.drainPending()
	if m.engine.Granularity() != before {
		// A drill landed on a new grid; reseat the cursor.
		m.cursor = m.initialCursor()
		cmds = append(cmds, m.granularityChanged(), m.pageChanged())
	}
	return tea.Batch(cmds...)
}

func (m *Model) drillUp() tea.Cmd {
	before := m.engine.Granularity()
	m.engine.TapHeader()
	if m.engine.Granularity() == before {
		return nil // already at Year, no ascent
	}
	m.cursor = m.initialCursor()
	return tea.Batch(m.granularityChanged(), m.pageChanged())
}

func (m *Model) page(moves []navigator.Move) tea.Cmd {
	if moves == nil {
		return nil
	}
	m.clampCursor()
	return m.pageChanged()
}

func (m *Model) swipe(dir int) tea.Cmd {
	target := m.engine.Page() + dir
	if m.engine.PageSettled(m.engine.Granularity(), target) == nil {
		return nil
	}
	m.clampCursor()
	return m.pageChanged()
}

// JumpTo pages the current grid to the unit containing d and parks the
// cursor on it. Dates outside the span are ignored.
func (m *Model) JumpTo(d civil.Date) tea.Cmd {
	span := m.engine.Span()
	if !span.ContainsDate(d) {
		return nil
	}
	var page int
	switch m.engine.Granularity() {
	case navigator.Month:
		page = span.MonthPage(d)
	case navigator.Year:
		page = span.YearPage(d)
	default:
		page = span.DayPage(d)
	}
	m.engine.PageSettled(m.engine.Granularity(), page)
	for i, c := range m.cells() {
		if m.sameUnit(c.Date, d) {
			m.cursor = i
			break
		}
	}
	return m.pageChanged()
}

func (m *Model) sameUnit(a, b civil.Date) bool {
	switch m.engine.Granularity() {
	case navigator.Month:
		return civil.SameMonth(a, b)
	case navigator.Year:
		return civil.SameYear(a, b)
	default:
		return civil.SameDay(a, b)
	}
}

func (m *Model) clampCursor() {
	if n := len(m.cells()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) drainPending() []tea.Cmd {
	msgs := m.pending
	m.pending = nil
	cmds := make([]tea.Cmd, 0, len(msgs))
	for _, msg := range msgs {
		msg := msg
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	return cmds
}

func (m *Model) pageChanged() tea.Cmd {
	msg := events.PageChangedMsg{
		Granularity: m.engine.Granularity(),
		Page:        m.engine.Page(),
		Title:       m.engine.Title(),
	}
	return func() tea.Msg { return msg }
}

func (m *Model) granularityChanged() tea.Cmd {
	msg := events.GranularityMsg{
		Granularity: m.engine.Granularity(),
		Focus:       m.engine.Focus(),
	}
	return func() tea.Msg { return msg }
}

// View renders the title, the grid, and nothing else; hosts add chrome.
func (m *Model) View() string {
	cells := m.cells()
	cols := m.columns()

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.engine.Title()))
	b.WriteString("\n")

	if m.engine.Granularity() == navigator.Day {
		b.WriteString(m.theme.Weekday.Render("Su Mo Tu We Th Fr Sa"))
		b.WriteString("\n")
	}

	for row := 0; row*cols < len(cells); row++ {
		line := make([]string, 0, cols)
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(cells) {
				break
			}
			line = append(line, m.renderCell(cells[i], i == m.cursor))
		}
		b.WriteString(strings.Join(line, " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderCell(c grid.Cell, underCursor bool) string {
	width := 2
	switch m.engine.Granularity() {
	case navigator.Month:
		width = 4
	case navigator.Year:
		width = 5
	}
	label := lipgloss.PlaceHorizontal(width, lipgloss.Right, c.Label)

	style := m.theme.Cell
	switch {
	case !c.IsCurrentPeriod:
		style = m.theme.OtherMonth
	case m.marked[c.Date.String()]:
		style = m.theme.Marked
	}
	switch {
	case c.IsRangeStart || c.IsRangeEnd:
		style = style.Inherit(m.theme.RangeBound)
	case c.IsInRange:
		style = style.Inherit(m.theme.RangeInner)
	case c.IsSelected:
		style = style.Inherit(m.theme.Selected)
	}
	if c.IsToday {
		style = style.Inherit(m.theme.Today)
	}
	if underCursor {
		style = style.Inherit(m.theme.Cursor)
	}
	return style.Render(label)
}
