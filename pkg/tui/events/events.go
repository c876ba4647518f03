// Package events defines the Bubble Tea messages the picker components emit
// so hosting models can react to picks and navigation.
package events

import (
	"fmt"

	"tableflip.dev/datepick/pkg/civil"
	"tableflip.dev/datepick/pkg/navigator"
	"tableflip.dev/datepick/pkg/selection"
)

// PickMsg is emitted once per completed single-date selection.
type PickMsg struct {
	Date civil.Date
}

// Describe renders the pick in a human-friendly format for status lines.
func (m PickMsg) Describe() string {
	return fmt.Sprintf("picked %s", m.Date)
}

// RangePickMsg is emitted once per completed range, Start <= End.
type RangePickMsg struct {
	Range selection.DateRange
}

// Describe renders the range in a human-friendly format for status lines.
func (m RangePickMsg) Describe() string {
	return fmt.Sprintf("picked %s – %s", m.Range.Start, m.Range.End)
}

// PageChangedMsg is emitted when the visible page moves, by arrow, swipe or
// drill.
type PageChangedMsg struct {
	Granularity navigator.Granularity
	Page        int
	Title       string
}

// GranularityMsg is emitted when the view drills up or down.
type GranularityMsg struct {
	Granularity navigator.Granularity
	Focus       civil.Date
}

// JumpSubmitMsg carries the raw value typed into the jump prompt; the host
// parses it and repositions the grid.
type JumpSubmitMsg struct {
	Value string
}

// MarksReloadedMsg carries a fresh mark set after the store changed on disk.
type MarksReloadedMsg struct {
	Marked map[string]bool
}
