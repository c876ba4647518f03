package navigator

// Transition says how a track should reach its new page. Drills snap so the
// destination is visible before the next frame; arrow navigation animates; a
// settled swipe already sits on the target page and needs nothing further.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionSnap
	TransitionAnimate
)

func (t Transition) String() string {
	switch t {
	case TransitionSnap:
		return "snap"
	case TransitionAnimate:
		return "animate"
	}
	return "none"
}

// Move asks one paging track to reposition itself.
type Move struct {
	Granularity Granularity
	From        int
	To          int
	Transition  Transition
}

// Synchronizer reconciles the three paging tracks with the navigator's
// focus. Track positions are advisory mirrors of the focus, never the
// reverse; a fresh Sync supersedes any moves still animating from an earlier
// one.
type Synchronizer struct {
	tracks [3]int
}

// NewSynchronizer returns a Synchronizer with all tracks aligned to nav's
// current focus.
func NewSynchronizer(nav *Navigator) *Synchronizer {
	s := &Synchronizer{}
	s.tracks = targets(nav)
	return s
}

func targets(nav *Navigator) [3]int {
	span := nav.Span()
	focus := nav.Focus()
	return [3]int{
		Day:   span.DayPage(focus),
		Month: span.MonthPage(focus),
		Year:  span.YearPage(focus),
	}
}

// Track returns the current position of one track.
func (s *Synchronizer) Track(g Granularity) int {
	return s.tracks[g]
}

// Sync realigns every track with the navigator's focus and returns the moves
// the rendering layer should perform. Tracks already on target produce no
// move. The transition kind applies to the currently displayed granularity;
// off-screen tracks always snap, there is nothing to watch animate.
func (s *Synchronizer) Sync(nav *Navigator, kind Transition) []Move {
	want := targets(nav)

	var moves []Move
	for g := Day; g <= Year; g++ {
		if s.tracks[g] == want[g] {
			continue
		}
		t := TransitionSnap
		if g == nav.Granularity() {
			t = kind
		}
		moves = append(moves, Move{
			Granularity: g,
			From:        s.tracks[g],
			To:          want[g],
			Transition:  t,
		})
		s.tracks[g] = want[g]
	}
	return moves
}
