package seating

import "time"

// Timing holds the fixed delays of the exit/land animation.
type Timing struct {
	// ExitDelay lets the exit animation play before the new seats appear.
	ExitDelay time.Duration
	// LandBase and LandStagger place seat i's landing at LandBase + i*LandStagger
	// after the new seats appear.
	LandBase    time.Duration
	LandStagger time.Duration
	// SettleBuffer follows the last landing before the board settles.
	SettleBuffer time.Duration
}

// DefaultTiming matches the dashboard's CSS transitions.
var DefaultTiming = Timing{
	ExitDelay:    600 * time.Millisecond,
	LandBase:     100 * time.Millisecond,
	LandStagger:  120 * time.Millisecond,
	SettleBuffer: 300 * time.Millisecond,
}

// Step is the board a renderer should show from At onwards, At being the
// offset from the start of the shuffle.
type Step struct {
	At    time.Duration
	Board Board
}

// Timeline is an ordered list of steps with non-decreasing offsets.
type Timeline []Step

// Duration is the offset of the final step.
func (tl Timeline) Duration() time.Duration {
	if len(tl) == 0 {
		return 0
	}
	return tl[len(tl)-1].At
}

// Final returns the board of the last step.
func (tl Timeline) Final() (Board, bool) {
	if len(tl) == 0 {
		return Board{}, false
	}
	return tl[len(tl)-1].Board, true
}

// Plan lays out the transition from prev to next: every seated member of prev
// exits, then next appears with all members entering, each seat lands in
// turn, and the board settles.
func Plan(prev, next Board, timing Timing) Timeline {
	tl := Timeline{
		{At: 0, Board: prev.withState(PhaseShuffling, StateExiting)},
	}

	current := next.withState(PhaseShuffling, StateEntering)
	tl = append(tl, Step{At: timing.ExitDelay, Board: current})

	last := timing.ExitDelay
	for i := 0; i < current.Len(); i++ {
		if current.seatAt(i).Member == nil {
			continue
		}
		current = current.clone()
		current.seat(i).State = StateLanded
		last = timing.ExitDelay + timing.LandBase + time.Duration(i)*timing.LandStagger
		tl = append(tl, Step{At: last, Board: current})
	}

	tl = append(tl, Step{At: last + timing.SettleBuffer, Board: next.withState(PhaseSettled, StateSeated)})
	return tl
}
