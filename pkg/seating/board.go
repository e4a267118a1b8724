package seating

// Phase is the assigner state
type Phase int

const (
	PhaseSettled Phase = iota
	PhaseShuffling
)

func (p Phase) String() string {
	if p == PhaseShuffling {
		return "shuffling"
	}
	return "settled"
}

// SeatState is the animation state of one seat
type SeatState int

const (
	StateEmpty SeatState = iota
	StateSeated
	StateExiting
	StateEntering
	StateLanded
)

func (s SeatState) String() string {
	switch s {
	case StateSeated:
		return "seated"
	case StateExiting:
		return "exiting"
	case StateEntering:
		return "entering"
	case StateLanded:
		return "landed"
	default:
		return "empty"
	}
}

// Seat is one slot of a row
type Seat struct {
	Member *Member
	State  SeatState
}

// Board is a complete seat assignment split into two rows
type Board struct {
	Phase  Phase
	Seed   int64
	Top    []Seat
	Bottom []Seat
}

// Len is the total seat count.
func (b Board) Len() int {
	return len(b.Top) + len(b.Bottom)
}

// members returns the seated members, top row first.
func (b Board) members() []Member {
	var out []Member
	for i := 0; i < b.Len(); i++ {
		if s := b.seatAt(i); s.Member != nil {
			out = append(out, *s.Member)
		}
	}
	return out
}

// seat addresses seats by global index, top row first.
func (b *Board) seat(i int) *Seat {
	if i < len(b.Top) {
		return &b.Top[i]
	}
	return &b.Bottom[i-len(b.Top)]
}

func (b Board) seatAt(i int) Seat {
	return *b.seat(i)
}

// clone copies the rows; members are shared since they are never mutated.
func (b Board) clone() Board {
	out := b
	out.Top = append([]Seat(nil), b.Top...)
	out.Bottom = append([]Seat(nil), b.Bottom...)
	return out
}

// withState returns a copy where every occupied seat has state s.
func (b Board) withState(phase Phase, s SeatState) Board {
	out := b.clone()
	out.Phase = phase
	for i := 0; i < out.Len(); i++ {
		if seat := out.seat(i); seat.Member != nil {
			seat.State = s
		}
	}
	return out
}
