package seating

import "github.com/arnavshah/office-dashboard/pkg/models"

// View converts the board to its JSON form.
func (b Board) View() models.Board {
	return models.Board{
		Phase:  b.Phase.String(),
		Seed:   b.Seed,
		Top:    seatViews(b.Top),
		Bottom: seatViews(b.Bottom),
	}
}

// View converts the timeline to its JSON form.
func (tl Timeline) View() []models.TimelineStep {
	out := make([]models.TimelineStep, 0, len(tl))
	for _, step := range tl {
		out = append(out, models.TimelineStep{AtMs: step.At.Milliseconds(), Board: step.Board.View()})
	}
	return out
}

func seatViews(seats []Seat) []models.Seat {
	out := make([]models.Seat, 0, len(seats))
	for _, s := range seats {
		view := models.Seat{State: s.State.String()}
		if s.Member != nil {
			view.Member = &models.SeatMember{
				ID:       s.Member.ID,
				Name:     s.Member.Name,
				Nickname: s.Member.Nickname,
				Initial:  s.Member.Initial,
				Avatar:   s.Member.Avatar,
				Role:     s.Member.Role,
			}
		}
		out = append(out, view)
	}
	return out
}
