package seating

import (
	"strings"
	"unicode/utf8"

	"github.com/arnavshah/office-dashboard/pkg/shuffle"
)

// DefaultRoles are the roster roles that get a desk in the seating display.
var DefaultRoles = []string{
	"Tech Lead",
	"Senior Developer",
	"Full Stack Developer",
	"Frontend Developer",
	"Backend Developer",
	"Junior Developer",
}

// Member is a roster entry as the seating display needs it
type Member struct {
	ID       uint
	Name     string
	Nickname string
	Initial  string
	Avatar   string
	Role     string
}

// NewMember builds a Member, deriving the nickname and initial from name when
// they are not provided.
func NewMember(id uint, name, nickname, avatar, role string) Member {
	name = strings.TrimSpace(name)
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		if fields := strings.Fields(name); len(fields) > 0 {
			nickname = fields[0]
		}
	}
	initial := ""
	if r, size := utf8.DecodeRuneInString(name); size > 0 {
		initial = string(r)
	}
	return Member{ID: id, Name: name, Nickname: nickname, Initial: initial, Avatar: avatar, Role: role}
}

// FilterRoles keeps members whose role is in roles. An empty allow-list keeps everyone.
func FilterRoles(members []Member, roles []string) []Member {
	if len(roles) == 0 {
		out := make([]Member, len(members))
		copy(out, members)
		return out
	}
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	var out []Member
	for _, m := range members {
		if _, ok := allowed[m.Role]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Layout is the fixed seat count of each row
type Layout struct {
	Top    int
	Bottom int
}

// DefaultLayout seats three on the top row and four on the bottom row.
var DefaultLayout = Layout{Top: 3, Bottom: 4}

// Size is the total number of seats.
func (l Layout) Size() int {
	return l.Top + l.Bottom
}

// Assign shuffles roster with seed, takes the first Layout.Size() members
// and seats them top row first. Seats past the roster size stay empty.
func Assign(roster []Member, seed int64, layout Layout) Board {
	board := emptyBoard(layout)
	board.Seed = seed

	picked := shuffle.Seeded(roster, seed)
	if len(picked) > layout.Size() {
		picked = picked[:layout.Size()]
	}
	for i := range picked {
		m := picked[i]
		board.seat(i).Member = &m
		board.seat(i).State = StateSeated
	}
	return board
}

func emptyBoard(layout Layout) Board {
	return Board{
		Phase:  PhaseSettled,
		Top:    make([]Seat, layout.Top),
		Bottom: make([]Seat, layout.Bottom),
	}
}
