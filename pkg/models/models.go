package models

import "time"

// TeamMember is the public view of a roster row
type TeamMember struct {
	ID         uint   `json:"id"`
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Name       string `json:"name"`
	Nickname   string `json:"nickname"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role"`
	Avatar     string `json:"avatar,omitempty"`
	Birthday   string `json:"birthday,omitempty"`
	JoinedDate string `json:"joined_date,omitempty"`
}

// TeamInfo is the body of GET /api/team
type TeamInfo struct {
	TeamName    string       `json:"team_name"`
	MemberCount int          `json:"member_count"`
	Members     []TeamMember `json:"members"`
}

// Envelope wraps every /api response
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SeedUpdateInput is the body of PUT /api/seating
type SeedUpdateInput struct {
	Seed     *int64 `json:"seed" binding:"required"`
	Password string `json:"password"`
}

// SeedResponse reports the authoritative seed
type SeedResponse struct {
	Seed   int64  `json:"seed"`
	Source string `json:"source,omitempty"`
}

// ShuffleInput is the body of POST /api/seating/shuffle. A missing seed means
// a fresh random one.
type ShuffleInput struct {
	Seed *int64 `json:"seed"`
}

// ShuffleResponse describes an accepted or ignored shuffle request
type ShuffleResponse struct {
	Accepted bool           `json:"accepted"`
	Seed     int64          `json:"seed,omitempty"`
	Timeline []TimelineStep `json:"timeline,omitempty"`
}

// TimelineStep is one timed board change, offset from the shuffle start
type TimelineStep struct {
	AtMs  int64 `json:"at_ms"`
	Board Board `json:"board"`
}

// Board is the displayed seating state
type Board struct {
	Phase  string `json:"phase"`
	Seed   int64  `json:"seed"`
	Top    []Seat `json:"top"`
	Bottom []Seat `json:"bottom"`
}

// Seat is one slot of a row; Member is nil for an empty seat
type Seat struct {
	State  string      `json:"state"`
	Member *SeatMember `json:"member"`
}

// SeatMember is the seat-card view of a roster entry
type SeatMember struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Initial  string `json:"initial"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role"`
}

// Notice is the reminder currently shown in the modal
type Notice struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Heading    string    `json:"heading"`
	Message    string    `json:"message"`
	Tones      []Tone    `json:"tones"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// Tone is one beep of a reminder cue
type Tone struct {
	FrequencyHz float64 `json:"frequency_hz"`
	OffsetMs    int64   `json:"offset_ms"`
	DurationMs  int64   `json:"duration_ms"`
}

// ScheduleItem is one row of the reminder schedule card
type ScheduleItem struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	Time    string `json:"time"`
	Days    string `json:"days"`
	Message string `json:"message"`
}
