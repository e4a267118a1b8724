package reminders

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidRule reports a malformed rule table.
var ErrInvalidRule = errors.New("reminders: invalid rule")

// Type identifies a reminder category. Each type fires at most once per day.
type Type string

const (
	TypeCheckIn   Type = "check-in"
	TypeLunch     Type = "lunch"
	TypeCheckOut  Type = "check-out"
	TypeTimesheet Type = "timesheet"
)

// Known reports whether t is one of the supported categories.
func (t Type) Known() bool {
	switch t {
	case TypeCheckIn, TypeLunch, TypeCheckOut, TypeTimesheet:
		return true
	}
	return false
}

// Label turns "check-in" into "Check In".
func (t Type) Label() string {
	words := strings.Split(string(t), "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Heading is the modal title for the type.
func (t Type) Heading() string {
	return t.Label() + " Reminder"
}

// Rule is one recurring reminder window: it matches when the clock hour
// equals Hour and the minute lies in [MinuteStart, MinuteEnd]. Weekdays
// restricts the rule to those days; empty means every day.
type Rule struct {
	Type        Type
	Message     string
	Hour        int
	MinuteStart int
	MinuteEnd   int
	Weekdays    []time.Weekday
}

// AllowsDay reports whether the rule may fire on day.
func (r Rule) AllowsDay(day time.Weekday) bool {
	if len(r.Weekdays) == 0 {
		return true
	}
	for _, d := range r.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// InWindow reports whether hour:minute falls inside the rule window.
func (r Rule) InWindow(hour, minute int) bool {
	return hour == r.Hour && minute >= r.MinuteStart && minute <= r.MinuteEnd
}

func (r Rule) validate() error {
	switch {
	case !r.Type.Known():
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRule, r.Type)
	case strings.TrimSpace(r.Message) == "":
		return fmt.Errorf("%w: %s has no message", ErrInvalidRule, r.Type)
	case r.Hour < 0 || r.Hour > 23:
		return fmt.Errorf("%w: %s hour %d out of range", ErrInvalidRule, r.Type, r.Hour)
	case r.MinuteStart < 0 || r.MinuteEnd > 59 || r.MinuteStart > r.MinuteEnd:
		return fmt.Errorf("%w: %s minute window %d-%d", ErrInvalidRule, r.Type, r.MinuteStart, r.MinuteEnd)
	}
	return nil
}

// RuleSet is an ordered, read-only rule table.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet validates rules and freezes them in declaration order.
func NewRuleSet(rules ...Rule) (RuleSet, error) {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if err := r.validate(); err != nil {
			return RuleSet{}, err
		}
		r.Weekdays = append([]time.Weekday(nil), r.Weekdays...)
		out = append(out, r)
	}
	return RuleSet{rules: out}, nil
}

// Rules returns a copy of the table.
func (s RuleSet) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	for i, r := range s.rules {
		r.Weekdays = append([]time.Weekday(nil), r.Weekdays...)
		out[i] = r
	}
	return out
}

// Len is the number of rules.
func (s RuleSet) Len() int {
	return len(s.rules)
}

var weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// DefaultRules is the office reminder schedule.
func DefaultRules() RuleSet {
	set, err := NewRuleSet(
		Rule{Type: TypeCheckIn, Message: "Time to check in! Good morning!", Hour: 9, MinuteStart: 0, MinuteEnd: 5, Weekdays: weekdays},
		Rule{Type: TypeLunch, Message: "Lunch time! Take a break and enjoy your meal.", Hour: 12, MinuteStart: 0, MinuteEnd: 5, Weekdays: weekdays},
		Rule{Type: TypeCheckOut, Message: "Time to check out! Have a great evening!", Hour: 17, MinuteStart: 0, MinuteEnd: 5, Weekdays: weekdays},
		Rule{Type: TypeTimesheet, Message: "Don't forget to submit your timesheet!", Hour: 16, MinuteStart: 0, MinuteEnd: 5, Weekdays: []time.Weekday{time.Friday}},
	)
	if err != nil {
		panic(err)
	}
	return set
}
