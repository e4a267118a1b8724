package reminders

import (
	"strings"
	"time"

	"github.com/arnavshah/office-dashboard/pkg/models"
)

// Schedule lists the rule table for the reminder schedule card.
func (s RuleSet) Schedule() []models.ScheduleItem {
	items := make([]models.ScheduleItem, 0, len(s.rules))
	for _, r := range s.rules {
		at := time.Date(2000, time.January, 1, r.Hour, r.MinuteStart, 0, 0, time.UTC)
		items = append(items, models.ScheduleItem{
			Type:    string(r.Type),
			Label:   r.Type.Label(),
			Time:    at.Format("3:04 PM"),
			Days:    daysLabel(r.Weekdays),
			Message: r.Message,
		})
	}
	return items
}

func daysLabel(days []time.Weekday) string {
	if len(days) == 0 {
		return "Every day"
	}
	if len(days) == 1 {
		return days[0].String()
	}

	var set [7]bool
	for _, d := range days {
		set[d] = true
	}
	if set[time.Monday] && set[time.Tuesday] && set[time.Wednesday] && set[time.Thursday] && set[time.Friday] &&
		!set[time.Saturday] && !set[time.Sunday] {
		return "Mon-Fri"
	}

	names := make([]string, 0, len(days))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if set[d] {
			names = append(names, d.String()[:3])
		}
	}
	return strings.Join(names, ", ")
}
