package reminders

import (
	"sync"
	"time"

	"github.com/arnavshah/office-dashboard/pkg/models"
)

// Notice is a matched rule waiting to be, or being, shown.
type Notice struct {
	ID         string
	Rule       Rule
	EnqueuedAt time.Time
}

// View converts the notice to its JSON form.
func (n Notice) View() models.Notice {
	tones := Tones(n.Rule.Type)
	views := make([]models.Tone, len(tones))
	for i, t := range tones {
		views[i] = models.Tone{
			FrequencyHz: t.Frequency,
			OffsetMs:    t.Offset.Milliseconds(),
			DurationMs:  t.Duration.Milliseconds(),
		}
	}
	return models.Notice{
		ID:         n.ID,
		Type:       string(n.Rule.Type),
		Heading:    n.Rule.Type.Heading(),
		Message:    n.Rule.Message,
		Tones:      views,
		EnqueuedAt: n.EnqueuedAt,
	}
}

// Queue is a FIFO of pending notices. The scheduler appends and the
// presenter drains.
type Queue struct {
	mu    sync.Mutex
	items []Notice
}

// Push appends n to the tail.
func (q *Queue) Push(n Notice) {
	q.mu.Lock()
	q.items = append(q.items, n)
	q.mu.Unlock()
}

// Pop removes and returns the head.
func (q *Queue) Pop() (Notice, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return Notice{}, false
	}
	n := q.items[0]
	q.items[0] = Notice{}
	q.items = q.items[1:]
	return n, true
}

// Len is the number of pending notices.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
