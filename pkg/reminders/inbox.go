package reminders

import (
	"context"
	"sync"

	"github.com/arnavshah/office-dashboard/pkg/metrics"
)

// Inbox is a Surface for clients that poll for the current notice and
// dismiss it by ID. Show blocks until that dismissal arrives.
type Inbox struct {
	mu        sync.Mutex
	current   *Notice
	dismissed chan struct{}
}

// NewInbox returns an empty Inbox.
func NewInbox() *Inbox {
	return &Inbox{}
}

// Show publishes n and waits for Dismiss(n.ID) or ctx to end.
func (b *Inbox) Show(ctx context.Context, n Notice) error {
	ch := make(chan struct{})
	b.mu.Lock()
	b.current = &n
	b.dismissed = ch
	b.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		b.mu.Lock()
		if b.dismissed == ch {
			b.current, b.dismissed = nil, nil
		}
		b.mu.Unlock()
		return ctx.Err()
	}
}

// Current returns the notice on screen.
func (b *Inbox) Current() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Notice{}, false
	}
	return *b.current, true
}

// Dismiss closes the notice with the given ID. It reports false when that
// notice is not the one on screen.
func (b *Inbox) Dismiss(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil || b.current.ID != id {
		return false
	}
	close(b.dismissed)
	b.current, b.dismissed = nil, nil
	metrics.RecordReminderDismissed()
	return true
}
