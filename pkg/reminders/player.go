package reminders

import (
	"context"
	"log/slog"
)

// LogPlayer records cues in the log. Browsers play the tones themselves from
// the notice payload.
type LogPlayer struct {
	Logger *slog.Logger
}

// Play logs the tone sequence for t.
func (p LogPlayer) Play(ctx context.Context, t Type) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tones := Tones(t)
	freqs := make([]float64, len(tones))
	for i, tone := range tones {
		freqs[i] = tone.Frequency
	}
	logger.InfoContext(ctx, "audio cue", "type", string(t), "frequencies", freqs)
	return nil
}
