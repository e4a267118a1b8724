package reminders

import "time"

const (
	toneSpacing  = 200 * time.Millisecond
	toneDuration = 350 * time.Millisecond
)

var toneFrequencies = map[Type][]float64{
	TypeCheckIn:   {523, 659, 784},      // C-E-G rising
	TypeCheckOut:  {784, 659, 523},      // G-E-C falling
	TypeLunch:     {587, 740, 880},      // D-F#-A
	TypeTimesheet: {440, 554, 659, 880}, // A-C#-E-A
}

var fallbackFrequencies = []float64{440, 554, 659}

// Tone is one beep of an audio cue.
type Tone struct {
	Frequency float64
	Offset    time.Duration
	Duration  time.Duration
}

// Tones returns the cue played when a reminder of type t opens.
func Tones(t Type) []Tone {
	freqs, ok := toneFrequencies[t]
	if !ok {
		freqs = fallbackFrequencies
	}
	out := make([]Tone, len(freqs))
	for i, f := range freqs {
		out[i] = Tone{Frequency: f, Offset: time.Duration(i) * toneSpacing, Duration: toneDuration}
	}
	return out
}
