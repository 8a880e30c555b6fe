// Package speech provides the remote speech-to-text client used for both
// whole-file and live-segment transcription. It defines a narrow interface so
// the concrete provider stays swappable and mockable in tests.
package speech

import (
	"context"
	"fmt"
	"strings"
)

// Segment is one time-ranged line of transcribed audio.
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Result is the complete transcription of one audio file.
type Result struct {
	Segments []Segment `json:"segments"`
	Text     string    `json:"text"`
	Language string    `json:"language"`
	Duration float64   `json:"duration"`
}

// Transcriber converts an audio file into time-stamped text.
//
// Implementations must respect context cancellation and wrap transport or
// service errors so callers can surface them as transcription failures.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (*Result, error)
}

// Lines renders the result as one line per segment, in service order:
//
//	[mm:ss.mmm → mm:ss.mmm] text
func (r *Result) Lines() string {
	var b strings.Builder
	for _, seg := range r.Segments {
		b.WriteString(fmt.Sprintf("[%s → %s] %s\n", formatTimestamp(seg.Start), formatTimestamp(seg.End), strings.TrimSpace(seg.Text)))
	}
	return b.String()
}

// formatTimestamp renders seconds as mm:ss.mmm; minutes wrap at the hour.
func formatTimestamp(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	total := int(sec)
	minutes := (total / 60) % 60
	seconds := total % 60
	millis := int((sec - float64(total)) * 1000)
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}
