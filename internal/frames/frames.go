// Package frames records labelled grid snapshots while a generator runs.
package frames

import (
	"fmt"

	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
)

// Frame is one snapshot. Its grid never aliases the generator's live grid.
type Frame struct {
	Grid  *grid.Grid `json:"grid"`
	Label string     `json:"label"`
}

// Sequence is the chronological list of frames from one build
type Sequence []Frame

// Labels lists the frame labels in order
func (s Sequence) Labels() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = f.Label
	}
	return out
}

// Recorder appends frames. A nil Recorder discards everything, which lets
// helpers shared between generators run with or without recording.
type Recorder struct {
	frames Sequence
}

// NewRecorder pre-sizes the sequence for capacity frames
func NewRecorder(capacity int) *Recorder {
	if capacity < 0 {
		capacity = 0
	}
	return &Recorder{frames: make(Sequence, 0, capacity)}
}

// Record clones g and appends exactly one frame
func (r *Recorder) Record(g *grid.Grid, label string) {
	if r == nil {
		return
	}
	r.frames = append(r.frames, Frame{Grid: g.Clone(), Label: label})
}

// Recordf records with a formatted label
func (r *Recorder) Recordf(g *grid.Grid, format string, args ...any) {
	if r == nil {
		return
	}
	r.Record(g, fmt.Sprintf(format, args...))
}

// Frames returns the recorded sequence
func (r *Recorder) Frames() Sequence {
	if r == nil {
		return nil
	}
	return r.frames
}

// Len is the number of recorded frames
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return len(r.frames)
}
