// Package trace writes a plain-text dump of simulation snapshots, one line per body.
// Identical seeds and configs must produce byte-identical traces.
package trace

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"rigids/internal/sim"
)

type Writer struct {
	w     *bufio.Writer
	lines int
	err   error // first error seen by Render
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteSnapshot appends one line per body of s.
func (t *Writer) WriteSnapshot(s sim.Snapshot) error {
	for _, b := range s.Bodies {
		_, err := fmt.Fprintf(t.w, "tick=%d body=%d kind=%s x=%.6f y=%.6f a=%.6f vx=%.6f vy=%.6f w=%.6f\n",
			s.Tick, b.ID, b.Shape.Kind,
			b.Position.X, b.Position.Y, b.Orientation,
			b.Velocity.X, b.Velocity.Y, b.AngularVelocity)
		if err != nil {
			return err
		}
		t.lines++
	}
	return nil
}

// Lines returns how many body lines were written.
func (t *Writer) Lines() int {
	return t.lines
}

// Flush writes buffered lines. It returns the first error Render hit, if any.
func (t *Writer) Flush() error {
	if err := t.w.Flush(); err != nil && t.err == nil {
		t.err = err
	}
	return t.err
}

// Render implements sim.Renderer. Once a write fails, later snapshots are dropped
// and the error is reported by Flush.
func (t *Writer) Render(s sim.Snapshot) {
	if t.err != nil {
		return
	}
	t.err = t.WriteSnapshot(s)
}

// frameLimit quits the loop once frames batches were rendered.
type frameLimit struct {
	frames int
	polls  int
}

func (f *frameLimit) PollEvents() []sim.ControlEvent {
	f.polls++
	if f.polls > f.frames {
		return []sim.ControlEvent{{Kind: sim.Quit}}
	}
	return nil
}

// Record resets l and runs it for frames tick batches, writing a snapshot after each.
func Record(ctx context.Context, l *sim.Loop, frames int, w io.Writer) error {
	if err := l.Reset(); err != nil {
		return err
	}
	tw := NewWriter(w)
	if err := l.Run(ctx, &frameLimit{frames: frames}, tw); err != nil {
		return err
	}
	return tw.Flush()
}
