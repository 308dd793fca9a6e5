package trace

import "fmt"

// Divergence describes the first place two traces disagree. Event is -1 when
// the frames differ in stamp or length rather than in a single record.
type Divergence struct {
	Frame int
	Stamp uint
	Event int
	Want  string
	Got   string
}

func (d *Divergence) Error() string {
	if d.Event < 0 {
		return fmt.Sprintf("trace: frame %d (step %d): want %s, got %s", d.Frame, d.Stamp, d.Want, d.Got)
	}
	return fmt.Sprintf("trace: frame %d (step %d) event %d: want %s, got %s", d.Frame, d.Stamp, d.Event, d.Want, d.Got)
}

// Compare returns nil when both traces hold the same events in the same
// order, otherwise a *Divergence for the first mismatch.
func Compare(want, got []Frame) error {
	for i := 0; i < len(want) && i < len(got); i++ {
		w, g := want[i], got[i]
		if w.Stamp != g.Stamp {
			return &Divergence{Frame: i, Stamp: w.Stamp, Event: -1,
				Want: fmt.Sprintf("step %d", w.Stamp), Got: fmt.Sprintf("step %d", g.Stamp)}
		}
		for j := 0; j < len(w.Events) && j < len(g.Events); j++ {
			if w.Events[j] != g.Events[j] {
				return &Divergence{Frame: i, Stamp: w.Stamp, Event: j,
					Want: w.Events[j].String(), Got: g.Events[j].String()}
			}
		}
		if len(w.Events) != len(g.Events) {
			return &Divergence{Frame: i, Stamp: w.Stamp, Event: -1,
				Want: fmt.Sprintf("%d events", len(w.Events)), Got: fmt.Sprintf("%d events", len(g.Events))}
		}
	}
	if len(want) != len(got) {
		return &Divergence{Frame: min(len(want), len(got)), Event: -1,
			Want: fmt.Sprintf("%d frames", len(want)), Got: fmt.Sprintf("%d frames", len(got))}
	}
	return nil
}
