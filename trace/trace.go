// Package trace records the collision events a quadspace.World dispatches
// and reads them back, so two runs of the same simulation can be diffed.
//
// A trace is a stream of msgpack encoded Frames, one per step that produced
// at least one event.
package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/jakecoffman/quadspace"
	"github.com/vmihailenco/msgpack/v5"
)

// Record is one dispatched callback, reduced to entity ids.
type Record struct {
	Kind      quadspace.EventKind `msgpack:"k"`
	Self      int                 `msgpack:"s"`
	Other     int                 `msgpack:"o"`
	Dir       quadspace.Direction `msgpack:"d"`
	Initiator bool                `msgpack:"i"`
}

func (r Record) String() string {
	return fmt.Sprintf("%v %d->%d %v initiator=%t", r.Kind, r.Self, r.Other, r.Dir, r.Initiator)
}

// NewRecord converts a world event.
func NewRecord(ev quadspace.Event) Record {
	return Record{
		Kind:      ev.Kind,
		Self:      ev.Self.ID(),
		Other:     ev.Other.ID(),
		Dir:       ev.Dir,
		Initiator: ev.Initiator,
	}
}

// Frame holds the events of one step in dispatch order.
type Frame struct {
	Stamp  uint     `msgpack:"t"`
	Events []Record `msgpack:"e"`
}

// Recorder is a quadspace.Listener that writes one Frame per step.
//
// A frame is written when the first event of a later step arrives, so call
// Flush after the last Step.
type Recorder struct {
	enc     *msgpack.Encoder
	pending Frame
	frames  int
	err     error
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: msgpack.NewEncoder(w)}
}

// Attach registers the recorder as a listener on world.
func (r *Recorder) Attach(world *quadspace.World) *Recorder {
	world.AddListener(r)
	return r
}

func (r *Recorder) CollisionEvent(ev quadspace.Event) {
	if len(r.pending.Events) > 0 && r.pending.Stamp != ev.Stamp {
		r.write()
	}
	r.pending.Stamp = ev.Stamp
	r.pending.Events = append(r.pending.Events, NewRecord(ev))
}

// Flush writes the buffered frame, if any, and returns the first error the
// recorder ran into.
func (r *Recorder) Flush() error {
	if len(r.pending.Events) > 0 {
		r.write()
	}
	return r.err
}

// Frames is the number of frames written so far.
func (r *Recorder) Frames() int {
	return r.frames
}

func (r *Recorder) Err() error {
	return r.err
}

func (r *Recorder) write() {
	if r.err == nil {
		if err := r.enc.Encode(&r.pending); err != nil {
			r.err = fmt.Errorf("trace: encoding frame %d: %w", r.pending.Stamp, err)
		} else {
			r.frames++
		}
	}
	r.pending = Frame{}
}

// Reader decodes frames written by a Recorder.
type Reader struct {
	dec *msgpack.Decoder
}

func NewReader(r io.Reader) *Reader {
	return &Reader{dec: msgpack.NewDecoder(r)}
}

// Next returns the next frame, or io.EOF at the end of the stream.
func (r *Reader) Next() (Frame, error) {
	var frame Frame
	if err := r.dec.Decode(&frame); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("trace: decoding frame: %w", err)
	}
	return frame, nil
}

// ReadAll decodes every frame in r.
func ReadAll(r io.Reader) ([]Frame, error) {
	reader := NewReader(r)
	var frames []Frame
	for {
		frame, err := reader.Next()
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, frame)
	}
}
