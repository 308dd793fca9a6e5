package quadspace

// CollisionHandler receives the collision lifecycle of one entity.
//
// initiator is true on the side that was being processed when the pair was
// discovered, so a collaborator can respond on one side only (a platform
// pushing a character, not the other way around).
type CollisionHandler interface {
	CollisionEnter(other *Entity, dir Direction, initiator bool)
	CollisionStay(other *Entity, dir Direction, initiator bool)
	CollisionExit(other *Entity, initiator bool)
}

// CollisionFuncs adapts plain functions to a CollisionHandler.
type CollisionFuncs struct {
	Enter func(other *Entity, dir Direction, initiator bool)
	Stay  func(other *Entity, dir Direction, initiator bool)
	Exit  func(other *Entity, initiator bool)
}

func (f *CollisionFuncs) CollisionEnter(other *Entity, dir Direction, initiator bool) {
	if f.Enter != nil {
		f.Enter(other, dir, initiator)
	}
}

func (f *CollisionFuncs) CollisionStay(other *Entity, dir Direction, initiator bool) {
	if f.Stay != nil {
		f.Stay(other, dir, initiator)
	}
}

func (f *CollisionFuncs) CollisionExit(other *Entity, initiator bool) {
	if f.Exit != nil {
		f.Exit(other, initiator)
	}
}

var defaultHandler = CollisionFuncs{}

// EventKind identifies a lifecycle callback.
type EventKind int

const (
	EventEnter EventKind = iota
	EventStay
	EventExit
)

func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventStay:
		return "stay"
	case EventExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Event is one dispatched callback as seen by Self.
type Event struct {
	Kind      EventKind
	Self      *Entity
	Other     *Entity
	Dir       Direction
	Initiator bool
	// Stamp is the step the event was dispatched in.
	Stamp uint
}

// Listener observes every event a World dispatches, after the entity's own
// handler has run.
type Listener interface {
	CollisionEvent(ev Event)
}

type ListenerFunc func(ev Event)

func (f ListenerFunc) CollisionEvent(ev Event) {
	f(ev)
}

// EventQueue buffers events so collaborators can consume them after Step
// instead of inside callbacks.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) CollisionEvent(ev Event) {
	q.events = append(q.events, ev)
}

func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns the buffered events in dispatch order and empties the queue.
func (q *EventQueue) Drain() []Event {
	events := q.events
	q.events = nil
	return events
}
