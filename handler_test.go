package quadspace

import "testing"

type countingHandler struct {
	enter, stay, exit int
	initiated         int
}

func (h *countingHandler) CollisionEnter(other *Entity, dir Direction, initiator bool) {
	h.enter++
	if initiator {
		h.initiated++
	}
}

func (h *countingHandler) CollisionStay(other *Entity, dir Direction, initiator bool) {
	h.stay++
}

func (h *countingHandler) CollisionExit(other *Entity, initiator bool) {
	h.exit++
}

func TestHandler_PerEntity(t *testing.T) {
	world := NewWorld(NewBBForRect(0, 0, 100, 100), 4)
	a, _ := world.Insert(1, 0, 0, 10, 10, nil)
	b, _ := world.Insert(2, 5, 0, 10, 10, nil)

	ha, hb := &countingHandler{}, &countingHandler{}
	a.SetHandler(ha)
	b.SetHandler(hb)

	world.Step(1)
	world.Step(1)
	world.Update(b, 50, 50, 10, 10)
	world.Step(1)

	for name, h := range map[string]*countingHandler{"a": ha, "b": hb} {
		if h.enter != 1 || h.stay != 1 || h.exit != 1 {
			t.Errorf("%s: got enter=%d stay=%d exit=%d", name, h.enter, h.stay, h.exit)
		}
	}
	if ha.initiated+hb.initiated != 1 {
		t.Errorf("Exactly one side should initiate, got %d", ha.initiated+hb.initiated)
	}
}

func TestCollisionFuncs_NilFields(t *testing.T) {
	var got []string
	f := &CollisionFuncs{
		Exit: func(other *Entity, initiator bool) {
			got = append(got, "exit")
		},
	}
	f.CollisionEnter(nil, DirectionUp, true)
	f.CollisionStay(nil, DirectionUp, true)
	f.CollisionExit(nil, true)
	if len(got) != 1 || got[0] != "exit" {
		t.Errorf("Unexpected calls %v", got)
	}
}

func TestEventQueue_Drain(t *testing.T) {
	world := NewWorld(NewBBForRect(0, 0, 100, 100), 4)
	queue := &EventQueue{}
	world.AddListener(queue)

	var seen []EventKind
	world.AddListener(ListenerFunc(func(ev Event) {
		seen = append(seen, ev.Kind)
	}))

	world.Insert(1, 0, 0, 10, 10, nil)
	world.Insert(2, 5, 0, 10, 10, nil)
	world.Step(1)

	events := queue.Drain()
	if len(events) != 2 || len(seen) != 2 {
		t.Fatalf("Expected 2 events, got %d and %d", len(events), len(seen))
	}
	if events[0].Kind.String() != "enter" || events[0].Stamp != 1 {
		t.Errorf("Unexpected first event %+v", events[0])
	}
	if queue.Len() != 0 {
		t.Error("Drain should empty the queue")
	}
}
