package combat

import "testing"

func TestBusFiresInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var order []string
	bus.On(EventVictory, func(CombatEvent) { order = append(order, "first") })
	bus.On(EventVictory, func(CombatEvent) { order = append(order, "second") })

	bus.Emit(CombatEvent{Type: EventVictory})
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected dispatch order %v", order)
	}
}

func TestOffRemovesExactlyOneListener(t *testing.T) {
	bus := NewBus()
	var kept, removed int
	id := bus.On(EventDamageDealt, func(CombatEvent) { removed++ })
	bus.On(EventDamageDealt, func(CombatEvent) { kept++ })

	bus.Off(EventDamageDealt, id)
	bus.Emit(CombatEvent{Type: EventDamageDealt})

	if removed != 0 {
		t.Fatalf("detached listener fired %d times", removed)
	}
	if kept != 1 {
		t.Fatalf("remaining listener should fire once, got %d", kept)
	}
}

func TestOffUnknownIDIsNoOp(t *testing.T) {
	bus := NewBus()
	bus.On(EventDefeat, func(CombatEvent) {})
	bus.Off(EventDefeat, 42)
	bus.Off(EventVictory, 1)
}

func TestListenersAreScopedPerBus(t *testing.T) {
	a := NewBus()
	b := NewBus()
	fired := 0
	a.On(EventVictory, func(CombatEvent) { fired++ })

	b.Emit(CombatEvent{Type: EventVictory})
	if fired != 0 {
		t.Fatal("listener fired across bus instances")
	}
}

func TestListenerMayDetachDuringDispatch(t *testing.T) {
	bus := NewBus()
	var ids [2]int
	var first, second int
	ids[0] = bus.On(EventVictory, func(CombatEvent) {
		first++
		bus.Off(EventVictory, ids[1])
	})
	ids[1] = bus.On(EventVictory, func(CombatEvent) { second++ })

	// The in-flight dispatch uses a snapshot; the removal lands next emit.
	bus.Emit(CombatEvent{Type: EventVictory})
	if first != 1 || second != 1 {
		t.Fatalf("snapshot dispatch broken: first=%d second=%d", first, second)
	}
	bus.Emit(CombatEvent{Type: EventVictory})
	if second != 1 {
		t.Fatalf("detached listener fired again: %d", second)
	}
}
