package event

import "testing"

func TestEmitRunsHandlersInOrder(t *testing.T) {
	var e Emitter

	var order []int
	e.On("display", func(payload any) { order = append(order, 1) })
	e.On("display", func(payload any) { order = append(order, 2) })

	e.Emit("display", nil)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("handler order = %v, want [1 2]", order)
	}
}

func TestEmitPassesPayload(t *testing.T) {
	var e Emitter

	var got any
	e.On("display", func(payload any) { got = payload })

	want := "element"
	e.Emit("display", want)

	if got != want {
		t.Errorf("payload = %v, want %v", got, want)
	}
}

func TestEmitOnlyMatchingName(t *testing.T) {
	var e Emitter

	fired := false
	e.On("display", func(payload any) { fired = true })

	e.Emit("resize", nil)
	if fired {
		t.Error("handler fired for a different event name")
	}
}

func TestZeroValueAndNilHandler(t *testing.T) {
	var e Emitter

	// Emitting with no handlers registered must not panic.
	e.Emit("display", nil)

	// Nil handlers are ignored rather than stored.
	e.On("display", nil)
	e.Emit("display", nil)
}
