package core

import "testing"

func TestDelayedTaskFiresOnce(t *testing.T) {
	var task DelayedTask
	fired := 0

	task.Schedule(3, func() { fired++ })
	if !task.Pending() {
		t.Fatal("task should be pending after Schedule")
	}

	for i := 0; i < 2; i++ {
		if task.Advance() {
			t.Fatalf("task fired early at tick %d", i+1)
		}
	}
	if !task.Advance() {
		t.Error("task should fire on the third tick")
	}
	if fired != 1 {
		t.Errorf("expected 1 call, got %d", fired)
	}

	for i := 0; i < 5; i++ {
		task.Advance()
	}
	if fired != 1 {
		t.Errorf("task should not fire again, got %d calls", fired)
	}
	if task.Pending() {
		t.Error("task should be idle after firing")
	}
}

func TestDelayedTaskLastTriggerWins(t *testing.T) {
	var task DelayedTask
	var calls []string

	task.Schedule(2, func() { calls = append(calls, "first") })
	task.Advance()
	task.Schedule(3, func() { calls = append(calls, "second") })

	task.Advance()
	task.Advance()
	if len(calls) != 0 {
		t.Fatalf("rescheduled task fired early: %v", calls)
	}
	task.Advance()

	if len(calls) != 1 || calls[0] != "second" {
		t.Errorf("expected only the second task to fire, got %v", calls)
	}
}

func TestDelayedTaskCancel(t *testing.T) {
	var task DelayedTask
	fired := false

	task.Schedule(1, func() { fired = true })
	task.Cancel()

	if task.Advance() || fired {
		t.Error("cancelled task should not fire")
	}
	if task.Pending() || task.Remaining() != 0 {
		t.Error("cancelled task should be idle")
	}
}

func TestDelayedTaskMinimumTick(t *testing.T) {
	var task DelayedTask
	fired := false

	task.Schedule(0, func() { fired = true })
	if task.Remaining() != 1 {
		t.Errorf("Remaining() = %d, expected 1", task.Remaining())
	}
	task.Advance()
	if !fired {
		t.Error("task scheduled with 0 ticks should fire on the next tick")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionReveal)
	f.Press(3, 4, true)

	if !f.Has(ActionReveal) || f.Has(ActionFlag) {
		t.Error("Has() should report only the set action")
	}
	if len(f.Pointers) != 1 || f.Pointers[0] != (PointerEvent{X: 3, Y: 4, Secondary: true}) {
		t.Errorf("unexpected pointers: %+v", f.Pointers)
	}

	f.Clear()
	if f.Has(ActionReveal) || len(f.Pointers) != 0 {
		t.Error("Clear() should drop actions and pointers")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
}
