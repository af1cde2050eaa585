package widget

import (
	"testing"
	"time"
)

func TestSchedulerRunsInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(800*time.Millisecond, func() { order = append(order, "reset") })
	s.After(400*time.Millisecond, func() { order = append(order, "hit") })
	s.After(400*time.Millisecond, func() { order = append(order, "hit2") })

	s.Advance(time.Second)

	want := []string{"hit", "hit2", "reset"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Position %d: got %s, want %s", i, order[i], want[i])
		}
	}
}

func TestSchedulerNestedTasks(t *testing.T) {
	s := NewScheduler()
	fired := 0

	s.After(100*time.Millisecond, func() {
		fired++
		// 嵌套任务相对执行时刻（而非起点）计时
		s.After(500*time.Millisecond, func() { fired++ })
	})

	s.Advance(200 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("Expected 1 task fired, got %d", fired)
	}

	delays := s.PendingDelays()
	if len(delays) != 1 || delays[0] != 400*time.Millisecond {
		t.Errorf("Expected one task due in 400ms, got %v", delays)
	}

	s.Advance(400 * time.Millisecond)
	if fired != 2 || s.Pending() != 0 {
		t.Errorf("Expected nested task fired, fired=%d pending=%d", fired, s.Pending())
	}
}

func TestSchedulerIgnoresNilAndNegative(t *testing.T) {
	s := NewScheduler()
	s.After(time.Second, nil)
	if s.Pending() != 0 {
		t.Error("nil task should not be scheduled")
	}

	fired := false
	s.After(-time.Second, func() { fired = true })
	s.Advance(0)
	if !fired {
		t.Error("Negative delay should fire on next Advance")
	}
	if s.Now() != 0 {
		t.Errorf("Advance(0) moved the clock to %v", s.Now())
	}
}

// TestSchedulerNestedDelayFromDueTime 一次推进越过多个到期时刻时，嵌套任务从父任务的到期时刻计时
func TestSchedulerNestedDelayFromDueTime(t *testing.T) {
	s := NewScheduler()
	var at []time.Duration

	s.After(400*time.Millisecond, func() {
		at = append(at, s.Now())
		s.After(500*time.Millisecond, func() { at = append(at, s.Now()) })
	})

	s.Advance(time.Second)

	want := []time.Duration{400 * time.Millisecond, 900 * time.Millisecond}
	if len(at) != len(want) || at[0] != want[0] || at[1] != want[1] {
		t.Errorf("Tasks ran at %v, want %v", at, want)
	}
	if s.Now() != time.Second {
		t.Errorf("Clock after Advance: got %v, want 1s", s.Now())
	}
	if s.Pending() != 0 {
		t.Errorf("Expected no pending tasks, got %d", s.Pending())
	}
}
