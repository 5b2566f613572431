package life

import (
	"context"
	"testing"
	"time"
)

func TestTimerSchedulerCancel(t *testing.T) {
	fired := make(chan struct{}, 1)
	task := TimerScheduler{}.Schedule(time.Hour, func() { fired <- struct{}{} })
	if !task.Cancel() {
		t.Fatal("Cancel() = false for the pending task")
	}
	if task.Cancel() {
		t.Error("second Cancel() = true")
	}

	task = TimerScheduler{}.Schedule(time.Millisecond, func() { fired <- struct{}{} })
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("task didn't fire")
	}
	if task.Cancel() {
		t.Error("Cancel() = true for the fired task")
	}
}

func TestEngineRunsOnTimer(t *testing.T) {
	stateCh := make(chan Status, 100)
	o := DefaultOptions
	o.Rows, o.Cols = 5, 5
	o.Interval = time.Millisecond
	e, err := NewEngine(&o, stateCh)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.SettleTemplate("blinker"); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	e.Start()
	st, err := WaitGeneration(ctx, stateCh, 5)
	if err != nil {
		t.Fatalf("WaitGeneration: %v", err)
	}
	if st.Generation < 5 || st.LiveCells != 3 {
		t.Errorf("status = %+v", st)
	}

	e.Pause()
	gen := e.Status().Generation
	time.Sleep(20 * time.Millisecond)
	if g := e.Status().Generation; g != gen {
		t.Errorf("generation moved from %v to %v after Pause", gen, g)
	}
}

func TestWaitGeneration(t *testing.T) {
	stateCh := make(chan Status, 3)
	stateCh <- Status{Generation: 1}
	stateCh <- Status{Generation: 3}
	st, err := WaitGeneration(context.Background(), stateCh, 2)
	if err != nil || st.Generation != 3 {
		t.Errorf("WaitGeneration = %+v, %v", st, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := WaitGeneration(ctx, stateCh, 10); err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}

	close(stateCh)
	if _, err := WaitGeneration(context.Background(), stateCh, 10); err == nil {
		t.Error("no error for the closed channel")
	}
}
