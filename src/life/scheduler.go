package life

import "time"

//Scheduler runs fn once after the delay d
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Task
}

//Task is the handle to a scheduled function
type Task interface {
	//Cancel prevents the function from running
	//returns false if it has already been started or cancelled
	Cancel() bool
}

//TimerScheduler schedules functions with time.AfterFunc
//the functions are called on their own goroutines
type TimerScheduler struct{}

type timerTask struct {
	t *time.Timer
}

func (TimerScheduler) Schedule(d time.Duration, fn func()) Task {
	return timerTask{time.AfterFunc(d, fn)}
}

func (tt timerTask) Cancel() bool {
	return tt.t.Stop()
}
