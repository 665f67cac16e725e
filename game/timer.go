package game

import "time"

const frameTime = time.Second / 60 // 60 FPS

type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
}

func NewTimer(target time.Duration) *Timer {
	return &Timer{
		currentTime: 0,
		targetTime:  target,
	}
}

func (t *Timer) Update() {
	t.currentTime += frameTime
}

func (t *Timer) IsReady() bool {
	return t.targetTime > 0 && t.currentTime >= t.targetTime
}

// Progress is the elapsed fraction of the target, capped at 1.
func (t *Timer) Progress() float64 {
	if t.targetTime <= 0 {
		return 0
	}
	return min(1, float64(t.currentTime)/float64(t.targetTime))
}

func (t *Timer) Reset() {
	t.currentTime = 0
}
