package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var globalTimer time.Duration

func UpdateDelta() time.Duration {
	return time.Second / time.Duration(eb.TPS())
}

func UpdateGlobalTimer() {
	globalTimer += UpdateDelta()
}

func GlobalTimerNow() time.Duration {
	return globalTimer
}

// Timer for profiling.
// Usage :
//
//	{
//		timer := NewProfTimer("some function")
//		defer timer.Report()
//		// reports some function took 10ms
//	}
type ProfTimer struct {
	Start time.Time
	Name  string
}

func NewProfTimer(name string) ProfTimer {
	return ProfTimer{
		Start: time.Now(),
		Name:  name,
	}
}

func (p ProfTimer) Report() {
	now := time.Now()
	InfoLogger.Printf("\"%v\" took %v\n", p.Name, now.Sub(p.Start))
}
