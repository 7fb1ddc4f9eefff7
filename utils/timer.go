package utils

import (
	"log"
	"time"
)

// Timer measures a labelled block of work. Stop returns the elapsed time and,
// when the timer is verbose, logs it.
//
//	t := utils.StartTimer("Grid.Step", verbose)
//	grid.Step()
//	stats.LastStep = t.Stop()
type Timer struct {
	label   string
	start   time.Time
	verbose bool
}

func StartTimer(label string, verbose bool) Timer {
	return Timer{label: label, start: time.Now(), verbose: verbose}
}

func (t Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	if t.verbose {
		log.Printf("%s: %v", t.label, elapsed)
	}
	return elapsed
}
