// Package haptics plays pulse patterns on a terminal, where the bell is the
// closest thing to a vibration motor.
package haptics

import (
	"io"
	"log"
	"sync"
	"time"
)

// Sleep is swapped out by tests
var Sleep = time.Sleep

const bel = "\a"

// Bell rings the terminal bell once per "on" segment of a pattern. Patterns
// alternate on and off durations, starting with on.
type Bell struct {
	mu  sync.Mutex
	out io.Writer
}

// NewBell returns a Bell writing to out
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

// Vibrate plays the pattern and returns when it has finished. Overlapping
// calls are serialized so two patterns never interleave.
func (b *Bell) Vibrate(pattern []time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, d := range pattern {
		if i%2 == 0 {
			if _, err := io.WriteString(b.out, bel); err != nil {
				log.Printf("haptics: bell write failed: %v", err)
				return
			}
		}
		Sleep(d)
	}
}
