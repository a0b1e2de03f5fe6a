package testutil

import "sync"

// FixedDice always rolls the same value.
type FixedDice float64

func (d FixedDice) Float64() float64 { return float64(d) }

// SequenceDice replays rolls in order and repeats the last one once the
// sequence is exhausted.
type SequenceDice struct {
	mu    sync.Mutex
	rolls []float64
	next  int
}

func NewSequenceDice(rolls ...float64) *SequenceDice {
	return &SequenceDice{rolls: rolls}
}

func (d *SequenceDice) Float64() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.rolls) == 0 {
		return 0
	}
	if d.next >= len(d.rolls) {
		return d.rolls[len(d.rolls)-1]
	}
	r := d.rolls[d.next]
	d.next++
	return r
}

// Rolled returns how many rolls were consumed from the sequence.
func (d *SequenceDice) Rolled() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.next
}
