package entities

import "time"

// Outcome is the terminal result of one submission. It is produced
// exactly once per submission and never mutated afterwards.
type Outcome struct {
	TaskIndex int
	Identity  string
	Success   bool
	Err       error // nil on success
	Elapsed   time.Duration
}
