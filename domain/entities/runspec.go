package entities

// RunSpec describes one submission run.
type RunSpec struct {
	FormURL string
	Count   int
	Names   []string

	// MaxWorkers caps the worker pool. Zero derives the cap from the
	// host's parallelism.
	MaxWorkers int

	// RateLimit caps dispatches per second. Zero means unlimited.
	RateLimit float64

	Headless bool
}

// Workers returns the effective pool size for the given host
// parallelism: min(max(parallelism/2, 1), Count), with an explicit
// MaxWorkers override still clamped to Count. Each worker owns a full
// browser context, so the pool deliberately stays at half the host's
// parallelism.
func (s RunSpec) Workers(parallelism int) int {
	w := s.MaxWorkers
	if w <= 0 {
		w = parallelism / 2
	}
	if w < 1 {
		w = 1
	}
	if w > s.Count {
		w = s.Count
	}
	if w < 1 {
		w = 1
	}
	return w
}
