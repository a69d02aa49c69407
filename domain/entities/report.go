package entities

import (
	"fmt"
	"strings"
	"time"
)

// Report tallies submission outcomes for one run. It is owned by the
// coordinator and updated only from the goroutine draining completions,
// so it carries no locking.
type Report struct {
	Attempted int
	Succeeded int
	Failed    int
	StartedAt time.Time
	Elapsed   time.Duration
}

func NewReport() *Report {
	return &Report{StartedAt: time.Now()}
}

// Observe records one submission outcome.
func (r *Report) Observe(o Outcome) {
	r.Attempted++
	if o.Success {
		r.Succeeded++
	} else {
		r.Failed++
	}
}

// Finalize freezes the elapsed time for the run.
func (r *Report) Finalize() {
	r.Elapsed = time.Since(r.StartedAt)
}

// Rate returns successful submissions per second over the finalized run.
func (r *Report) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Succeeded) / r.Elapsed.Seconds()
}

// Summary renders the end-of-run block printed to the user.
func (r *Report) Summary() string {
	var b strings.Builder
	b.WriteString("\nForm submission completed:\n")
	fmt.Fprintf(&b, "- Total submissions attempted: %d\n", r.Attempted)
	fmt.Fprintf(&b, "- Successful submissions: %d\n", r.Succeeded)
	fmt.Fprintf(&b, "- Failed submissions: %d\n", r.Failed)
	fmt.Fprintf(&b, "- Time taken: %.2f seconds\n", r.Elapsed.Seconds())
	fmt.Fprintf(&b, "- Average rate: %.2f submissions/second\n", r.Rate())
	return b.String()
}
