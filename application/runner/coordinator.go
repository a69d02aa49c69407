package runner

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"formrunner/domain/entities"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// progressEvery is the completion cadence for progress log lines.
const progressEvery = 5

// Coordinator fans submissions out across a bounded worker pool and
// aggregates their outcomes. Tasks are independent: no task sees
// another task's outcome, and a failure in one never aborts the rest.
type Coordinator struct {
	unit    *Unit
	logger  *logrus.Logger
	limiter *rate.Limiter // nil = no dispatch pacing
}

func NewCoordinator(unit *Unit, logger *logrus.Logger) *Coordinator {
	return &Coordinator{
		unit:   unit,
		logger: logger,
	}
}

// SetRateLimit caps dispatches per second. Zero or negative removes the
// cap. Must be called before Run.
func (c *Coordinator) SetRateLimit(perSecond float64) {
	if perSecond <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
}

// Run dispatches spec.Count submissions and drains their outcomes as
// they complete, in completion order. Cancelling ctx stops new
// dispatches; in-flight submissions finish or fail naturally and are
// still counted. The report's counters are touched only by this
// goroutine.
func (c *Coordinator) Run(ctx context.Context, spec entities.RunSpec) *entities.Report {
	workers := spec.Workers(runtime.GOMAXPROCS(0))
	report := entities.NewReport()

	c.logger.Infof("starting %d submissions with %d workers (host has %d logical CPUs)",
		spec.Count, workers, runtime.NumCPU())

	outcomes := make(chan entities.Outcome, spec.Count)

	var group errgroup.Group
	group.SetLimit(workers)

	go func() {
		for i := 0; i < spec.Count; i++ {
			if ctx.Err() != nil {
				c.logger.Warnf("interrupted, %d of %d submissions not dispatched", spec.Count-i, spec.Count)
				break
			}
			if c.limiter != nil {
				if err := c.limiter.Wait(ctx); err != nil {
					c.logger.Warnf("interrupted, %d of %d submissions not dispatched", spec.Count-i, spec.Count)
					break
				}
			}

			index := i
			group.Go(func() error {
				outcomes <- c.runOne(ctx, index, spec.FormURL)
				return nil
			})
		}
		group.Wait()
		close(outcomes)
	}()

	drained := 0
	for out := range outcomes {
		drained++
		report.Observe(out)

		if drained%progressEvery == 0 {
			elapsed := time.Since(report.StartedAt).Seconds()
			currentRate := 0.0
			if elapsed > 0 {
				currentRate = float64(drained) / elapsed
			}
			c.logger.Infof("completed %d/%d submissions (%.2f/sec)", drained, spec.Count, currentRate)
		}
	}

	report.Finalize()
	return report
}

// runOne is the pool-level containment boundary: even if a unit somehow
// lets a panic through, it becomes a failed outcome for that task only.
func (c *Coordinator) runOne(ctx context.Context, index int, formURL string) (out entities.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = entities.Outcome{
				TaskIndex: index,
				Err:       fmt.Errorf("task panicked: %v", r),
			}
		}
	}()
	return c.unit.Execute(ctx, index, formURL)
}
