package finder

import (
	"time"

	"github.com/swlab-dev/swfinder/pkg/core"
)

// Default retry cadence for lookups, matching the original driver defaults.
const (
	DefaultTimeout  = 5 * time.Second
	DefaultInterval = 500 * time.Millisecond
)

// Retrier re-runs driver operations that fail transiently until a deadline.
type Retrier struct {
	Timeout  time.Duration // total time budget
	Interval time.Duration // pause between attempts
}

// Locate runs op until it succeeds, fails with a non-transient error, or
// the deadline passes. After the deadline exactly one more unretried
// attempt is made, so the reported outcome reflects the freshest driver
// state rather than a stale intermediate attempt.
func (r Retrier) Locate(op func() (core.Element, error)) (core.Element, error) {
	deadline := time.Now().Add(r.Timeout)
	for time.Now().Before(deadline) {
		el, err := op()
		if err == nil {
			return el, nil
		}
		if !core.IsTransient(err) {
			return nil, err
		}
		time.Sleep(r.Interval)
	}
	return op()
}

// Do is Locate for operations without a result, such as frame switches.
func (r Retrier) Do(op func() error) error {
	_, err := r.Locate(func() (core.Element, error) {
		return nil, op()
	})
	return err
}
