package loadtest

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/orchbench/orchbench/internal/common/orcherrors"
	"github.com/orchbench/orchbench/internal/workload"
)

// SubmitFunc hands one work item to the execution engine. It may block on the
// network and resolves to nil once the engine has accepted the instance.
// Schedule never calls it more than once for a given instance id.
type SubmitFunc func(ctx context.Context, instanceId string, workloadName string) error

// Schedule submits count work items to the execution engine via submit,
// keeping at most concurrencyLimit submissions in flight at any instant.
//
// Indices 0..count-1 are claimed off a shared counter by a fixed pool of
// concurrencyLimit workers, so a slow submit call on one worker never stalls
// unclaimed indices. Each index is submitted exactly once under the instance
// id NextId(prefix, index). Individual submit failures are recorded in the
// outcome and do not stop the run. Schedule returns once every claimed index
// has resolved.
//
// Cancelling ctx stops workers from claiming further indices; in-flight
// submissions are left to resolve naturally and the outcome reports the
// unclaimed remainder as unattempted. Cancellation is not an error.
func Schedule(ctx context.Context, count int, concurrencyLimit int, prefix string, submit SubmitFunc) (*SchedulingOutcome, error) {
	if count < 1 {
		return nil, errors.WithStack(&orcherrors.ErrInvalidArgument{
			Name:    "count",
			Value:   count,
			Message: "at least one orchestration must be scheduled",
		})
	}
	if concurrencyLimit < 1 {
		return nil, errors.WithStack(&orcherrors.ErrInvalidArgument{
			Name:    "concurrencyLimit",
			Value:   concurrencyLimit,
			Message: "must be positive",
		})
	}
	if submit == nil {
		return nil, errors.WithStack(&orcherrors.ErrInvalidArgument{
			Name:    "submit",
			Value:   nil,
			Message: "no execution engine collaborator provided",
		})
	}

	outcome := &SchedulingOutcome{
		Prefix:           prefix,
		FirstFailedIndex: -1,
	}

	// Shared claim counter. Workers race to increment it; each increment
	// yields ownership of exactly one index.
	var next uint64

	// Guards the outcome aggregate, which all workers mutate.
	var mu sync.Mutex

	wg := &sync.WaitGroup{}
	for i := 0; i < concurrencyLimit; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				index := atomic.AddUint64(&next, 1) - 1
				if index >= uint64(count) {
					return
				}
				err := submit(ctx, NextId(prefix, index), workload.ChainWorkloadName)

				mu.Lock()
				outcome.Submitted++
				if err != nil {
					outcome.Failed++
					if outcome.FirstFailedIndex < 0 || int64(index) < outcome.FirstFailedIndex {
						outcome.FirstFailedIndex = int64(index)
						outcome.FirstError = errors.WithMessagef(err, "submitting index %d", index)
					}
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	outcome.Unattempted = count - outcome.Submitted
	return outcome, nil
}
