// Package engine provides an in-process stand-in for the external execution
// engine, so the driver can be run and tested without a backend deployment.
package engine

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/orchbench/orchbench/internal/common/orcherrors"
	"github.com/orchbench/orchbench/internal/workload"
)

// LocalEngine accepts orchestration submissions and executes each accepted
// ChainWorkload on its own goroutine. Acceptance is fire-and-forget, matching
// the remote engine contract: Submit returns as soon as the instance is
// admitted, not when it finishes.
type LocalEngine struct {
	mu      sync.Mutex
	results map[string][]string
	group   errgroup.Group
}

func NewLocalEngine() *LocalEngine {
	return &LocalEngine{
		results: map[string][]string{},
	}
}

// Submit admits a new orchestration instance. Instance ids must be unique for
// the lifetime of the engine; resubmitting one is rejected.
func (e *LocalEngine) Submit(ctx context.Context, instanceId string, workloadName string) error {
	if workloadName != workload.ChainWorkloadName {
		return errors.WithStack(&orcherrors.ErrInvalidArgument{
			Name:    "workloadName",
			Value:   workloadName,
			Message: "no such workload template is registered",
		})
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.results[instanceId]; exists {
		return errors.WithStack(&orcherrors.ErrAlreadyExists{
			Type:  "orchestration",
			Value: instanceId,
		})
	}
	// Reserve the id before the workload runs so a racing resubmission of the
	// same id is rejected rather than run twice.
	e.results[instanceId] = nil

	e.group.Go(func() error {
		greetings, err := workload.Run(ctx)
		if err != nil {
			return errors.WithMessagef(err, "running instance %s", instanceId)
		}
		e.mu.Lock()
		e.results[instanceId] = greetings
		e.mu.Unlock()
		return nil
	})
	return nil
}

// Wait blocks until every admitted workload has finished and returns the
// first execution error, if any.
func (e *LocalEngine) Wait() error {
	return e.group.Wait()
}

// Results returns the ordered greetings produced by a finished instance.
func (e *LocalEngine) Results(instanceId string) ([]string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	greetings, ok := e.results[instanceId]
	if !ok || greetings == nil {
		return nil, false
	}
	return append([]string{}, greetings...), true
}

// InstanceCount returns the number of instances admitted so far.
func (e *LocalEngine) InstanceCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.results)
}
