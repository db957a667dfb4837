// Package workload holds the workload templates the benchmark schedules
// against the execution engine. The engine owns execution; the scheduler only
// ever references a template by name.
package workload

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// ChainWorkloadName identifies the chained-greetings template when submitting.
const ChainWorkloadName = "ChainWorkload"

// Cities greeted by the chain, one per step, in execution order.
var chainCities = [5]string{"Tokyo", "Seattle", "London", "Amsterdam", "Cairo"}

// Greet produces the greeting for one city.
func Greet(city string) string {
	return fmt.Sprintf("Hello, %s!", city)
}

// The set of states a chain workload moves through. Each StepN state greets
// the N-th city; a step must not begin before the previous step's greeting is
// available.
type chainState int

const (
	stateStart chainState = iota
	stateStep1
	stateStep2
	stateStep3
	stateStep4
	stateStep5
	stateDone
)

// ChainWorkload executes a fixed sequence of five dependent greeting steps.
// It is deliberately minimal so that benchmark runs measure dispatch overhead
// rather than workload logic.
type ChainWorkload struct {
	state     chainState
	greetings []string
}

func NewChainWorkload() *ChainWorkload {
	return &ChainWorkload{
		state:     stateStart,
		greetings: make([]string, 0, len(chainCities)),
	}
}

// Step advances the workload by one transition and reports whether the
// terminal state has been reached. Calling Step on a finished workload is a
// programming error.
func (w *ChainWorkload) Step() (bool, error) {
	switch w.state {
	case stateDone:
		return true, errors.Errorf("workload already finished after %d steps", len(w.greetings))
	case stateStart:
		w.state = stateStep1
	default:
		w.state++
	}
	// The chain may only move past step K once the greeting for K's city is
	// available, so each transition is gated on the synchronous greet.
	w.greetings = append(w.greetings, Greet(chainCities[w.state-stateStep1]))
	if w.state == stateStep5 {
		w.state = stateDone
		return true, nil
	}
	return false, nil
}

// Greetings returns the results produced so far, in step order.
func (w *ChainWorkload) Greetings() []string {
	return append([]string{}, w.greetings...)
}

// Done reports whether the workload has reached its terminal state.
func (w *ChainWorkload) Done() bool {
	return w.state == stateDone
}

// Run drives a fresh chain workload to completion and returns the ordered
// greetings. It stops early if ctx is cancelled between steps.
func Run(ctx context.Context) ([]string, error) {
	w := NewChainWorkload()
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "chain workload cancelled after %d steps", len(w.greetings))
		}
		done, err := w.Step()
		if err != nil {
			return nil, err
		}
		if done {
			return w.Greetings(), nil
		}
	}
}
