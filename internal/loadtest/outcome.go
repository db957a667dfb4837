package loadtest

import "fmt"

// SchedulingOutcome is the aggregate result of one Schedule call.
type SchedulingOutcome struct {
	// Number of submit calls that resolved, successfully or not.
	Submitted int
	// Number of submit calls that resolved with an error.
	Failed int
	// Number of indices never claimed because the run was cancelled.
	Unattempted int
	// Error from the failed submission with the lowest index, kept for
	// diagnostics. Nil if every submission succeeded.
	FirstError error
	// Index of the submission FirstError refers to, -1 if none failed.
	FirstFailedIndex int64
	// Run prefix all instance ids were derived from.
	Prefix string
}

func (o *SchedulingOutcome) String() string {
	return fmt.Sprintf("Scheduled %d orchestrations prefixed with '%s'.", o.Submitted, o.Prefix)
}
