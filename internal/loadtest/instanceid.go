package loadtest

import (
	"fmt"
	"time"
)

// Timestamp layout used to derive run prefixes: UTC, second precision.
const runPrefixTimeFormat = "20060102-150405"

// RunPrefix derives the prefix shared by all instances of one run. The user
// supplied prefix (possibly empty) is concatenated with the run start time
// rendered in UTC at second precision. Two runs started within the same
// second with the same user prefix therefore share an instance id namespace;
// that collision window is a known limitation of the scheme.
func RunPrefix(userPrefix string, now time.Time) string {
	return userPrefix + now.UTC().Format(runPrefixTimeFormat)
}

// NextId derives the instance id for the index-th work item of a run. Indices
// render as fixed-width, zero-padded, upper-case hex spanning the full uint64
// range, so ids for a given prefix sort lexicographically in index order.
func NextId(prefix string, index uint64) string {
	return fmt.Sprintf("%s-%016X", prefix, index)
}
