package domain

// LoadTestSpecification describes one benchmark run. It can be bound from a
// yaml or json file, with individual fields overridable on the command line.
type LoadTestSpecification struct {
	// Number of orchestration instances to start.
	Count int `json:"count"`
	// Maximum number of submissions in flight at once.
	ConcurrencyLimit int `json:"concurrencyLimit"`
	// Optional caller-supplied prefix; the run timestamp is appended to it.
	Prefix string `json:"prefix"`
}
