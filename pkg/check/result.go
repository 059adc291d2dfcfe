package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string // e.g., "env: GOOGLE_CLIENT_ID", "config: medusa-config.ts"
	Status  Status // OK or FAIL
	Message string // human-readable message shown next to the status marker
	Err     error  // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
