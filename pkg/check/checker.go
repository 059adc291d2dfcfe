package check

// Checker is implemented by all check types.
// Each check validates one aspect of the project setup
// and returns a Result indicating success or failure.
//
// Implementations:
//   - envcheck.Check: required variable is set and not a placeholder
//   - urlcheck.Check: callback URL is well formed
//   - filecheck.Check: config file registers a module
type Checker interface {
	Run() Result
}
