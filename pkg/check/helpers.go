package check

import (
	"errors"
	"fmt"
)

// Fail sets the result to failed status with a message.
// A nil err is replaced by an error carrying the message.
func (r *Result) Fail(message string, err error) Result {
	if err == nil {
		err = errors.New(message)
	}
	r.Status = StatusFail
	r.Message = message
	r.Err = err
	return *r
}

// Failf sets the result to failed status with a formatted message.
func (r *Result) Failf(format string, args ...any) Result {
	msg := fmt.Sprintf(format, args...)
	return r.Fail(msg, errors.New(msg))
}

// Pass sets the result to OK status with a message.
func (r *Result) Pass(message string) Result {
	r.Status = StatusOK
	r.Message = message
	r.Err = nil
	return *r
}

// Passf sets the result to OK status with a formatted message.
func (r *Result) Passf(format string, args ...any) Result {
	return r.Pass(fmt.Sprintf(format, args...))
}

// CountFailed returns the number of results that did not pass.
func CountFailed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}
