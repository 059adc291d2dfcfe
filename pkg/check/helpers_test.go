package check

import (
	"errors"
	"testing"
)

func TestResult_Fail(t *testing.T) {
	r := &Result{Name: "test"}
	err := errors.New("test error")

	result := r.Fail("something failed", err)

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if result.Message != "something failed" {
		t.Errorf("Message = %q, want %q", result.Message, "something failed")
	}
	if result.Err != err {
		t.Errorf("Err = %v, want %v", result.Err, err)
	}
}

func TestResult_FailNilError(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Fail("file not found", nil)

	if result.Err == nil || result.Err.Error() != "file not found" {
		t.Errorf("Err = %v, want error with message 'file not found'", result.Err)
	}
}

func TestResult_Failf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Failf("value %d is invalid", 42)

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if result.Message != "value 42 is invalid" {
		t.Errorf("Message = %q, want %q", result.Message, "value 42 is invalid")
	}
	if result.Err == nil || result.Err.Error() != "value 42 is invalid" {
		t.Errorf("Err = %v, want error with message 'value 42 is invalid'", result.Err)
	}
}

func TestResult_Passf(t *testing.T) {
	r := &Result{Name: "test", Err: errors.New("stale")}

	result := r.Passf("%s is set", "GOOGLE_CLIENT_ID")

	if !result.OK() {
		t.Errorf("Status = %v, want %v", result.Status, StatusOK)
	}
	if result.Message != "GOOGLE_CLIENT_ID is set" {
		t.Errorf("Message = %q, want %q", result.Message, "GOOGLE_CLIENT_ID is set")
	}
	if result.Err != nil {
		t.Errorf("Err = %v, want nil", result.Err)
	}
}

func TestCountFailed(t *testing.T) {
	results := []Result{
		{Status: StatusOK},
		{Status: StatusFail},
		{Status: StatusOK},
		{Status: StatusFail},
	}
	if got := CountFailed(results); got != 2 {
		t.Errorf("CountFailed() = %d, want 2", got)
	}
	if got := CountFailed(nil); got != 0 {
		t.Errorf("CountFailed(nil) = %d, want 0", got)
	}
}
