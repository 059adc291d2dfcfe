// Package scaffold creates a project's secrets file from its template.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
)

// State is the outcome of a scaffold run.
type State string

const (
	StateExists          State = "exists"
	StateTemplateMissing State = "template-missing"
	StateCreated         State = "created"
	StateFailed          State = "failed"
)

// Outcome describes what Run did.
type Outcome struct {
	State    State
	Path     string // destination file
	Template string // template file
	Digest   string // BLAKE3 digest of the written bytes, set when created
	Err      error
}

// Setup copies Template to Dest unless Dest already exists.
type Setup struct {
	Dest     string
	Template string
	Perm     fs.FileMode // defaults to 0600
	FS       FileSystem  // injected for testing
}

// Run performs the copy. It never panics on I/O failure; errors are
// reported through Outcome.Err with State set to StateFailed.
func (s *Setup) Run() Outcome {
	out := Outcome{Path: s.Dest, Template: s.Template}

	if _, err := s.FS.Stat(s.Dest); err == nil {
		out.State = StateExists
		return out
	} else if !errors.Is(err, fs.ErrNotExist) {
		return failed(out, fmt.Errorf("failed to stat %s: %w", s.Dest, err))
	}

	if _, err := s.FS.Stat(s.Template); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			out.State = StateTemplateMissing
			return out
		}
		return failed(out, fmt.Errorf("failed to stat %s: %w", s.Template, err))
	}

	data, err := s.FS.ReadFile(s.Template)
	if err != nil {
		return failed(out, fmt.Errorf("failed to read %s: %w", s.Template, err))
	}

	perm := s.Perm
	if perm == 0 {
		perm = 0o600
	}
	if err := s.FS.WriteFile(s.Dest, data, perm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			out.State = StateExists
			return out
		}
		return failed(out, fmt.Errorf("failed to write %s: %w", s.Dest, err))
	}

	written, err := s.FS.ReadFile(s.Dest)
	if err != nil {
		return s.discard(out, fmt.Errorf("failed to verify %s: %w", s.Dest, err))
	}
	want, got := Digest(data), Digest(written)
	if want != got {
		return s.discard(out, fmt.Errorf("copy of %s does not match template (blake3 %s != %s)", s.Dest, got, want))
	}

	out.State = StateCreated
	out.Digest = got
	return out
}

// discard removes the unverified copy at Dest and marks the outcome failed.
func (s *Setup) discard(out Outcome, err error) Outcome {
	if rmErr := s.FS.Remove(s.Dest); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		err = fmt.Errorf("%w (cleanup of %s failed: %v)", err, s.Dest, rmErr)
	}
	return failed(out, err)
}

func failed(out Outcome, err error) Outcome {
	out.State = StateFailed
	out.Err = err
	return out
}
