// Package filecheck verifies that a project config file registers a module.
package filecheck

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vertti/oauthprep/pkg/check"
)

// Check verifies that the file at Path contains the literal Contains.
type Check struct {
	Path     string     // path to the config file
	Contains string     // literal module identifier to search for
	Module   string     // human name of the module, e.g. "Google auth module"
	FS       FileSystem // injected for testing
}

// Run executes the config file check.
func (c *Check) Run() check.Result {
	display := filepath.Base(c.Path)
	result := check.Result{
		Name: fmt.Sprintf("config: %s", display),
	}

	if _, err := c.FS.Stat(c.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result.Fail(fmt.Sprintf("%s not found", display), err)
		}
		return result.Fail(fmt.Sprintf("Error reading %s: %v", display, err), err)
	}

	content, err := c.FS.ReadFile(c.Path)
	if err != nil {
		return result.Fail(fmt.Sprintf("Error reading %s: %v", display, err), err)
	}

	module := c.Module
	if module == "" {
		module = c.Contains
	}

	if !strings.Contains(string(content), c.Contains) {
		return result.Failf("%s not found in %s", module, display)
	}

	return result.Passf("%s is configured in %s", module, display)
}
