package envcheck

import (
	"fmt"
	"strings"

	"github.com/vertti/oauthprep/pkg/check"
)

// Placeholder literals shipped in .env.template.
var placeholderValues = []string{
	"your_google_client_id",
	"your_google_client_secret",
}

// Placeholder substrings. Matching is case-sensitive and unanchored.
var placeholderFragments = []string{"your_", "_here"}

// IsPlaceholder reports whether value looks like an unedited template value.
func IsPlaceholder(value string) bool {
	for _, frag := range placeholderFragments {
		if strings.Contains(value, frag) {
			return true
		}
	}
	for _, p := range placeholderValues {
		if value == p {
			return true
		}
	}
	return false
}

// Check verifies that a required environment variable is set to a real value.
type Check struct {
	Name   string    // env var name
	Getter EnvGetter // injected for testing
}

// Run executes the environment variable check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("env: %s", c.Name),
	}

	value, _ := c.Getter.LookupEnv(c.Name)
	if value == "" {
		return result.Fail(fmt.Sprintf("%s is not set", c.Name),
			fmt.Errorf("environment variable %s is not set", c.Name))
	}

	if IsPlaceholder(value) {
		return result.Fail(
			fmt.Sprintf("%s appears to be a placeholder value. Please update it with your actual value.", c.Name),
			fmt.Errorf("environment variable %s holds a template placeholder", c.Name))
	}

	return result.Passf("%s is set", c.Name)
}

// CheckAll runs a Check for each name, preserving order.
func CheckAll(names []string, getter EnvGetter) []check.Result {
	results := make([]check.Result, 0, len(names))
	for _, name := range names {
		c := &Check{Name: name, Getter: getter}
		results = append(results, c.Run())
	}
	return results
}
