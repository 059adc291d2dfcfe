// Package urlcheck validates the OAuth callback URL.
package urlcheck

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vertti/oauthprep/pkg/check"
	"github.com/vertti/oauthprep/pkg/envcheck"
)

// Check verifies that an environment variable holds an absolute URL whose
// path contains PathContains.
type Check struct {
	Name         string             // env var name
	PathContains string             // e.g. "/auth/callback"
	Getter       envcheck.EnvGetter // injected for testing
}

// Run executes the callback URL check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("url: %s", c.Name),
	}

	raw, _ := c.Getter.LookupEnv(c.Name)
	if raw == "" {
		return result.Fail(fmt.Sprintf("%s is not set", c.Name),
			fmt.Errorf("environment variable %s is not set", c.Name))
	}

	u, err := Parse(raw)
	if err != nil {
		return result.Fail(fmt.Sprintf("%s is not a valid URL: %s", c.Name, raw), err)
	}

	path := Pathname(u)
	if !strings.Contains(path, c.PathContains) {
		return result.Failf("Callback URL should end with %s, got: %s", c.PathContains, path)
	}

	return result.Passf("Callback URL is valid: %s", raw)
}

// Parse parses raw as an absolute URL. A scheme is required, and the
// hierarchical web schemes also require a host.
func Parse(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("parse %q: missing scheme", raw)
	}
	if needsHost(u.Scheme) && u.Host == "" {
		return nil, fmt.Errorf("parse %q: missing host", raw)
	}
	return u, nil
}

// Pathname returns the escaped path of u. Web URLs with no path report "/".
func Pathname(u *url.URL) string {
	p := u.EscapedPath()
	if p == "" && needsHost(u.Scheme) {
		return "/"
	}
	if p == "" {
		return u.Opaque
	}
	return p
}

func needsHost(scheme string) bool {
	switch strings.ToLower(scheme) {
	case "http", "https", "ws", "wss", "ftp":
		return true
	}
	return false
}
