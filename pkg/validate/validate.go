// Package validate runs the Google OAuth setup checks and groups their
// results into a report.
package validate

import (
	"go.uber.org/zap"

	"github.com/vertti/oauthprep/pkg/check"
	"github.com/vertti/oauthprep/pkg/config"
	"github.com/vertti/oauthprep/pkg/envcheck"
	"github.com/vertti/oauthprep/pkg/filecheck"
	"github.com/vertti/oauthprep/pkg/urlcheck"
)

// Section titles, in report order.
const (
	SectionEnv    = "Environment Variables"
	SectionURL    = "Callback URL"
	SectionConfig = "Configuration"
)

// Section is a titled group of results.
type Section struct {
	Title   string
	Results []check.Result
}

// Report is the ordered outcome of a validation run.
type Report struct {
	Sections []Section
}

// Results returns every result in report order.
func (r Report) Results() []check.Result {
	var all []check.Result
	for _, s := range r.Sections {
		all = append(all, s.Results...)
	}
	return all
}

// Failures returns the number of failed results.
func (r Report) Failures() int {
	return check.CountFailed(r.Results())
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	return r.Failures() == 0
}

// Runner wires the checks to their environment and file system.
type Runner struct {
	Config config.Config
	Env    envcheck.EnvGetter
	FS     filecheck.FileSystem
	Log    *zap.Logger
}

// Run executes the environment, callback URL and config checks in that order.
func (r *Runner) Run() Report {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}

	envResults := envcheck.CheckAll(r.Config.RequiredVars, r.Env)

	urlCheck := &urlcheck.Check{
		Name:         r.Config.CallbackVar,
		PathContains: r.Config.CallbackPath,
		Getter:       r.Env,
	}

	cfgCheck := &filecheck.Check{
		Path:     r.Config.Path(r.Config.ConfigFile),
		Contains: r.Config.ModuleID,
		Module:   "Google auth module",
		FS:       r.FS,
	}

	report := Report{Sections: []Section{
		{Title: SectionEnv, Results: envResults},
		{Title: SectionURL, Results: runAll(urlCheck)},
		{Title: SectionConfig, Results: runAll(cfgCheck)},
	}}

	for _, res := range report.Results() {
		log.Debug("check finished",
			zap.String("check", res.Name),
			zap.String("status", string(res.Status)),
			zap.Error(res.Err))
	}
	return report
}

func runAll(checkers ...check.Checker) []check.Result {
	results := make([]check.Result, 0, len(checkers))
	for _, c := range checkers {
		results = append(results, c.Run())
	}
	return results
}
