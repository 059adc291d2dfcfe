package output

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/oauthprep/pkg/check"
	"github.com/vertti/oauthprep/pkg/config"
	"github.com/vertti/oauthprep/pkg/scaffold"
	"github.com/vertti/oauthprep/pkg/validate"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	bold  = "\033[1m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, bold, reset = "", "", "", ""
	}
}

// Marker returns the status marker for r.
func Marker(r check.Result) string {
	if r.OK() {
		return "✅"
	}
	return "❌"
}

// PrintResult outputs a single result line.
func PrintResult(w io.Writer, r check.Result) {
	_, _ = fmt.Fprintf(w, "  %s %s\n", Marker(r), r.Message)
}

// PrintReport outputs every section of the report followed by the verdict.
func PrintReport(w io.Writer, report validate.Report) {
	_, _ = fmt.Fprintf(w, "%s🔍 Validating Google OAuth configuration...%s\n", bold, reset)
	for _, s := range report.Sections {
		_, _ = fmt.Fprintf(w, "\n%s%s:%s\n", bold, s.Title, reset)
		for _, r := range s.Results {
			PrintResult(w, r)
		}
	}
	_, _ = fmt.Fprintln(w)

	if n := report.Failures(); n > 0 {
		printFailure(w, n)
		return
	}
	printSuccess(w)
}

func printSuccess(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s🎉 All validations passed!%s\n\n", green, reset)
	_, _ = fmt.Fprintln(w, "Next steps:")
	_, _ = fmt.Fprintln(w, "  1. Start the backend: npm run dev")
	_, _ = fmt.Fprintln(w, "  2. Start the storefront: cd ../storefront && npm run dev")
	_, _ = fmt.Fprintf(w, "  3. Visit %s and click \"Continue with Google\"\n", config.StorefrontAccount)
}

func printFailure(w io.Writer, failed int) {
	_, _ = fmt.Fprintf(w, "%s❌ %d validation(s) failed%s\n\n", red, failed, reset)
	_, _ = fmt.Fprintln(w, "Common fixes:")
	_, _ = fmt.Fprintf(w, "  - Copy %s to %s and fill in your credentials\n", config.DefaultTemplateFile, config.DefaultEnvFile)
	_, _ = fmt.Fprintf(w, "  - Get OAuth credentials from %s\n", config.CredentialsConsole)
	_, _ = fmt.Fprintf(w, "  - Make sure %s ends with %s\n", config.CallbackURLVar, config.CallbackPath)
	_, _ = fmt.Fprintf(w, "  - Register %s in %s\n", config.GoogleModuleID, config.DefaultConfigFile)
	_, _ = fmt.Fprintf(w, "\nSee %s for detailed setup instructions.\n", config.SetupGuide)
}

// PrintSetup outputs the result of an envsetup run.
func PrintSetup(w io.Writer, out scaffold.Outcome, requiredVars []string) {
	dest, tmpl := displayName(out.Path), displayName(out.Template)

	switch out.State {
	case scaffold.StateExists:
		_, _ = fmt.Fprintf(w, "ℹ️  %s file already exists\n", dest)
		_, _ = fmt.Fprintf(w, "Please edit %s manually to configure Google OAuth credentials\n", dest)
	case scaffold.StateTemplateMissing:
		_, _ = fmt.Fprintf(w, "%s❌ %s not found%s\n", red, tmpl, reset)
	case scaffold.StateCreated:
		_, _ = fmt.Fprintf(w, "%s✅ Created %s from %s%s\n\n", green, dest, tmpl, reset)
		_, _ = fmt.Fprintf(w, "📝 Next steps:\n")
		_, _ = fmt.Fprintf(w, "  1. Edit %s and fill in:\n", dest)
		for _, v := range requiredVars {
			_, _ = fmt.Fprintf(w, "     - %s\n", v)
		}
		_, _ = fmt.Fprintf(w, "  2. See %s for detailed instructions\n", config.SetupGuide)
		_, _ = fmt.Fprintf(w, "  3. Get OAuth credentials from: %s\n", config.CredentialsConsole)
	case scaffold.StateFailed:
		_, _ = fmt.Fprintf(w, "%s❌ Error creating %s file: %v%s\n", red, dest, out.Err, reset)
	}
}

func displayName(path string) string {
	if path == "" {
		return path
	}
	return filepath.Base(path)
}
