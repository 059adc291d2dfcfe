// Package config holds the file names, variable names and literals that
// describe a Medusa project wired for Google OAuth.
package config

import "path/filepath"

const (
	DefaultEnvFile      = ".env"
	DefaultTemplateFile = ".env.template"
	DefaultConfigFile   = "medusa-config.ts"

	ClientIDVar     = "GOOGLE_CLIENT_ID"
	ClientSecretVar = "GOOGLE_CLIENT_SECRET"
	CallbackURLVar  = "GOOGLE_CALLBACK_URL"

	CallbackPath   = "/auth/callback"
	GoogleModuleID = "@medusajs/medusa/auth-google"

	SetupGuide         = "GOOGLE_OAUTH_SETUP.md"
	CredentialsConsole = "https://console.cloud.google.com/apis/credentials"
	StorefrontAccount  = "http://localhost:8000/account"
)

// Config describes where a project lives and what it must contain.
type Config struct {
	Dir          string   // project root; relative file names resolve against it
	EnvFile      string   // secrets file read by authcheck and written by envsetup
	TemplateFile string   // template copied by envsetup
	ConfigFile   string   // project config scanned for ModuleID
	RequiredVars []string // checked in order
	CallbackVar  string
	CallbackPath string
	ModuleID     string
}

// Default returns the configuration for a project rooted at dir.
func Default(dir string) Config {
	if dir == "" {
		dir = "."
	}
	return Config{
		Dir:          dir,
		EnvFile:      DefaultEnvFile,
		TemplateFile: DefaultTemplateFile,
		ConfigFile:   DefaultConfigFile,
		RequiredVars: []string{ClientIDVar, ClientSecretVar, CallbackURLVar},
		CallbackVar:  CallbackURLVar,
		CallbackPath: CallbackPath,
		ModuleID:     GoogleModuleID,
	}
}

// Path resolves name against Dir. Absolute names are returned unchanged.
func (c Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}
