package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/oauthprep/pkg/logger"
	"github.com/vertti/oauthprep/pkg/testutil"
)

const template = `# Google OAuth
GOOGLE_CLIENT_ID=your_google_client_id
GOOGLE_CLIENT_SECRET=your_google_client_secret
GOOGLE_CALLBACK_URL=http://localhost:8000/auth/callback
`

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestVersionFlag(t *testing.T) {
	output, err := executeCommand("--version")
	require.NoError(t, err)
	assert.Contains(t, output, "envsetup")
}

func TestCreatesEnvFromTemplate(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".env.template", template)

	output, err := executeCommand("--dir", dir)

	require.NoError(t, err)
	assert.Contains(t, output, "✅ Created .env from .env.template")
	assert.Contains(t, output, "- GOOGLE_CLIENT_SECRET")
	assert.Contains(t, output, "https://console.cloud.google.com/apis/credentials")

	got, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, template, string(got))
}

func TestSecondRunReportsExisting(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".env.template", template)

	_, err := executeCommand("--dir", dir)
	require.NoError(t, err)
	before, err := os.Stat(filepath.Join(dir, ".env"))
	require.NoError(t, err)

	output, err := executeCommand("--dir", dir)

	require.NoError(t, err)
	assert.Contains(t, output, ".env file already exists")
	after, err := os.Stat(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestTemplateMissingIsNotAnError(t *testing.T) {
	dir := t.TempDir()

	output, err := executeCommand("--dir", dir)

	require.NoError(t, err)
	assert.Contains(t, output, "❌ .env.template not found")
	_, statErr := os.Stat(filepath.Join(dir, ".env"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFailureIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".env.template", template)

	output, err := executeCommand("--dir", dir, "--env-file", filepath.Join("missing-dir", ".env"))

	require.NoError(t, err)
	assert.Contains(t, output, "❌ Error creating .env file")
}

func TestCustomTemplate(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "google.env.example", template)

	output, err := executeCommand("--dir", dir, "--template", "google.env.example", "--env-file", ".env.local")

	require.NoError(t, err)
	assert.Contains(t, output, "Created .env.local from google.env.example")
}

func TestUnparseableTemplateIsCopiedWithWarning(t *testing.T) {
	t.Setenv(logger.EnvLevel, "warn")
	dir := t.TempDir()
	broken := "GOOGLE-CLIENT-ID=abc\n"
	testutil.WriteFile(t, dir, ".env.template", broken)

	output, err := executeCommand("--dir", dir)

	require.NoError(t, err)
	assert.Contains(t, output, "created env file is not parseable")
	assert.Contains(t, output, "✅ Created .env from .env.template")

	got, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, broken, string(got))
}
