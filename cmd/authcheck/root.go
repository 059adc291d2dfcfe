package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertti/oauthprep/pkg/config"
	"github.com/vertti/oauthprep/pkg/dotenv"
	"github.com/vertti/oauthprep/pkg/envcheck"
	"github.com/vertti/oauthprep/pkg/filecheck"
	"github.com/vertti/oauthprep/pkg/logger"
	"github.com/vertti/oauthprep/pkg/output"
	"github.com/vertti/oauthprep/pkg/validate"
)

// Version is set at build time via ldflags
var Version = "dev"

// ErrCheckFailed is returned when at least one validation fails.
var ErrCheckFailed = errors.New("validation failed")

var (
	projectDir string
	envFile    string
	configFile string
	debugLog   bool
)

var rootCmd = &cobra.Command{
	Use:           "authcheck",
	Short:         "Validate Google OAuth configuration for a Medusa project",
	Long:          "authcheck verifies the Google OAuth environment variables, the callback URL and the auth module registration in medusa-config.ts.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runValidate,
}

func init() {
	rootCmd.Flags().StringVar(&projectDir, "dir", "", "project root (default: current directory)")
	rootCmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "env file loaded before checks run")
	rootCmd.Flags().StringVar(&configFile, "config-file", config.DefaultConfigFile, "project config that must register the Google auth module")
	rootCmd.Flags().BoolVar(&debugLog, "debug", false, "log diagnostics to stderr")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	log := logger.FromEnv(cmd.ErrOrStderr(), debugLog)
	defer func() { _ = log.Sync() }()

	cfg := config.Default(projectDir)
	cfg.EnvFile = envFile
	cfg.ConfigFile = configFile

	envPath := cfg.Path(cfg.EnvFile)
	loaded, err := dotenv.Load(envPath)
	if err != nil {
		// A broken env file still lets the checks report what is missing.
		log.Warn("env file not loaded", zap.String("path", envPath), zap.Error(err))
	} else {
		log.Debug("env file", zap.String("path", envPath), zap.Bool("loaded", loaded))
	}

	runner := &validate.Runner{
		Config: cfg,
		Env:    &envcheck.RealEnvGetter{},
		FS:     &filecheck.RealFileSystem{},
		Log:    log,
	}
	report := runner.Run()
	output.PrintReport(cmd.OutOrStdout(), report)

	if !report.OK() {
		return fmt.Errorf("%w: %d check(s)", ErrCheckFailed, report.Failures())
	}
	return nil
}
