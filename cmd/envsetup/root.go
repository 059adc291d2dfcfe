package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertti/oauthprep/pkg/config"
	"github.com/vertti/oauthprep/pkg/dotenv"
	"github.com/vertti/oauthprep/pkg/logger"
	"github.com/vertti/oauthprep/pkg/output"
	"github.com/vertti/oauthprep/pkg/scaffold"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	projectDir   string
	envFile      string
	templateFile string
	debugLog     bool
)

var rootCmd = &cobra.Command{
	Use:          "envsetup",
	Short:        "Create .env from .env.template for Google OAuth",
	Long:         "envsetup copies .env.template to .env when .env does not exist yet, then lists the Google OAuth values still to fill in.",
	Version:      Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSetup,
}

func init() {
	rootCmd.Flags().StringVar(&projectDir, "dir", "", "project root (default: current directory)")
	rootCmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "env file to create")
	rootCmd.Flags().StringVar(&templateFile, "template", config.DefaultTemplateFile, "template to copy from")
	rootCmd.Flags().BoolVar(&debugLog, "debug", false, "log diagnostics to stderr")
}

func runSetup(cmd *cobra.Command, _ []string) error {
	log := logger.FromEnv(cmd.ErrOrStderr(), debugLog)
	defer func() { _ = log.Sync() }()

	cfg := config.Default(projectDir)
	cfg.EnvFile = envFile
	cfg.TemplateFile = templateFile

	s := &scaffold.Setup{
		Dest:     cfg.Path(cfg.EnvFile),
		Template: cfg.Path(cfg.TemplateFile),
		FS:       &scaffold.RealFileSystem{},
	}
	out := s.Run()
	log.Debug("scaffold finished",
		zap.String("state", string(out.State)),
		zap.String("dest", out.Path),
		zap.String("blake3", out.Digest),
		zap.Error(out.Err))

	if out.State == scaffold.StateCreated {
		if keys, err := dotenv.Keys(out.Path); err == nil {
			log.Debug("template variables", zap.Strings("keys", keys))
		} else {
			log.Warn("created env file is not parseable", zap.Error(err))
		}
	}

	output.PrintSetup(cmd.OutOrStdout(), out, cfg.RequiredVars)
	return nil
}
