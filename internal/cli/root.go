// Package cli implements the discordify command line.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/riverfjs/discordify-go"
	"github.com/riverfjs/discordify-go/internal/config"
	"github.com/riverfjs/discordify-go/internal/logger"
)

type configCtxKey struct{}

// RootCmd builds the discordify command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "discordify",
		Short:        "Prepare markdown for Discord messages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.Bool("log-json", false, "Output logs in JSON format")
	flags.Bool("log-source", false, "Include source location in logs")
	flags.Int("max-length", discordify.MaxMessageLength, "Maximum length of a message")
	flags.Bool("utf16", false, "Measure lengths in UTF-16 code units")

	root.AddCommand(
		SplitCmd(),
		FetchCmd(),
		AuditCmd(),
	)
	return root
}

// setup loads the configuration, builds the logger and stores both in the
// command context.
func setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(ctx, flagOverrides(cmd))
	if err != nil {
		return err
	}

	level, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-level") {
		level = cfg.Log.Level
	}
	if !cmd.Flags().Changed("log-json") {
		logJSON = cfg.Log.JSON
	}
	log := logger.SetupLogger(level, logJSON, logSource)
	if c, ok := log.(interface{ Charm() *charmlog.Logger }); ok {
		discordify.SetLogger(c.Charm().WithPrefix("discordify"))
	}

	ctx = logger.ContextWithLogger(ctx, log)
	ctx = context.WithValue(ctx, configCtxKey{}, cfg)
	cmd.SetContext(ctx)
	return nil
}

// flagOverrides maps explicitly set flags onto configuration keys.
func flagOverrides(cmd *cobra.Command) map[string]any {
	overrides := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("max-length") {
		if v, err := flags.GetInt("max-length"); err == nil {
			overrides["split.max_length"] = v
		}
	}
	if flags.Changed("utf16") {
		if v, err := flags.GetBool("utf16"); err == nil && v {
			overrides["split.unit"] = "utf16"
		} else {
			overrides["split.unit"] = "runes"
		}
	}
	if flags.Changed("log-level") {
		if v, err := flags.GetString("log-level"); err == nil {
			overrides["log.level"] = v
		}
	}
	return overrides
}

func configFrom(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configCtxKey{}).(*config.Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return cfg, nil
}
