// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/config"
)

// Build information, set by main.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// globals carries the persistent flags and the configuration they produce.
type globals struct {
	configPath string
	backendURL string
	logLevel   string

	cfg *config.Config
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

// NewRootCmd builds the command tree. Running it without a subcommand starts
// the TUI.
func NewRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "chatwidget",
		Short: "Terminal host for the ReCircle chat widget",
		Long: `chatwidget runs the chat widget in your terminal: a visitor session with
lead capture, question answering, suggestions and transcript download,
talking to the chat service over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			g.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, g)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "config file (default ~/.chatwidget/config.toml)")
	flags.StringVar(&g.backendURL, "backend-url", "", "chat service base URL")
	flags.StringVar(&g.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		newTUICmd(g),
		newChatCmd(g),
		newTranscriptCmd(g),
		newForgetCmd(g),
		newConfigCmd(g),
		newStubCmd(g),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
	}
	return ExitCode(err)
}

// loadConfig runs .env, file, environment and flag overrides, in that order.
func loadConfig(g *globals) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, errors.Wrap(err, "load .env")
	}

	var (
		cfg *config.Config
		err error
	)
	if g.configPath != "" {
		cfg, err = config.LoadFromPath(g.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if g.backendURL != "" {
		cfg.Backend.BaseURL = g.backendURL
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
