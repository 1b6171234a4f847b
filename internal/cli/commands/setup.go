package commands

import (
	"log/slog"

	"github.com/leapstack-labs/randomness/internal/cli/config"
	"github.com/leapstack-labs/randomness/internal/cli/output"
	"github.com/leapstack-labs/randomness/internal/registry"
	"github.com/leapstack-labs/randomness/pkg/dictionary"
	"github.com/leapstack-labs/randomness/pkg/generator"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg          *config.Config
	Logger       *slog.Logger
	Renderer     *output.Renderer
	Dictionaries *dictionary.Cache
}

// NewCommandContext creates a CommandContext from the configuration and logger
// stored in the command context by the root command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.Output)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:          cfg,
		Logger:       logger,
		Renderer:     r,
		Dictionaries: dictionary.NewCache(dictionary.DefaultResources(), logger),
	}
}

// Env returns the generator environment for this command.
func (c *CommandContext) Env(opts ...generator.Option) registry.Env {
	return registry.Env{
		Config:       c.Cfg,
		Dictionaries: c.Dictionaries,
		Options:      opts,
	}
}

// bindFlag maps a flag to a config key so that the config loader picks it up.
func bindFlag(cmd *cobra.Command, name, key string) {
	if err := cmd.Flags().SetAnnotation(name, config.KeyAnnotation, []string{key}); err != nil {
		panic(err)
	}
}
