package commands

import (
	"fmt"

	"github.com/leapstack-labs/randomness/internal/cli/config"
	"github.com/leapstack-labs/randomness/internal/cli/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration after defaults, the config file, environment
variables and flags have been applied.

Paste the output into randomness.yaml to start from the current settings.`,
		Example: `  # Show configuration
  randomness config

  # Show configuration with an environment override
  RANDOMNESS_INTEGER__MAX_VALUE=10 randomness config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(cmdCtx.Cfg)
			}

			data, err := yaml.Marshal(cmdCtx.Cfg)
			if err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}

			if file := config.GetConfigFileUsed(); file != "" {
				r.Printf("# %s\n", file)
			} else {
				r.Println("# defaults")
			}
			r.Printf("%s", data)
			return nil
		},
	}
}
