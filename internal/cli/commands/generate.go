package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/randomness/internal/cli/output"
	"github.com/leapstack-labs/randomness/internal/registry"
	"github.com/leapstack-labs/randomness/pkg/generator"
	"github.com/leapstack-labs/randomness/pkg/symbolset"
	"github.com/spf13/cobra"
)

// generateOutput is the JSON shape of generated values.
type generateOutput struct {
	Kind   string   `json:"kind"`
	Array  bool     `json:"array"`
	Values []string `json:"values"`
}

// NewGenerateCommands creates one command per data kind in kinds.
func NewGenerateCommands(kinds *registry.KindRegistry) []*cobra.Command {
	var cmds []*cobra.Command
	for _, kind := range kinds.All() {
		cmds = append(cmds, NewGenerateCommand(kind))
	}
	return cmds
}

// NewGenerateGroupCommand creates "generate <kind>", which holds a copy of
// every kind command and reports unknown kinds together with the known ones.
func NewGenerateGroupCommand(kinds *registry.KindRegistry) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate <kind>",
		Aliases: []string{"gen"},
		Short:   "Generate values of any data kind",
		Example: `  # Same as "randomness integer -n 3"
  randomness generate integer -n 3

  # Kinds can be given by alias
  randomness generate int --array`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			// Subcommands match exact names and aliases only.
			kind, err := kinds.Resolve(args[0])
			if err != nil {
				return err
			}
			return fmt.Errorf("unknown data kind %q, did you mean %q?", args[0], kind.Name)
		},
	}
	cmd.AddCommand(NewGenerateCommands(kinds)...)
	return cmd
}

// NewGenerateCommand creates the command generating values of kind.
func NewGenerateCommand(kind *registry.Kind) *cobra.Command {
	var (
		count   int
		array   bool
		preview bool
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:     kind.Name,
		Aliases: kind.Aliases,
		Short:   kind.Short,
		Long: fmt.Sprintf(`%s.

Settings are read from randomness.yaml, RANDOMNESS_* environment variables
and the flags below, in increasing order of precedence.`, kind.Short),
		Example: fmt.Sprintf(`  # Generate one value
  randomness %[1]s

  # Generate ten values
  randomness %[1]s -n 10

  # Generate an array of values as JSON
  randomness %[1]s --array --output json`, kind.Name),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			applyDictionaryFlag(cmd, cmdCtx)

			var opts []generator.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, generator.WithSeed(seed))
			}

			env := cmdCtx.Env(opts...)
			g := registry.Build(kind, env, array)
			if preview {
				g = registry.Preview(kind, env, array)
			}

			cmdCtx.Logger.Debug("generating values", "kind", kind.Name, "count", count, "array", array)
			values, err := g.Generate(count)
			if err != nil {
				return err
			}

			r := cmdCtx.Renderer
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(generateOutput{Kind: kind.Name, Array: array, Values: values})
			}
			for _, v := range values {
				r.Println(v)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of values to generate")
	cmd.Flags().BoolVarP(&array, "array", "a", false, "Generate arrays of values")
	cmd.Flags().BoolVar(&preview, "preview", false, "Show placeholders instead of random values")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible output")

	addArrayFlags(cmd)
	switch kind.Name {
	case "decimal":
		addDecimalFlags(cmd)
	case "integer":
		addIntegerFlags(cmd)
	case "string":
		addStringFlags(cmd)
	case "uuid":
		addUUIDFlags(cmd)
	case "word":
		addWordFlags(cmd)
	}

	return cmd
}

func addArrayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("array-count", 0, "Number of values in each array")
	f.String("brackets", "", `Brackets around arrays: "[]", "{}", "()" or ""`)
	f.String("separator", "", `Separator between array values: ",", ";" or "\n" (also "newline")`)
	f.Bool("space-after-separator", true, "Add a space after each separator")

	bindFlag(cmd, "array-count", "array.count")
	bindFlag(cmd, "brackets", "array.brackets")
	bindFlag(cmd, "separator", "array.separator")
	bindFlag(cmd, "space-after-separator", "array.space_after_separator")
}

func addDecimalFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64("min", 0, "Minimum value, inclusive")
	f.Float64("max", 0, "Maximum value, inclusive")
	f.Int("decimals", 0, "Number of decimals")
	f.Bool("trailing-zeroes", true, "Pad decimals with trailing zeroes")
	f.String("grouping-separator", "", "Separator between groups of thousands")
	f.String("decimal-separator", "", "Separator between integer and decimals")

	bindFlag(cmd, "min", "decimal.min_value")
	bindFlag(cmd, "max", "decimal.max_value")
	bindFlag(cmd, "decimals", "decimal.decimal_count")
	bindFlag(cmd, "trailing-zeroes", "decimal.show_trailing_zeroes")
	bindFlag(cmd, "grouping-separator", "decimal.grouping_separator")
	bindFlag(cmd, "decimal-separator", "decimal.decimal_separator")
}

func addIntegerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int64("min", 0, "Minimum value, inclusive")
	f.Int64("max", 0, "Maximum value, inclusive")
	f.Int("base", 10, "Base between 2 and 36")
	f.String("grouping-separator", "", "Separator between groups of thousands (base 10 only)")

	bindFlag(cmd, "min", "integer.min_value")
	bindFlag(cmd, "max", "integer.max_value")
	bindFlag(cmd, "base", "integer.base")
	bindFlag(cmd, "grouping-separator", "integer.grouping_separator")
}

func addStringFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("min-length", 0, "Minimum length, inclusive")
	f.Int("max-length", 0, "Maximum length, inclusive")
	f.String("enclosure", "", "String placed on both sides of each value")
	f.String("capitalization", "", capitalizationHelp)
	f.Bool("exclude-look-alikes", false, "Exclude symbols that look alike, such as 0 and O")
	f.StringSlice("symbols", nil, "Symbol sets to use, by name (see 'randomness symbols')")

	bindFlag(cmd, "min-length", "string.min_length")
	bindFlag(cmd, "max-length", "string.max_length")
	bindFlag(cmd, "enclosure", "string.enclosure")
	bindFlag(cmd, "capitalization", "string.capitalization")
	bindFlag(cmd, "exclude-look-alikes", "string.exclude_look_alike_symbols")
	bindFlag(cmd, "symbols", "string.symbol_sets")
	_ = cmd.RegisterFlagCompletionFunc("symbols", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, s := range symbolset.Defaults() {
			names = append(names, strings.ToLower(strings.Fields(s.Name)[0]))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func addUUIDFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("version", 4, "UUID version: 1, 4 or 7")
	f.String("enclosure", "", "String placed on both sides of each value")
	f.String("capitalization", "", capitalizationHelp)
	f.Bool("dashes", true, "Separate groups with dashes")

	bindFlag(cmd, "version", "uuid.version")
	bindFlag(cmd, "enclosure", "uuid.enclosure")
	bindFlag(cmd, "capitalization", "uuid.capitalization")
	bindFlag(cmd, "dashes", "uuid.add_dashes")
}

func addWordFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("min-length", 0, "Minimum length, inclusive")
	f.Int("max-length", 0, "Maximum length, inclusive")
	f.String("enclosure", "", "String placed on both sides of each value")
	f.String("capitalization", "", capitalizationHelp)
	f.StringSlice("dictionary", nil, "User dictionary files to use instead of the configured ones")

	bindFlag(cmd, "min-length", "word.min_length")
	bindFlag(cmd, "max-length", "word.max_length")
	bindFlag(cmd, "enclosure", "word.enclosure")
	bindFlag(cmd, "capitalization", "word.capitalization")
}

const capitalizationHelp = "Capitalization: retain, sentence, upper, lower, first-letter or random"

// applyDictionaryFlag replaces the configured dictionaries with the user
// dictionaries given on the command line.
func applyDictionaryFlag(cmd *cobra.Command, cmdCtx *CommandContext) {
	f := cmd.Flags().Lookup("dictionary")
	if f == nil || !f.Changed {
		return
	}
	paths, _ := cmd.Flags().GetStringSlice("dictionary")
	cmdCtx.Cfg.Word.BundledDictionaries = nil
	cmdCtx.Cfg.Word.ActiveBundled = nil
	cmdCtx.Cfg.Word.UserDictionaries = paths
	cmdCtx.Cfg.Word.ActiveUser = paths
}
