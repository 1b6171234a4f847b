package commands

import (
	"strconv"

	"github.com/leapstack-labs/randomness/internal/cli/output"
	"github.com/leapstack-labs/randomness/pkg/symbolset"
	"github.com/spf13/cobra"
)

// SymbolSetOutput is the JSON output for a single symbol set.
type SymbolSetOutput struct {
	Name     string `json:"name"`
	Symbols  string `json:"symbols"`
	Selected bool   `json:"selected"`
}

// SymbolsOutput is the JSON output for the symbols command.
type SymbolsOutput struct {
	Sets     []SymbolSetOutput `json:"sets"`
	Alphabet string            `json:"alphabet"`
}

// NewSymbolsCommand creates the symbols command.
func NewSymbolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List the symbol sets available to string generation",
		Long: `List the predefined symbol sets and the sets configured for strings.

The alphabet is the union of the configured sets, with look-alike symbols
removed when exclude_look_alike_symbols is set.`,
		Example: `  # Show symbol sets
  randomness symbols

  # Show symbol sets as JSON
  randomness symbols --output json`,
		Args: cobra.NoArgs,
		RunE: runSymbols,
	}
}

func runSymbols(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	s := cmdCtx.Cfg.String

	selected := make(map[string]bool, len(s.SymbolSets))
	for _, set := range s.SymbolSets {
		selected[set.Name] = true
	}

	// Configured custom sets follow the predefined ones.
	sets := symbolset.Defaults()
	for _, set := range s.SymbolSets {
		if _, ok := symbolset.Lookup(set.Name); !ok {
			sets = append(sets, set)
		}
	}

	out := SymbolsOutput{Alphabet: s.Alphabet()}
	for _, set := range sets {
		out.Sets = append(out.Sets, SymbolSetOutput{
			Name:     set.Name,
			Symbols:  set.Symbols,
			Selected: selected[set.Name],
		})
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	rows := make([][]string, 0, len(out.Sets))
	for _, set := range out.Sets {
		mark := ""
		if set.Selected {
			mark = "✓"
		}
		rows = append(rows, []string{mark, set.Name, strconv.Quote(set.Symbols)})
	}

	r.Header(2, "Symbol sets")
	r.Table([]string{"", "Name", "Symbols"}, rows)
	r.Println()
	if out.Alphabet == "" {
		r.Warning("No symbols selected")
		return nil
	}
	r.Printf("Alphabet (%d symbols): %s\n", len([]rune(out.Alphabet)), strconv.Quote(out.Alphabet))
	return nil
}
