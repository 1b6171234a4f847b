package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/randomness/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/randomness/internal/config"
	"github.com/leapstack-labs/randomness/pkg/dictionary"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// starterDictionary is the user dictionary created by init --dictionary.
var starterDictionary = filepath.Join("dictionaries", "words.dic")

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var withDictionary bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a randomness.yaml with the default settings",
		Long: `Create a randomness.yaml configuration file with the default settings.

Use --dictionary to also create a user dictionary, seeded with the words of
the bundled dictionary, and select it for word generation.`,
		Example: `  # Initialize in current directory
  randomness init

  # Initialize with a user dictionary
  randomness init --dictionary

  # Force overwrite existing config
  randomness init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cmdCtx := NewCommandContext(cmd)
			return runInit(cmdCtx.Renderer, cmdCtx.Dictionaries, dir, force, withDictionary)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&withDictionary, "dictionary", false, "Create a user dictionary next to the configuration")

	return cmd
}

func runInit(r *output.Renderer, dictionaries *dictionary.Cache, dir string, force, withDictionary bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, sharedcfg.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", sharedcfg.ConfigFileName)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", configPath, err)
	}

	cfg := sharedcfg.Default()
	var created []string

	if withDictionary {
		if err := writeStarterDictionary(dictionaries, filepath.Join(dir, starterDictionary), force); err != nil {
			return err
		}
		cfg.Word.UserDictionaries = []string{filepath.ToSlash(starterDictionary)}
		cfg.Word.ActiveUser = []string{filepath.ToSlash(starterDictionary)}
		created = append(created, starterDictionary)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	created = append([]string{sharedcfg.ConfigFileName}, created...)

	for _, f := range created {
		r.StatusLine(f, "success", "")
	}

	r.Println("")
	r.Success("randomness initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Adjust the settings in " + sharedcfg.ConfigFileName)
	r.Println("  2. Run 'randomness integer -n 5' to generate values")
	r.Println("  3. Run 'randomness dictionary check' to validate dictionaries")

	return nil
}

func writeStarterDictionary(dictionaries *dictionary.Cache, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", path)
	}

	words, err := dictionaries.Bundled(dictionary.DefaultBundledDictionary).Words()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	contents := strings.Join(words.Slice(), "\n") + "\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
