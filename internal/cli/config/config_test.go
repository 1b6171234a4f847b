package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/randomness/pkg/scheme"
	"github.com/leapstack-labs/randomness/pkg/symbolset"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "randomness.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0600))
	return cfgPath
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"RANDOMNESS_OUTPUT", "output"},
		{"RANDOMNESS_LOG_LEVEL", "log_level"},
		{"RANDOMNESS_INTEGER__MAX_VALUE", "integer.max_value"},
		{"RANDOMNESS_ARRAY__SPACE_AFTER_SEPARATOR", "array.space_after_separator"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.input))
		})
	}
}

func TestFlagKey(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "", "")
	flags.Int64("max", 0, "")
	flags.Bool("array", false, "")
	flags.String("config", "", "")
	require.NoError(t, flags.SetAnnotation("max", KeyAnnotation, []string{"integer.max_value"}))

	assert.Equal(t, "log_level", flagKey(flags.Lookup("log-level")))
	assert.Equal(t, "integer.max_value", flagKey(flags.Lookup("max")))
	assert.Empty(t, flagKey(flags.Lookup("array")), "only annotated flags set scheme keys")
	assert.Empty(t, flagKey(flags.Lookup("config")))
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, scheme.DefaultIntegerScheme(), cfg.Integer)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetConfig(context.Background()))
}

func TestLoadConfig_FindsFileInParent(t *testing.T) {
	ResetConfig()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "randomness.yml"), []byte("output: markdown\n"), 0600))
	nested := filepath.Join(root, "sub", "dir")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output)
	assert.Equal(t, "randomness.yml", filepath.Base(GetConfigFileUsed()))
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "integer:\n  min_value: 10\n  max_value: 1\n")

	_, err := LoadConfig(cfgPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Minimum value is larger than maximum value.")
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "integer:\n  max_value: 100\n")
	t.Setenv("RANDOMNESS_INTEGER__MAX_VALUE", "200")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int64("max", 0, "maximum value")
	require.NoError(t, flags.SetAnnotation("max", KeyAnnotation, []string{"integer.max_value"}))
	require.NoError(t, flags.Set("max", "300"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, int64(300), cfg.Integer.MaxValue, "flag value should override config file and env var")
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "output: text\ninteger:\n  max_value: 100\n")
	t.Setenv("RANDOMNESS_INTEGER__MAX_VALUE", "200")
	t.Setenv("RANDOMNESS_OUTPUT", "json")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(200), cfg.Integer.MaxValue, "env var should override config file")
	assert.Equal(t, "json", cfg.Output)
}

// TestLoadConfig_FlagNotSetUsesEnv tests that unset flags fall back to env vars.
func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "integer:\n  max_value: 100\n")
	t.Setenv("RANDOMNESS_INTEGER__MAX_VALUE", "200")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int64("max", 0, "maximum value")
	require.NoError(t, flags.SetAnnotation("max", KeyAnnotation, []string{"integer.max_value"}))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, int64(200), cfg.Integer.MaxValue, "env var should be used when flag is not set")
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "decimal:\n  decimal_count: 4\n")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Decimal.DecimalCount)
	assert.Equal(t, 1000.0, cfg.Decimal.MaxValue, "unset keys keep their defaults")
}

func TestLoadConfig_ResolvesDictionaryPaths(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, `word:
  user_dictionaries: [words.dic, /abs/other.dic]
  active_user: [words.dic]
`)

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	dir := filepath.Dir(cfgPath)
	assert.Equal(t, []string{filepath.Join(dir, "words.dic"), "/abs/other.dic"}, cfg.Word.UserDictionaries)
	assert.Equal(t, []string{filepath.Join(dir, "words.dic")}, cfg.Word.ActiveUser)
}

func TestContextHelpers(t *testing.T) {
	ResetConfig()
	ctx := context.Background()

	assert.NotNil(t, GetLogger(ctx))
	assert.NotNil(t, GetConfig(ctx))

	logger := slog.New(slog.DiscardHandler)
	assert.Same(t, logger, GetLogger(WithLogger(ctx, logger)))

	cfg := &Config{Output: "json"}
	assert.Same(t, cfg, GetConfig(WithConfig(ctx, cfg)))
}

func TestLoadConfig_ShortForms(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, `string:
  capitalization: first-letter
  symbol_sets: [digits, Hexadecimal]
word:
  capitalization: UPPER
`)
	t.Setenv("RANDOMNESS_WORD__USER_DICTIONARIES", "/a.dic,/b.dic")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, scheme.CapitalizationFirstLetter, cfg.String.Capitalization)
	assert.Equal(t, scheme.CapitalizationUpper, cfg.Word.Capitalization)
	assert.Equal(t, []symbolset.SymbolSet{symbolset.Digits, symbolset.Hexadecimal}, cfg.String.SymbolSets)
	assert.Equal(t, []string{"/a.dic", "/b.dic"}, cfg.Word.UserDictionaries)
}

func TestLoadConfig_SymbolSetFlag(t *testing.T) {
	ResetConfig()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringSlice("symbols", nil, "")
	require.NoError(t, flags.SetAnnotation("symbols", KeyAnnotation, []string{"string.symbol_sets"}))
	require.NoError(t, flags.Set("symbols", "minus,underscore"))

	cfg, err := LoadConfig(writeConfig(t, "output: auto\n"), flags)
	require.NoError(t, err)
	assert.Equal(t, []symbolset.SymbolSet{symbolset.Minus, symbolset.Underscore}, cfg.String.SymbolSets)
}

func TestLoadConfig_EscapedSeparator(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "backslash n", value: `\n`, want: "\n"},
		{name: "newline word", value: "newline", want: "\n"},
		{name: "upper case word", value: "NEWLINE", want: "\n"},
		{name: "semicolon unchanged", value: ";", want: ";"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()

			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.String("separator", "", "")
			require.NoError(t, flags.SetAnnotation("separator", KeyAnnotation, []string{"array.separator"}))
			require.NoError(t, flags.Set("separator", tt.value))

			cfg, err := LoadConfig(writeConfig(t, "output: auto\n"), flags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Array.Separator)
		})
	}
}

func TestLoadConfig_EscapedSeparatorInFile(t *testing.T) {
	ResetConfig()

	cfg, err := LoadConfig(writeConfig(t, "array:\n  separator: '\\n'\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "\n", cfg.Array.Separator)
}

func TestLoadConfig_UnknownSymbolSet(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "string:\n  symbol_sets: [emoji]\n")

	_, err := LoadConfig(cfgPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown symbol set "emoji"`)
}

func TestLoadConfig_CustomSymbolSet(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, `string:
  symbol_sets:
    - name: Vowels
      symbols: aeiou
`)

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	assert.Equal(t, []symbolset.SymbolSet{{Name: "Vowels", Symbols: "aeiou"}}, cfg.String.SymbolSets)
}
