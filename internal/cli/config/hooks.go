package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/leapstack-labs/randomness/pkg/scheme"
	"github.com/leapstack-labs/randomness/pkg/symbolset"
)

var (
	capitalizationType = reflect.TypeOf(scheme.CapitalizationMode(""))
	symbolSetType      = reflect.TypeOf(symbolset.SymbolSet{})
)

// decodeHook converts the short forms accepted in files, env vars and flags:
// comma separated lists, capitalization aliases like "first-letter" and
// predefined symbol sets given by name.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		capitalizationHook,
		symbolSetHook,
	)
}

// unescapeSeparator turns the escaped forms a shell passes through
// unchanged, like '\n', into the separator they stand for.
func unescapeSeparator(sep string) string {
	switch strings.ToLower(sep) {
	case `\n`, "newline":
		return "\n"
	}
	return sep
}

func capitalizationHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != capitalizationType {
		return data, nil
	}
	if m, ok := scheme.ParseCapitalization(reflect.ValueOf(data).String()); ok {
		return m, nil
	}
	// Unknown modes are reported by validation.
	return data, nil
}

func symbolSetHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != symbolSetType {
		return data, nil
	}
	name := reflect.ValueOf(data).String()
	set, ok := symbolset.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown symbol set %q", name)
	}
	return set, nil
}
