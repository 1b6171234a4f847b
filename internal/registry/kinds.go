package registry

import (
	"github.com/leapstack-labs/randomness/pkg/generator"
)

// Default returns a registry holding every data kind.
func Default() *KindRegistry {
	r := NewKindRegistry()

	r.Register(&Kind{
		Name:        "decimal",
		Aliases:     []string{"float", "double"},
		Short:       "Generate random decimal numbers",
		Placeholder: "17.00",
		New: func(env Env) generator.Generator {
			return generator.Decimal(env.Config.Decimal, env.Options...)
		},
	})
	r.Register(&Kind{
		Name:        "integer",
		Aliases:     []string{"int", "number"},
		Short:       "Generate random integers",
		Placeholder: "17",
		New: func(env Env) generator.Generator {
			return generator.Integer(env.Config.Integer, env.Options...)
		},
	})
	r.Register(&Kind{
		Name:        "string",
		Aliases:     []string{"str"},
		Short:       "Generate random strings",
		Placeholder: `"str"`,
		New: func(env Env) generator.Generator {
			return generator.String(env.Config.String, env.Options...)
		},
	})
	r.Register(&Kind{
		Name:        "uuid",
		Aliases:     []string{"guid"},
		Short:       "Generate UUIDs",
		Placeholder: `"00000000-0000-0000-0000-000000000000"`,
		New: func(env Env) generator.Generator {
			return generator.UUID(env.Config.UUID, env.Options...)
		},
	})
	r.Register(&Kind{
		Name:        "word",
		Aliases:     []string{"words"},
		Short:       "Generate random words from dictionaries",
		Placeholder: `"word"`,
		New: func(env Env) generator.Generator {
			return generator.Word(env.Config.Word, env.Dictionaries, env.Options...)
		},
	})

	return r
}

// Build returns the generator for kind, wrapped in an array generator when
// array is set.
func Build(kind *Kind, env Env, array bool) generator.Generator {
	g := kind.New(env)
	if array {
		return generator.Array(g, env.Config.Array)
	}
	return g
}

// Preview returns a generator showing the array layout with kind's
// placeholder instead of random values.
func Preview(kind *Kind, env Env, array bool) generator.Generator {
	g := generator.Fixed(kind.Placeholder)
	if array {
		return generator.Array(g, env.Config.Array)
	}
	return g
}
