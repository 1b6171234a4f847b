package generator

import (
	"github.com/leapstack-labs/randomness/pkg/scheme"
)

func arrayScheme(count int, brackets, separator string, space bool) scheme.ArrayScheme {
	return scheme.ArrayScheme{Count: count, Brackets: brackets, Separator: separator, SpaceAfterSeparator: space}
}

func defaultDecimal() scheme.DecimalScheme { return scheme.DefaultDecimalScheme() }
func defaultInteger() scheme.IntegerScheme { return scheme.DefaultIntegerScheme() }
func defaultString() scheme.StringScheme   { return scheme.DefaultStringScheme() }
func defaultUUID() scheme.UUIDScheme       { return scheme.DefaultUUIDScheme() }
