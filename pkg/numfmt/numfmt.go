// Package numfmt formats numbers without depending on the process locale.
//
// Decimals are printed with configurable grouping and decimal separators and a
// fixed or trimmed number of fraction digits. Integers can be converted to any
// base between 2 and 36.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Base limits accepted by FormatInteger.
const (
	MinBase     = 2
	MaxBase     = 36
	DecimalBase = 10
)

// GroupSize is the number of integer digits between grouping separators.
const GroupSize = 3

// DecimalOptions controls how FormatDecimal prints a value.
type DecimalOptions struct {
	// DecimalCount is the maximum number of fraction digits.
	DecimalCount int
	// ShowTrailingZeroes pads the fraction to exactly DecimalCount digits.
	ShowTrailingZeroes bool
	// GroupingSeparator is inserted between groups of integer digits. Empty disables grouping.
	GroupingSeparator string
	// DecimalSeparator separates the integer and fraction digits. Empty means
	// the digits run together.
	DecimalSeparator string
}

// FormatDecimal returns value rounded to opts.DecimalCount fraction digits.
// Rounding is half-even on the exact binary value of value.
func FormatDecimal(value float64, opts DecimalOptions) string {
	if math.IsNaN(value) {
		return "NaN"
	}
	if math.IsInf(value, 0) {
		if value < 0 {
			return "-∞"
		}
		return "∞"
	}

	decimals := opts.DecimalCount
	if decimals < 0 {
		decimals = 0
	}

	digits := strconv.FormatFloat(math.Abs(value), 'f', decimals, 64)
	intPart, fracPart, _ := strings.Cut(digits, ".")

	if !opts.ShowTrailingZeroes {
		fracPart = strings.TrimRight(fracPart, "0")
	}

	var b strings.Builder
	if value < 0 && !isZero(intPart, fracPart) {
		b.WriteByte('-')
	}
	b.WriteString(Group(intPart, opts.GroupingSeparator))
	if fracPart != "" {
		b.WriteString(opts.DecimalSeparator)
		b.WriteString(fracPart)
	}

	return b.String()
}

// isZero reports whether the rounded digits are all zero, in which case no
// minus sign is printed.
func isZero(intPart, fracPart string) bool {
	return strings.Trim(intPart, "0") == "" && strings.Trim(fracPart, "0") == ""
}

// FormatInteger converts value to the given base.
//
// In base 10 the digits are grouped in threes from the least significant
// digit when groupingSeparator is non-empty. Other bases are printed as a
// plain digit string.
func FormatInteger(value int64, base int, groupingSeparator string) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("base %d is outside the range %d to %d", base, MinBase, MaxBase)
	}

	if base != DecimalBase {
		return strconv.FormatInt(value, base), nil
	}

	digits := strconv.FormatInt(value, DecimalBase)
	if negative := strings.HasPrefix(digits, "-"); negative {
		return "-" + Group(digits[1:], groupingSeparator), nil
	}
	return Group(digits, groupingSeparator), nil
}

// Group inserts sep between every GroupSize digits of digits, counting from
// the right. digits must not carry a sign.
func Group(digits, sep string) string {
	if sep == "" || len(digits) <= GroupSize {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(sep)*(len(digits)/GroupSize))

	head := len(digits) % GroupSize
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += GroupSize {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+GroupSize])
	}

	return b.String()
}
