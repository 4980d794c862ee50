package gas

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

var (
	errInvalidSyntax   = errors.New("invalid decimal syntax")
	errFractionTooLong = errors.New("too many digits after the decimal point")
)

// ParseAmount converts a string to an amount.
// The string consists of a decimal number followed by a unit token,
// optionally separated by whitespace:
//
//	300 Tgas
//	1.5Tgas
//	0.000000000001 teragas
//	2500 Ggas
//	100000 gas
//
// The number must match ^\d+(\.\d+)?$ and may not have more digits after
// the decimal point than the [Unit.Scale] of its unit: "1.5 gas" is rejected
// rather than truncated.
// Unit tokens are matched case-insensitively, see [ParseUnit].
// Leading and trailing whitespace is ignored.
//
// ParseAmount returns an error wrapping:
//   - [ErrIncorrectUnit] if the unit token is missing or unknown;
//   - [ErrIncorrectNumber] if the number is malformed, too precise for its
//     unit, or greater than [MaxAmount].
func ParseAmount(s string) (Amount, error) {
	num, token := splitUnit(strings.TrimSpace(s))
	u, err := ParseUnit(token)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	a, err := parseNumber(u, strings.TrimSpace(num))
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return a, nil
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", s, err))
	}
	return a
}

// ParseAmountIn converts a decimal number of units of u to an amount.
// The number follows the same rules as in [ParseAmount] but carries no
// unit token.
//
// ParseAmountIn returns an error wrapping [ErrIncorrectNumber] if the number
// is malformed, too precise for the unit, or greater than [MaxAmount].
func ParseAmountIn(u Unit, num string) (Amount, error) {
	a, err := parseNumber(u, strings.TrimSpace(num))
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q in %v: %w", num, u, err)
	}
	return a, nil
}

// splitUnit splits s into the number and the trailing run of ASCII letters.
func splitUnit(s string) (num, token string) {
	i := len(s)
	for i > 0 && isLetter(s[i-1]) {
		i--
	}
	return s[:i], s[i:]
}

// parseNumber computes whole * u.Multiplier() + frac, where frac is
// right-padded with zeros to u.Scale() digits.
func parseNumber(u Unit, num string) (Amount, error) {
	whole, frac, found := strings.Cut(num, ".")
	if !isDigits(whole) || (found && !isDigits(frac)) {
		return Amount{}, fmt.Errorf("%w: %w", ErrIncorrectNumber, errInvalidSyntax)
	}
	if len(frac) > u.Scale() {
		return Amount{}, fmt.Errorf("%w: %w: %v allows at most %v", ErrIncorrectNumber, errFractionTooLong, u, u.Scale())
	}

	// Integer part
	w, ok := parseUint(whole)
	if !ok {
		return Amount{}, fmt.Errorf("%w: %w", ErrIncorrectNumber, ErrOverflow)
	}
	hi, lo := bits.Mul64(w, u.Multiplier())
	if hi != 0 {
		return Amount{}, fmt.Errorf("%w: %w", ErrIncorrectNumber, ErrOverflow)
	}

	// Fractional part
	var f uint64
	if frac != "" {
		f, _ = parseUint(frac) // at most 12 digits
		f *= pow10(u.Scale() - len(frac))
	}

	sum, carry := bits.Add64(lo, f, 0)
	if carry != 0 {
		return Amount{}, fmt.Errorf("%w: %w", ErrIncorrectNumber, ErrOverflow)
	}
	return NewAmount(sum), nil
}

// parseUint converts a string of ASCII digits to an integer.
// It returns false if the result does not fit into uint64.
func parseUint(s string) (uint64, bool) {
	var n uint64
	for i := 0; i < len(s); i++ {
		hi, lo := bits.Mul64(n, 10)
		if hi != 0 {
			return 0, false
		}
		lo, carry := bits.Add64(lo, uint64(s[i]-'0'), 0)
		if carry != 0 {
			return 0, false
		}
		n = lo
	}
	return n, true
}

// isDigits reports whether s is a non-empty string of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
