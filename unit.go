package gas

import (
	"fmt"
	"strings"
)

//go:generate go run scripts/unit/codegen.go

// Unit type represents a denomination of gas.
// The zero value is [Gas], the base unit.
//
// Unit is implemented as an integer index into in-memory arrays that store
// the properties of the unit, such as code, scale and multiplier.
// The set of units is fixed:
//
//	| Unit | Tokens           | Multiplier | Scale |
//	| ---- | ---------------- | ---------- | ----- |
//	| Gas  | gas              | 1          | 0     |
//	| Ggas | Ggas, gigagas    | 10^9       | 9     |
//	| Tgas | Tgas, teragas    | 10^12      | 12    |
type Unit uint8

// ParseUnit converts a token to a unit.
// Tokens are matched case-insensitively, so all of the following are valid:
//
//	Tgas
//	TGAS
//	teragas
//
// ParseUnit returns an error wrapping [ErrIncorrectUnit] if the token does not
// match any of the tokens listed by [Unit.Tokens].
func ParseUnit(unit string) (Unit, error) {
	u, ok := unitLookup[strings.ToUpper(unit)]
	if !ok {
		return Gas, fmt.Errorf("%w: %q", ErrIncorrectUnit, unit)
	}
	return u, nil
}

// MustParseUnit is like [ParseUnit] but panics if the token cannot be parsed.
func MustParseUnit(unit string) Unit {
	u, err := ParseUnit(unit)
	if err != nil {
		panic(fmt.Sprintf("ParseUnit(%q) failed: %v", unit, err))
	}
	return u
}

// Units returns all units from the smallest to the largest.
// The returned slice is a copy and may be modified by the caller.
func Units() []Unit {
	return append([]Unit(nil), units[:]...)
}

// Code returns the canonical token of the unit, for example "Tgas".
// It is the first element of [Unit.Tokens].
func (u Unit) Code() string {
	return codeLookup[u]
}

// Name returns the spelled-out name of the unit, for example "teragas".
func (u Unit) Name() string {
	return nameLookup[u]
}

// Tokens returns all tokens accepted by [ParseUnit] for the unit,
// starting with the canonical one.
func (u Unit) Tokens() []string {
	return append([]string(nil), tokenLookup[u]...)
}

// Scale returns the number of digits after the decimal point that an amount
// expressed in the unit can have without losing precision.
// It is equal to the number of trailing zeros of [Unit.Multiplier].
func (u Unit) Scale() int {
	return int(scaleLookup[u])
}

// Multiplier returns the number of gas in one unit: 1, 10^9 or 10^12.
func (u Unit) Multiplier() uint64 {
	return multiplierLookup[u]
}

// String implements the [fmt.Stringer] interface and returns
// the canonical token of the unit.
// See also method [Unit.Code].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	return u.Code()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	v, err := ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Gas, err)
	}
	*u = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the canonical token.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.Code()), nil
}
