package gas

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	// ErrOverflow indicates that a result does not fit into [MaxAmount].
	ErrOverflow = errors.New("gas overflow")
	// ErrUnderflow indicates that a result would be negative.
	ErrUnderflow = errors.New("gas underflow")
	// ErrDivisionByZero indicates a division by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrIncorrectNumber indicates that the numeric part of a string is not
	// a valid decimal, has more fractional digits than the unit allows,
	// or does not fit into [MaxAmount].
	ErrIncorrectNumber = errors.New("incorrect number")
	// ErrIncorrectUnit indicates that the unit part of a string does not match
	// any of the tokens listed by [Unit.Tokens].
	ErrIncorrectUnit = errors.New("incorrect unit")
)

// MaxAmount is the largest representable amount, 18446744073709551615 gas.
var MaxAmount = Amount{value: math.MaxUint64}

// Amount type represents an exact amount of gas, the unit used to meter
// computational work.
// Its zero value corresponds to "0 gas".
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	value uint64 // number of gas
}

// NewAmount returns an amount equal to the given number of gas.
func NewAmount(gas uint64) Amount {
	return Amount{value: gas}
}

// NewAmountFromGgas returns an amount equal to ggas * 10^9 gas.
//
// Unlike arithmetic methods, NewAmountFromGgas does not check for overflow:
// if ggas is greater than 18446744073 the result silently wraps around.
// Use [NewAmountIn] for untrusted input.
func NewAmountFromGgas(ggas uint64) Amount {
	return Amount{value: ggas * Ggas.Multiplier()}
}

// NewAmountFromTgas returns an amount equal to tgas * 10^12 gas.
//
// Unlike arithmetic methods, NewAmountFromTgas does not check for overflow:
// if tgas is greater than 18446744 the result silently wraps around.
// Use [NewAmountIn] for untrusted input.
func NewAmountFromTgas(tgas uint64) Amount {
	return Amount{value: tgas * Tgas.Multiplier()}
}

// NewAmountIn returns an amount equal to n units of u.
// It is the checked counterpart of [NewAmountFromGgas] and [NewAmountFromTgas].
//
// NewAmountIn returns an error wrapping [ErrOverflow] if the result
// is greater than [MaxAmount].
func NewAmountIn(u Unit, n uint64) (Amount, error) {
	hi, lo := bits.Mul64(n, u.Multiplier())
	if hi != 0 {
		return Amount{}, fmt.Errorf("converting %v %v: %w", n, u, ErrOverflow)
	}
	return NewAmount(lo), nil
}

// NewAmountFromDecimal converts a decimal number of units to an amount.
// Trailing zeros beyond the scale of the unit are ignored.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if:
//   - the decimal is negative;
//   - the decimal has more significant fractional digits than [Unit.Scale];
//   - the result is greater than [MaxAmount].
func NewAmountFromDecimal(u Unit, d decimal.Decimal) (Amount, error) {
	a, err := newAmountFromDecimal(u, d)
	if err != nil {
		return Amount{}, fmt.Errorf("converting [%v %v]: %w", d, u, err)
	}
	return a, nil
}

func newAmountFromDecimal(u Unit, d decimal.Decimal) (Amount, error) {
	if d.IsNeg() {
		return Amount{}, ErrUnderflow
	}
	if d.Scale() > u.Scale() {
		d = d.Trim(u.Scale())
		if d.Scale() > u.Scale() {
			return Amount{}, fmt.Errorf("%w: %w", ErrIncorrectNumber, errFractionTooLong)
		}
	}
	hi, lo := bits.Mul64(d.Coef(), pow10(u.Scale()-d.Scale()))
	if hi != 0 {
		return Amount{}, ErrOverflow
	}
	return NewAmount(lo), nil
}

// Gas returns the number of gas in the amount.
// It is the raw value to persist the amount with.
func (a Amount) Gas() uint64 {
	return a.value
}

// Ggas returns the number of whole gigagas in the amount.
// The remainder below 10^9 gas is discarded.
func (a Amount) Ggas() uint64 {
	return a.value / Ggas.Multiplier()
}

// Tgas returns the number of whole teragas in the amount.
// The remainder below 10^12 gas is discarded.
func (a Amount) Tgas() uint64 {
	return a.value / Tgas.Multiplier()
}

// Decimal returns the exact value of the amount in the given unit,
// with trailing zeros removed.
// See also constructor [NewAmountFromDecimal].
//
// Decimal returns an error wrapping [ErrOverflow] if the amount has more
// than [decimal.MaxPrec] digits, that is, if it is 10^19 gas or more.
func (a Amount) Decimal(u Unit) (decimal.Decimal, error) {
	if a.value > maxDecimalCoef {
		return decimal.Decimal{}, fmt.Errorf("converting %d gas to %v: %w", a, u, ErrOverflow)
	}
	d, err := decimal.Parse(decimalText(a.value, u.Scale()))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %d gas to %v: %w", a, u, err)
	}
	return d.Trim(0), nil
}

// maxDecimalCoef is the largest coefficient a decimal can hold.
const maxDecimalCoef = 9_999_999_999_999_999_999

// decimalText formats v with the last scale digits after the decimal point.
func decimalText(v uint64, scale int) string {
	s := strconv.FormatUint(v, 10)
	if scale == 0 {
		return s
	}
	if len(s) <= scale {
		s = strings.Repeat("0", scale-len(s)+1) + s
	}
	return s[:len(s)-scale] + "." + s[len(s)-scale:]
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value == 0
}

// Add returns the sum of amounts a and b.
// See also method [Amount.SaturatingAdd].
//
// Add returns an error wrapping [ErrOverflow] if the sum is greater
// than [MaxAmount].
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%d + %d]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	sum, carry := bits.Add64(a.value, b.value, 0)
	if carry != 0 {
		return Amount{}, ErrOverflow
	}
	return NewAmount(sum), nil
}

// Sub returns the difference between amounts a and b.
// See also method [Amount.SaturatingSub].
//
// Sub returns an error wrapping [ErrUnderflow] if b is greater than a.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%d - %d]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	diff, borrow := bits.Sub64(a.value, b.value, 0)
	if borrow != 0 {
		return Amount{}, ErrUnderflow
	}
	return NewAmount(diff), nil
}

// Mul returns the product of amount a and factor e.
// See also method [Amount.SaturatingMul].
//
// Mul returns an error wrapping [ErrOverflow] if the product is greater
// than [MaxAmount].
func (a Amount) Mul(e uint64) (Amount, error) {
	c, err := a.mul(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%d * %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) mul(e uint64) (Amount, error) {
	hi, lo := bits.Mul64(a.value, e)
	if hi != 0 {
		return Amount{}, ErrOverflow
	}
	return NewAmount(lo), nil
}

// Quo returns the quotient of amount a and divisor e, rounded toward zero.
// See also method [Amount.SaturatingQuo].
//
// Quo returns an error wrapping [ErrDivisionByZero] if e is 0.
func (a Amount) Quo(e uint64) (Amount, error) {
	if e == 0 {
		return Amount{}, fmt.Errorf("computing [%d / %v]: %w", a, e, ErrDivisionByZero)
	}
	return NewAmount(a.value / e), nil
}

// SaturatingAdd returns the sum of amounts a and b,
// or [MaxAmount] if the sum does not fit.
func (a Amount) SaturatingAdd(b Amount) Amount {
	c, err := a.add(b)
	if err != nil {
		return MaxAmount
	}
	return c
}

// SaturatingSub returns the difference between amounts a and b,
// or zero if b is greater than a.
func (a Amount) SaturatingSub(b Amount) Amount {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}
	}
	return c
}

// SaturatingMul returns the product of amount a and factor e,
// or [MaxAmount] if the product does not fit.
func (a Amount) SaturatingMul(e uint64) Amount {
	c, err := a.mul(e)
	if err != nil {
		return MaxAmount
	}
	return c
}

// SaturatingQuo returns the quotient of amount a and divisor e,
// rounded toward zero.
// Division by zero returns zero, not [MaxAmount].
func (a Amount) SaturatingQuo(e uint64) Amount {
	if e == 0 {
		return Amount{}
	}
	return NewAmount(a.value / e)
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	default:
		return 0
	}
}

// Min returns the smaller amount.
// See also method [Amount.Cmp].
func (a Amount) Min(b Amount) Amount {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger amount.
// See also method [Amount.Cmp].
func (a Amount) Max(b Amount) Amount {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// String implements the [fmt.Stringer] interface and returns the amount in
// teragas, rounded up to the display precision:
//
//	| Amount, gas           | Result       |
//	| --------------------- | ------------ |
//	| 0                     | 0 Tgas       |
//	| 1 - 999999999         | <0.001 Tgas  |
//	| 10^9 - 999 * 10^9     | 0.DDD Tgas   |
//	| above 999 * 10^9      | W.F Tgas     |
//
// Rounding is always toward positive infinity, so the displayed amount is
// never less than the actual one.
// The result is lossy; use [Amount.MarshalText] for an exact representation.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	const suffix = " Tgas"
	g := Ggas.Multiplier()
	switch v := a.value; {
	case v == 0:
		return "0" + suffix
	case v < g:
		return "<0.001" + suffix
	case v <= 999*g:
		ggas := ceilQuo(v, g)
		return decimal.MustNew(int64(ggas), 3).String() + suffix //nolint:gosec
	default:
		tenths := ceilQuo(v, 100*g)
		return decimal.MustNew(int64(tenths), 1).String() + suffix //nolint:gosec
	}
}

// ceilQuo returns v / d rounded toward positive infinity.
// Near the top of the range the dividend saturates instead of overflowing.
func ceilQuo(v, d uint64) uint64 {
	return NewAmount(v).SaturatingAdd(NewAmount(d-1)).value / d
}

// pow10 returns 10^n for 0 <= n <= 19.
func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example       | Description           |
//	| ------ | ------------- | --------------------- |
//	| %s, %v | 1.5 Tgas      | Rounded amount        |
//	| %q     | "1.5 Tgas"    | Quoted rounded amount |
//	| %d     | 1500000000000 | Exact amount in gas   |
//
// The '-' format flag can be used with all verbs.
// The '0' format flag can be used with the %d verb.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	a.format(state, verb, a.String())
}

// format writes the amount in gas for the %d verb and s for the other verbs.
func (a Amount) format(state fmt.State, verb rune, s string) {
	var text []byte
	switch verb {
	case 'd', 'D':
		text = strconv.AppendUint(text, a.value, 10)
	case 'q', 'Q':
		text = strconv.AppendQuote(text, s)
	default:
		text = append(text, s...)
	}

	// Calculating padding
	width := len(text)
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && (verb == 'd' || verb == 'D'):
			lzeros = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)

	// Leading spaces
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}

	// Leading zeros
	for i := 0; i < lzeros; i++ {
		buf = append(buf, '0')
	}

	buf = append(buf, text...)

	// Trailing spaces
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd', 'D':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(gas.Amount="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
