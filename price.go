package gas

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// Price represents the cost of one unit of gas, expressed as a decimal number
// of tokens, for example "0.0001/Tgas".
// The zero value corresponds to a price of "0/gas".
// This type is designed to be safe for concurrent use by multiple goroutines.
type Price struct {
	unit  Unit            // unit of gas being priced
	value decimal.Decimal // how many tokens are paid for 1 unit of gas
}

// NewPrice returns a price of rate tokens per unit u.
//
// NewPrice returns an error wrapping [ErrUnderflow] if the rate is negative.
func NewPrice(u Unit, rate decimal.Decimal) (Price, error) {
	if rate.IsNeg() {
		return Price{}, fmt.Errorf("converting [%v/%v]: %w", rate, u, ErrUnderflow)
	}
	return Price{unit: u, value: rate}, nil
}

// ParsePrice converts a string to a price.
// The string consists of a decimal number of tokens, a slash and a unit token:
//
//	0.0001/Tgas
//	0.0000001/Ggas
//	100000000/gas
//
// See also [ParseUnit] and [decimal.Parse].
func ParsePrice(s string) (Price, error) {
	rate, token, found := strings.Cut(strings.TrimSpace(s), "/")
	if !found {
		return Price{}, fmt.Errorf("parsing price %q: %w", s, ErrIncorrectUnit)
	}
	u, err := ParseUnit(strings.TrimSpace(token))
	if err != nil {
		return Price{}, fmt.Errorf("parsing price %q: %w", s, err)
	}
	d, err := decimal.Parse(strings.TrimSpace(rate))
	if err != nil {
		return Price{}, fmt.Errorf("parsing price %q: %w: %w", s, ErrIncorrectNumber, err)
	}
	p, err := NewPrice(u, d)
	if err != nil {
		return Price{}, fmt.Errorf("parsing price %q: %w", s, err)
	}
	return p, nil
}

// MustParsePrice is like [ParsePrice] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding prices.
func MustParsePrice(s string) Price {
	p, err := ParsePrice(s)
	if err != nil {
		panic(fmt.Sprintf("ParsePrice(%q) failed: %v", s, err))
	}
	return p
}

// Unit returns the unit of gas being priced.
func (p Price) Unit() Unit {
	return p.unit
}

// Decimal returns the number of tokens paid for one unit of gas.
func (p Price) Decimal() decimal.Decimal {
	return p.value
}

// IsZero returns:
//
//	true  if p = 0
//	false otherwise
func (p Price) IsZero() bool {
	return p.value.IsZero()
}

// Mul returns a price for the same unit, with the rate multiplied by
// a non-negative factor e.
//
// Mul returns an error if e is negative or the result does not fit into
// a decimal.
func (p Price) Mul(e decimal.Decimal) (Price, error) {
	if e.IsNeg() {
		return Price{}, fmt.Errorf("computing [%v * %v]: %w", p, e, ErrUnderflow)
	}
	d, err := p.value.MulExact(e, 0)
	if err != nil {
		return Price{}, fmt.Errorf("computing [%v * %v]: %w", p, e, err)
	}
	return Price{unit: p.unit, value: d}, nil
}

// Cost returns the number of tokens paid for the amount of gas.
// The result is exact, with trailing zeros removed.
//
// Cost returns an error wrapping [ErrOverflow] if the amount cannot be
// expressed as a decimal (see [Amount.Decimal]) or the exact result does not
// fit into a decimal.
func (p Price) Cost(a Amount) (decimal.Decimal, error) {
	c, err := p.cost(a)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing cost of %d gas at %v: %w", a, p, err)
	}
	return c, nil
}

func (p Price) cost(a Amount) (decimal.Decimal, error) {
	d, err := a.Decimal(p.unit)
	if err != nil {
		return decimal.Decimal{}, err
	}
	v := p.value.Trim(0)
	scale := d.Scale() + v.Scale()
	if scale > decimal.MaxScale {
		return decimal.Decimal{}, ErrOverflow
	}
	c, err := d.MulExact(v, scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return c.Trim(0), nil
}

// AmountFor returns the amount of gas that can be bought for the budget,
// rounded down to whole gas.
// The quotient is computed with the precision of a decimal before rounding.
//
// AmountFor returns an error wrapping:
//   - [ErrDivisionByZero] if the price is zero;
//   - [ErrUnderflow] if the budget is negative;
//   - [ErrOverflow] if the result is greater than [MaxAmount].
func (p Price) AmountFor(budget decimal.Decimal) (Amount, error) {
	a, err := p.amountFor(budget)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", budget, p, err)
	}
	return a, nil
}

func (p Price) amountFor(budget decimal.Decimal) (Amount, error) {
	if p.IsZero() {
		return Amount{}, ErrDivisionByZero
	}
	if budget.IsNeg() {
		return Amount{}, ErrUnderflow
	}
	q, err := budget.QuoExact(p.value, p.unit.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return newAmountFromDecimal(p.unit, q.Trunc(p.unit.Scale()))
}

// String implements the [fmt.Stringer] interface and returns the price
// in the form accepted by [ParsePrice], for example "0.0001/Tgas".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Price) String() string {
	return p.value.String() + "/" + p.unit.String()
}
