/*
Package gas implements exact amounts of gas, the unit used to meter
computational work in a blockchain runtime.

# Features

  - Immutable amounts, ensuring safe usage across multiple goroutines
  - Checked and saturating arithmetic with well-defined overflow behavior
  - Conversion between gas, gigagas and teragas
  - Strict parsing of human-entered strings such as "1.5 Tgas"
  - Display strings rounded up, so that costs are never understated

# Representation

An [Amount] is a struct holding a single uint64, the number of gas.
Amounts range from 0 to [MaxAmount] (18446744073709551615 gas, about
18446744.07 Tgas). Negative amounts are not representable.

A [Unit] is one of three fixed denominations:

	| Unit | Multiplier | Scale |
	| ---- | ---------- | ----- |
	| Gas  | 1          | 0     |
	| Ggas | 10^9       | 9     |
	| Tgas | 10^12      | 12    |

The scale of a unit is the number of digits after the decimal point that
an amount expressed in that unit can have without losing precision.

# Operations

Methods [Amount.Add], [Amount.Sub], [Amount.Mul] and [Amount.Quo] return
an error wrapping [ErrOverflow], [ErrUnderflow] or [ErrDivisionByZero]
instead of producing a wrong result.
Their saturating counterparts, such as [Amount.SaturatingAdd], never fail
and clamp the result to the range [0, MaxAmount].
[Amount.SaturatingQuo] returns zero when dividing by zero.

Constructors [NewAmountFromGgas] and [NewAmountFromTgas] do not check the
multiplication for overflow and wrap around instead.
Use [NewAmountIn] when the input is not trusted.

# Parsing

[ParseAmount] accepts a decimal number followed by a unit token:

	300 Tgas
	1.5Tgas
	2500 gigagas

The number may not have more digits after the decimal point than the scale
of its unit, so "1.5 gas" is rejected rather than truncated.
Parsing errors wrap either [ErrIncorrectNumber] or [ErrIncorrectUnit].

# Formatting

[Amount.String] always expresses an amount in teragas and rounds it up:
three digits after the decimal point below 1 Tgas, one digit otherwise.

	| Amount, gas       | String      |
	| ----------------- | ----------- |
	| 0                 | 0 Tgas      |
	| 999999999         | <0.001 Tgas |
	| 1000000000        | 0.001 Tgas  |
	| 999000000001      | 1.0 Tgas    |
	| 1000000000001     | 1.1 Tgas    |
	| 100500000000000   | 100.5 Tgas  |

Since this representation is lossy, the encoding methods such as
[Amount.MarshalText] and [Amount.MarshalJSON] use exact forms instead.

# Encodings

An amount can be persisted as 8 little-endian bytes ([Amount.MarshalBinary]),
a CBOR or MessagePack unsigned integer, a JSON number, exact text,
or an SQL value. [AmountValue] makes an amount usable as a command-line flag.

# Prices

A [Price] is a decimal number of tokens paid for one unit of gas, such as
"0.0001/Tgas". [Price.Cost] converts an amount to tokens exactly, and
[Price.AmountFor] computes how much gas a budget buys.
*/
package gas
