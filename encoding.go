package gas

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/vmihailenco/msgpack/v5"
	cbg "github.com/whyrusleeping/cbor-gen"
)

var (
	_ cbg.CBORMarshaler     = Amount{}
	_ cbg.CBORUnmarshaler   = (*Amount)(nil)
	_ msgpack.CustomEncoder = Amount{}
	_ msgpack.CustomDecoder = (*Amount)(nil)
)

// AppendText implements the [encoding.TextAppender] interface.
// AppendText appends the exact amount in teragas with trailing zeros
// removed, for example "1.5 Tgas" or "0.000000000001 Tgas".
// Unlike [Amount.String], the result is never rounded and can be parsed
// back with [ParseAmount].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (a Amount) AppendText(text []byte) ([]byte, error) {
	t := Tgas.Multiplier()
	whole, frac := a.value/t, a.value%t
	text = strconv.AppendUint(text, whole, 10)
	if frac != 0 {
		digs := make([]byte, Tgas.Scale())
		for i := len(digs) - 1; i >= 0; i-- {
			digs[i] = byte(frac%10) + '0'
			frac /= 10
		}
		text = append(text, '.')
		text = append(text, strings.TrimRight(string(digs), "0")...)
	}
	text = append(text, ' ')
	text = append(text, Tgas.Code()...)
	return text, nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Amount.AppendText].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return a.AppendText(make([]byte, 0, 32))
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseAmount].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	b, err := ParseAmount(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = b
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the number of gas as a JSON number.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(make([]byte, 0, 20), a.value, 10), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts a number of gas, either bare (300000000000000) or quoted
// ("300000000000000"), or a quoted string with a unit ("300 Tgas").
// JSON null leaves the amount unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var (
		b   Amount
		err error
	)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		b, err = parseValue(string(data[1 : len(data)-1]))
	} else {
		b, err = parseGas(string(data))
	}
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = b
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// AppendBinary appends the number of gas as 8 bytes in little-endian order.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (a Amount) AppendBinary(data []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(data, a.value), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// See also method [Amount.AppendBinary].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (a Amount) MarshalBinary() ([]byte, error) {
	return a.AppendBinary(make([]byte, 0, 8))
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The data must be exactly 8 bytes in little-endian order.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (a *Amount) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("unmarshaling %T: invalid data length %v", Amount{}, len(data))
	}
	*a = NewAmount(binary.LittleEndian.Uint64(data))
	return nil
}

// MarshalCBOR implements the [cbg.CBORMarshaler] interface.
// The amount is encoded as a CBOR unsigned integer.
//
// [cbg.CBORMarshaler]: https://pkg.go.dev/github.com/whyrusleeping/cbor-gen#CBORMarshaler
func (a Amount) MarshalCBOR(w io.Writer) error {
	_, err := w.Write(cbg.CborEncodeMajorType(cbg.MajUnsignedInt, a.value))
	return err
}

// UnmarshalCBOR implements the [cbg.CBORUnmarshaler] interface.
//
// [cbg.CBORUnmarshaler]: https://pkg.go.dev/github.com/whyrusleeping/cbor-gen#CBORUnmarshaler
func (a *Amount) UnmarshalCBOR(r io.Reader) error {
	maj, extra, err := cbg.CborReadHeader(r)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	if maj != cbg.MajUnsignedInt {
		return fmt.Errorf("unmarshaling %T: wrong CBOR major type %v", Amount{}, maj)
	}
	*a = NewAmount(extra)
	return nil
}

// EncodeMsgpack implements the [msgpack.CustomEncoder] interface.
// The amount is encoded as the shortest MessagePack unsigned integer.
//
// [msgpack.CustomEncoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomEncoder
func (a Amount) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeUint(a.value)
}

// DecodeMsgpack implements the [msgpack.CustomDecoder] interface.
//
// [msgpack.CustomDecoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomDecoder
func (a *Amount) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeUint64()
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = NewAmount(v)
	return nil
}

// JSONSchema describes the JSON form of the amount produced by
// [Amount.MarshalJSON]: an unsigned 64-bit integer number of gas.
// It is picked up by [jsonschema.Reflector].
//
// [jsonschema.Reflector]: https://pkg.go.dev/github.com/invopop/jsonschema#Reflector
func (Amount) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "integer",
		Title:       "Gas",
		Description: "Amount of gas in base units",
		Minimum:     json.Number("0"),
		Maximum:     json.Number(strconv.FormatUint(math.MaxUint64, 10)),
	}
}

// Scan implements the [sql.Scanner] interface.
// It accepts non-negative integers, and strings holding either a number of
// gas or an amount with a unit.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Amount) Scan(value any) error {
	var (
		b   Amount
		err error
	)
	switch value := value.(type) {
	case int64:
		if value < 0 {
			err = ErrUnderflow
		} else {
			b = NewAmount(uint64(value))
		}
	case string:
		b, err = parseValue(value)
	case []byte:
		b, err = parseValue(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Amount{}, NullAmount{}, Amount{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		return fmt.Errorf("converting from %T to %T: %w", value, Amount{}, err)
	}
	*a = b
	return nil
}

// Value implements the [driver.Valuer] interface.
// Value returns the number of gas as a decimal string, since amounts above
// [math.MaxInt64] do not fit into a signed BIGINT column.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Amount) Value() (driver.Value, error) {
	return strconv.FormatUint(a.value, 10), nil
}

// parseValue converts a string holding either a bare number of gas
// or an amount with a unit.
func parseValue(s string) (Amount, error) {
	if isDigits(s) {
		return parseGas(s)
	}
	return ParseAmount(s)
}

// parseGas converts a bare number of gas.
func parseGas(s string) (Amount, error) {
	return ParseAmountIn(Gas, s)
}

// NullAmount represents an amount that can be null.
// Its zero value is null.
// NullAmount is not thread-safe.
type NullAmount struct {
	Amount Amount
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Amount.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullAmount) Scan(value any) error {
	if value == nil {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	if err := n.Amount.Scan(value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Amount.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullAmount) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Amount.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Amount.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullAmount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	if err := n.Amount.UnmarshalJSON(data); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Amount.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullAmount) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Amount.MarshalJSON()
}
