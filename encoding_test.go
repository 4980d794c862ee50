package gas

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/invopop/jsonschema"
	"github.com/vmihailenco/msgpack/v5"
	cbg "github.com/whyrusleeping/cbor-gen"
)

func TestAmount_EncodingInterfaces(t *testing.T) {
	var i any = Amount{}
	if _, ok := i.(json.Marshaler); !ok {
		t.Errorf("%T does not implement json.Marshaler", i)
	}
	if _, ok := i.(driver.Valuer); !ok {
		t.Errorf("%T does not implement driver.Valuer", i)
	}
	if _, ok := i.(cbg.CBORMarshaler); !ok {
		t.Errorf("%T does not implement cbg.CBORMarshaler", i)
	}
	if _, ok := i.(msgpack.CustomEncoder); !ok {
		t.Errorf("%T does not implement msgpack.CustomEncoder", i)
	}
	i = &Amount{}
	if _, ok := i.(json.Unmarshaler); !ok {
		t.Errorf("%T does not implement json.Unmarshaler", i)
	}
	if _, ok := i.(cbg.CBORUnmarshaler); !ok {
		t.Errorf("%T does not implement cbg.CBORUnmarshaler", i)
	}
	if _, ok := i.(msgpack.CustomDecoder); !ok {
		t.Errorf("%T does not implement msgpack.CustomDecoder", i)
	}
}

func TestAmount_MarshalText(t *testing.T) {
	tests := []struct {
		a    uint64
		want string
	}{
		{0, "0 Tgas"},
		{1, "0.000000000001 Tgas"},
		{1_000_000_000, "0.001 Tgas"},
		{1_000_000_000_000, "1 Tgas"},
		{1_500_000_000_000, "1.5 Tgas"},
		{1_500_000_000_001, "1.500000000001 Tgas"},
		{300_000_000_000_000, "300 Tgas"},
		{math.MaxUint64, "18446744.073709551615 Tgas"},
	}
	for _, tt := range tests {
		a := NewAmount(tt.a)
		got, err := a.MarshalText()
		if err != nil {
			t.Errorf("%d.MarshalText() failed: %v", a, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("%d.MarshalText() = %q, want %q", a, got, tt.want)
		}
	}
}

func TestAmount_UnmarshalText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got Amount
		err := got.UnmarshalText([]byte("2.5 Ggas"))
		if err != nil {
			t.Errorf("UnmarshalText(\"2.5 Ggas\") failed: %v", err)
		}
		if got.Gas() != 2_500_000_000 {
			t.Errorf("UnmarshalText(\"2.5 Ggas\") = %d, want 2500000000", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "1", "1.5 Xgas", "abc Tgas"}
		for _, tt := range tests {
			var got Amount
			err := got.UnmarshalText([]byte(tt))
			if err == nil {
				t.Errorf("UnmarshalText(%q) did not fail", tt)
			}
		}
	})
}

func TestAmount_MarshalJSON(t *testing.T) {
	tests := []struct {
		a    uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{300_000_000_000_000, "300000000000000"},
		{math.MaxUint64, "18446744073709551615"},
	}
	for _, tt := range tests {
		a := NewAmount(tt.a)
		got, err := json.Marshal(a)
		if err != nil {
			t.Errorf("json.Marshal(%d) failed: %v", a, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("json.Marshal(%d) = %s, want %s", a, got, tt.want)
		}
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			data string
			want uint64
		}{
			{`0`, 0},
			{`300000000000000`, 300_000_000_000_000},
			{`18446744073709551615`, math.MaxUint64},
			{`"300000000000000"`, 300_000_000_000_000},
			{`"300 Tgas"`, 300_000_000_000_000},
			{`"2.5 gigagas"`, 2_500_000_000},
		}
		for _, tt := range tests {
			var got Amount
			err := json.Unmarshal([]byte(tt.data), &got)
			if err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.data, err)
				continue
			}
			if got.Gas() != tt.want {
				t.Errorf("json.Unmarshal(%s) = %d, want %v", tt.data, got, tt.want)
			}
		}
	})

	t.Run("null", func(t *testing.T) {
		got := NewAmount(7)
		err := json.Unmarshal([]byte(`null`), &got)
		if err != nil {
			t.Errorf("json.Unmarshal(null) failed: %v", err)
		}
		if got.Gas() != 7 {
			t.Errorf("json.Unmarshal(null) = %d, want 7", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			`-1`, `1.5`, `1e3`, `18446744073709551616`, `""`, `"Tgas"`, `"1.5 gas"`, `true`, `{}`,
		}
		for _, tt := range tests {
			var got Amount
			err := json.Unmarshal([]byte(tt), &got)
			if err == nil {
				t.Errorf("json.Unmarshal(%s) did not fail", tt)
			}
		}
	})
}

func TestAmount_MarshalBinary(t *testing.T) {
	tests := []struct {
		a    uint64
		want []byte
	}{
		{0, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{1, []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{258, []byte{2, 1, 0, 0, 0, 0, 0, 0}},
		{1_000_000_000_000, []byte{0x00, 0x10, 0xa5, 0xd4, 0xe8, 0x00, 0x00, 0x00}},
		{math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		a := NewAmount(tt.a)
		got, err := a.MarshalBinary()
		if err != nil {
			t.Errorf("%d.MarshalBinary() failed: %v", a, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("%d.MarshalBinary() = %v, want %v", a, got, tt.want)
		}
		var b Amount
		err = b.UnmarshalBinary(got)
		if err != nil {
			t.Errorf("UnmarshalBinary(%v) failed: %v", got, err)
			continue
		}
		if b != a {
			t.Errorf("UnmarshalBinary(%v) = %d, want %d", got, b, a)
		}
	}
}

func TestAmount_AppendBinary(t *testing.T) {
	prefix := []byte{0xaa}
	got, err := NewAmount(1).AppendBinary(prefix)
	if err != nil {
		t.Fatalf("AppendBinary failed: %v", err)
	}
	want := []byte{0xaa, 1, 0, 0, 0, 0, 0, 0, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AppendBinary mismatch (-want +got):\n%s", diff)
	}
}

func TestAmount_UnmarshalBinary(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		tests := [][]byte{
			nil,
			{},
			{1, 0, 0, 0, 0, 0, 0},
			{1, 0, 0, 0, 0, 0, 0, 0, 0},
		}
		for _, tt := range tests {
			var got Amount
			err := got.UnmarshalBinary(tt)
			if err == nil {
				t.Errorf("UnmarshalBinary(%v) did not fail", tt)
			}
		}
	})
}

func TestAmount_MarshalCBOR(t *testing.T) {
	tests := []struct {
		a    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{8, []byte{0x08}},
		{23, []byte{0x17}},
		{24, []byte{0x18, 0x18}},
		{500, []byte{0x19, 0x01, 0xf4}},
		{1_000_000_000_000, []byte{0x1b, 0x00, 0x00, 0x00, 0xe8, 0xd4, 0xa5, 0x10, 0x00}},
		{math.MaxUint64, []byte{0x1b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		a := NewAmount(tt.a)
		var buf bytes.Buffer
		err := a.MarshalCBOR(&buf)
		if err != nil {
			t.Errorf("%d.MarshalCBOR() failed: %v", a, err)
			continue
		}
		if !bytes.Equal(buf.Bytes(), tt.want) {
			t.Errorf("%d.MarshalCBOR() = %x, want %x", a, buf.Bytes(), tt.want)
		}
		var b Amount
		err = b.UnmarshalCBOR(bytes.NewReader(tt.want))
		if err != nil {
			t.Errorf("UnmarshalCBOR(%x) failed: %v", tt.want, err)
			continue
		}
		if b != a {
			t.Errorf("UnmarshalCBOR(%x) = %d, want %d", tt.want, b, a)
		}
	}
}

func TestAmount_UnmarshalCBOR(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		tests := map[string][]byte{
			"empty":           {},
			"negative int":    {0x20},
			"text string":     {0x63, 'g', 'a', 's'},
			"truncated uint":  {0x19, 0x01},
			"array of uint64": {0x81, 0x01},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				var got Amount
				err := got.UnmarshalCBOR(bytes.NewReader(tt))
				if err == nil {
					t.Errorf("UnmarshalCBOR(%x) did not fail", tt)
				}
			})
		}
	})
}

func TestAmount_EncodeMsgpack(t *testing.T) {
	tests := []struct {
		a    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{8, []byte{0x08}},
		{500, []byte{0xcd, 0x01, 0xf4}},
		{math.MaxUint64, []byte{0xcf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		a := NewAmount(tt.a)
		got, err := msgpack.Marshal(a)
		if err != nil {
			t.Errorf("msgpack.Marshal(%d) failed: %v", a, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("msgpack.Marshal(%d) = %x, want %x", a, got, tt.want)
		}
		var b Amount
		err = msgpack.Unmarshal(got, &b)
		if err != nil {
			t.Errorf("msgpack.Unmarshal(%x) failed: %v", got, err)
			continue
		}
		if b != a {
			t.Errorf("msgpack.Unmarshal(%x) = %d, want %d", got, b, a)
		}
	}
}

func TestAmount_DecodeMsgpack(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		data, err := msgpack.Marshal("300 Tgas")
		if err != nil {
			t.Fatalf("msgpack.Marshal failed: %v", err)
		}
		var got Amount
		err = msgpack.Unmarshal(data, &got)
		if err == nil {
			t.Errorf("msgpack.Unmarshal(%x) did not fail", data)
		}
	})
}

func TestAmount_JSONSchema(t *testing.T) {
	got := Amount{}.JSONSchema()
	want := &jsonschema.Schema{
		Type:        "integer",
		Title:       "Gas",
		Description: "Amount of gas in base units",
		Minimum:     json.Number("0"),
		Maximum:     json.Number("18446744073709551615"),
	}
	if got.Type != want.Type || got.Title != want.Title || got.Description != want.Description {
		t.Errorf("JSONSchema() = %+v, want %+v", got, want)
	}
	if got.Minimum != want.Minimum || got.Maximum != want.Maximum {
		t.Errorf("JSONSchema() range = [%v, %v], want [%v, %v]", got.Minimum, got.Maximum, want.Minimum, want.Maximum)
	}
}

func TestAmount_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  uint64
		}{
			{int64(0), 0},
			{int64(math.MaxInt64), math.MaxInt64},
			{"18446744073709551615", math.MaxUint64},
			{"1.5 Tgas", 1_500_000_000_000},
			{[]byte("300000000000000"), 300_000_000_000_000},
			{[]byte("2 Ggas"), 2_000_000_000},
		}
		for _, tt := range tests {
			var got Amount
			err := got.Scan(tt.value)
			if err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got.Gas() != tt.want {
				t.Errorf("Scan(%v) = %d, want %v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]any{
			"negative": int64(-1),
			"float":    1.5,
			"bool":     true,
			"nil":      nil,
			"string":   "abc",
			"bytes":    []byte("-1"),
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				var got Amount
				err := got.Scan(tt)
				if err == nil {
					t.Errorf("Scan(%v) did not fail", tt)
				}
			})
		}
	})

	t.Run("underflow", func(t *testing.T) {
		var got Amount
		err := got.Scan(int64(-1))
		if !errors.Is(err, ErrUnderflow) {
			t.Errorf("Scan(-1) = %v, want %v", err, ErrUnderflow)
		}
	})
}

func TestAmount_Value(t *testing.T) {
	tests := []struct {
		a    uint64
		want string
	}{
		{0, "0"},
		{1_500_000_000_000, "1500000000000"},
		{math.MaxUint64, "18446744073709551615"},
	}
	for _, tt := range tests {
		a := NewAmount(tt.a)
		got, err := a.Value()
		if err != nil {
			t.Errorf("%d.Value() failed: %v", a, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%d.Value() = %v, want %v", a, got, tt.want)
		}
	}
}

func TestNullAmount_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  NullAmount
		}{
			{nil, NullAmount{}},
			{int64(5), NullAmount{Amount: NewAmount(5), Valid: true}},
			{"1 Tgas", NullAmount{Amount: NewAmount(1_000_000_000_000), Valid: true}},
		}
		for _, tt := range tests {
			got := NullAmount{Amount: NewAmount(7), Valid: true}
			err := got.Scan(tt.value)
			if err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Scan(%v) = %+v, want %+v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		var got NullAmount
		err := got.Scan([]byte("UUU"))
		if err == nil {
			t.Errorf("Scan(\"UUU\") did not fail")
		}
	})
}

func TestNullAmount_Value(t *testing.T) {
	tests := []struct {
		n    NullAmount
		want driver.Value
	}{
		{NullAmount{}, nil},
		{NullAmount{Amount: NewAmount(5)}, nil},
		{NullAmount{Amount: NewAmount(5), Valid: true}, "5"},
	}
	for _, tt := range tests {
		got, err := tt.n.Value()
		if err != nil {
			t.Errorf("%+v.Value() failed: %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%+v.Value() = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestNullAmount_JSON(t *testing.T) {
	type call struct {
		Gas NullAmount `json:"gas"`
	}

	t.Run("marshal", func(t *testing.T) {
		tests := []struct {
			c    call
			want string
		}{
			{call{}, `{"gas":null}`},
			{call{Gas: NullAmount{Amount: NewAmount(42), Valid: true}}, `{"gas":42}`},
		}
		for _, tt := range tests {
			got, err := json.Marshal(tt.c)
			if err != nil {
				t.Errorf("json.Marshal(%+v) failed: %v", tt.c, err)
				continue
			}
			if string(got) != tt.want {
				t.Errorf("json.Marshal(%+v) = %s, want %s", tt.c, got, tt.want)
			}
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			data string
			want call
		}{
			{`{"gas":null}`, call{}},
			{`{}`, call{}},
			{`{"gas":42}`, call{Gas: NullAmount{Amount: NewAmount(42), Valid: true}}},
			{`{"gas":"1 Ggas"}`, call{Gas: NullAmount{Amount: NewAmount(1_000_000_000), Valid: true}}},
		}
		for _, tt := range tests {
			var got call
			err := json.Unmarshal([]byte(tt.data), &got)
			if err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.data, err)
				continue
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(Amount{})); diff != "" {
				t.Errorf("json.Unmarshal(%s) mismatch (-want +got):\n%s", tt.data, diff)
			}
		}
	})
}
