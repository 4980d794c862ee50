package gas

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = &AmountValue{}

// AmountValue makes an [Amount] usable as a command-line flag.
// It implements the [pflag.Value] interface; the flag accepts any string
// understood by [ParseAmount].
//
// [pflag.Value]: https://pkg.go.dev/github.com/spf13/pflag#Value
type AmountValue struct {
	Amount
}

// Set implements the [pflag.Value] interface.
func (v *AmountValue) Set(s string) error {
	a, err := ParseAmount(s)
	if err != nil {
		return err
	}
	v.Amount = a
	return nil
}

// String implements the [pflag.Value] interface and returns the exact
// text form of the amount, so that printed defaults can be passed back in.
// See also method [Amount.AppendText].
func (v *AmountValue) String() string {
	text, _ := v.Amount.AppendText(nil)
	return string(text)
}

// Format implements the [fmt.Formatter] interface.
// It accepts the same verbs and flags as [Amount.Format], but %s, %v and %q
// print the exact text returned by [AmountValue.String] instead of the
// rounded amount.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (v *AmountValue) Format(state fmt.State, verb rune) {
	v.Amount.format(state, verb, v.String())
}

// Type implements the [pflag.Value] interface.
func (*AmountValue) Type() string {
	return "gas"
}

// AmountVar defines an amount flag with the specified name, default value,
// and usage string on the flag set, and returns the flag value.
// The list of accepted units is appended to the usage string.
func AmountVar(fs *pflag.FlagSet, name string, value Amount, usage string) *AmountValue {
	v := &AmountValue{Amount: value}
	fs.Var(v, name, usage+" ("+UnitsUsage()+")")
	return v
}

// UnitsUsage returns a help string listing the accepted unit tokens,
// for example "units: gas, Ggas|gigagas, Tgas|teragas".
func UnitsUsage() string {
	var b strings.Builder
	b.WriteString("units: ")
	for i, u := range Units() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strings.Join(u.Tokens(), "|"))
	}
	return b.String()
}
