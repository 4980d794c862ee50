// Command gasconv converts gas amounts such as "1.5 Tgas" to base units.
//
// Usage:
//
//	gasconv [--limit AMOUNT] [--price PRICE] [--sum] [--exact] AMOUNT...
//
// PRICE is a number of tokens per unit of gas, for example 0.0001/Tgas;
// with it, the cost of each amount is printed as well.
//
// Flags can also be set with GASCONV_LIMIT, GASCONV_PRICE, GASCONV_SUM and
// GASCONV_EXACT environment variables.
package main

import (
	"os"

	"github.com/govalues/gas/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
