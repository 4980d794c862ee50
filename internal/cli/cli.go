// Package cli implements the gasconv command, which converts human-readable
// gas amounts to base units and checks them against a limit.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/govalues/gas"
)

// Exit codes returned by [Run].
const (
	ExitOK       = 0
	ExitExceeded = 1
	ExitError    = 2
)

const envPrefix = "GASCONV"

var errLimitExceeded = errors.New("limit exceeded")

// Config holds the command settings after flags and environment
// variables have been merged.
type Config struct {
	Limit    gas.Amount
	HasLimit bool
	Price    gas.Price
	HasPrice bool
	Sum      bool
	Exact    bool
}

// Run executes the command with the given arguments, excluding the program
// name, and returns the process exit code.
// Results are written to stdout; diagnostics are logged to stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, amounts, err := load(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		logger.Error("invalid arguments", "error", err)
		return ExitError
	}

	if err := convert(cfg, amounts, stdout, logger); err != nil {
		if errors.Is(err, errLimitExceeded) {
			return ExitExceeded
		}
		logger.Error("conversion failed", "error", err)
		return ExitError
	}
	return ExitOK
}

// load parses the flags and merges them with GASCONV_* environment
// variables. Flags set on the command line take precedence.
func load(args []string, stderr io.Writer) (Config, []string, error) {
	fs := pflag.NewFlagSet("gasconv", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gasconv [flags] AMOUNT...\n\nFlags:\n")
		fs.PrintDefaults()
	}
	gas.AmountVar(fs, "limit", gas.Amount{}, "report amounts above this limit")
	fs.String("price", "", "print the cost of each amount at this price, for example 0.0001/Tgas")
	fs.Bool("sum", false, "print the total of all amounts")
	fs.Bool("exact", false, "print exact amounts instead of rounded ones")
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, nil, fmt.Errorf("binding flags: %w", err)
	}

	cfg := Config{
		Sum:   v.GetBool("sum"),
		Exact: v.GetBool("exact"),
	}
	if v.IsSet("limit") {
		limit, err := gas.ParseAmount(v.GetString("limit"))
		if err != nil {
			return Config{}, nil, fmt.Errorf("reading limit: %w", err)
		}
		cfg.Limit = limit
		cfg.HasLimit = true
	}
	if v.IsSet("price") {
		price, err := gas.ParsePrice(v.GetString("price"))
		if err != nil {
			return Config{}, nil, fmt.Errorf("reading price: %w", err)
		}
		cfg.Price = price
		cfg.HasPrice = true
	}

	if fs.NArg() == 0 {
		return Config{}, nil, errors.New("no amounts given")
	}
	return cfg, fs.Args(), nil
}

// convert prints one line per amount, and the total if requested.
// It returns an error wrapping errLimitExceeded if any printed amount is
// above the configured limit.
func convert(cfg Config, args []string, w io.Writer, logger *slog.Logger) error {
	var (
		total    gas.Amount
		exceeded bool
	)
	check := func(name string, a gas.Amount) {
		if cfg.HasLimit && a.Cmp(cfg.Limit) > 0 {
			logger.Warn("limit exceeded", "amount", name, "gas", a.Gas(), "limit", cfg.Limit.Gas())
			exceeded = true
		}
	}

	for _, arg := range args {
		a, err := gas.ParseAmount(arg)
		if err != nil {
			return err
		}
		if cfg.Sum {
			total, err = total.Add(a)
			if err != nil {
				return fmt.Errorf("summing amounts: %w", err)
			}
		}
		if err := printAmount(w, cfg, strings.TrimSpace(arg), a); err != nil {
			return err
		}
		check(arg, a)
	}

	if cfg.Sum {
		if err := printAmount(w, cfg, "total", total); err != nil {
			return err
		}
		check("total", total)
	}

	if exceeded {
		return errLimitExceeded
	}
	return nil
}

// printAmount writes a tab-separated line: the name, the number of gas,
// the display form and, if a price is configured, the cost.
func printAmount(w io.Writer, cfg Config, name string, a gas.Amount) error {
	var display string
	if cfg.Exact {
		text, err := a.MarshalText()
		if err != nil {
			return err
		}
		display = string(text)
	} else {
		display = a.String()
	}
	if !cfg.HasPrice {
		_, err := fmt.Fprintf(w, "%s\t%d\t%s\n", name, a, display)
		return err
	}
	cost, err := cfg.Price.Cost(a)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", name, a, display, cost)
	return err
}
