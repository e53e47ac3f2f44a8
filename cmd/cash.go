package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/valuation"
	"github.com/etnz/valuation/renderer"
	"github.com/google/subcommands"
)

// cashCmd holds the flags for the 'cash' subcommand.
type cashCmd struct {
	name        string
	principal   float64
	apy         float64
	compounding string
	currency    string
	date        string
	asJSON      bool
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "project an interest-bearing cash account" }
func (*cashCmd) Usage() string {
	return `pval cash -principal <amount> -apy <rate> [-compounding <freq>] [-d <date>]

  Computes the effective annual rate, the projected value in one year, and
  the next interest credit date.
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "Savings", "Account name used in the report")
	f.Float64Var(&c.principal, "principal", 0, "Account balance")
	f.Float64Var(&c.apy, "apy", 0, "Annual percentage yield, in percent")
	f.StringVar(&c.compounding, "compounding", "monthly", "Compounding frequency (daily, monthly, quarterly, none)")
	f.StringVar(&c.currency, "c", "USD", "ISO currency code")
	f.StringVar(&c.date, "d", valuation.Today().String(), "Reference date for the next credit")
	f.BoolVar(&c.asJSON, "json", false, "Print the metrics as JSON instead of a report")
}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	compounding, err := valuation.ParseCompounding(c.compounding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing compounding: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := valuation.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	terms := valuation.CashTerms{
		Principal:   c.principal,
		APY:         c.apy,
		Compounding: compounding,
		Currency:    c.currency,
	}
	m := terms.Metrics(on)
	if c.asJSON {
		return printJSON(m)
	}
	printMarkdown(renderer.CashMarkdown(c.name, terms, m))
	return subcommands.ExitSuccess
}
