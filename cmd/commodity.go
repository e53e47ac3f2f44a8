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

type commodityFile struct {
	Name  string                   `json:"name"`
	Terms valuation.CommodityTerms `json:"terms"`
}

// commodityCmd holds the flags for the 'commodity' subcommand.
type commodityCmd struct {
	termsFile string
	price     float64
	date      string
	asJSON    bool
}

func (*commodityCmd) Name() string     { return "commodity" }
func (*commodityCmd) Synopsis() string { return "value a spot or futures commodity position" }
func (*commodityCmd) Usage() string {
	return `pval commodity -t <commodity.json> -price <current> [-d <date>]

  Computes notional value and mark-to-market P/L. Futures positions also
  resolve their contract code to an expiry date.
`
}

func (c *commodityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.termsFile, "t", "commodity.json", "Commodity file: JSON {name, terms}")
	f.Float64Var(&c.price, "price", 0, "Current price per unit")
	f.StringVar(&c.date, "d", valuation.Today().String(), "Reference date for days-to-expiry")
	f.BoolVar(&c.asJSON, "json", false, "Print the metrics as JSON instead of a report")
}

func (c *commodityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := valuation.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var commodity commodityFile
	if err := decodeFile(c.termsFile, &commodity); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading commodity: %v\n", err)
		return subcommands.ExitFailure
	}

	m, err := commodity.Terms.Metrics(c.price, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing commodity: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.asJSON {
		return printJSON(m)
	}
	name := commodity.Name
	if name == "" {
		name = c.termsFile
	}
	printMarkdown(renderer.CommodityMarkdown(name, commodity.Terms, m))
	return subcommands.ExitSuccess
}
