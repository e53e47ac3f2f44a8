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

// metricsCmd holds the flags for the 'metrics' subcommand.
type metricsCmd struct {
	lotsFile   string
	symbol     string
	method     string
	multiplier float64
	asJSON     bool
	quote      quoteFlags
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "value one position from its lot history" }
func (*metricsCmd) Usage() string {
	return `pval metrics -l <lots.jsonl> [-method <method>] [-last <price>] [-prev <price>]

  Computes quantity, average cost, realized and unrealized P/L and today's
  change for a single position.
`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lotsFile, "l", "lots.jsonl", "Lot history file (JSONL format)")
	f.StringVar(&c.symbol, "symbol", "", "Position name used in the report")
	f.StringVar(&c.method, "method", "average", "Cost basis method (average, fifo)")
	f.Float64Var(&c.multiplier, "multiplier", 1, "Contract multiplier")
	f.BoolVar(&c.asJSON, "json", false, "Print the metrics as JSON instead of a report")
	c.quote.SetFlags(f)
}

func (c *metricsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := valuation.ParseCostBasisMethod(c.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost basis method: %v\n", err)
		return subcommands.ExitUsageError
	}

	lots, err := DecodeLots(c.lotsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lots: %v\n", err)
		return subcommands.ExitFailure
	}

	quote, err := c.quote.Quote()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading quote: %v\n", err)
		return subcommands.ExitFailure
	}

	position := valuation.Position{
		Lots:       lots,
		Quote:      quote,
		Multiplier: valuation.Q(c.multiplier),
	}
	m := position.Metrics(method)

	if c.asJSON {
		return printJSON(m)
	}
	symbol := c.symbol
	if symbol == "" {
		symbol = c.lotsFile
	}
	printMarkdown(renderer.PositionMarkdown(symbol, m, method))
	return subcommands.ExitSuccess
}
