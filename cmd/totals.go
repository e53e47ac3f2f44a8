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

// positionEntry is one line of the portfolio file: a named lot history and
// the quote to value it at.
type positionEntry struct {
	Symbol     string          `json:"symbol"`
	Lots       valuation.Lots  `json:"lots"`
	Quote      valuation.Quote `json:"quote"`
	Multiplier float64         `json:"multiplier,omitempty"`
}

func (e positionEntry) position() valuation.Position {
	p := valuation.Position{Lots: e.Lots, Quote: e.Quote}
	if e.Multiplier != 0 {
		p.Multiplier = valuation.Q(e.Multiplier)
	}
	return p
}

// totalsCmd holds the flags for the 'totals' subcommand.
type totalsCmd struct {
	portfolioFile string
	method        string
	asJSON        bool
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "aggregate P/L across a portfolio of positions" }
func (*totalsCmd) Usage() string {
	return `pval totals -p <portfolio.json> [-method <method>]

  Values every position in the portfolio file and sums unrealized, realized
  and today's change.
`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolioFile, "p", "portfolio.json", "Portfolio file: JSON array of {symbol, lots, quote, multiplier}")
	f.StringVar(&c.method, "method", "average", "Cost basis method (average, fifo)")
	f.BoolVar(&c.asJSON, "json", false, "Print the totals as JSON instead of a report")
}

func (c *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := valuation.ParseCostBasisMethod(c.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost basis method: %v\n", err)
		return subcommands.ExitUsageError
	}

	var entries []positionEntry
	if err := decodeFile(c.portfolioFile, &entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.asJSON {
		positions := make([]valuation.Position, 0, len(entries))
		for _, e := range entries {
			positions = append(positions, e.position())
		}
		return printJSON(valuation.Totals(positions, method))
	}

	rows := make([]renderer.PositionRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, renderer.PositionRow{Symbol: e.Symbol, Position: e.position()})
	}
	printMarkdown(renderer.PortfolioMarkdown(rows, method))
	return subcommands.ExitSuccess
}
