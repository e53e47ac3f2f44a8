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

// bondFile is the on-disk shape for a bond position: its fixed terms and
// the holding state.
type bondFile struct {
	Name    string                `json:"name"`
	Terms   valuation.BondTerms   `json:"terms"`
	Holding valuation.BondHolding `json:"holding"`
}

// bondCmd holds the flags for the 'bond' subcommand.
type bondCmd struct {
	termsFile string
	date      string
	asJSON    bool
}

func (*bondCmd) Name() string     { return "bond" }
func (*bondCmd) Synopsis() string { return "value a bond holding with accrued interest" }
func (*bondCmd) Usage() string {
	return `pval bond -t <bond.json> [-d <date>]

  Computes cost basis, market value, accrued interest, dirty price, the
  coupon schedule and an approximate yield to maturity.
`
}

func (c *bondCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.termsFile, "t", "bond.json", "Bond file: JSON {name, terms, holding}")
	f.StringVar(&c.date, "d", valuation.Today().String(), "Reference date for accrual")
	f.BoolVar(&c.asJSON, "json", false, "Print the metrics as JSON instead of a report")
}

func (c *bondCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := valuation.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var bond bondFile
	if err := decodeFile(c.termsFile, &bond); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bond: %v\n", err)
		return subcommands.ExitFailure
	}

	m := bond.Terms.Metrics(bond.Holding, on)
	if c.asJSON {
		return printJSON(m)
	}
	name := bond.Name
	if name == "" {
		name = c.termsFile
	}
	printMarkdown(renderer.BondMarkdown(name, bond.Terms, m))
	return subcommands.ExitSuccess
}
