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

// customFile is the on-disk shape for a custom instrument: its definition
// and the current state.
type customFile struct {
	Name       string                     `json:"name"`
	Definition valuation.CustomDefinition `json:"definition"`
	State      valuation.CustomState      `json:"state"`
}

// customCmd holds the flags for the 'custom' subcommand.
type customCmd struct {
	defFile    string
	incomeDays int
	asJSON     bool
}

func (*customCmd) Name() string     { return "custom" }
func (*customCmd) Synopsis() string { return "value a user-defined instrument" }
func (*customCmd) Usage() string {
	return `pval custom -t <custom.json> [-income-days <n>]

  Computes quantity, average cost, cost basis, fees and P/L under the
  instrument's declared model. Expression models evaluate the stored
  formula; a formula error is reported, never fatal.
`
}

func (c *customCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.defFile, "t", "custom.json", "Custom instrument file: JSON {name, definition, state}")
	f.IntVar(&c.incomeDays, "income-days", 0, "Also project income over this many days")
	f.BoolVar(&c.asJSON, "json", false, "Print the metrics as JSON instead of a report")
}

func (c *customCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var custom customFile
	if err := decodeFile(c.defFile, &custom); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading instrument: %v\n", err)
		return subcommands.ExitFailure
	}

	m := custom.Definition.Metrics(custom.State)
	if c.asJSON {
		return printJSON(m)
	}
	name := custom.Name
	if name == "" {
		name = c.defFile
	}
	printMarkdown(renderer.CustomMarkdown(name, custom.Definition, m))

	if c.incomeDays > 0 {
		income := custom.Definition.ProjectedIncome(custom.State, c.incomeDays)
		info := valuation.LookupCurrency(custom.Definition.Currency)
		fmt.Printf("Projected income over %d days: %s%.*f\n",
			c.incomeDays, info.Symbol, info.Decimals, income)
	}
	return subcommands.ExitSuccess
}
