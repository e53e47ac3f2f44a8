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

type propertyFile struct {
	Name  string                  `json:"name"`
	Terms valuation.PropertyTerms `json:"terms"`
}

// propertyCmd holds the flags for the 'property' subcommand.
type propertyCmd struct {
	termsFile string
	date      string
	asJSON    bool
}

func (*propertyCmd) Name() string     { return "property" }
func (*propertyCmd) Synopsis() string { return "value a directly-held real-estate position" }
func (*propertyCmd) Usage() string {
	return `pval property -t <property.json> [-d <date>]

  Computes cost basis, equity, NOI, cap rate, cash flow, mortgage payment,
  annualized appreciation, loan-to-value and debt-service coverage.
`
}

func (c *propertyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.termsFile, "t", "property.json", "Property file: JSON {name, terms}")
	f.StringVar(&c.date, "d", valuation.Today().String(), "Reference date for the appreciation term")
	f.BoolVar(&c.asJSON, "json", false, "Print the metrics as JSON instead of a report")
}

func (c *propertyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := valuation.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var property propertyFile
	if err := decodeFile(c.termsFile, &property); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading property: %v\n", err)
		return subcommands.ExitFailure
	}

	m := property.Terms.Metrics(on)
	if c.asJSON {
		return printJSON(m)
	}
	name := property.Name
	if name == "" {
		name = c.termsFile
	}
	printMarkdown(renderer.PropertyMarkdown(name, property.Terms, m))
	return subcommands.ExitSuccess
}
