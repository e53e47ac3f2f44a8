package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/valuation"
	"github.com/google/subcommands"
)

// splitCmd holds the flags for the 'split' subcommand.
type splitCmd struct {
	lotsFile   string
	outputFile string
	num        int64
	den        int64
}

func (*splitCmd) Name() string     { return "split" }
func (*splitCmd) Synopsis() string { return "apply a stock split to a lot history" }
func (*splitCmd) Usage() string {
	return `pval split -l <lots.jsonl> -ratio <num>:<den> [-o <out.jsonl>]

  Rewrites every lot for a num:den split: quantities scale by num/den,
  prices by den/num, so each lot's cost is preserved. A 2:1 split doubles
  quantities; a 1:10 reverse split divides them by ten.
`
}

func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lotsFile, "l", "lots.jsonl", "Lot history file (JSONL format)")
	f.StringVar(&c.outputFile, "o", "", "Output file. Defaults to rewriting the input in place.")
	f.Int64Var(&c.num, "num", 0, "Split numerator (new shares)")
	f.Int64Var(&c.den, "den", 1, "Split denominator (old shares)")
}

func (c *splitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.num <= 0 || c.den <= 0 {
		fmt.Fprintln(os.Stderr, "-num and -den must both be positive")
		return subcommands.ExitUsageError
	}

	lots, err := DecodeLots(c.lotsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lots: %v\n", err)
		return subcommands.ExitFailure
	}

	adjusted := valuation.ApplySplit(lots, c.num, c.den)

	out := c.outputFile
	if out == "" {
		out = c.lotsFile
	}
	if err := EncodeLots(out, adjusted); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing lots: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully applied %d:%d split to %d lots in %s\n", c.num, c.den, len(adjusted), out)
	return subcommands.ExitSuccess
}
