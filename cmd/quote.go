package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/valuation"
)

// quoteFlags is the shared flag block for commands that need market data.
// A quote comes either from explicit -last/-prev values or from a JSON feed
// file with jsonpath selectors for both fields.
type quoteFlags struct {
	last      float64
	prev      float64
	quoteFile string
	lastPath  string
	prevPath  string
}

func (q *quoteFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&q.last, "last", 0, "Last traded price. 0 means no trade today.")
	f.Float64Var(&q.prev, "prev", 0, "Previous close price. 0 means unknown.")
	f.StringVar(&q.quoteFile, "quote-file", "", "JSON quote-feed document to extract the quote from")
	f.StringVar(&q.lastPath, "last-path", "$.last", "jsonpath selector for the last price in the quote file")
	f.StringVar(&q.prevPath, "prev-path", "$.prevClose", "jsonpath selector for the previous close in the quote file")
}

// Quote resolves the flag block into the engine's nullable quote.
func (q *quoteFlags) Quote() (valuation.Quote, error) {
	if q.quoteFile != "" {
		f, err := os.Open(q.quoteFile)
		if err != nil {
			return valuation.Quote{}, fmt.Errorf("opening quote file %q: %w", q.quoteFile, err)
		}
		defer f.Close()
		return valuation.DecodeQuote(f, q.lastPath, q.prevPath)
	}

	var quote valuation.Quote
	if q.last != 0 {
		quote.Last = &q.last
	}
	if q.prev != 0 {
		quote.PrevClose = &q.prev
	}
	return quote, nil
}
