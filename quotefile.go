package valuation

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// The quote service is an external collaborator with no shape contract the
// engine can assume: every feed nests its last price and previous close
// differently. The caller supplies jsonpath selectors for both, and gets
// back the engine's {last, prevClose} pair. A selector that matches nothing
// is a null field, not an error, since "no trade yet today" is a normal
// state.

// ExtractQuote pulls a quote out of an already-decoded JSON document.
func ExtractQuote(doc any, lastPath, prevClosePath string) (Quote, error) {
	last, err := jsonPathFloat(doc, lastPath)
	if err != nil {
		return Quote{}, fmt.Errorf("reading last price: %w", err)
	}
	prev, err := jsonPathFloat(doc, prevClosePath)
	if err != nil {
		return Quote{}, fmt.Errorf("reading previous close: %w", err)
	}
	return Quote{Last: last, PrevClose: prev}, nil
}

// DecodeQuote reads a JSON quote-feed document and extracts a quote from it.
func DecodeQuote(r io.Reader, lastPath, prevClosePath string) (Quote, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Quote{}, fmt.Errorf("invalid quote document: %w", err)
	}
	return ExtractQuote(doc, lastPath, prevClosePath)
}

// jsonPathFloat evaluates a jsonpath selector down to an optional float.
func jsonPathFloat(doc any, path string) (*float64, error) {
	if path == "" {
		return nil, nil
	}
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		// An unmatched selector is a missing value, not a failure.
		return nil, nil
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, nil
		}
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case nil:
		return nil, nil
	case float64:
		return &v, nil
	case string:
		// some feeds quote numbers as strings, with a comma decimal mark
		v = strings.ReplaceAll(v, ",", ".")
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("value at %q is not a number: %q", path, v)
		}
		return &f, nil
	default:
		return nil, fmt.Errorf("value at %q is not a number: %v", path, jval)
	}
}
