package valuation

import (
	"strings"
	"testing"
)

const sampleFeed = `{
	"symbol": "ACME",
	"quote": {"lastPrice": 101.5, "close": "99,75"},
	"bids": [{"price": 101.4}]
}`

func TestDecodeQuote(t *testing.T) {
	q, err := DecodeQuote(strings.NewReader(sampleFeed), "$.quote.lastPrice", "$.quote.close")
	if err != nil {
		t.Fatal(err)
	}
	if q.Last == nil || *q.Last != 101.5 {
		t.Errorf("last = %v, want 101.5", q.Last)
	}
	// String values with a comma decimal mark still parse.
	if q.PrevClose == nil || *q.PrevClose != 99.75 {
		t.Errorf("prevClose = %v, want 99.75", q.PrevClose)
	}
}

func TestDecodeQuote_ListResult(t *testing.T) {
	// A filter-style selector yields a list; the first match wins.
	q, err := DecodeQuote(strings.NewReader(sampleFeed), "$.bids[*].price", "")
	if err != nil {
		t.Fatal(err)
	}
	if q.Last == nil || *q.Last != 101.4 {
		t.Errorf("last = %v, want 101.4", q.Last)
	}
}

func TestDecodeQuote_MissingPath(t *testing.T) {
	// An unmatched selector is a missing value, not an error.
	q, err := DecodeQuote(strings.NewReader(sampleFeed), "$.quote.lastPrice", "$.quote.previousClose")
	if err != nil {
		t.Fatal(err)
	}
	if q.PrevClose != nil {
		t.Errorf("prevClose = %v, want nil", q.PrevClose)
	}

	// An empty selector skips extraction entirely.
	q, err = DecodeQuote(strings.NewReader(sampleFeed), "", "")
	if err != nil {
		t.Fatal(err)
	}
	if q.Last != nil || q.PrevClose != nil {
		t.Errorf("quote = %+v, want empty", q)
	}
}

func TestDecodeQuote_BadValue(t *testing.T) {
	// A selector that lands on a non-numeric value is a real failure.
	if _, err := DecodeQuote(strings.NewReader(sampleFeed), "$.symbol", ""); err == nil {
		t.Error("want error for non-numeric last price")
	}
	if _, err := DecodeQuote(strings.NewReader(sampleFeed), "$.quote", ""); err == nil {
		t.Error("want error for object-valued last price")
	}
}

func TestDecodeQuote_InvalidDocument(t *testing.T) {
	if _, err := DecodeQuote(strings.NewReader("{not json"), "$.last", ""); err == nil {
		t.Error("want error for malformed document")
	}
}
