package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/valuation"
)

func TestLotsFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lots.jsonl")
	in := valuation.Lots{
		valuation.NewLot(valuation.Buy, valuation.Q(10), valuation.M(100, "USD"), valuation.M(1, "USD"), valuation.NewDate(2026, time.January, 5)),
		valuation.NewLot(valuation.Sell, valuation.Q(4), valuation.M(120, "USD"), valuation.M(0, "USD"), valuation.NewDate(2026, time.February, 10)),
	}

	if err := EncodeLots(path, in); err != nil {
		t.Fatal(err)
	}
	out, err := DecodeLots(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != len(in) {
		t.Fatalf("round trip lost lots: %d != %d", len(out), len(in))
	}
	for i := range in {
		if out[i].ID != in[i].ID || out[i].Side != in[i].Side || out[i].Date != in[i].Date {
			t.Errorf("lot %d mismatch: %+v", i, out[i])
		}
		if !out[i].Quantity.Equal(in[i].Quantity) || !out[i].Price.Equal(in[i].Price) {
			t.Errorf("lot %d values mismatch: %+v", i, out[i])
		}
	}
}

func TestDecodeLots_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lots.jsonl")
	content := `{"side":"buy","quantity":"10","price":"100","currency":"USD","date":"2026-01-05"}

{"side":"sell","quantity":"5","price":"120","currency":"USD","date":"2026-02-10"}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	lots, err := DecodeLots(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lots) != 2 {
		t.Fatalf("got %d lots, want 2", len(lots))
	}
	if !lots.OpenQuantity().Equal(valuation.Q(5)) {
		t.Errorf("open = %v, want 5", lots.OpenQuantity())
	}
}

func TestDecodeLots_ReportsLineNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lots.jsonl")
	content := `{"side":"buy","quantity":"10","price":"100","currency":"USD","date":"2026-01-05"}
{"side":"buy","quantity":"broken`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeLots(path); err == nil {
		t.Error("want error for malformed line")
	}
}

func TestQuoteFlags(t *testing.T) {
	// Explicit values.
	q := quoteFlags{last: 101.5, prev: 99}
	quote, err := q.Quote()
	if err != nil {
		t.Fatal(err)
	}
	if quote.Last == nil || *quote.Last != 101.5 || quote.PrevClose == nil || *quote.PrevClose != 99 {
		t.Errorf("quote = %+v", quote)
	}

	// Zero flags mean no data.
	quote, err = (&quoteFlags{}).Quote()
	if err != nil {
		t.Fatal(err)
	}
	if quote.Last != nil || quote.PrevClose != nil {
		t.Errorf("quote = %+v, want empty", quote)
	}

	// Feed file with selectors.
	path := filepath.Join(t.TempDir(), "quote.json")
	if err := os.WriteFile(path, []byte(`{"data":{"last":12.5,"prevClose":12.1}}`), 0644); err != nil {
		t.Fatal(err)
	}
	q = quoteFlags{quoteFile: path, lastPath: "$.data.last", prevPath: "$.data.prevClose"}
	quote, err = q.Quote()
	if err != nil {
		t.Fatal(err)
	}
	if quote.Last == nil || *quote.Last != 12.5 {
		t.Errorf("quote = %+v", quote)
	}
}
