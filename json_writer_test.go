package valuation

import (
	"encoding/json"
	"testing"
	"time"
)

func TestJSONWriter_FieldOrder(t *testing.T) {
	// Metrics marshal with a stable field order, so diffs of scripted
	// output stay readable.
	m := PositionMetrics{
		Quantity:    Q(10),
		AverageCost: M(100, "USD"),
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"quantity":"10","averageCost":{"currency":"USD","amount":"100"},"realized":{"amount":"0"},"unrealized":{"amount":"0"},"todayChange":{"amount":"0"}}`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}
}

func TestJSONWriter_Optional(t *testing.T) {
	var w jsonObjectWriter
	w.Append("a", 1)
	w.Optional("b", "")
	w.Optional("c", "set")
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"a":1,"c":"set"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONWriter_EmbedFrom(t *testing.T) {
	var w jsonObjectWriter
	w.EmbedFrom(struct {
		Kind string `json:"kind"`
	}{Kind: "bond"})
	w.Append("on", NewDate(2026, time.March, 1))
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"kind":"bond","on":"2026-03-01"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
