// Package cmd implements the CLI application to value positions.
package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/etnz/valuation"
	"github.com/google/subcommands"
)

// Commands lists the subcommands a main package registers.
// A main package iterates Commands and calls Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&metricsCmd{},
	&totalsCmd{},
	&splitCmd{},
	&bondCmd{},
	&commodityCmd{},
	&propertyCmd{},
	&cashCmd{},
	&customCmd{},
	&topicCmd{},
}

// DecodeLots reads a lot history from a JSONL file, one lot per line.
// Blank lines are skipped.
func DecodeLots(filename string) (valuation.Lots, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening lots file %q: %w", filename, err)
	}
	defer f.Close()

	var lots valuation.Lots
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var l valuation.Lot
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, fmt.Errorf("lots file %q line %d: %w", filename, line, err)
		}
		lots = append(lots, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lots file %q: %w", filename, err)
	}
	return lots, nil
}

// EncodeLots writes a lot history as JSONL, one lot per line.
func EncodeLots(filename string, lots valuation.Lots) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating lots file %q: %w", filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, l := range lots {
		if err := enc.Encode(l); err != nil {
			return fmt.Errorf("writing lots file %q: %w", filename, err)
		}
	}
	return w.Flush()
}

// decodeFile reads one JSON document (instrument terms, holdings) into v.
func decodeFile(filename string, v any) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening %q: %w", filename, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decoding %q: %w", filename, err)
	}
	return nil
}

// printJSON writes v to stdout as indented JSON. The metric structs order
// their own fields.
func printJSON(v any) subcommands.ExitStatus {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(data))
	return subcommands.ExitSuccess
}
