package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/hostfolio/date"
)

// rangeFlags select a date range: a period ending on a date, or an explicit start.
type rangeFlags struct {
	period string
	start  string
	end    string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet, period string) {
	f.StringVar(&r.period, "p", period, "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&r.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&r.end, "d", date.Today().String(), "The end date of the range.")
}

// Range returns the selected range.
func (r *rangeFlags) Range() (date.Range, error) {
	end, err := date.Parse(r.end)
	if err != nil {
		return date.Range{}, fmt.Errorf("error parsing end date: %w", err)
	}
	if r.start != "" {
		start, err := date.Parse(r.start)
		if err != nil {
			return date.Range{}, fmt.Errorf("error parsing start date: %w", err)
		}
		if start.After(end) {
			return date.Range{}, fmt.Errorf("start date %s is after end date %s", start, end)
		}
		return date.NewRange(start, end), nil
	}
	period, err := date.ParsePeriod(r.period)
	if err != nil {
		return date.Range{}, err
	}
	return period.Range(end), nil
}

// printJSON prints v as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readJSON decodes the JSON file at path into v, unknown fields are rejected.
func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("could not decode %q: %w", path, err)
	}
	return nil
}
