package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/primefun/ktuple"
)

// primality is the structured form of an isprime answer.
type primality struct {
	N     int  `json:"n" yaml:"n"`
	Prime bool `json:"prime" yaml:"prime"`
}

func (p primality) String() string {
	if p.Prime {
		return fmt.Sprintf("%d is prime", p.N)
	}

	return fmt.Sprintf("%d is not prime", p.N)
}

// patternRow is one line of the descriptor table.
type patternRow struct {
	Key           string `json:"key" yaml:"key"`
	Size          int    `json:"size" yaml:"size"`
	Distance      int    `json:"distance" yaml:"distance"`
	IndexDistance int    `json:"index_distance,omitempty" yaml:"index_distance,omitempty"`
}

func patternRows(ps []ktuple.Pattern) []patternRow {
	rows := make([]patternRow, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, patternRow{Key: p.Key, Size: p.Size(), Distance: p.Distance, IndexDistance: p.IndexDistance})
	}

	return rows
}

// render writes v in the configured format.
func render(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatJSON:
		return json.NewEncoder(w).Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return renderText(w, v)
	}
}

func renderText(w io.Writer, v interface{}) error {
	rows, ok := v.([]patternRow)
	if !ok {
		_, err := fmt.Fprintln(w, v)

		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tSIZE\tDISTANCE\tINDEX DISTANCE")
	for _, r := range rows {
		idx := "-"
		if r.IndexDistance > 0 {
			idx = fmt.Sprint(r.IndexDistance)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.Key, r.Size, r.Distance, idx)
	}

	return tw.Flush()
}
