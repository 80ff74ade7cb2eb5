package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/tablefile"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type tableEntry struct {
	Symbol  string `json:"symbol" toml:"symbol" yaml:"symbol"`
	Dots    []int  `json:"dots" toml:"dots" yaml:"dots,flow"`
	Unicode string `json:"unicode" toml:"unicode" yaml:"unicode"`
}

type collisionEntry struct {
	Dots   []int    `json:"dots" toml:"dots" yaml:"dots,flow"`
	Winner string   `json:"winner" toml:"winner" yaml:"winner"`
	Losers []string `json:"losers" toml:"losers" yaml:"losers,flow"`
}

// tableDump is the serialized form of a symbol table with its reverse table.
type tableDump struct {
	Identifier string           `json:"identifier" toml:"identifier" yaml:"identifier"`
	Symbols    []tableEntry     `json:"symbols" toml:"symbols" yaml:"symbols"`
	Reverse    []tableEntry     `json:"reverse" toml:"reverse" yaml:"reverse"`
	Collisions []collisionEntry `json:"collisions" toml:"collisions" yaml:"collisions"`
}

func newTableDump(tc *braille.Transcoder) tableDump {
	entry := func(s braille.Symbol, c braille.Cell) tableEntry {
		return tableEntry{Symbol: s.String(), Dots: c.Dots(), Unicode: string(c.Rune())}
	}
	d := tableDump{Identifier: tc.Symbols().Identifier}
	tc.Symbols().Range(func(s braille.Symbol, c braille.Cell) bool {
		d.Symbols = append(d.Symbols, entry(s, c))
		return true
	})
	tc.Reverse().Range(func(c braille.Cell, s braille.Symbol) bool {
		d.Reverse = append(d.Reverse, entry(s, c))
		return true
	})
	for _, col := range tc.Reverse().Collisions() {
		ce := collisionEntry{Dots: col.Cell.Dots(), Winner: col.Winner.String()}
		for _, l := range col.Losers {
			ce.Losers = append(ce.Losers, l.String())
		}
		d.Collisions = append(d.Collisions, ce)
	}
	return d
}

func newTableCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the symbol table and the reverse table",
		Long: `Show the symbol table in use, including configured overrides. The text
format can be edited and used as an override table (table.overrides).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTable(cmd.OutOrStdout(), a.tc, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, toml, yaml")
	return cmd
}

func writeTable(w io.Writer, tc *braille.Transcoder, format string) error {
	switch format {
	case "text":
		return tablefile.Write(w, tc.Symbols())
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newTableDump(tc))
	case "toml":
		return toml.NewEncoder(w).Encode(newTableDump(tc))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newTableDump(tc)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format: %s (supported: text, json, toml, yaml)", format)
}
