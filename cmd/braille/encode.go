package main

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/dotnotation"
	"github.com/spf13/cobra"
)

type encodeOutput struct {
	Text    string  `json:"text"`
	Cells   [][]int `json:"cells"`
	Dots    string  `json:"dots"`
	Unicode string  `json:"unicode"`
}

func newEncodeCmd(a *app) *cobra.Command {
	var format string
	var mirror bool
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Transcribe text to Braille cells",
		Long:  `Transcribe text to Braille cells. Without arguments the text is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			cells := a.tc.TextToCells(text)
			if mirror {
				cells = braille.Mirror(cells)
			}
			out := cmd.OutOrStdout()
			if format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(encodeOutput{
					Text:    text,
					Cells:   braille.DotLists(cells),
					Dots:    dotnotation.Format(cells, dotnotation.Dots),
					Unicode: braille.Unicode(cells),
				})
			}
			style, err := dotnotation.ParseStyle(format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, dotnotation.Format(cells, style))
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "dots", "output format: dots, spaced, unicode, json")
	cmd.Flags().BoolVar(&mirror, "mirror", false, "mirror cells for embossing from the back")
	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [cells]",
		Short: "Read Braille cells back to text",
		Long: `Read Braille cells back to text. Cells are given in dot notation
("46|125|135" or "46 1-2-5 135", '_' for blank) or as Unicode Braille
("⠨⠓⠕"). Without arguments the cells are read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := input(cmd, args)
			if err != nil {
				return err
			}
			cells, err := dotnotation.Parse(src)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.tc.CellsToText(cells))
			return err
		},
	}
}
