package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/braille/internal/errs"
	"github.com/npillmayer/braille/render"
	"github.com/npillmayer/braille/server"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		format, output, title string
		mirror, noCaption     bool
	)
	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Render text as a Braille image (PNG) or document (PDF)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(output), ".")
			}
			format = strings.ToLower(format)
			if format != "png" && format != "pdf" {
				return errs.InvalidRequest("unsupported format %q (supported: png, pdf)", format)
			}
			opts := server.RenderOptions(a.cfg.Render)
			opts.Mirror = mirror
			cells := a.tc.TextToCells(text)

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			switch format {
			case "png":
				caption := text
				if noCaption {
					caption = ""
				}
				err = render.PNG(f, cells, caption, opts)
			case "pdf":
				if title == "" {
					title = a.cfg.Render.PDFTitle
				}
				err = render.PDF(f, cells, text, title, opts)
			}
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				os.Remove(output)
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d cells to %s\n", len(cells), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "png or pdf (default: from output file extension)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringVar(&title, "title", "", "PDF title")
	cmd.Flags().BoolVar(&mirror, "mirror", false, "mirror cells for embossing from the back")
	cmd.Flags().BoolVar(&noCaption, "no-caption", false, "omit the text caption in PNG output")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
