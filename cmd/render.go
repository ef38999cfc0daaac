package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/zalepa/nbastandings/figure"
)

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "draw the chart to a PNG (one week) or a PDF (every week)",
		Flags: append(append(dataFlags(), filterFlags()...),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file ending in .png or .pdf", Required: true},
			&cli.IntFlag{Name: "week", Aliases: []string{"w"}, Usage: "season week for PNG output (defaults to the last week)"},
		),
		Action: func(c *cli.Context) error {
			table, err := loadTable(c)
			if err != nil {
				return err
			}
			s, err := applySelection(table, figure.NewCatalog(table), selectionFrom(c))
			if err != nil {
				return err
			}
			out := c.String("out")
			if err := renderFile(s.State.Figure, out, c.Int("week")); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "wrote %s\n", out)
			return nil
		},
	}
}

// renderFile writes spec to path by extension. week 0 selects the last week.
func renderFile(spec *figure.Spec, path string, week int) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		frame := spec.ActiveFrame()
		if week > 0 {
			frame = spec.FrameIndex(strconv.Itoa(week))
		}
		if frame < 0 {
			return errors.Errorf("no data for week %d", week)
		}
		return writeFile(path, func(f *os.File) error { return spec.WritePNG(f, frame) })
	case ".pdf":
		if err := writeFile(path, func(f *os.File) error { return spec.WritePDF(f) }); err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := figure.VerifyPDF(f, len(spec.Frames)); err != nil {
			return errors.Wrapf(err, "verify %s", path)
		}
		log.Debug().Str("path", path).Int("pages", len(spec.Frames)).Msg("pdf verified")
		return nil
	default:
		return errors.Errorf("unsupported output %q: want .png or .pdf", path)
	}
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}
