package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/zalepa/nbastandings/standings"
)

var exportHeader = []string{
	standings.ColDate, standings.ColTeam,
	standings.ColConference, standings.ColConferenceIndicator,
	standings.ColDivision, standings.ColDivisionIndicator,
	"Season Week", standings.ColWins,
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the shaped weekly table as CSV",
		Flags: append(dataFlags(),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output CSV path (- for stdout)", Value: "-"},
		),
		Action: func(c *cli.Context) error {
			table, err := loadTable(c)
			if err != nil {
				return err
			}

			out := c.String("out")
			if out == "-" {
				return writeCSV(c.App.Writer, table.Records())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := writeCSV(f, table.Records()); err != nil {
				return err
			}
			fmt.Fprintf(c.App.ErrWriter, "%d rows → %s\n", table.Len(), out)
			return nil
		},
	}
}

// writeCSV writes records in table order, one row per team and week.
func writeCSV(w io.Writer, records []standings.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Date.Format("2006-01-02"),
			r.Team,
			r.Conference,
			r.ConferenceIndicator,
			r.Division,
			r.DivisionIndicator,
			strconv.Itoa(r.SeasonWeek),
			strconv.Itoa(r.Wins),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
