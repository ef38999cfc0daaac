package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/zalepa/nbastandings/figure"
	"github.com/zalepa/nbastandings/filter"
	"github.com/zalepa/nbastandings/standings"
)

func dataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "data", Usage: "standings CSV (defaults to NBADASH_DATA_PATH)"},
	}
}

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{Name: "conference", Aliases: []string{"c"}, Usage: "conference to select (repeatable)"},
		&cli.StringSliceFlag{Name: "division", Aliases: []string{"d"}, Usage: "division to select (repeatable)"},
		&cli.StringSliceFlag{Name: "team", Aliases: []string{"t"}, Usage: "team abbreviation to select (repeatable)"},
	}
}

func loadTable(c *cli.Context) (*standings.Table, error) {
	path := c.String("data")
	if path == "" {
		path = confFrom(c).DataFile()
	}
	return standings.LoadFile(path)
}

// selection is a filter request in the order the page applies it.
type selection struct {
	conferences []string
	divisions   []string
	teams       []string
}

func selectionFrom(c *cli.Context) selection {
	return selection{
		conferences: c.StringSlice("conference"),
		divisions:   c.StringSlice("division"),
		teams:       c.StringSlice("team"),
	}
}

// applySelection replays sel through a page session so the cascade matches
// what the dashboard would show: conferences narrow divisions, divisions
// narrow teams, and an explicit team list wins last.
func applySelection(table *standings.Table, catalog *figure.Catalog, sel selection) (*filter.Session, error) {
	g, err := filter.New(table, catalog)
	if err != nil {
		return nil, err
	}
	s := filter.NewSession(g, catalog.Full())

	if len(sel.conferences) > 0 {
		if err := s.SelectConferences(sel.conferences); err != nil {
			return nil, err
		}
	}
	if len(sel.divisions) > 0 {
		if err := s.SelectDivisions(sel.divisions); err != nil {
			return nil, err
		}
	}
	if len(sel.teams) > 0 {
		if err := s.SelectTeams(sel.teams); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// selectedTeams lists the teams a session's chart shows.
func selectedTeams(table *standings.Table, s *filter.Session) []string {
	if len(s.State.Teams) == 0 {
		return table.Teams()
	}
	return s.State.Teams
}
