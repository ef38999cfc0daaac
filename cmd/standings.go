package cmd

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/zalepa/nbastandings/figure"
	"github.com/zalepa/nbastandings/standings"
)

func standingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "standings",
		Usage: "print each selected team's wins with a weekly trend",
		Flags: append(dataFlags(), filterFlags()...),
		Action: func(c *cli.Context) error {
			table, err := loadTable(c)
			if err != nil {
				return err
			}
			s, err := applySelection(table, figure.NewCatalog(table), selectionFrom(c))
			if err != nil {
				return err
			}
			renderTable(c.App.Writer, table, selectedTeams(table, s))
			return nil
		},
	}
}

// renderTable prints one row per team: its conference and division, the
// wins at its last shaped week and a sparkline over every week.
func renderTable(w io.Writer, table *standings.Table, teams []string) {
	weeks := table.Weeks()
	records := table.ForTeams(teams)
	byTeam := lo.GroupBy(records, func(r standings.Record) string { return r.Team })

	names := lo.Keys(byTeam)
	sort.Strings(names)

	maxName := 4
	for _, n := range names {
		if len(n) > maxName {
			maxName = len(n)
		}
	}

	weekRange := ""
	if n := len(weeks); n > 0 {
		weekRange = fmt.Sprintf("week %d to week %d (%d weeks)", weeks[0], weeks[n-1], n)
	}

	fmt.Fprintln(w, "2021-2022 Season, wins by week")
	fmt.Fprintf(w, "Trend: %s\n\n", weekRange)

	rowFmt := fmt.Sprintf("%%-%ds  %%-8s  %%-10s  %%6s   %%s\n", maxName)
	fmt.Fprintf(w, rowFmt, "Team", "Conf", "Division", "Wins", "Trend")
	fmt.Fprintln(w, strings.Repeat("─", maxName+2+8+2+10+2+6+3+len(weeks)))

	for _, name := range names {
		rs := byTeam[name]
		vals := alignValues(rs, weeks)
		first := rs[0]
		fmt.Fprintf(w, rowFmt, name, first.Conference, first.Division, formatNum(lastNonNaN(vals)), sparkline(vals))
	}
}

// alignValues maps a team's records onto weeks, filling gaps with NaN.
func alignValues(rs []standings.Record, weeks []int) []float64 {
	lookup := make(map[int]float64, len(rs))
	for _, r := range rs {
		lookup[r.SeasonWeek] = float64(r.Wins)
	}
	vals := make([]float64, len(weeks))
	for i, wk := range weeks {
		if v, ok := lookup[wk]; ok {
			vals[i] = v
		} else {
			vals[i] = math.NaN()
		}
	}
	return vals
}

func lastNonNaN(vals []float64) float64 {
	for i := len(vals) - 1; i >= 0; i-- {
		if !math.IsNaN(vals[i]) {
			return vals[i]
		}
	}
	return math.NaN()
}

func sparkline(values []float64) string {
	blocks := []rune("▁▂▃▄▅▆▇█")
	n := len(blocks)

	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if math.IsInf(min, 1) {
		return strings.Repeat(" ", len(values))
	}

	spread := max - min
	var sb strings.Builder
	for _, v := range values {
		if math.IsNaN(v) {
			sb.WriteRune(' ')
			continue
		}
		idx := n / 2
		if spread > 0 {
			idx = int((v - min) / spread * float64(n-1))
			if idx >= n {
				idx = n - 1
			}
		}
		sb.WriteRune(blocks[idx])
	}
	return sb.String()
}

func formatNum(v float64) string {
	if math.IsNaN(v) {
		return "- -"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
