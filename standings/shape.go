package standings

import (
	"sort"

	"github.com/pkg/errors"
)

type teamWeek struct {
	team string
	week int
}

// Shape turns raw standings rows into one record per (team, season week)
// holding the highest cumulative win count seen that week. Rows at or past
// WeekCutoff are dropped. A date whose calendar week has no season week
// fails the whole shape.
func Shape(raw []RawRow) ([]Record, error) {
	return shapeWith(weekMapping, raw)
}

func shapeWith(mapping map[string]int, raw []RawRow) ([]Record, error) {
	rows := make([]RawRow, len(raw))
	copy(rows, raw)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	best := make(map[teamWeek]*Record)
	for _, r := range rows {
		week, ok := seasonWeekIn(mapping, r.Date)
		if !ok {
			return nil, errors.Wrapf(ErrUnmappedWeek, "%s (calendar week %s) for %s",
				r.Date.Format("2006-01-02"), CalendarWeek(r.Date), r.Team)
		}
		if week >= WeekCutoff {
			continue
		}

		key := teamWeek{team: r.Team, week: week}
		rec, ok := best[key]
		if !ok {
			best[key] = &Record{
				Team:                r.Team,
				Conference:          r.Conference,
				ConferenceIndicator: r.ConferenceIndicator,
				Division:            r.Division,
				DivisionIndicator:   r.DivisionIndicator,
				Date:                r.Date,
				SeasonWeek:          week,
				Wins:                r.Wins,
			}
			continue
		}
		// rows are date-ordered, so the last date seen is the latest
		rec.Date = r.Date
		if r.Wins > rec.Wins {
			rec.Wins = r.Wins
		}
	}

	out := make([]Record, 0, len(best))
	for _, rec := range best {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SeasonWeek != out[j].SeasonWeek {
			return out[i].SeasonWeek < out[j].SeasonWeek
		}
		return out[i].Team < out[j].Team
	})
	return out, nil
}
