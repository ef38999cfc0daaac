package standings

import (
	"fmt"
	"time"
)

// weekMapping translates a two-digit calendar week label into the season
// week ordinal. Calendar week 42 is the first week of the 2021-22 schedule;
// labels 00 through 15 continue the season into the next calendar year.
// Week 52 and week 00 straddle New Year and share an ordinal, as do 14 and 15.
var weekMapping = map[string]int{
	"42": 1, "43": 2, "44": 3, "45": 4, "46": 5,
	"47": 6, "48": 7, "49": 8, "50": 9, "51": 10, "52": 11,
	"00": 11, "01": 12, "02": 13, "03": 14, "04": 15, "05": 16,
	"06": 17, "07": 18, "08": 19, "09": 20, "10": 21, "11": 22,
	"12": 23, "13": 24, "14": 25, "15": 25,
}

// WeekCutoff is the exclusive upper bound on season weeks kept in the
// shaped table. It sits above the mapping's maximum on purpose.
const WeekCutoff = 27

// CalendarWeek returns the Monday-first week of the year as a two-digit
// label. Days before the year's first Monday fall in week "00".
func CalendarWeek(t time.Time) string {
	yday := t.YearDay() - 1
	// Monday = 0 ... Sunday = 6
	wday := (int(t.Weekday()) + 6) % 7
	return fmt.Sprintf("%02d", (yday+7-wday)/7)
}

// SeasonWeek maps a date to its season week ordinal.
func SeasonWeek(t time.Time) (int, bool) {
	return seasonWeekIn(weekMapping, t)
}

func seasonWeekIn(mapping map[string]int, t time.Time) (int, bool) {
	w, ok := mapping[CalendarWeek(t)]
	return w, ok
}
