package standings

import "time"

// RawRow is one row of the season standings CSV as read from disk.
type RawRow struct {
	Date                time.Time
	Team                string
	Conference          string
	ConferenceIndicator string
	Division            string
	DivisionIndicator   string
	Wins                int
}

// Record is one row of the shaped table: a team's cumulative win count at
// the end of a season week.
type Record struct {
	Team                string    `json:"team"`
	Conference          string    `json:"conference"`
	ConferenceIndicator string    `json:"conferenceIndicator"`
	Division            string    `json:"division"`
	DivisionIndicator   string    `json:"divisionIndicator"`
	Date                time.Time `json:"date"`
	SeasonWeek          int       `json:"seasonWeek"`
	Wins                int       `json:"wins"`
}

// Column names expected in the source CSV header.
const (
	ColDate                = "Date"
	ColTeam                = "Team"
	ColConference          = "Conference"
	ColConferenceIndicator = "Conference Indicator"
	ColDivision            = "Division"
	ColDivisionIndicator   = "Division Indicator"
	ColWins                = "W"
)

var requiredColumns = []string{
	ColDate, ColTeam, ColConference, ColConferenceIndicator,
	ColDivision, ColDivisionIndicator, ColWins,
}
