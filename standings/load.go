package standings

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrBadDate       = errors.New("unparsable date")
	ErrBadWins       = errors.New("win count is not an integer")
	ErrUnmappedWeek  = errors.New("calendar week has no season week mapping")
)

// dateLayouts are tried in order when parsing the Date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006",
}

// ReadCSV reads raw standings rows. Columns are located by header name so
// their order does not matter and extra columns are ignored.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "column %q", col)
		}
	}

	var rows []RawRow
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		field := func(col string) string {
			i := idx[col]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		date, err := parseDate(field(ColDate))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		wins, err := parseWins(field(ColWins))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		rows = append(rows, RawRow{
			Date:                date,
			Team:                field(ColTeam),
			Conference:          field(ColConference),
			ConferenceIndicator: field(ColConferenceIndicator),
			Division:            field(ColDivision),
			DivisionIndicator:   field(ColDivisionIndicator),
			Wins:                wins,
		})
	}
	return rows, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrBadDate, "%q", s)
}

// parseWins accepts "12" and the "12.0" form spreadsheets sometimes emit.
func parseWins(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, errors.Wrapf(ErrBadWins, "%q", s)
	}
	return int(f), nil
}

// LoadFile reads, shapes and freezes the standings table at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open standings")
	}
	defer f.Close()

	raw, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	records, err := Shape(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "shape %s", path)
	}
	return NewTable(records), nil
}
