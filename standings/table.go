package standings

import (
	"sort"

	"github.com/samber/lo"
)

// Table is the shaped standings table. It is built once at startup and
// shared read-only by every request; nothing mutates it after NewTable.
type Table struct {
	records []Record
}

// NewTable freezes records into a Table. The slice is copied.
func NewTable(records []Record) *Table {
	rs := make([]Record, len(records))
	copy(rs, records)
	return &Table{records: rs}
}

// Len returns the number of shaped records.
func (t *Table) Len() int { return len(t.records) }

// Records returns a copy of every record in season week order.
func (t *Table) Records() []Record {
	rs := make([]Record, len(t.records))
	copy(rs, t.records)
	return rs
}

// Conferences returns every conference in the table, sorted.
func (t *Table) Conferences() []string {
	return sortedUnique(lo.Map(t.records, func(r Record, _ int) string { return r.Conference }))
}

// Divisions returns every division in the table, sorted.
func (t *Table) Divisions() []string {
	return sortedUnique(lo.Map(t.records, func(r Record, _ int) string { return r.Division }))
}

// Teams returns every team abbreviation in the table, sorted.
func (t *Table) Teams() []string {
	return sortedUnique(lo.Map(t.records, func(r Record, _ int) string { return r.Team }))
}

// Weeks returns the distinct season weeks present, ascending.
func (t *Table) Weeks() []int {
	weeks := lo.Uniq(lo.Map(t.records, func(r Record, _ int) int { return r.SeasonWeek }))
	sort.Ints(weeks)
	return weeks
}

// DivisionsOf returns the sorted, de-duplicated divisions of records whose
// conference is in conferences. An empty selection yields an empty list.
func (t *Table) DivisionsOf(conferences []string) []string {
	set := toSet(conferences)
	matched := lo.Filter(t.records, func(r Record, _ int) bool { return set[r.Conference] })
	return sortedUnique(lo.Map(matched, func(r Record, _ int) string { return r.Division }))
}

// TeamsOf returns the sorted, de-duplicated teams of records whose division
// is in divisions. An empty selection yields an empty list.
func (t *Table) TeamsOf(divisions []string) []string {
	set := toSet(divisions)
	matched := lo.Filter(t.records, func(r Record, _ int) bool { return set[r.Division] })
	return sortedUnique(lo.Map(matched, func(r Record, _ int) string { return r.Team }))
}

// ForTeams returns the records of the given teams, in table order.
func (t *Table) ForTeams(teams []string) []Record {
	set := toSet(teams)
	return lo.Filter(t.records, func(r Record, _ int) bool { return set[r.Team] })
}

func sortedUnique(in []string) []string {
	out := lo.Uniq(in)
	sort.Strings(out)
	return out
}

func toSet(in []string) map[string]bool {
	set := make(map[string]bool, len(in))
	for _, s := range in {
		set[s] = true
	}
	return set
}
