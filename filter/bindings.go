package filter

import (
	"github.com/zalepa/nbastandings/figure"
	"github.com/zalepa/nbastandings/standings"
)

// Figures builds the chart for a team selection; an empty selection means
// every team. *figure.Catalog satisfies it.
type Figures interface {
	ForTeams(teams []string) *figure.Spec
}

// Bindings returns the dashboard's four bindings over table.
func Bindings(table *standings.Table, figures Figures) []Binding {
	return []Binding{
		{
			Name:    "set_division_options",
			Input:   ConferenceValue,
			Outputs: []Prop{DivisionValue},
			Fn: func(value any) []any {
				conferences, ok := selection(value)
				if !ok {
					return []any{NoUpdate}
				}
				return []any{table.DivisionsOf(conferences)}
			},
		},
		{
			Name:    "set_team_options",
			Input:   DivisionValue,
			Outputs: []Prop{TeamValue},
			Fn: func(value any) []any {
				divisions, ok := selection(value)
				if !ok {
					return []any{NoUpdate}
				}
				return []any{table.TeamsOf(divisions)}
			},
		},
		{
			Name:    "update_graph",
			Input:   TeamValue,
			Outputs: []Prop{Figure},
			Fn: func(value any) []any {
				teams, ok := selection(value)
				if !ok {
					return []any{NoUpdate}
				}
				// empty shows every team
				return []any{figures.ForTeams(teams)}
			},
		},
		{
			Name:    "reset_filters",
			Input:   ResetClicks,
			Outputs: []Prop{ChipEastChecked, ChipWestChecked, ConferenceValue},
			Fn: func(value any) []any {
				if clicks(value) <= 0 {
					return []any{NoUpdate, NoUpdate, NoUpdate}
				}
				return []any{false, false, []string{}}
			},
		},
	}
}

// New builds the dashboard graph over table.
func New(table *standings.Table, figures Figures) (*Graph, error) {
	return NewGraph(Bindings(table, figures)...)
}

// selection reads a multi-select value. A nil value means the control
// reported nothing, which is not the same as an empty selection.
func selection(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		if v == nil {
			return nil, false
		}
		return v, true
	case []any:
		if v == nil {
			return nil, false
		}
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func clicks(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
