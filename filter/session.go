package filter

import (
	"github.com/rs/zerolog/log"

	"github.com/zalepa/nbastandings/figure"
)

// State is one page's filter selection and the chart it currently shows.
type State struct {
	Conferences []string
	Divisions   []string
	Teams       []string
	ChipWest    bool
	ChipEast    bool
	Figure      *figure.Spec
}

// Session owns the State of a single page. It is not safe for concurrent
// use; each page gets its own.
type Session struct {
	graph  *Graph
	State  State
	clicks int
}

// NewSession starts a page with nothing selected and initial shown.
func NewSession(g *Graph, initial *figure.Spec) *Session {
	return &Session{
		graph: g,
		State: State{
			Conferences: []string{},
			Divisions:   []string{},
			Teams:       []string{},
			Figure:      initial,
		},
	}
}

// SelectConferences sets the conference chips' value and cascades. The chip
// checked states follow the selection the way the chip group renders them.
func (s *Session) SelectConferences(conferences []string) error {
	s.State.Conferences = conferences
	s.State.ChipWest, s.State.ChipEast = false, false
	for _, c := range conferences {
		switch c {
		case "Western":
			s.State.ChipWest = true
		case "Eastern":
			s.State.ChipEast = true
		}
	}
	return s.fire(ConferenceValue, conferences)
}

// SelectDivisions sets the division selection and cascades to teams and
// the figure.
func (s *Session) SelectDivisions(divisions []string) error {
	s.State.Divisions = divisions
	return s.fire(DivisionValue, divisions)
}

// SelectTeams sets the team selection and redraws the figure.
func (s *Session) SelectTeams(teams []string) error {
	s.State.Teams = teams
	return s.fire(TeamValue, teams)
}

// Reset presses the reset button.
func (s *Session) Reset() error {
	s.clicks++
	return s.fire(ResetClicks, s.clicks)
}

func (s *Session) fire(p Prop, value any) error {
	updates, err := s.graph.Fire(p, value)
	for _, u := range updates {
		s.apply(u)
	}
	if err != nil {
		return err
	}
	log.Trace().
		Str("evt.name", "filter.fire").
		Str("input", string(p)).
		Int("updates", len(updates)).
		Msg("cascade applied")
	return nil
}

func (s *Session) apply(u Update) {
	switch u.Prop {
	case ConferenceValue:
		s.State.Conferences = u.Value.([]string)
	case DivisionValue:
		s.State.Divisions = u.Value.([]string)
	case TeamValue:
		s.State.Teams = u.Value.([]string)
	case ChipWestChecked:
		s.State.ChipWest = u.Value.(bool)
	case ChipEastChecked:
		s.State.ChipEast = u.Value.(bool)
	case Figure:
		s.State.Figure = u.Value.(*figure.Spec)
	}
}
