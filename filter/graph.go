// Package filter implements the dashboard's cascading filter controls as an
// explicit, acyclic graph of bindings. Each binding reacts to exactly one
// input property and is the only writer of its output properties, so a
// selection can only flow downstream:
//
//	conference -> division -> team -> figure
//	reset -> conference (+ chips)
package filter

import (
	"github.com/pkg/errors"
)

// Prop names one property of one control, as "component.property".
type Prop string

const (
	ConferenceValue Prop = "conference-filter.value"
	DivisionValue   Prop = "division-filter.value"
	TeamValue       Prop = "team-filter.value"
	ChipWestChecked Prop = "chip-west.checked"
	ChipEastChecked Prop = "chip-east.checked"
	ResetClicks     Prop = "reset-filters-button.n_clicks"
	Figure          Prop = "standings-scatter-plot.figure"
)

type noUpdate struct{}

func (noUpdate) String() string { return "no_update" }

// NoUpdate is returned by a binding for an output it declines to change.
// It is distinct from an empty value: an empty selection is still an update.
var NoUpdate any = noUpdate{}

var (
	ErrCycle           = errors.New("binding graph has a cycle")
	ErrMultipleWriters = errors.New("property has more than one writer")
	ErrNoBinding       = errors.New("no binding listens to property")
)

// Binding recomputes its outputs from the new value of its input. Fn must
// return exactly one value per output, any of which may be NoUpdate.
type Binding struct {
	Name    string
	Input   Prop
	Outputs []Prop
	Fn      func(value any) []any
}

// Update is one output property changing to a new value.
type Update struct {
	Prop  Prop `json:"prop"`
	Value any  `json:"value"`
}

// Graph is a validated set of bindings.
type Graph struct {
	bindings []Binding
	byInput  map[Prop][]int
	writer   map[Prop]string
}

// NewGraph validates bindings: every output has a single writer and no
// property can, through any chain of bindings, feed back into itself.
func NewGraph(bindings ...Binding) (*Graph, error) {
	g := &Graph{
		bindings: bindings,
		byInput:  make(map[Prop][]int),
		writer:   make(map[Prop]string),
	}
	for i, b := range bindings {
		g.byInput[b.Input] = append(g.byInput[b.Input], i)
		for _, out := range b.Outputs {
			if w, ok := g.writer[out]; ok {
				return nil, errors.Wrapf(ErrMultipleWriters, "%s written by %s and %s", out, w, b.Name)
			}
			g.writer[out] = b.Name
		}
	}
	if err := g.checkAcyclic(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[Prop]int)

	var visit func(p Prop, path []Prop) error
	visit = func(p Prop, path []Prop) error {
		switch state[p] {
		case visiting:
			return errors.Wrapf(ErrCycle, "%v", append(path, p))
		case done:
			return nil
		}
		state[p] = visiting
		for _, i := range g.byInput[p] {
			for _, out := range g.bindings[i].Outputs {
				if err := visit(out, append(path, p)); err != nil {
					return err
				}
			}
		}
		state[p] = done
		return nil
	}

	for _, b := range g.bindings {
		if err := visit(b.Input, nil); err != nil {
			return err
		}
	}
	return nil
}

// Listens reports whether any binding is triggered by p.
func (g *Graph) Listens(p Prop) bool {
	return len(g.byInput[p]) > 0
}

// Fire delivers a user change of prop to value and returns every resulting
// update in the order it was produced. Each produced output is fed to the
// bindings listening on it, breadth first; outputs a binding declines with
// NoUpdate end the cascade along that edge.
func (g *Graph) Fire(prop Prop, value any) ([]Update, error) {
	if !g.Listens(prop) {
		return nil, errors.Wrapf(ErrNoBinding, "%s", prop)
	}

	var updates []Update
	queue := []Update{{Prop: prop, Value: value}}
	for len(queue) > 0 {
		ev := queue[0]
		queue = queue[1:]

		for _, i := range g.byInput[ev.Prop] {
			b := g.bindings[i]
			outs := b.Fn(ev.Value)
			if len(outs) != len(b.Outputs) {
				return updates, errors.Errorf("binding %s returned %d values for %d outputs", b.Name, len(outs), len(b.Outputs))
			}
			for j, v := range outs {
				if v == NoUpdate {
					continue
				}
				u := Update{Prop: b.Outputs[j], Value: v}
				updates = append(updates, u)
				queue = append(queue, u)
			}
		}
	}
	return updates, nil
}
