package figure

import (
	"sort"
	"strconv"

	"github.com/samber/lo"

	"github.com/zalepa/nbastandings/standings"
)

const (
	TitleText  = "<b>2021-2022 Season</b>"
	TitleSize  = 32
	TitleColor = "#000000"

	FontFamily = "Helvetica"
	FontSize   = 12

	Transparent = "rgba(0,0,0,0)"

	MarkerSize      = 12
	MarkerLineWidth = 2
	TextPosition    = "middle left"

	hoverTemplate = "<b>%{hovertext}</b><br><br>Season Week=%{x}<br>W=%{y}<br>Team=%{text}<extra></extra>"
)

var (
	// YRange and XRange are fixed so frames do not rescale while animating.
	YRange = [2]float64{0, 83}
	XRange = [2]float64{0, 25.99}
)

// DefaultColors is Plotly's default qualitative sequence, handed out in
// team order to teams without a standings.TeamColor.
var DefaultColors = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Build produces the animated standings scatter for records: one frame per
// season week present, one trace per team in that week, positioned at
// (week, wins). The figure opens on the last week with the slider there.
func Build(records []standings.Record) *Spec {
	colors := colorMap(records)

	byWeek := lo.GroupBy(records, func(r standings.Record) int { return r.SeasonWeek })
	weeks := lo.Keys(byWeek)
	sort.Ints(weeks)

	spec := &Spec{
		Data:   []Trace{},
		Layout: baseLayout(),
		Frames: make([]Frame, 0, len(weeks)),
	}
	for _, week := range weeks {
		rows := byWeek[week]
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Team < rows[j].Team })

		frame := Frame{Name: strconv.Itoa(week), Data: make([]Trace, 0, len(rows))}
		for _, r := range rows {
			frame.Data = append(frame.Data, newTrace(r, colors[r.Team]))
		}
		spec.Frames = append(spec.Frames, frame)
	}

	if n := len(spec.Frames); n > 0 {
		last := n - 1
		spec.Data = spec.Frames[last].Data
		spec.Layout.Sliders = []Slider{newSlider(spec.Frames, last)}
		spec.Layout.UpdateMenus = []UpdateMenu{playPause()}
	}
	return spec
}

func colorMap(records []standings.Record) map[string]string {
	teams := lo.Uniq(lo.Map(records, func(r standings.Record, _ int) string { return r.Team }))
	sort.Strings(teams)

	colors := make(map[string]string, len(teams))
	next := 0
	for _, team := range teams {
		if c, ok := standings.TeamColor(team); ok {
			colors[team] = c
			continue
		}
		colors[team] = DefaultColors[next%len(DefaultColors)]
		next++
	}
	return colors
}

func newTrace(r standings.Record, color string) Trace {
	return Trace{
		Type:          "scatter",
		Mode:          "markers+text",
		Name:          r.Team,
		LegendGroup:   r.Team,
		ShowLegend:    false,
		IDs:           []string{r.Team},
		X:             []int{r.SeasonWeek},
		Y:             []int{r.Wins},
		Text:          []string{r.Team},
		HoverText:     []string{r.Team},
		HoverTemplate: hoverTemplate,
		TextPosition:  TextPosition,
		Marker: Marker{
			Color:  color,
			Size:   MarkerSize,
			Symbol: "circle",
			Line:   MarkerLine{Width: MarkerLineWidth},
		},
		XAxis: "x",
		YAxis: "y",
	}
}

func baseLayout() Layout {
	return Layout{
		Title: Title{
			Text: TitleText,
			X:    0.5,
			Font: Font{Size: TitleSize, Color: TitleColor},
		},
		XAxis: Axis{
			Title:  AxisTitle{Text: "Week"},
			DTick:  1,
			Range:  XRange,
			Anchor: "y",
		},
		YAxis: Axis{
			Title:  AxisTitle{Text: "Wins"},
			DTick:  5,
			Range:  YRange,
			Anchor: "x",
		},
		ShowLegend:   false,
		PaperBGColor: Transparent,
		Font:         Font{Family: FontFamily, Size: FontSize},
	}
}

func animateArgs(frameDuration, transitionDuration int) map[string]any {
	return map[string]any{
		"frame":       map[string]any{"duration": frameDuration, "redraw": false},
		"mode":        "immediate",
		"fromcurrent": true,
		"transition":  map[string]any{"duration": transitionDuration, "easing": "linear"},
	}
}

func newSlider(frames []Frame, active int) Slider {
	steps := make([]SliderStep, len(frames))
	for i, f := range frames {
		steps[i] = SliderStep{
			Label:  f.Name,
			Method: "animate",
			Args:   []any{[]string{f.Name}, animateArgs(0, 0)},
		}
	}
	return Slider{
		Active:       active,
		CurrentValue: SliderCurrentValue{Prefix: "Season Week="},
		Len:          0.9,
		X:            0.1,
		XAnchor:      "left",
		Y:            0,
		YAnchor:      "top",
		Pad:          Pad{B: 10, T: 60},
		Steps:        steps,
	}
}

func playPause() UpdateMenu {
	return UpdateMenu{
		Type:       "buttons",
		Direction:  "left",
		ShowActive: false,
		X:          0.1,
		XAnchor:    "right",
		Y:          0,
		YAnchor:    "top",
		Pad:        Pad{R: 10, T: 70},
		Buttons: []Button{
			{Label: "&#9654;", Method: "animate", Args: []any{nil, animateArgs(500, 500)}},
			{Label: "&#9724;", Method: "animate", Args: []any{[]any{nil}, animateArgs(0, 0)}},
		},
	}
}
