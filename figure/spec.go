package figure

// Spec is an animated scatter figure in the JSON shape Plotly.js expects
// for Plotly.newPlot / Plotly.react: the active traces, the layout and one
// frame per season week.
type Spec struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
	Frames []Frame `json:"frames"`
}

// Frame is one season week of the animation.
type Frame struct {
	Name string  `json:"name"`
	Data []Trace `json:"data"`
}

// Trace is one team's points within a frame.
type Trace struct {
	Type          string   `json:"type"`
	Mode          string   `json:"mode"`
	Name          string   `json:"name"`
	LegendGroup   string   `json:"legendgroup"`
	ShowLegend    bool     `json:"showlegend"`
	IDs           []string `json:"ids"`
	X             []int    `json:"x"`
	Y             []int    `json:"y"`
	Text          []string `json:"text"`
	HoverText     []string `json:"hovertext"`
	HoverTemplate string   `json:"hovertemplate"`
	TextPosition  string   `json:"textposition"`
	Marker        Marker   `json:"marker"`
	XAxis         string   `json:"xaxis"`
	YAxis         string   `json:"yaxis"`
}

// Marker styles a trace's points.
type Marker struct {
	Color  string     `json:"color"`
	Size   int        `json:"size"`
	Symbol string     `json:"symbol"`
	Line   MarkerLine `json:"line"`
}

// MarkerLine is the outline drawn around each marker.
type MarkerLine struct {
	Width int `json:"width"`
}

// Layout holds the figure-wide presentation: title, axes, background and
// the animation controls.
type Layout struct {
	Title        Title        `json:"title"`
	XAxis        Axis         `json:"xaxis"`
	YAxis        Axis         `json:"yaxis"`
	ShowLegend   bool         `json:"showlegend"`
	PaperBGColor string       `json:"paper_bgcolor"`
	Font         Font         `json:"font"`
	Sliders      []Slider     `json:"sliders,omitempty"`
	UpdateMenus  []UpdateMenu `json:"updatemenus,omitempty"`
}

// Title is the figure title and its placement.
type Title struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Font Font    `json:"font"`
}

// Font is a text style.
type Font struct {
	Family string `json:"family,omitempty"`
	Size   int    `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Axis is a fixed-range axis with a constant tick step.
type Axis struct {
	Title  AxisTitle  `json:"title"`
	DTick  float64    `json:"dtick"`
	Range  [2]float64 `json:"range"`
	Anchor string     `json:"anchor"`
}

// AxisTitle labels an axis.
type AxisTitle struct {
	Text string `json:"text"`
}

// Slider is the animation scrubber; Active is the index of the displayed frame.
type Slider struct {
	Active       int                `json:"active"`
	CurrentValue SliderCurrentValue `json:"currentvalue"`
	Len          float64            `json:"len"`
	X            float64            `json:"x"`
	XAnchor      string             `json:"xanchor"`
	Y            float64            `json:"y"`
	YAnchor      string             `json:"yanchor"`
	Pad          Pad                `json:"pad"`
	Steps        []SliderStep       `json:"steps"`
}

// SliderCurrentValue is the label shown above the slider.
type SliderCurrentValue struct {
	Prefix string `json:"prefix"`
}

// SliderStep jumps the animation to one frame.
type SliderStep struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// UpdateMenu is the play/pause button group.
type UpdateMenu struct {
	Type       string   `json:"type"`
	Direction  string   `json:"direction"`
	ShowActive bool     `json:"showactive"`
	X          float64  `json:"x"`
	XAnchor    string   `json:"xanchor"`
	Y          float64  `json:"y"`
	YAnchor    string   `json:"yanchor"`
	Pad        Pad      `json:"pad"`
	Buttons    []Button `json:"buttons"`
}

// Button runs a Plotly method with Args when clicked.
type Button struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Pad is padding in pixels.
type Pad struct {
	B int `json:"b,omitempty"`
	L int `json:"l,omitempty"`
	R int `json:"r,omitempty"`
	T int `json:"t,omitempty"`
}

// ActiveFrame returns the index of the frame shown on first render, or -1
// when the figure has no frames.
func (s *Spec) ActiveFrame() int {
	if len(s.Layout.Sliders) == 0 {
		return -1
	}
	return s.Layout.Sliders[0].Active
}

// FrameIndex returns the index of the frame for week, or -1.
func (s *Spec) FrameIndex(week string) int {
	for i, f := range s.Frames {
		if f.Name == week {
			return i
		}
	}
	return -1
}
