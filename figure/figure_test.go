package figure

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zalepa/nbastandings/standings"
)

func rec(team, conf, div string, week, wins int) standings.Record {
	return standings.Record{Team: team, Conference: conf, Division: div, SeasonWeek: week, Wins: wins}
}

func sampleRecords() []standings.Record {
	return []standings.Record{
		rec("BOS", "Eastern", "Atlantic", 1, 1),
		rec("LAL", "Western", "Pacific", 1, 1),
		rec("GSW", "Western", "Pacific", 1, 2),
		rec("BOS", "Eastern", "Atlantic", 2, 2),
		rec("LAL", "Western", "Pacific", 2, 2),
		rec("GSW", "Western", "Pacific", 2, 4),
		rec("BOS", "Eastern", "Atlantic", 25, 51),
		rec("LAL", "Western", "Pacific", 25, 33),
		rec("GSW", "Western", "Pacific", 25, 53),
	}
}

func teamsIn(f Frame) []string {
	var teams []string
	for _, tr := range f.Data {
		teams = append(teams, tr.Name)
	}
	return teams
}

func TestBuildFrames(t *testing.T) {
	spec := Build(sampleRecords())

	require.Len(t, spec.Frames, 3)
	assert.Equal(t, "1", spec.Frames[0].Name)
	assert.Equal(t, "2", spec.Frames[1].Name)
	assert.Equal(t, "25", spec.Frames[2].Name)

	for _, f := range spec.Frames {
		assert.Equal(t, []string{"BOS", "GSW", "LAL"}, teamsIn(f))
	}

	gsw := spec.Frames[2].Data[1]
	assert.Equal(t, []int{25}, gsw.X)
	assert.Equal(t, []int{53}, gsw.Y)
	assert.Equal(t, []string{"GSW"}, gsw.Text)
	assert.Equal(t, "#1D428A", gsw.Marker.Color)
	assert.Equal(t, "middle left", gsw.TextPosition)
	assert.Equal(t, 12, gsw.Marker.Size)
	assert.Equal(t, 2, gsw.Marker.Line.Width)
	assert.False(t, gsw.ShowLegend)
}

func TestBuildOpensOnLastWeek(t *testing.T) {
	spec := Build(sampleRecords())

	require.Len(t, spec.Layout.Sliders, 1)
	slider := spec.Layout.Sliders[0]
	assert.Equal(t, 2, slider.Active)
	assert.Equal(t, 2, spec.ActiveFrame())
	assert.Len(t, slider.Steps, 3)
	assert.Equal(t, "25", slider.Steps[slider.Active].Label)
	assert.Equal(t, spec.Frames[2].Data, spec.Data)
	assert.Equal(t, 2, spec.FrameIndex("25"))
	assert.Equal(t, -1, spec.FrameIndex("7"))
}

func TestBuildPresentation(t *testing.T) {
	l := Build(sampleRecords()).Layout

	assert.Equal(t, "<b>2021-2022 Season</b>", l.Title.Text)
	assert.Equal(t, 32, l.Title.Font.Size)
	assert.Equal(t, "#000000", l.Title.Font.Color)
	assert.Equal(t, 0.5, l.Title.X)

	assert.Equal(t, "Wins", l.YAxis.Title.Text)
	assert.Equal(t, 5.0, l.YAxis.DTick)
	assert.Equal(t, [2]float64{0, 83}, l.YAxis.Range)

	assert.Equal(t, "Week", l.XAxis.Title.Text)
	assert.Equal(t, 1.0, l.XAxis.DTick)
	assert.Equal(t, [2]float64{0, 25.99}, l.XAxis.Range)

	assert.False(t, l.ShowLegend)
	assert.Equal(t, "rgba(0,0,0,0)", l.PaperBGColor)
	assert.Equal(t, "Helvetica", l.Font.Family)
}

func TestBuildIsDeterministic(t *testing.T) {
	rs := sampleRecords()
	a := Build(rs)
	// reversed input must not change the output either
	rev := make([]standings.Record, len(rs))
	for i := range rs {
		rev[len(rs)-1-i] = rs[i]
	}
	b := Build(rev)
	assert.Equal(t, a, b)
	assert.Equal(t, a, Build(rs))
}

func TestBuildUnmappedTeamsGetDefaultColors(t *testing.T) {
	spec := Build([]standings.Record{
		rec("SEA", "Western", "Pacific", 1, 1),
		rec("LAL", "Western", "Pacific", 1, 1),
		rec("KCK", "Western", "Midwest", 1, 2),
	})
	colors := map[string]string{}
	for _, tr := range spec.Frames[0].Data {
		colors[tr.Name] = tr.Marker.Color
	}
	assert.Equal(t, "#FFC72C", colors["LAL"])
	assert.Equal(t, DefaultColors[0], colors["KCK"])
	assert.Equal(t, DefaultColors[1], colors["SEA"])
}

func TestBuildEmpty(t *testing.T) {
	spec := Build(nil)
	assert.Empty(t, spec.Frames)
	assert.Empty(t, spec.Data)
	assert.Empty(t, spec.Layout.Sliders)
	assert.Equal(t, -1, spec.ActiveFrame())
	assert.Equal(t, "Wins", spec.Layout.YAxis.Title.Text)
}

func TestCatalog(t *testing.T) {
	cat := NewCatalog(standings.NewTable(sampleRecords()))

	full := cat.Full()
	assert.Same(t, full, cat.ForTeams([]string{}))
	assert.Equal(t, []string{"BOS", "GSW", "LAL"}, teamsIn(full.Frames[0]))

	sel := cat.ForTeams([]string{"LAL", "BOS"})
	for _, f := range sel.Frames {
		assert.Equal(t, []string{"BOS", "LAL"}, teamsIn(f))
	}
	assert.Same(t, sel, cat.ForTeams([]string{"BOS", "LAL", "BOS"}))

	none := cat.ForTeams([]string{"SEA"})
	assert.Empty(t, none.Frames)
}

func TestCatalogIgnoresUnknownTeams(t *testing.T) {
	cat := NewCatalog(standings.NewTable(sampleRecords()))

	for i := 0; i < 1000; i++ {
		spec := cat.ForTeams([]string{fmt.Sprintf("XX%d", i)})
		assert.Empty(t, spec.Frames)
	}
	assert.Equal(t, 1, cat.c.ItemCount())

	lal := cat.ForTeams([]string{"LAL"})
	for i := 0; i < 1000; i++ {
		assert.Same(t, lal, cat.ForTeams([]string{"LAL", fmt.Sprintf("XX%d", i)}))
	}
	assert.Equal(t, 2, cat.c.ItemCount())

	assert.NotSame(t, cat.Full(), cat.ForTeams([]string{"XX0"}))
	assert.Equal(t, 3, cat.c.ItemCount())
}

func TestWritePNG(t *testing.T) {
	spec := Build(sampleRecords())
	var buf bytes.Buffer
	require.NoError(t, spec.WritePNG(&buf, spec.ActiveFrame()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	assert.Error(t, spec.WritePNG(&buf, 99))
	assert.ErrorIs(t, Build(nil).WritePNG(&buf, 0), ErrNoFrames)
}

func TestWritePDF(t *testing.T) {
	spec := Build(sampleRecords())
	var buf bytes.Buffer
	require.NoError(t, spec.WritePDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	require.NoError(t, VerifyPDF(bytes.NewReader(buf.Bytes()), len(spec.Frames)))

	err := VerifyPDF(bytes.NewReader(buf.Bytes()), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 1")
	assert.Implements(t, (*stackTracer)(nil), err)

	err = VerifyPDF(bytes.NewReader([]byte("not a pdf")), 1)
	require.Error(t, err)
	assert.Implements(t, (*stackTracer)(nil), err)
}

// stackTracer is the interface github.com/pkg/errors errors satisfy.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

func TestStepTicks(t *testing.T) {
	ticks := stepTicks(5).Ticks(0, 83)
	require.Len(t, ticks, 17)
	assert.Equal(t, "0", ticks[0].Label)
	assert.Equal(t, "80", ticks[16].Label)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "2021-2022 Season", plainText("<b>2021-2022 Season</b>"))
}
