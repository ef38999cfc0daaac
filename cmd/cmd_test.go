package cmd

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/zalepa/nbastandings/figure"
	"github.com/zalepa/nbastandings/standings"
)

const fixture = "../standings/testdata/standings.csv"

func loadFixture(t *testing.T) *standings.Table {
	t.Helper()
	table, err := standings.LoadFile(fixture)
	require.NoError(t, err)
	return table
}

func TestSparkline(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		input []float64
		want  string
	}{
		{[]float64{1, 2, 17, 51}, "▁▁▃█"},
		{[]float64{0, 7}, "▁█"},
		{[]float64{5, 5, 5}, "▅▅▅"},
		{[]float64{nan, 1, nan, 8}, " ▁ █"},
		{[]float64{nan, nan}, "  "},
		{nil, ""},
	}
	for _, tt := range tests {
		got := sparkline(tt.input)
		if got != tt.want {
			t.Errorf("sparkline(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatNum(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{51, "51"},
		{0, "0"},
		{math.NaN(), "- -"},
	}
	for _, tt := range tests {
		got := formatNum(tt.input)
		if got != tt.want {
			t.Errorf("formatNum(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAlignValues(t *testing.T) {
	rs := []standings.Record{
		{Team: "LAL", SeasonWeek: 1, Wins: 1},
		{Team: "LAL", SeasonWeek: 25, Wins: 33},
	}
	vals := alignValues(rs, []int{1, 2, 25})
	require.Len(t, vals, 3)
	assert.Equal(t, 1.0, vals[0])
	assert.True(t, math.IsNaN(vals[1]))
	assert.Equal(t, 33.0, vals[2])
	assert.Equal(t, 33.0, lastNonNaN(vals))
	assert.True(t, math.IsNaN(lastNonNaN([]float64{math.NaN()})))
}

func TestApplySelection(t *testing.T) {
	table := loadFixture(t)
	catalog := figure.NewCatalog(table)

	tests := []struct {
		name string
		sel  selection
		want []string
	}{
		{"nothing selected", selection{}, []string{"BOS", "DEN", "GSW", "LAL", "MIL"}},
		{"conference", selection{conferences: []string{"Western"}}, []string{"DEN", "GSW", "LAL"}},
		{"division overrides conference", selection{conferences: []string{"Western"}, divisions: []string{"Atlantic"}}, []string{"BOS"}},
		{"explicit teams", selection{conferences: []string{"Eastern"}, teams: []string{"MIL"}}, []string{"MIL"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := applySelection(table, catalog, tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, selectedTeams(table, s))
		})
	}
}

func TestRenderTable(t *testing.T) {
	table := loadFixture(t)
	var buf bytes.Buffer
	renderTable(&buf, table, []string{"BOS", "MIL"})
	out := buf.String()

	assert.Contains(t, out, "week 1 to week 25 (4 weeks)")
	assert.Contains(t, out, "Atlantic")
	assert.Contains(t, out, "▁▁▃█")
	assert.NotContains(t, out, "LAL")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-2], "BOS"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "MIL"))
}

func TestRenderFile(t *testing.T) {
	spec := figure.NewCatalog(loadFixture(t)).Full()
	dir := t.TempDir()

	png := filepath.Join(dir, "week.png")
	require.NoError(t, renderFile(spec, png, 11))
	data, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	require.NoError(t, renderFile(spec, filepath.Join(dir, "season.pdf"), 0))

	assert.Error(t, renderFile(spec, filepath.Join(dir, "missing.png"), 5))
	assert.Error(t, renderFile(spec, filepath.Join(dir, "season.svg"), 0))
}

func TestWriteCSVRoundTrip(t *testing.T) {
	table := loadFixture(t)
	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, table.Records()))

	raw, err := standings.ReadCSV(&buf)
	require.NoError(t, err)
	records, err := standings.Shape(raw)
	require.NoError(t, err)
	assert.Equal(t, table.Records(), records)
}

func TestCommands(t *testing.T) {
	var out bytes.Buffer
	app := &cli.App{
		Name:     "nbastandings",
		Writer:   &out,
		Commands: []*cli.Command{standingsCommand(), exportCommand()},
	}

	require.NoError(t, app.Run([]string{"nbastandings", "standings", "--data", fixture, "-c", "Eastern"}))
	assert.Contains(t, out.String(), "MIL")
	assert.NotContains(t, out.String(), "GSW")

	out.Reset()
	require.NoError(t, app.Run([]string{"nbastandings", "export", "--data", fixture}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "Date,Team,Conference,Conference Indicator,Division,Division Indicator,Season Week,W", lines[0])
	assert.Len(t, lines, 21)
}
