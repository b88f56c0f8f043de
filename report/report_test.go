package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heightsForTest() Series {
	return Series{
		Name: "average height",
		Points: []Point{
			{N: 0, Y: 0}, {N: 100, Y: 11.2}, {N: 200, Y: 13.9}, {N: 400, Y: 16.7},
		},
	}
}

func TestChartRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst.report")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	theory := Func("theory", []int{100, 200, 400}, func(n int) float64 { return float64(n) / 40 })
	c := Chart{
		Title:   "Heights",
		XLabel:  "tree size",
		YLabel:  "height",
		Width:   40,
		Height:  10,
		Series:  []Series{heightsForTest(), theory},
		NoColor: true,
	}
	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	out := buf.String()
	t.Logf("\n%s", out)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Heights", lines[0])
	assert.Contains(t, out, "16.7")
	assert.Contains(t, out, "400")
	assert.Contains(t, out, "tree size")
	assert.Contains(t, out, "* average height")
	assert.Contains(t, out, "+ theory")
	assert.NotContains(t, out, "\x1b[", "expected no escape sequences")
	plot := 0
	for _, l := range lines {
		if strings.Contains(l, " |") {
			plot++
			assert.LessOrEqual(t, len([]rune(l)), gutter+1+40)
		}
	}
	assert.Equal(t, 10, plot)
}

func TestChartRenderTopPointInFirstRow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst.report")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	c := Chart{Width: 20, Height: 5, Series: []Series{heightsForTest()}, NoColor: true}
	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	lines := strings.Split(buf.String(), "\n")
	// largest point sits at top-right, origin at bottom-left
	assert.True(t, strings.HasSuffix(lines[0], "*"), "first row: %q", lines[0])
	assert.True(t, strings.HasSuffix(lines[4], "|*"+strings.Repeat(" ", 19)), "last row: %q", lines[4])
}

func TestChartRenderColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst.report")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	c := Chart{Width: 20, Height: 5, Series: []Series{heightsForTest()}}
	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	assert.Contains(t, buf.String(), "\x1b[", "expected colored glyphs")
}

func TestChartRenderNoData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst.report")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	var buf bytes.Buffer
	err := Chart{Width: 20, Height: 5}.Render(&buf)
	assert.True(t, errors.Is(err, ErrNoData))
	flat := Series{Name: "zero", Points: []Point{{N: 10, Y: 0}}}
	err = Chart{Width: 20, Height: 5, Series: []Series{flat}}.Render(&buf)
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestScale(t *testing.T) {
	assert.Equal(t, 0, scale(0, 10, 5))
	assert.Equal(t, 4, scale(10, 10, 5))
	assert.Equal(t, 2, scale(5, 10, 5))
	assert.Equal(t, 4, scale(11, 10, 5))
	assert.Equal(t, 0, scale(-1, 10, 5))
}

func TestWriteCSV(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst.report")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	times := Series{Name: "insert", Unit: "s", Points: []Point{{N: 200, Y: 0.5}, {N: 100, Y: 0.25}}}
	theory := Func("theory", []int{100, 300}, func(n int) float64 { return float64(n) })
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, times, theory))
	expected := "n,insert [s],theory\n" +
		"100,0.25,100\n" +
		"200,0.5,\n" +
		"300,,300\n"
	assert.Equal(t, expected, buf.String())
}

func TestFuncAndBounds(t *testing.T) {
	s := Func("square", []int{1, 2, 3}, func(n int) float64 { return float64(n * n) })
	require.Len(t, s.Points, 3)
	n, y := s.Bounds()
	assert.Equal(t, 3, n)
	assert.Equal(t, 9.0, y)
}
