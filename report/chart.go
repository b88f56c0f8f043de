package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ReportError is an error type for rendering problems.
type ReportError string

func (e ReportError) Error() string {
	return string(e)
}

// ErrNoData is returned when a chart has no points to draw.
const ErrNoData = ReportError("chart has no data points")

// Glyphs used to mark the points of series, in order.
var glyphs = []rune{'*', '+', 'o', 'x', '#', '@'}

// Colors used for series, in order.
var palette = []color.Attribute{color.FgBlue, color.FgRed, color.FgGreen, color.FgMagenta, color.FgCyan, color.FgYellow}

const (
	minWidth, minHeight = 20, 5
	gutter              = 10 // width of y-axis labels
)

// Chart plots series over tree sizes.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Width  int // columns of the plot area; 0 selects a width fitting the terminal
	Height int // rows of the plot area; 0 selects 16
	Series []Series
	// NoColor switches off coloring of glyphs.
	NoColor bool
}

// DefaultWidth returns a plot width fitting the terminal attached to stdout, or
// 72 if stdout is not a terminal.
func DefaultWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 72
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w-gutter-2 < minWidth {
		return 72
	}
	return w - gutter - 2
}

// cell of the plot area, marked by at most one series.
type cell struct {
	series int // index+1 of the series marking the cell, 0 for blank
}

// Render draws the chart to w.
func (c Chart) Render(w io.Writer) error {
	maxN, maxY, count := 0, 0.0, 0
	for _, s := range c.Series {
		n, y := s.Bounds()
		maxN, maxY = max(maxN, n), max(maxY, y)
		count += len(s.Points)
	}
	if count == 0 {
		return ErrNoData
	}
	if maxY <= 0 || math.IsNaN(maxY) || math.IsInf(maxY, 0) {
		return fmt.Errorf("%w: cannot scale y-axis to %v", ErrNoData, maxY)
	}
	width, height := c.Width, c.Height
	if width == 0 {
		width = DefaultWidth()
	}
	if height == 0 {
		height = 16
	}
	width, height = max(width, minWidth), max(height, minHeight)
	tracer().Debugf("chart %q: %d×%d, %d series, n ≤ %d, y ≤ %g", c.Title, width, height,
		len(c.Series), maxN, maxY)
	grid := make([][]cell, height)
	for row := range grid {
		grid[row] = make([]cell, width)
	}
	for i, s := range c.Series {
		for _, p := range s.Points {
			col := scale(float64(p.N), float64(max(maxN, 1)), width)
			row := height - 1 - scale(p.Y, maxY, height)
			grid[row][col] = cell{series: i + 1}
		}
	}
	colors := c.colors()
	var errs []error
	put := func(format string, args ...interface{}) {
		_, err := fmt.Fprintf(w, format, args...)
		errs = append(errs, err)
	}
	if c.Title != "" {
		put("%s\n\n", c.Title)
	}
	if c.YLabel != "" {
		put("%*s\n", gutter, c.YLabel)
	}
	for row, line := range grid {
		label := ""
		if row == 0 || row == height-1 || row == height/2 {
			label = formatTick(maxY * float64(height-1-row) / float64(height-1))
		}
		var sb strings.Builder
		for _, x := range line {
			if x.series == 0 {
				sb.WriteRune(' ')
				continue
			}
			g := string(glyphs[(x.series-1)%len(glyphs)])
			sb.WriteString(colors[x.series-1].Sprint(g))
		}
		put("%*s |%s\n", gutter-1, label, sb.String())
	}
	put("%*s +%s\n", gutter-1, "", strings.Repeat("-", width))
	right := fmt.Sprintf("%d", maxN)
	put("%*s  0%*s\n", gutter-1, "", width-1, right)
	if c.XLabel != "" {
		put("%*s  %s\n", gutter-1, "", center(c.XLabel, width))
	}
	put("\n")
	for i, s := range c.Series {
		g := string(glyphs[i%len(glyphs)])
		put("%*s  %s %s\n", gutter-1, "", colors[i].Sprint(g), columnName(s))
	}
	return errors.Join(errs...)
}

func (c Chart) colors() []*color.Color {
	colors := make([]*color.Color, len(c.Series))
	for i := range colors {
		colors[i] = color.New(palette[i%len(palette)])
		if c.NoColor {
			colors[i].DisableColor()
		} else {
			colors[i].EnableColor()
		}
	}
	return colors
}

// scale maps v in [0,top] to one of steps buckets.
func scale(v, top float64, steps int) int {
	if v <= 0 {
		return 0
	}
	i := int(math.Round(v / top * float64(steps-1)))
	return min(max(i, 0), steps-1)
}

func formatTick(y float64) string {
	switch {
	case y == 0:
		return "0"
	case y >= 1000 || y < 0.01:
		return fmt.Sprintf("%.2e", y)
	case y >= 10:
		return fmt.Sprintf("%.1f", y)
	}
	return fmt.Sprintf("%.3f", y)
}

func center(s string, width int) string {
	pad := (width - len([]rune(s))) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
