package report

import (
	"encoding/csv"
	"io"
	"slices"
	"strconv"
)

// Point is a measurement for a tree size N.
type Point struct {
	N int
	Y float64
}

// Series is a named list of points.
type Series struct {
	Name   string
	Unit   string
	Points []Point
}

// Bounds returns the largest N and the largest Y of the series.
func (s Series) Bounds() (maxN int, maxY float64) {
	for _, p := range s.Points {
		maxN = max(maxN, p.N)
		maxY = max(maxY, p.Y)
	}
	return
}

// Func creates a series by evaluating f at the given sizes.
func Func(name string, sizes []int, f func(int) float64) Series {
	s := Series{Name: name, Points: make([]Point, len(sizes))}
	for i, n := range sizes {
		s.Points[i] = Point{N: n, Y: f(n)}
	}
	return s
}

// WriteCSV writes series as a table with a header row. The first column holds N,
// followed by one column per series. Cells for sizes a series has no point for
// stay empty.
func WriteCSV(w io.Writer, series ...Series) error {
	var ns []int
	cols := make([]map[int]float64, len(series))
	header := []string{"n"}
	for i, s := range series {
		header = append(header, columnName(s))
		cols[i] = make(map[int]float64, len(s.Points))
		for _, p := range s.Points {
			if _, ok := cols[i][p.N]; !ok {
				ns = append(ns, p.N)
			}
			cols[i][p.N] = p.Y
		}
	}
	slices.Sort(ns)
	ns = slices.Compact(ns)
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, n := range ns {
		row := []string{strconv.Itoa(n)}
		for _, col := range cols {
			cell := ""
			if y, ok := col[n]; ok {
				cell = strconv.FormatFloat(y, 'f', -1, 64)
			}
			row = append(row, cell)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	tracer().Debugf("csv: wrote %d rows for %d series", len(ns), len(series))
	return cw.Error()
}

func columnName(s Series) string {
	if s.Unit == "" {
		return s.Name
	}
	return s.Name + " [" + s.Unit + "]"
}
