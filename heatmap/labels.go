package heatmap

import (
	"fmt"
	"strings"
)

// Static lookup tables, indexed by time.Weekday / time.Month-1.
var (
	weekdayLetters = [7]string{"S", "M", "T", "W", "T", "F", "S"}
	monthNames     = [12]string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}
)

// renderDayLabels emits one weekday initial per grid row, vertically
// centered on the row and right-aligned against the grid's left edge.
func renderDayLabels(dims Dimensions, opts *Options) string {
	var sb strings.Builder
	step := opts.CellSize + opts.CellGap
	x := dims.LeftMargin - 8
	for i, letter := range weekdayLetters {
		y := dims.TopMargin + i*step + (opts.CellSize+opts.FontSize)/2 - 1
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" text-anchor="end" class="label">%s</text>`+"\n",
			x, y, letter))
	}
	return sb.String()
}

type monthLabel struct {
	x    int
	day  int // day of month of the first cell of the month run
	name string
}

// renderMonthLabels scans the cells in grid order and places a lowercase
// three-letter label wherever a new calendar month begins. A leading run
// that starts after the 7th would render a truncated label hanging over the
// previous month's columns, so the first candidate is dropped in that case.
func renderMonthLabels(cells []Cell, dims Dimensions, opts *Options) string {
	var candidates []monthLabel
	lastMonth := -1
	for _, c := range cells {
		if c.Month != lastMonth {
			candidates = append(candidates, monthLabel{
				x:    c.X,
				day:  c.Day,
				name: monthNames[c.Month-1],
			})
			lastMonth = c.Month
		}
	}
	if len(candidates) > 0 && candidates[0].day > 7 {
		candidates = candidates[1:]
	}

	var sb strings.Builder
	y := dims.TopMargin - 6
	for _, m := range candidates {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n",
			dims.LeftMargin+m.x, y, m.name))
	}
	return sb.String()
}
