// graph.go
// Composes the full contribution graph SVG from the layout, color scale,
// label, separator, and footer fragments.
package heatmap

import (
	"fmt"
	"strings"
	"time"
)

// Generate returns an SVG string representing the contribution graph for
// the given daily series. data should be sorted in ascending order by date;
// dates may be sparse. An empty series is replaced by a zero-count year
// ending today so the output always shows a populated grid. The function is
// total: every valid input produces a well-formed document, and identical
// inputs produce byte-identical output.
func Generate(data []Data, opts *Options) string {
	opts = opts.withDefaults()

	if len(data) == 0 {
		data = emptyYear(time.Now())
	}

	intensity := classifyIntensity(data)
	cells := buildGrid(data, intensity, opts.CellSize, opts.CellGap)
	dims := computeDimensions(cells, opts)
	scale := NewColorScale(opts.BaseColor, opts.CellBackground)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		dims.Width, dims.Height))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:%s;font-size:%dpx;fill:%s}</style>`+"\n",
		opts.FontFamily, opts.FontSize, opts.TextColor))

	if opts.ShowDayLabels {
		sb.WriteString(renderDayLabels(dims, opts))
	}
	if opts.ShowMonthLabels {
		sb.WriteString(renderMonthLabels(cells, dims, opts))
	}
	sb.WriteString(renderCells(cells, dims, scale, opts))
	sb.WriteString(renderMonthSeparators(cells, dims, opts))
	if opts.ShowFooter {
		sb.WriteString(renderFooter(data, dims, scale, opts))
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// renderCells emits one rounded rectangle per grid cell with a tooltip.
// No background rectangle is ever drawn behind the grid.
func renderCells(cells []Cell, dims Dimensions, scale ColorScale, opts *Options) string {
	var sb strings.Builder
	for _, c := range cells {
		x := dims.LeftMargin + c.X
		y := dims.TopMargin + c.Y
		sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" rx="2" fill="%s" data-date="%s" data-count="%d">`+"\n",
			x, y, opts.CellSize, opts.CellSize, scale(c.Intensity), c.Date, c.Count))
		sb.WriteString(fmt.Sprintf(`    <title>%s: %d</title>`+"\n", c.Date, c.Count))
		sb.WriteString(`  </rect>` + "\n")
	}
	return sb.String()
}

// emptyYear synthesizes a zero-count series covering exactly one year
// ending today.
func emptyYear(today time.Time) []Data {
	end := truncateToMidnight(today)
	start := end.AddDate(0, 0, -364)
	data := make([]Data, 0, 365)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		data = append(data, Data{Date: d})
	}
	return data
}
