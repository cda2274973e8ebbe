package heatmap

import (
	"fmt"
	"strings"
)

// legendBuckets samples representative intensities through the scale.
var legendBuckets = [...]int{0, 1, 3, 5, 6, 7, 8, 9}

// renderFooter emits the legend ("Less" → swatches → "More") and the
// right-aligned summary line, anchored below the grid.
func renderFooter(data []Data, dims Dimensions, scale ColorScale, opts *Options) string {
	var sb strings.Builder

	top := dims.TopMargin + dims.GraphHeight + 12
	textY := top + opts.CellSize - 2

	x := dims.LeftMargin
	sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">Less</text>`+"\n", x, textY))
	x += 28
	for _, bucket := range legendBuckets {
		sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" rx="2" fill="%s"/>`+"\n",
			x, top, opts.CellSize, opts.CellSize, scale(bucket)))
		x += opts.CellSize + opts.CellGap
	}
	sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">More</text>`+"\n", x+4, textY))

	total := 0
	for _, d := range data {
		total += d.Count
	}
	summary := fmt.Sprintf("%d commands over %d days", total, len(data))
	sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" text-anchor="end" class="label">%s</text>`+"\n",
		dims.Width-dims.RightMargin, textY, summary))

	return sb.String()
}
