package heatmap

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// renderMonthSeparators draws one continuous path per boundary between two
// adjacent calendar months. Because weeks straddle month ends, the boundary
// must thread between different grid columns row by row instead of falling
// on a single vertical line.
func renderMonthSeparators(cells []Cell, dims Dimensions, opts *Options) string {
	groups := make(map[string][]Cell)
	for _, c := range cells {
		groups[c.Date[:7]] = append(groups[c.Date[:7]], c)
	}
	if len(groups) < 2 {
		return ""
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	stroke, extra := separatorStroke(opts.TextColor)
	var sb strings.Builder
	for i := 0; i+1 < len(keys); i++ {
		d := separatorPath(groups[keys[i]], groups[keys[i+1]], dims, opts)
		if d == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf(`  <path d="%s" fill="none" stroke="%s"%s stroke-width="1"/>`+"\n",
			d, stroke, extra))
	}
	return sb.String()
}

// separatorPath routes the boundary between the earlier month (prev) and the
// later month (curr). Per grid row the boundary x sits in the middle of the
// gap right of the rightmost prev cell, or left of the leftmost curr cell
// when the row holds no prev cells. Whenever the boundary x changes between
// rows, the vertical line steps over with two mirrored quarter-round
// corners joined by a horizontal run on the row transition line.
func separatorPath(prev, curr []Cell, dims Dimensions, opts *Options) string {
	step := opts.CellSize + opts.CellGap
	half := float64(opts.CellGap) / 2

	var xs [7]float64
	var has [7]bool
	for row := range xs {
		prevMax, prevOK := 0, false
		for _, c := range prev {
			if c.Y == row*step && (!prevOK || c.X > prevMax) {
				prevMax, prevOK = c.X, true
			}
		}
		currMin, currOK := 0, false
		for _, c := range curr {
			if c.Y == row*step && (!currOK || c.X < currMin) {
				currMin, currOK = c.X, true
			}
		}
		switch {
		case prevOK:
			xs[row] = float64(prevMax+opts.CellSize) + half
			has[row] = true
		case currOK:
			xs[row] = float64(currMin) - half
			has[row] = true
		}
	}

	first := -1
	for row, ok := range has {
		if ok {
			first = row
			break
		}
	}
	if first < 0 {
		return ""
	}

	radius := half + 1
	offX := float64(dims.LeftMargin)
	offY := float64(dims.TopMargin)

	var d strings.Builder
	curX := xs[first]
	fmt.Fprintf(&d, "M%s %s", num(offX+curX), num(offY+float64(first*step)-half))
	for row := first + 1; row < 7; row++ {
		if !has[row] || xs[row] == curX {
			continue
		}
		newX := xs[row]
		yt := offY + float64(row*step) - half
		// corner sweep directions depend on whether the boundary moves
		// toward the later or the earlier column
		dir, sweep1, sweep2 := 1.0, 0, 1
		if newX < curX {
			dir, sweep1, sweep2 = -1.0, 1, 0
		}
		fmt.Fprintf(&d, " L%s %s", num(offX+curX), num(yt-radius))
		fmt.Fprintf(&d, " A%s %s 0 0 %d %s %s", num(radius), num(radius), sweep1, num(offX+curX+dir*radius), num(yt))
		fmt.Fprintf(&d, " L%s %s", num(offX+newX-dir*radius), num(yt))
		fmt.Fprintf(&d, " A%s %s 0 0 %d %s %s", num(radius), num(radius), sweep2, num(offX+newX), num(yt+radius))
		curX = newX
	}
	fmt.Fprintf(&d, " L%s %s", num(offX+curX), num(offY+float64(7*step)-half))
	return d.String()
}

// separatorStroke renders the text color at ~75% opacity. Six-digit hex
// colors get an alpha byte appended; anything else carries the alpha as a
// stroke-opacity attribute.
func separatorStroke(textColor string) (color, extra string) {
	if strings.HasPrefix(textColor, "#") && len(textColor) == 7 {
		return textColor + "C0", ""
	}
	return textColor, ` stroke-opacity="0.75"`
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
