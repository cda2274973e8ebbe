package heatmap

// Cell is one calendar day placed on the week-column/day-row grid.
type Cell struct {
	Date      string // YYYY-MM-DD
	Count     int
	X         int // week column offset (px, grid-relative)
	Y         int // day-of-week row offset (px, grid-relative)
	Intensity int // bucket 0..9
	Month     int // calendar month 1..12
	Day       int // day of month 1..31
}

// buildGrid expands the (possibly sparse) series into one cell per calendar
// day from the Sunday on or before the first date through the last date.
// Dates absent from the input get count 0 and intensity 0, so the grid
// never has gaps. data must be sorted ascending by date.
func buildGrid(data []Data, intensity map[string]int, cellSize, cellGap int) []Cell {
	if len(data) == 0 {
		return nil
	}

	counts := make(map[string]int, len(data))
	for _, d := range data {
		counts[d.Date.Format(dateFormat)] = d.Count
	}

	first := truncateToMidnight(data[0].Date)
	last := truncateToMidnight(data[len(data)-1].Date)

	// align the first column to Sunday
	start := first.AddDate(0, 0, -int(first.Weekday()))

	step := cellSize + cellGap
	cells := make([]Cell, 0, int(last.Sub(start).Hours()/24)+1)
	week := 0
	for current := start; !current.After(last); current = current.AddDate(0, 0, 1) {
		key := current.Format(dateFormat)
		dow := int(current.Weekday())
		cells = append(cells, Cell{
			Date:      key,
			Count:     counts[key],
			X:         week * step,
			Y:         dow * step,
			Intensity: intensity[key],
			Month:     int(current.Month()),
			Day:       current.Day(),
		})
		// a Saturday closes the week column
		if dow == 6 {
			week++
		}
	}
	return cells
}

// Dimensions is the derived bounding box of the rendered document.
type Dimensions struct {
	Width        int
	Height       int
	LeftMargin   int
	TopMargin    int
	RightMargin  int
	BottomMargin int
	GraphWidth   int
	GraphHeight  int
}

// computeDimensions derives the overall image size from the grid extent and
// the enabled decorations. The graph area is always exactly seven rows tall
// regardless of how many weeks carry data.
func computeDimensions(cells []Cell, opts *Options) Dimensions {
	left := 10
	if opts.ShowDayLabels {
		left = 30
	}
	top := 10
	if opts.ShowMonthLabels {
		top = 20
	}
	bottom := 10
	if opts.ShowFooter {
		bottom = 35
	}
	right := 10

	maxX := 0
	for _, c := range cells {
		if c.X > maxX {
			maxX = c.X
		}
	}
	graphWidth := maxX + opts.CellSize + opts.CellGap
	graphHeight := 7 * (opts.CellSize + opts.CellGap)

	return Dimensions{
		Width:        left + graphWidth + right,
		Height:       top + graphHeight + bottom,
		LeftMargin:   left,
		TopMargin:    top,
		RightMargin:  right,
		BottomMargin: bottom,
		GraphWidth:   graphWidth,
		GraphHeight:  graphHeight,
	}
}
