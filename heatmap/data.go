// Package heatmap generates GitHub-style contribution graphs as SVG strings.
package heatmap

import (
	"time"
)

// dateFormat is the key format for per-date lookups.
const dateFormat = "2006-01-02"

// Data holds the date and count for each day.
type Data struct {
	Date  time.Time
	Count int
}

// Options configures rendering parameters.
type Options struct {
	CellSize        int    // size of each day cell (px)
	CellGap         int    // gap between cells (px)
	ShowMonthLabels bool   // month abbreviations above the grid
	ShowDayLabels   bool   // weekday initials left of the grid
	ShowFooter      bool   // legend and summary below the grid
	BaseColor       string // anchor color of the intensity scale
	TextColor       string // labels and separator strokes
	CellBackground  string // color of zero-count cells
	FontSize        int    // font size for labels (px)
	FontFamily      string // font family for labels
}

// Default option values.
const (
	defaultCellSize       = 12
	defaultCellGap        = 3
	defaultBaseColor      = "#fb7185"
	defaultTextColor      = "#767676"
	defaultCellBackground = "#ebedf0"
	defaultFontSize       = 10
	defaultFontFamily     = "sans-serif"
)

// DefaultOptions returns a fully populated Options with every decoration
// enabled. Callers overriding individual fields should start from here.
func DefaultOptions() *Options {
	return &Options{
		CellSize:        defaultCellSize,
		CellGap:         defaultCellGap,
		ShowMonthLabels: true,
		ShowDayLabels:   true,
		ShowFooter:      true,
		BaseColor:       defaultBaseColor,
		TextColor:       defaultTextColor,
		CellBackground:  defaultCellBackground,
		FontSize:        defaultFontSize,
		FontFamily:      defaultFontFamily,
	}
}

// withDefaults returns a normalized copy of o. A nil receiver yields
// DefaultOptions. Zero-valued sizes and empty colors fall back to the
// defaults; boolean toggles are taken as-is.
func (o *Options) withDefaults() *Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.CellSize <= 0 {
		out.CellSize = defaultCellSize
	}
	if out.CellGap < 0 {
		out.CellGap = 0
	}
	if out.BaseColor == "" {
		out.BaseColor = defaultBaseColor
	}
	if out.TextColor == "" {
		out.TextColor = defaultTextColor
	}
	if out.CellBackground == "" {
		out.CellBackground = defaultCellBackground
	}
	if out.FontSize <= 0 {
		out.FontSize = defaultFontSize
	}
	if out.FontFamily == "" {
		out.FontFamily = defaultFontFamily
	}
	return &out
}

// truncateToMidnight drops the time-of-day component.
func truncateToMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
