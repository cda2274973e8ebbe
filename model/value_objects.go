// Package model provides value objects for API parameter validation.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateRange represents a date range value object.
type DateRange struct {
	from time.Time
	to   time.Time
}

// NewDateRange creates a new date range value object.
func NewDateRange(fromStr, toStr string, loc *time.Location) (*DateRange, error) {
	var fromTime, toTime time.Time
	var err error

	// Process from parameter
	if fromStr != "" {
		fromTime, err = parseDateTime(fromStr, loc)
		if err != nil {
			return nil, NewValidationError("invalid from parameter. Use ISO8601 format (YYYY-MM-DD or YYYY-MM-DDThh:mm:ssZ)")
		}
	} else {
		defaultFrom, _ := getDefaultDateRange(loc)
		fromTime = defaultFrom
	}

	// Process to parameter
	if toStr != "" {
		toTime, err = parseDateTime(toStr, loc)
		if err != nil {
			return nil, NewValidationError("invalid to parameter. Use ISO8601 format (YYYY-MM-DD or YYYY-MM-DDThh:mm:ssZ)")
		}
	} else {
		_, defaultTo := getDefaultDateRange(loc)
		toTime = defaultTo
	}

	// Normalize from time to beginning of day (00:00:00)
	fromTime = normalizeToBeginOfDay(fromTime)
	// Normalize to time to end of day (23:59:59.999999999)
	toTime = normalizeToEndOfDay(toTime)

	return &DateRange{from: fromTime, to: toTime}, nil
}

// NewDateRangeFromTimes creates a date range from already-parsed times.
func NewDateRangeFromTimes(from, to time.Time) *DateRange {
	return &DateRange{
		from: normalizeToBeginOfDay(from),
		to:   normalizeToEndOfDay(to),
	}
}

// From returns the start date.
func (d *DateRange) From() time.Time {
	return d.from
}

// To returns the end date.
func (d *DateRange) To() time.Time {
	return d.to
}

// ParsePeriod parses a calendar-period shorthand of the form
// "<positive integer><y|m|d>" (case-insensitive), e.g. "1y", "6M", "30d".
// The returned range ends today (in loc) and starts the given number of
// years/months/days back. Zero, negative, or malformed input is an error.
func ParsePeriod(text string, loc *time.Location) (*DateRange, error) {
	s := strings.TrimSpace(text)
	if len(s) < 2 {
		return nil, NewValidationError("invalid period. Use <number><y|m|d> (e.g. 1y, 6m, 30d)")
	}

	unit := s[len(s)-1]
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		return nil, NewValidationError("invalid period. Use <number><y|m|d> (e.g. 1y, 6m, 30d)")
	}

	now := time.Now().In(loc)
	var from time.Time
	switch unit {
	case 'y', 'Y':
		from = now.AddDate(-n, 0, 0)
	case 'm', 'M':
		from = now.AddDate(0, -n, 0)
	case 'd', 'D':
		from = now.AddDate(0, 0, -n)
	default:
		return nil, NewValidationError("invalid period. Use <number><y|m|d> (e.g. 1y, 6m, 30d)")
	}

	return NewDateRangeFromTimes(from, now), nil
}

// getDefaultDateRange calculates the default date range for the latest week + 52 weeks.
func getDefaultDateRange(loc *time.Location) (time.Time, time.Time) {
	now := time.Now().In(loc)
	weekday := int(now.Weekday())
	latestWeekStart := now.AddDate(0, 0, -weekday)
	defaultFrom := latestWeekStart.AddDate(0, 0, -52*7)
	return defaultFrom, now
}

// normalizeToBeginOfDay normalizes time to beginning of day (00:00:00).
func normalizeToBeginOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// normalizeToEndOfDay normalizes time to end of day (23:59:59.999999999).
func normalizeToEndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999999999, t.Location())
}

// parseDateTime parses date string with flexible format support.
func parseDateTime(dateStr string, loc *time.Location) (time.Time, error) {
	// Try RFC3339 format first (with time)
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t.In(loc), nil
	}

	// Try date-only format (YYYY-MM-DD)
	if t, err := time.ParseInLocation("2006-01-02", dateStr, loc); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date")
}

// CommandID represents a command ID value object.
type CommandID struct {
	value uuid.UUID
}

// NewCommandID creates a new command ID value object.
func NewCommandID(idStr string) (*CommandID, error) {
	if idStr == "" {
		return nil, NewValidationError("command ID is required")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, NewValidationError("invalid UUID format")
	}

	return &CommandID{value: id}, nil
}

// UUID returns the UUID value.
func (c *CommandID) UUID() uuid.UUID {
	return c.value
}

// DeviceID represents a device ID value object.
type DeviceID struct {
	value uuid.UUID
}

// NewDeviceID creates a new device ID value object.
func NewDeviceID(idStr string) (*DeviceID, error) {
	if idStr == "" {
		return nil, NewValidationError("device ID is required")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, NewValidationError("invalid UUID format")
	}

	return &DeviceID{value: id}, nil
}

// UUID returns the UUID value.
func (d *DeviceID) UUID() uuid.UUID {
	return d.value
}

// Timestamp represents a timestamp value object.
type Timestamp struct {
	value time.Time
}

// NewTimestamp creates a new timestamp value object.
func NewTimestamp(timestampStr string) (*Timestamp, error) {
	if timestampStr == "" {
		// Use current time for empty string
		return &Timestamp{value: time.Now()}, nil
	}

	timestamp, err := time.Parse(time.RFC3339, timestampStr)
	if err != nil {
		return nil, NewValidationError("invalid datetime format. Use ISO8601 format (YYYY-MM-DDThh:mm:ssZ)")
	}

	return &Timestamp{value: timestamp}, nil
}

// Time returns the time value.
func (t *Timestamp) Time() time.Time {
	return t.value
}

// CountValue represents a positive integer count value object.
type CountValue struct {
	value int
}

// NewCountValue creates a new count value object.
func NewCountValue(val *int) (*CountValue, error) {
	if val == nil {
		// Use default value 1 for nil
		return &CountValue{value: 1}, nil
	}

	if *val < 1 {
		return nil, NewValidationError("count must be a positive integer greater than 0")
	}

	return &CountValue{value: *val}, nil
}

// Int returns the integer value.
func (v *CountValue) Int() int {
	return v.value
}

// Pagination represents pagination parameters value object.
type Pagination struct {
	limit  int
	offset int
}

// NewPagination creates a new pagination value object.
func NewPagination(limitStr, offsetStr string) (*Pagination, error) {
	limit := 100 // Default value
	offset := 0  // Default value

	// Process limit parameter
	if limitStr != "" {
		parsedLimit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, NewValidationError("invalid limit parameter: must be a positive integer")
		}
		if parsedLimit <= 0 {
			return nil, NewValidationError("limit must be greater than 0")
		}
		if parsedLimit > 1000 { // Set upper limit
			parsedLimit = 1000
		}
		limit = parsedLimit
	}

	// Process offset parameter
	if offsetStr != "" {
		parsedOffset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, NewValidationError("invalid offset parameter: must be a non-negative integer")
		}
		if parsedOffset < 0 {
			return nil, NewValidationError("offset must be non-negative")
		}
		offset = parsedOffset
	}

	return &Pagination{limit: limit, offset: offset}, nil
}

// Limit returns the limit value.
func (p *Pagination) Limit() int {
	return p.limit
}

// Offset returns the offset value.
func (p *Pagination) Offset() int {
	return p.offset
}
