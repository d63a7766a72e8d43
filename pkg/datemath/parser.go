package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the absolute date format accepted for goal target dates.
const DateLayout = "2006-01-02"

var (
	ErrEmptyDate     = errors.New("date is empty")
	ErrUnknownFormat = errors.New("unrecognized date format")

	inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser resolves date strings against a fixed IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves either an absolute YYYY-MM-DD date or a relative phrase
// ("today", "in 2 weeks", "next friday") to midnight of that day.
func (p *Parser) Parse(value string, baseTime time.Time) (time.Time, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return time.Time{}, ErrEmptyDate
	}

	if t, err := time.ParseInLocation(DateLayout, value, p.location); err == nil {
		return t, nil
	}

	switch value {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(value, "in ") {
		return p.parseInDuration(value, baseTime)
	}

	if strings.HasPrefix(value, "next ") {
		return p.parseNextWeekday(value, baseTime)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownFormat, value)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(value string, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(value)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration %q", ErrUnknownFormat, value)
	}

	amount, _ := strconv.Atoi(matches[1])

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday". The same weekday means a week later.
func (p *Parser) parseNextWeekday(value string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(value, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnknownFormat, dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
