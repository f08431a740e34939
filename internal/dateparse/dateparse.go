// Package dateparse parses the date and date-time arguments accepted on the
// command line.
//
// Accepted forms:
//   - keywords: now, today, tomorrow, yesterday (today/tomorrow/yesterday are midnight)
//   - relative offsets from today: +3d, -2w, +1m
//   - 2006-01-02
//   - 2006-01-02 15:04, 2006-01-02T15:04, 2006-01-02T15:04:05
//   - RFC3339
package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeRegex = regexp.MustCompile(`^([+-]\d+)([dwm])$`)

var layouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Parse parses s relative to now. Values without a zone are read in now's
// location.
func Parse(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("invalid date: empty")
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch strings.ToLower(s) {
	case "now":
		return now, nil
	case "today":
		return midnight, nil
	case "tomorrow":
		return midnight.AddDate(0, 0, 1), nil
	case "yesterday":
		return midnight.AddDate(0, 0, -1), nil
	}

	if m := relativeRegex.FindStringSubmatch(strings.ToLower(s)); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid offset %q: %w", s, err)
		}
		switch m[2] {
		case "d":
			return midnight.AddDate(0, 0, n), nil
		case "w":
			return midnight.AddDate(0, 0, 7*n), nil
		case "m":
			return midnight.AddDate(0, n, 0), nil
		}
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD, YYYY-MM-DD HH:MM, RFC3339, today, or +Nd)", s)
}
