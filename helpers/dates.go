package helpers

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

const dayFormat = "2006-01-02"

var ymdPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// Today returns the current calendar day in UTC. Every stored date string in
// this system is a UTC day; local-time derivations are never used.
func Today() string {
	return time.Now().UTC().Format(dayFormat)
}

// NormalizeDateString reduces any supported date input to a UTC "YYYY-MM-DD"
// string. Bare day strings pass through unchanged, timestamps and epoch
// values are converted to their UTC day.
func NormalizeDateString(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrInvalidDate
	}

	if len(s) == 10 && ymdPrefix.MatchString(s) {
		if _, err := time.Parse(dayFormat, s); err != nil {
			return "", ErrInvalidDate
		}
		return s, nil
	}

	t, err := ParseDateTime(s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.UTC().Format(dayFormat), nil
}

// ParseDateTime accepts RFC3339 timestamps, bare day strings and epoch
// seconds or milliseconds, always returning a UTC instant.
func ParseDateTime(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dayFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromEpoch(n), nil
	}
	return time.Time{}, ErrInvalidDate
}

// NormalizeMonth validates a salary period string, YYYY-MM.
func NormalizeMonth(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if _, err := time.Parse("2006-01", s); err != nil {
		return "", ErrInvalidDate
	}
	return s, nil
}

func fromEpoch(n int64) time.Time {
	// 13 and more digits means millisecond precision
	if n >= 1_000_000_000_000 {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}
