package helpers

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// clockLayouts are tried in order; the first one that parses wins.
var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04 PM",
	"3:04PM",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// ParseClock parses a wall-clock value written as 9:15, 09:15, 09:15:00 or 9.15.
// It returns false when no layout matches.
func ParseClock(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	s = strings.ReplaceAll(s, ".", ":")

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseHourMinute parses an hour:minute value. Hour and minute may each be
// one or two digits ("8:5" is 08:05); seconds are rejected.
func ParseHourMinute(value string) (time.Time, error) {
	return time.Parse("15:4", strings.TrimSpace(value))
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
