package utils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DaysBetween counts calendar days inclusive of both endpoints, so a
// Monday-to-Friday stay is 5 days.
func DaysBetween(start, end time.Time) int {
	diff := end.Sub(start).Hours() / 24
	return int(math.Ceil(diff)) + 1
}

func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func FormatDateRange(start, end time.Time) string {
	if start.Year() == end.Year() && start.Month() == end.Month() {
		return fmt.Sprintf("%s - %d, %d", start.Format("Jan 2"), end.Day(), end.Year())
	}
	return FormatDate(start) + " - " + FormatDate(end)
}

func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func FormatTemperature(temp float64, unit string) string {
	return fmt.Sprintf("%.0f°%s", math.Round(temp), unit)
}
