// Copyright (c) 2025, The jpy-utils Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timex provides date and time helpers: timestamp conversion,
// inclusive date-range expansion, calendar-aware month arithmetic, and
// weekday and age computation.
package timex

import (
	"fmt"
	"time"
)

// Layouts used throughout the package.
const (
	// DateTime is the default layout for formatting timestamps.
	DateTime = "2006-01-02 15:04:05"

	// DateOnly is the layout for calendar dates.
	DateOnly = "2006-01-02"
)

// Format returns t in the default "YYYY-MM-DD hh:mm:ss" layout.
func Format(t time.Time) string {
	return t.Format(DateTime)
}

// FormatDate returns the calendar date of t in the "YYYY-MM-DD" layout.
func FormatDate(t time.Time) string {
	return t.Format(DateOnly)
}

// ParseDate parses a "YYYY-MM-DD" string into a local-time date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timex.ParseDate: %w", err)
	}
	return t, nil
}

// Timestamp returns the current Unix time in seconds.
func Timestamp() int64 {
	return time.Now().Unix()
}

// TimestampMilli returns the current Unix time in milliseconds.
func TimestampMilli() int64 {
	return time.Now().UnixMilli()
}

// FromTimestamp returns the local time for the given Unix seconds.
func FromTimestamp(sec int64) time.Time {
	return time.Unix(sec, 0)
}

// DateRange returns every calendar day from start through end,
// inclusive on both ends, at day granularity (the time-of-day of the
// inputs is dropped). It returns an empty slice if start is after end.
func DateRange(start, end time.Time) []time.Time {
	start = truncateDay(start)
	end = truncateDay(end)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DateRangeStrings is [DateRange] for "YYYY-MM-DD" date strings.
func DateRangeStrings(start, end string) ([]time.Time, error) {
	st, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	en, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	return DateRange(st, en), nil
}

// AddDays returns t shifted by the given number of days,
// which may be negative.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// AddMonths returns t shifted by the given number of months, which may
// be negative. Unlike [time.Time.AddDate], a day-of-month that does
// not exist in the target month clamps to the last day of that month,
// so January 31 plus one month is February 28 (or 29 in a leap year).
func AddMonths(t time.Time, months int) time.Time {
	year := t.Year()
	month := int(t.Month()) + months
	for month > 12 {
		year++
		month -= 12
	}
	for month < 1 {
		year--
		month += 12
	}
	day := t.Day()
	if last := daysIn(year, time.Month(month)); day > last {
		day = last
	}
	h, m, s := t.Clock()
	return time.Date(year, time.Month(month), day, h, m, s, t.Nanosecond(), t.Location())
}

// Weekday returns the English weekday name of t.
func Weekday(t time.Time) string {
	return t.Weekday().String()
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Age returns the age in whole years of someone born at birth, as of
// the optional reference date (today if not given). The year count
// decrements if the birthday has not yet occurred in the reference
// year.
func Age(birth time.Time, reference ...time.Time) int {
	ref := time.Now()
	if len(reference) > 0 {
		ref = reference[0]
	}
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() ||
		(ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}

// truncateDay drops the time-of-day of t, keeping its location.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
