// Package dateparse extracts absolute dates and relative time expressions
// from contract text.
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Confidence tags how reliable an extracted date is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ExtractedDate is an absolute date found in text.
type ExtractedDate struct {
	Date       time.Time
	Text       string
	Position   int
	Confidence Confidence
}

// RelativeTime is an expression like "within 30 days".
type RelativeTime struct {
	Amount   int
	Unit     string // day, week, month, year (singular)
	Text     string
	Position int
}

const monthNames = `January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`

// Absolute date patterns, tried in order.
var datePatterns = []*regexp.Regexp{
	// ISO: 2024-01-15
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	// US: 01/15/2024, 1/15/24
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	// European: 15.01.2024
	regexp.MustCompile(`\b\d{1,2}\.\d{1,2}\.\d{4}\b`),
	// Written: January 15, 2024 or Jan 15 2024
	regexp.MustCompile(`(?i)\b(?:` + monthNames + `)\s+\d{1,2},?\s+\d{4}\b`),
	// Day first: 15 January 2024
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:` + monthNames + `)\s+\d{4}\b`),
}

// Relative time patterns: "within N days", "N days notice", "N days prior",
// "no less/fewer than N days".
var relativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)within\s+(\d+)\s+(days?|weeks?|months?|years?)`),
	regexp.MustCompile(`(?i)(\d+)\s+(days?|weeks?|months?|years?)\s+notice`),
	regexp.MustCompile(`(?i)(\d+)\s+(days?|weeks?|months?|years?)\s+prior`),
	regexp.MustCompile(`(?i)no\s+(?:less|fewer)\s+than\s+(\d+)\s+(days?|weeks?|months?|years?)`),
}

// Layouts tried in order when parsing a raw date string; the first one
// that yields a valid calendar date wins.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"02.01.2006",
	"2.1.2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ExtractDates returns every absolute date found in text, in pattern order.
// Strings that match a pattern but parse to no valid calendar date are
// dropped silently.
func ExtractDates(text string) []ExtractedDate {
	var dates []ExtractedDate

	for _, pattern := range datePatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			raw := text[loc[0]:loc[1]]
			parsed, ok := ParseDate(raw)
			if !ok {
				continue
			}
			dates = append(dates, ExtractedDate{
				Date:       parsed,
				Text:       raw,
				Position:   loc[0],
				Confidence: ConfidenceHigh,
			})
		}
	}

	return dates
}

// ParseDate parses a raw date string against the known layouts.
func ParseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ExtractRelativeTime returns every relative time expression found in text.
// Units are normalized to singular.
func ExtractRelativeTime(text string) []RelativeTime {
	var results []RelativeTime

	for _, pattern := range relativePatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
			amount, err := strconv.Atoi(text[m[2]:m[3]])
			if err != nil {
				continue
			}
			unit := strings.ToLower(text[m[4]:m[5]])
			unit = strings.TrimSuffix(unit, "s")
			results = append(results, RelativeTime{
				Amount:   amount,
				Unit:     unit,
				Text:     text[m[0]:m[1]],
				Position: m[0],
			})
		}
	}

	return results
}

// FutureDate resolves a relative amount and unit against a reference
// instant. Returns false for an unrecognized unit.
func FutureDate(amount int, unit string, from time.Time) (time.Time, bool) {
	switch strings.ToLower(unit) {
	case "day":
		return from.AddDate(0, 0, amount), true
	case "week":
		return from.AddDate(0, 0, amount*7), true
	case "month":
		return from.AddDate(0, amount, 0), true
	case "year":
		return from.AddDate(amount, 0, 0), true
	default:
		return time.Time{}, false
	}
}
