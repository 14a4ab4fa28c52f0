package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Relative offsets. The Uzbek patterns cover both the Latin and Cyrillic
// scripts since users type in either.
var (
	relMinutes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:in|after)\s+(\d+)\s*(?:minutes?|mins?)\b`),
		regexp.MustCompile(`(?i)через\s+(\d+)\s*(?:минут[уы]?|мин)`),
		regexp.MustCompile(`(?i)(\d+)\s*(?:daqiqa|minut)(?:dan)?\s*(?:keyin|so'ng|sung)`),
		regexp.MustCompile(`(?i)(\d+)\s*(?:дақиқа|минут)(?:дан)?\s*(?:кейин|сўнг)`),
	}
	relHours = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:in|after)\s+(\d+)\s*(?:hours?|hrs?)\b`),
		regexp.MustCompile(`(?i)через\s+(\d+)\s*(?:час(?:а|ов)?)`),
		regexp.MustCompile(`(?i)(\d+)\s*soat(?:dan)?\s*(?:keyin|so'ng|sung)`),
		regexp.MustCompile(`(?i)(\d+)\s*соат(?:дан)?\s*(?:кейин|сўнг)`),
	}
	relDays = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:in|after)\s+(\d+)\s*days?\b`),
		regexp.MustCompile(`(?i)через\s+(\d+)\s*дн(?:я|ей|ь)?`),
		regexp.MustCompile(`(?i)(\d+)\s*kun(?:dan)?\s*(?:keyin|so'ng|sung)`),
		regexp.MustCompile(`(?i)(\d+)\s*кун(?:дан)?\s*(?:кейин|сўнг)`),
	}
)

// parseRelative handles "in N minutes" style offsets in all three languages.
func parseRelative(text string, nowLocal time.Time) (time.Time, bool) {
	if n, ok := firstNumber(relMinutes, text); ok {
		return nowLocal.Add(time.Duration(n) * time.Minute), true
	}
	if n, ok := firstNumber(relHours, text); ok {
		return nowLocal.Add(time.Duration(n) * time.Hour), true
	}
	if n, ok := firstNumber(relDays, text); ok {
		return nowLocal.AddDate(0, 0, n), true
	}
	return time.Time{}, false
}

func firstNumber(patterns []*regexp.Regexp, text string) (int, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		return n, true
	}
	return 0, false
}

var clockPattern = regexp.MustCompile(`(?:^|\D)(\d{1,2}):(\d{2})(?:\D|$)`)

var tomorrowWords = []string{"tomorrow", "завтра", "ertaga", "эртага"}

// parseClock handles explicit HH:MM clock times. A tomorrow keyword pins the
// date to the next day; otherwise a time that already passed today rolls
// forward to tomorrow.
func parseClock(text string, nowLocal time.Time) (time.Time, bool) {
	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return time.Time{}, false
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return time.Time{}, false
	}

	at := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), hour, minute, 0, 0, nowLocal.Location())

	if containsAnyFold(text, tomorrowWords) {
		return at.AddDate(0, 0, 1), true
	}
	if !at.After(nowLocal) {
		at = at.AddDate(0, 0, 1)
	}
	return at, true
}

func containsAnyFold(text string, words []string) bool {
	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
