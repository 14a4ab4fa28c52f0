package timeparse

import (
	"regexp"
	"strings"
)

// Phrases removed from the message when deriving the reminder text. These
// mirror the patterns the local strategies match, plus the lead-in verbs
// users put before them.
// \b is ASCII-only in this regexp engine, so the Cyrillic alternatives live
// in patterns of their own without boundary assertions.
var stripPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bremind me\b`),
	regexp.MustCompile(`(?i)напомни(?:те)?(?:\s+мне)?`),
	regexp.MustCompile(`(?i)\beslat(?:ib qo'y|ing)?\b`),
	regexp.MustCompile(`(?i)\b(?:in|after)\s+\d+\s*(?:minutes?|mins?|hours?|hrs?|days?)\b`),
	regexp.MustCompile(`(?i)через\s+\d+\s*(?:минут[уы]?|мин|час(?:а|ов)?|дн(?:я|ей|ь)?)`),
	regexp.MustCompile(`(?i)\d+\s*(?:daqiqa|minut|soat|kun)(?:dan)?\s*(?:keyin|so'ng|sung)`),
	regexp.MustCompile(`(?i)\d+\s*(?:дақиқа|минут|соат|кун)(?:дан)?\s*(?:кейин|сўнг)`),
	regexp.MustCompile(`(?i)(?:\bat\s+|\bв\s+|soat\s+)?\d{1,2}:\d{2}\s*(?:da|да)?\b`),
	regexp.MustCompile(`(?i)\b(?:tomorrow|ertaga)\b`),
	regexp.MustCompile(`(?i)завтра|эртага`),
}

// Message strips the time expression out of text so the reminder carries
// only what the user wants to be told. When stripping removes everything,
// the original text is returned unchanged.
func Message(text string) string {
	out := text
	for _, re := range stripPatterns {
		out = re.ReplaceAllString(out, " ")
	}
	out = strings.Join(strings.Fields(out), " ")
	out = strings.Trim(out, " ,.!-")
	if out == "" {
		return strings.TrimSpace(text)
	}
	return out
}
