package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var datePhraseRe = regexp.MustCompile(
	`(?i)(` +
		`\d{4}-\d{2}-\d{2}` + // YYYY-MM-DD
		`|` +
		`\d{4}\.\d{1,2}\.\d{1,2}` + // YYYY.M.D
		`|` +
		`today|tomorrow|yesterday` +
		`|` +
		`오늘|내일|모레|어제` +
		`)`,
)

// ExtractTimeFromText tries to extract a date from the given text. It
// understands ISO and dotted dates plus a few relative words in English
// and Korean.
func ExtractTimeFromText(
	text string,
	ref time.Time,
	loc *time.Location,
) (time.Time, bool) {

	m := datePhraseRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return time.Time{}, false
	}

	token := strings.ToLower(strings.TrimSpace(m[1]))

	if t, ok := resolveRelative(token, ref, loc); ok {
		return t, true
	}

	t, err := dateparse.ParseIn(token, loc)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func resolveRelative(token string, ref time.Time, loc *time.Location) (time.Time, bool) {
	ref = DateOnly(ref.In(loc))

	switch token {
	case "today", "오늘":
		return ref, true
	case "tomorrow", "내일":
		return ref.AddDate(0, 0, 1), true
	case "모레":
		return ref.AddDate(0, 0, 2), true
	case "yesterday", "어제":
		return ref.AddDate(0, 0, -1), true
	}

	return time.Time{}, false
}
