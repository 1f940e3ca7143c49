package episode

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts lists the accepted raw date formats in trial order: RFC-822
// style with and without zone, then ISO datetime, then ISO date.
var dateLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a raw source date string against the accepted layouts.
// The boolean is false when no layout matches.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a parsed date in the DD/MM/YYYY form used by the
// publication_date field.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// ParseDuration converts an HH:MM:SS or MM:SS duration string to seconds.
// Malformed or empty input yields 0.
func ParseDuration(raw string) int {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	switch len(parts) {
	case 3:
		h, errH := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		s, errS := strconv.Atoi(parts[2])
		if errH != nil || errM != nil || errS != nil {
			return 0
		}
		return h*3600 + m*60 + s
	case 2:
		m, errM := strconv.Atoi(parts[0])
		s, errS := strconv.Atoi(parts[1])
		if errM != nil || errS != nil {
			return 0
		}
		return m*60 + s
	default:
		return 0
	}
}

// FormatSeconds renders a second count as H:MM:SS, or M:SS under one hour.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return strconv.Itoa(h) + ":" + pad2(m) + ":" + pad2(s)
	}
	return strconv.Itoa(m) + ":" + pad2(s)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
