package epid

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tertulia/internal/episode"
)

// ErrUnparsed reports that a raw identifier did not match the episode id
// pattern. The accompanying value is the trimmed input, unchanged.
var ErrUnparsed = errors.New("unparsed episode id")

var (
	rawIDPattern       = regexp.MustCompile(`(?i)^ep[\s._-]*(\d+)[\s._-]*([a-z]+)?$`)
	canonicalIDPattern = regexp.MustCompile(`^Ep(\d{3,})(?:_([A-Za-z]+))?$`)
)

// Normalize canonicalizes a raw episode identifier to Ep###[_Suffix] form:
// the numeric group is zero-padded to three digits, a single a/b suffix is
// uppercased, and supplement-like suffixes (containing "supl", "bonus", or
// "esp") become the literal "Supl". Unparseable input is returned trimmed
// with ErrUnparsed; callers must not treat that as fatal.
func Normalize(raw string) (string, error) {
	trimmed := strings.Trim(raw, " \t\r\n:;-_.")
	m := rawIDPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return trimmed, fmt.Errorf("%w: %q", ErrUnparsed, raw)
	}
	number, err := strconv.Atoi(m[1])
	if err != nil {
		return trimmed, fmt.Errorf("%w: %q", ErrUnparsed, raw)
	}
	suffix := normalizeSuffix(m[2])
	if suffix == "" {
		return fmt.Sprintf("Ep%03d", number), nil
	}
	return fmt.Sprintf("Ep%03d_%s", number, suffix), nil
}

func normalizeSuffix(suffix string) string {
	if suffix == "" {
		return ""
	}
	lower := strings.ToLower(suffix)
	switch {
	case lower == "a" || lower == "b":
		return strings.ToUpper(suffix)
	case strings.Contains(lower, "supl"),
		strings.Contains(lower, "bonus"),
		strings.Contains(lower, "esp"):
		return "Supl"
	default:
		return suffix
	}
}

// Split breaks a canonical identifier into its zero-padded episode number and
// part class. A missing suffix means the episode aired as a single part, so
// the class defaults to Only. Non-canonical input yields ok=false.
func Split(id string) (number, partClass string, ok bool) {
	m := canonicalIDPattern.FindStringSubmatch(id)
	if m == nil {
		return "", "", false
	}
	partClass = m[2]
	if partClass == "" {
		partClass = episode.PartOnly
	}
	return m[1], partClass, true
}

// EpisodeKey returns the episode-level (suffix-stripped) canonical id for a
// zero-padded episode number, e.g. "105" -> "Ep105".
func EpisodeKey(number string) string {
	return "Ep" + number
}
