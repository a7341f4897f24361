// Package dateutil provides date format parsing and token expansion for
// header/footer text.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when a {date} token carries no format.
const DefaultDateFormat = "YYYY-MM-DD"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
// Use brackets to escape literal text: [Date] preserves "Date" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has
// unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		// Bracket-escaped literal text
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ExpandTokens replaces {date} and {date:FORMAT} tokens in text with the
// given time. FORMAT may be a named preset (iso, european, us, long) or a
// token format string. Malformed formats leave the token untouched rather
// than failing: header text is display content, not configuration.
func ExpandTokens(text string, t time.Time) string {
	var out strings.Builder
	for {
		start := strings.Index(text, "{date")
		if start < 0 {
			break
		}
		end := strings.Index(text[start:], "}")
		if end < 0 {
			break
		}
		end += start

		token := text[start+1 : end] // "date" or "date:FORMAT"
		format := DefaultDateFormat
		recognized := true
		if rest, ok := strings.CutPrefix(token, "date:"); ok {
			if preset, found := DatePresets[strings.ToLower(rest)]; found {
				format = preset
			} else {
				format = rest
			}
		} else if token != "date" {
			// Something like "{dateline}": not our token.
			recognized = false
		}

		if recognized {
			if goFmt, err := ParseDateFormat(format); err == nil {
				out.WriteString(text[:start])
				out.WriteString(t.Format(goFmt))
				text = text[end+1:]
				continue
			}
		}

		// Not a date token, or a malformed format: keep the occurrence
		// verbatim and keep scanning after it.
		out.WriteString(text[:end+1])
		text = text[end+1:]
	}
	out.WriteString(text)
	return out.String()
}
