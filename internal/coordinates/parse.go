package coordinates

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// numericPrefix matches the longest decimal literal at the start of a string:
// an optional sign followed by Infinity or digits with optional fraction and
// exponent. An exponent marker without digits is not part of the match.
var numericPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)

// ErrNotANumber is returned by ParseLeadingFloat when s has no numeric prefix
var ErrNotANumber = errors.New("no leading number")

// ParseLeadingFloat parses the numeric prefix of s, ignoring leading
// whitespace and anything after the number: "45abc" parses as 45 and
// " -1.5e2xyz" as -150. Literals too large for a float64 yield ±Inf.
func ParseLeadingFloat(s string) (float64, error) {
	s = strings.TrimLeftFunc(s, isSpace)

	match := numericPrefix.FindString(s)
	if match == "" {
		return 0, ErrNotANumber
	}

	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		// ParseFloat still returns ±Inf or ±0 on overflow/underflow
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, ErrNotANumber
	}

	return v, nil
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
