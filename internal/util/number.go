package util

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const infinityLiteral = "Infinity"

// ParseFloatPrefix parses the longest leading decimal number in s, ignoring
// leading whitespace and anything after the number. "12abc" is 12, "1,500" is 1,
// ".5e2" is 50 and "abc" is not a number. The literal "Infinity" with an
// optional sign is accepted.
func ParseFloatPrefix(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	sign := 1.0
	rest := s
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		if rest[0] == '-' {
			sign = -1
		}
		rest = rest[1:]
	}

	if strings.HasPrefix(rest, infinityLiteral) {
		return math.Inf(int(sign)), true
	}

	end := numberPrefixLength(s)
	if end == 0 {
		return 0, false
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// out of range still yields ±Inf or 0
		if !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
	}

	return f, true
}

// numberPrefixLength returns the length of the longest prefix of s that is a
// decimal literal, or 0 when s does not start with one.
func numberPrefixLength(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expDigits := countDigits(s[j:]); expDigits > 0 {
			i = j + expDigits
		}
	}

	return i
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
