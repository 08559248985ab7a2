package settings

import (
	"strconv"
	"strings"
)

// reports whether c is ASCII whitespace, same set as C isspace()
// in the default locale
func isSpaceASCII(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// trimASCII removes leading and trailing ASCII whitespace. Unlike
// strings.TrimSpace it leaves Unicode space characters alone.
func trimASCII(s string) string {
	start := 0
	end := len(s)
	for start < end && isSpaceASCII(s[start]) {
		start++
	}
	for end > start && isSpaceASCII(s[end-1]) {
		end--
	}
	return s[start:end]
}

// splitKeyValue splits a line at the first '='. The value keeps any
// further '=' characters verbatim. Both parts are trimmed. Returns
// ok == false for lines without '=', which are not key/value lines.
func splitKeyValue(line string) (key string, value string, ok bool) {
	idx := strings.IndexByte(line, '=')
	if idx == -1 {
		return "", "", false
	}
	return trimASCII(line[:idx]), trimASCII(line[idx+1:]), true
}

// atoiPermissive parses s the way C atoi does: skip leading
// whitespace, optional sign, then decimal digits up to the first
// non-digit. Malformed text is 0, there is no error.
func atoiPermissive(s string) int {
	i := 0
	n := len(s)
	for i < n && isSpaceASCII(s[i]) {
		i++
	}
	neg := false
	if i < n && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	res := 0
	for i < n && s[i] >= '0' && s[i] <= '9' {
		res = res*10 + int(s[i]-'0')
		i++
	}
	if neg {
		return -res
	}
	return res
}

// atofPermissive parses s the way C atof does: the longest prefix
// that looks like a decimal floating-point number (optional sign,
// digits, fraction, optional exponent) is parsed and the rest is
// ignored. Malformed text is 0, there is no error.
func atofPermissive(s string) float64 {
	i := 0
	n := len(s)
	for i < n && isSpaceASCII(s[i]) {
		i++
	}
	start := i
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	// exponent only counts if it has at least one digit
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < n && s[j] >= '0' && s[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	f, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0
	}
	return f
}
