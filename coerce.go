package envjson

import (
	"math"
	"strconv"
	"strings"
)

// coerce converts a raw string to the most specific scalar it parses as,
// trying bool, then integer, then float. It never fails; anything
// unrecognized stays a string. Only the exact literals "true" and "false"
// become booleans.
func coerce(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}

	// decimalFloat limits the trial to plain decimal and exponential
	// notation. NaN and infinities parse but have no JSON representation,
	// so they fall through and stay strings as well.
	if decimalFloat(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}

	return raw
}

// decimalFloat reports whether s sticks to decimal or exponential float
// syntax. strconv.ParseFloat also accepts two Go literal extensions, hex
// mantissas ("0x1p-2") and underscore digit separators ("1_000"); both
// stay strings.
func decimalFloat(s string) bool {
	if strings.Contains(s, "_") {
		return false
	}
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X")
}
