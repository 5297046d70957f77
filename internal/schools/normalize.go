package schools

import (
	"math"
	"strings"
)

// NumberOrZero parses the leading integer of v, returning 0 when v is absent or not numeric.
func NumberOrZero(v *string) int32 {
	n, ok := parseLeadingInt(v)
	if !ok {
		return 0
	}
	return n
}

// IntOrNull parses the leading integer of v, returning nil when v is absent or not numeric.
func IntOrNull(v *string) *int32 {
	n, ok := parseLeadingInt(v)
	if !ok {
		return nil
	}
	return &n
}

// BoolFromYesNo normalizes upstream flag strings such as "Yes", "1-Yes", "No" or "2-No".
// A value is true when it contains "yes" in any case or starts with "1".
func BoolFromYesNo(v *string) bool {
	if v == nil || *v == "" {
		return false
	}
	s := strings.ToLower(*v)
	return strings.Contains(s, "yes") || strings.HasPrefix(s, "1")
}

// TextOrNull returns nil for absent or blank values.
func TextOrNull(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}

// HasText reports whether v carries a non-blank value.
func HasText(v *string) bool {
	return TextOrNull(v) != nil
}

// parseLeadingInt reads an optional sign followed by decimal digits after leading
// whitespace and ignores whatever follows, so "12 rooms" yields 12 and "3.7" yields 3.
func parseLeadingInt(v *string) (int32, bool) {
	if v == nil {
		return 0, false
	}
	s := strings.TrimLeft(*v, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var n int64
	digits := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int64(c-'0')
		digits++
		if n > math.MaxInt32 {
			n = math.MaxInt32
		}
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return int32(n), true //nolint:gosec // clamped to the int32 range above
}
