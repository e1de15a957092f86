package types

import "strings"

// IsHex reports whether s is non-empty and made only of hexadecimal digits.
// No "0x" prefix is accepted: gateway addresses and hashes are bare hex.
func IsHex(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}

	return true
}

// IsDecimal reports whether s is non-empty and made only of ASCII digits.
func IsDecimal(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// PadHexLeft left-pads s with zeros up to width characters.
// Strings already at or above width are returned unchanged.
func PadHexLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat("0", width-len(s)) + s
}

// HasPrefixFold reports whether s begins with prefix, ignoring ASCII case.
func HasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
