package helpers

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims surrounding whitespace and puts the value in NFC form,
// so Thai labels typed with different combining-mark orders compare equal.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeCode trims and uppercases an identifier such as a program code
func NormalizeCode(s string) string {
	return strings.ToUpper(NormalizeText(s))
}
