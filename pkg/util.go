package pkg

import (
	"strings"
	"unicode"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// NormalizePhone keeps only the digits of a phone number, so that
// "+55 (11) 98765-4321" and "5511987654321" end up as the same key.
func NormalizePhone(phone string) string {
	var sb strings.Builder
	sb.Grow(len(phone))
	for _, r := range phone {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
