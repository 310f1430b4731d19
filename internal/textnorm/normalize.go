// Package textnorm canonicalizes harvested text and derives the content
// fingerprint used as the dedup key.
package textnorm

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes raw text: Unicode NFC, control characters
// (including NUL) stripped, whitespace runs collapsed to single spaces,
// leading/trailing whitespace trimmed. Total and idempotent; empty input
// returns "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFC.String(text)
	text = strings.Map(dropControl, text)
	return strings.Join(strings.Fields(text), " ")
}

func dropControl(r rune) rune {
	if unicode.IsControl(r) && !unicode.IsSpace(r) {
		return -1
	}
	return r
}

// Fingerprint returns the MD5 hex digest of already-normalized content.
// MD5 is used purely as a fast 128-bit fingerprint for duplicate detection,
// not for any cryptographic purpose.
func Fingerprint(normalized string) string {
	sum := md5.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
