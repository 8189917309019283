package models

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// Slugify derives an identifier safe for HTML ids and data attributes
// from a folder name. The name is lower-cased and every rune outside
// [a-z0-9._-] becomes a dash. Display names are kept verbatim elsewhere.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// ShortHash returns a short hash of name, used to disambiguate folder
// names whose slugs collide after sanitization. This is an identifier,
// not a security measure.
func ShortHash(name string) string {
	sum := sha256.Sum256([]byte(name))
	return base64.URLEncoding.EncodeToString(sum[:])[0:4]
}
