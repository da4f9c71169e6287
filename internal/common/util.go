package common

import "strings"

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal. Nil is fine.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. It reports false for any other scheme or an empty token.
func BearerToken(header string) (string, bool) {
	if len(header) < len(BearerPrefix) || !strings.EqualFold(header[:len(BearerPrefix)], BearerPrefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(BearerPrefix):])
	return tok, tok != ""
}
