package cryptox

import (
	"crypto/subtle"
	"strconv"
	"unicode/utf16"
)

const legacyPrefix = "sv_sec_"

// LegacyDigest is the browser build's non-cryptographic hash: h = h*31 + c
// over UTF-16 code units with int32 wraparound, rendered as the hex of |h|.
// An empty password digests to "0" without the prefix.
func LegacyDigest(password string) string {
	if password == "" {
		return "0"
	}
	var h int32
	for _, c := range utf16.Encode([]rune(password)) {
		h = h*31 + int32(c)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return legacyPrefix + strconv.FormatInt(abs, 16)
}

// LegacyDigester wraps LegacyDigest. It is deterministic and not secure.
type LegacyDigester struct{}

func (LegacyDigester) Digest(password []byte) (string, error) {
	return LegacyDigest(string(password)), nil
}

func (LegacyDigester) Verify(token string, password []byte) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(LegacyDigest(string(password)))) == 1
}
