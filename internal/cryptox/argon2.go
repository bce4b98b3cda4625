package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/skillverse/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	argon2Prefix  = "argon2id$"
	argon2SaltLen = 16
)

var b64 = base64.RawStdEncoding

// DeriveMasterKey stretches password with salt using argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value that is stored.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// Argon2Digester stores "argon2id$<salt>$<verifier>" with a random salt per digest.
type Argon2Digester struct{}

func (Argon2Digester) Digest(password []byte) (string, error) {
	salt := common.GenerateRandByteArray(argon2SaltLen)
	return argon2Token(password, salt), nil
}

func argon2Token(password, salt []byte) string {
	verifier := MakeVerifier(DeriveMasterKey(password, salt))
	return fmt.Sprintf("%s%s$%s", argon2Prefix, b64.EncodeToString(salt), b64.EncodeToString(verifier))
}

func (Argon2Digester) Verify(token string, password []byte) bool {
	parts := strings.Split(strings.TrimPrefix(token, argon2Prefix), "$")
	if len(parts) != 2 {
		return false
	}
	salt, err := b64.DecodeString(parts[0])
	if err != nil {
		return false
	}
	saved, err := b64.DecodeString(parts[1])
	if err != nil {
		return false
	}
	candidate := MakeVerifier(DeriveMasterKey(password, salt))
	return subtle.ConstantTimeCompare(saved, candidate) == 1
}
