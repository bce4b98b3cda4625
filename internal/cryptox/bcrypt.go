package cryptox

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxInput is the longest input bcrypt accepts.
const bcryptMaxInput = 72

// BcryptDigester uses bcrypt at the default cost. Passwords longer than
// bcrypt accepts are reduced to the base64 SHA-256 of the password first;
// shorter ones are hashed as is.
type BcryptDigester struct{}

func bcryptInput(password []byte) []byte {
	if len(password) <= bcryptMaxInput {
		return password
	}
	sum := sha256.Sum256(password)
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

func (BcryptDigester) Digest(password []byte) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptDigester) Verify(token string, password []byte) bool {
	return bcrypt.CompareHashAndPassword([]byte(token), bcryptInput(password)) == nil
}
