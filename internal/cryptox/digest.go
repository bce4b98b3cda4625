// Package cryptox turns passwords into stored digests and verifies them.
//
// Three schemes are supported. argon2id is the default for new digests;
// bcrypt is available for interoperability; legacy reproduces the 32-bit
// rolling hash written by the browser build so that existing stores keep
// verifying. Verify recognises every scheme from the token itself, so the
// configured scheme only affects digests created from now on.
package cryptox

import (
	"fmt"
	"strings"
)

// Scheme names a digest algorithm.
type Scheme string

const (
	SchemeArgon2id Scheme = "argon2id"
	SchemeBcrypt   Scheme = "bcrypt"
	SchemeLegacy   Scheme = "legacy"
)

// Digester creates and checks password digests.
type Digester interface {
	Digest(password []byte) (string, error)
	Verify(token string, password []byte) bool
}

// NewDigester returns the Digester for the named scheme. An empty name
// selects argon2id.
func NewDigester(name string) (Digester, error) {
	switch Scheme(strings.ToLower(name)) {
	case "", SchemeArgon2id:
		return multi{primary: Argon2Digester{}}, nil
	case SchemeBcrypt:
		return multi{primary: BcryptDigester{}}, nil
	case SchemeLegacy:
		return multi{primary: LegacyDigester{}}, nil
	default:
		return nil, fmt.Errorf("unknown digest scheme %q", name)
	}
}

// SchemeOf reports which scheme produced token.
func SchemeOf(token string) Scheme {
	switch {
	case strings.HasPrefix(token, argon2Prefix):
		return SchemeArgon2id
	case strings.HasPrefix(token, "$2a$"), strings.HasPrefix(token, "$2b$"), strings.HasPrefix(token, "$2y$"):
		return SchemeBcrypt
	default:
		return SchemeLegacy
	}
}

// multi digests with primary and verifies with whichever scheme made the token.
type multi struct {
	primary Digester
}

func (m multi) Digest(password []byte) (string, error) {
	return m.primary.Digest(password)
}

func (m multi) Verify(token string, password []byte) bool {
	switch SchemeOf(token) {
	case SchemeArgon2id:
		return Argon2Digester{}.Verify(token, password)
	case SchemeBcrypt:
		return BcryptDigester{}.Verify(token, password)
	default:
		return LegacyDigester{}.Verify(token, password)
	}
}
