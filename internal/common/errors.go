// Package common defines sentinel errors and small helpers shared by the
// SkillVerse store, its services and the CLI. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Directory / record errors.
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrCorruptRecord = errors.New("corrupt record")

	// Authentication errors.
	ErrInvalidCredential = errors.New("invalid credential")
	ErrNoSession         = errors.New("no active session")

	// Input policy errors, raised by callers before they reach the store.
	ErrWeakPassword     = errors.New("weak password")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidSetting   = errors.New("invalid setting")

	// Content errors.
	ErrCertificateUnavailable = errors.New("certificate unavailable")
)
