package services

import (
	"errors"

	"github.com/dmitrijs2005/skillverse/internal/common"
)

// User facing messages.
const (
	MsgEmailTaken         = "User with this email already exists."
	MsgAccountNotFound    = "Account not found. Please sign up."
	MsgIncorrectPassword  = "Incorrect password."
	MsgEmailNotFound      = "Email not found."
	MsgNotFound           = "Nothing found with that id."
	MsgPasswordUpdated    = "Password updated successfully. Please log in."
	MsgWeakPassword       = "Password must be at least 8 characters and contain a number."
	MsgPasswordMismatch   = "Passwords do not match."
	MsgInvalidEmail       = "Please enter a valid email address."
	MsgNoSession          = "Please log in first."
	MsgCertificateLocked  = "Pass the course quiz to unlock its certificate."
	MsgInvalidSetting     = "That setting value is not allowed."
	MsgStorageUnavailable = "Local storage is unavailable. Your changes were not saved."
)

// UserMessage maps an error returned by this package to the message shown
// to the user. Op selects the not-found wording of login and reset flows.
func UserMessage(op Op, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, common.ErrConflict):
		return MsgEmailTaken
	case errors.Is(err, common.ErrNotFound):
		switch op {
		case OpResetPassword:
			return MsgEmailNotFound
		case OpLogin:
			return MsgAccountNotFound
		}
		return MsgNotFound
	case errors.Is(err, common.ErrInvalidCredential):
		return MsgIncorrectPassword
	case errors.Is(err, common.ErrWeakPassword):
		return MsgWeakPassword
	case errors.Is(err, common.ErrPasswordMismatch):
		return MsgPasswordMismatch
	case errors.Is(err, common.ErrInvalidEmail):
		return MsgInvalidEmail
	case errors.Is(err, common.ErrNoSession):
		return MsgNoSession
	case errors.Is(err, common.ErrCertificateUnavailable):
		return MsgCertificateLocked
	case errors.Is(err, common.ErrInvalidSetting):
		return MsgInvalidSetting
	default:
		return MsgStorageUnavailable
	}
}

// Op names the operation an error came from.
type Op int

const (
	OpOther Op = iota
	OpRegister
	OpLogin
	OpResetPassword
)
