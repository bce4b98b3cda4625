package models

import "time"

// User is the account as seen by callers. It never carries the digest.
type User struct {
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	EnrolledDate time.Time    `json:"enrolledDate"`
	Settings     UserSettings `json:"settings"`
}

// UserRecord is the stored form of a User, digest included.
type UserRecord struct {
	User
	Password string `json:"password,omitempty"`
}

// Public strips the digest.
func (r UserRecord) Public() User {
	u := r.User
	u.Settings = r.Settings.clone()
	return u
}

// CertificateName is the name printed on certificates.
func (u User) CertificateName() string {
	if u.Settings.CertificateName != "" {
		return u.Settings.CertificateName
	}
	return u.Username
}
