package model

import "time"

// UserProfile is the stored per-user document. PICName ("pic_name") is the
// person-responsible value stamped onto every record the user saves.
type UserProfile struct {
	// Account identifier ("uuid_account"): the Google subject for OAuth
	// accounts, a generated UUID for email registrations.
	UID           string `json:"uuid_account"`
	Email         string `json:"email"`
	DisplayName   string `json:"display_name"`
	PICName       string `json:"pic_name"`
	PhotoURL      string `json:"photo_url"`
	EmailVerified bool   `json:"email_verified"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Identity is the resolved acting identity attached to every authenticated
// request. Admin is a capability flag resolved once at session establishment;
// nothing downstream re-checks the email.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	Admin       bool
}
