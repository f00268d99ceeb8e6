package model

import "time"

// UserRecord is an end-user account as reported by the auth directory.
// The console only reads accounts and toggles the Disabled flag; ownership
// stays with the directory collaborator.
type UserRecord struct {
	UID       string     `json:"uid" bson:"uid"`
	Email     string     `json:"email" bson:"email"`
	Created   *time.Time `json:"created" bson:"created,omitempty"`
	LastLogin *time.Time `json:"last_login" bson:"last_login,omitempty"`
	Disabled  bool       `json:"disabled" bson:"disabled"`
}

// StatusToken returns the search token describing the account state.
func (u UserRecord) StatusToken() string {
	if u.Disabled {
		return "disabled"
	}
	return "active"
}
