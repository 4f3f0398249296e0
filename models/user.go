// models/user.go
package models

// UserDetails is the remote user-fetch response shape.
type UserDetails struct {
	User UserRecord `json:"user"`
}

// UserRecord mirrors the fields the marketplace user endpoint returns. All
// fields are optional on the wire; missing ones decode to zero values.
type UserRecord struct {
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Email     string `json:"email,omitempty"`
	Picture   string `json:"picture,omitempty"`
	LastLogin string `json:"last_login,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
