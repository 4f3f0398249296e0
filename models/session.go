package models

// Profile holds the identity fields extracted from the sign-in widget's
// credential payload.
type Profile struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// Session is the persisted per-client session record. APIToken is only
// meaningful alongside IdentityToken: an absent IdentityToken means the
// client is logged out regardless of what else is present.
type Session struct {
	IdentityToken string  `json:"identity_token,omitempty"`
	Profile       Profile `json:"profile,omitempty"`
	APIToken      string  `json:"api_token,omitempty"`
}

// SignedIn reports whether the session represents a logged-in client.
func (s Session) SignedIn() bool {
	return s.IdentityToken != ""
}

// BearerToken returns the token used for authenticated calls: the
// server-issued API token when present, else the raw identity token. The
// fallback keeps the client working in identity-only mode when the
// create-user exchange failed.
func (s Session) BearerToken() string {
	if s.APIToken != "" {
		return s.APIToken
	}
	return s.IdentityToken
}
