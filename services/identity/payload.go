package identity

import (
	"servecure/models"

	"github.com/golang-jwt/jwt/v4"
)

// DecodePayload extracts the profile claims from a widget credential without
// verifying the signature; the credential is opaque to us and verified by
// the marketplace backend during the create-user exchange. Any decode
// failure returns an empty profile, never an error.
func DecodePayload(credential string) models.Profile {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return models.Profile{}
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	picture, _ := claims["picture"].(string)
	return models.Profile{Name: name, Email: email, Picture: picture}
}

// CheckAudience reports whether the credential's aud claim matches the
// configured widget client ID. An empty clientID disables the check; with a
// clientID set, a credential that cannot be decoded fails it.
func CheckAudience(credential string, clientID string) bool {
	if clientID == "" {
		return true
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return false
	}
	return claims.VerifyAudience(clientID, true)
}
