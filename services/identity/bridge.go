// File: services/identity/bridge.go
package identity

import (
	"context"

	"servecure/models"
	"servecure/services/gateway"
	"servecure/services/session"
	"servecure/utils"

	"go.uber.org/zap"
)

// Bridge wraps the external sign-in widget's calling convention: the widget
// hands over a credential, the bridge persists the identity and exchanges
// the credential for a server API token.
type Bridge interface {
	// SignIn persists the decoded identity immediately, then runs the
	// create-user exchange. clientIP is the caller's address as seen on the
	// request; when empty the bridge falls back to the public-IP lookup.
	// A failed exchange leaves the client signed in with the identity token
	// only; it never rolls the sign-in back.
	SignIn(ctx context.Context, sid string, credential string, clientIP string) models.Session

	// SignOut clears the persisted session. The returned flag tells the
	// widget to forget its auto-select preference; it is advisory and the
	// sign-out succeeds regardless.
	SignOut(ctx context.Context, sid string) bool
}

// CreateUserRequest is the body of the create-or-sync-user exchange.
type CreateUserRequest struct {
	Auth      string `json:"auth"`
	IPAddress string `json:"ip_address"`
}

// createUserResponse accepts either token field name the endpoint has been
// observed to return.
type createUserResponse struct {
	Token    string `json:"token"`
	APIToken string `json:"apiToken"`
}

// DefaultBridge implements Bridge against the session store and the
// request gateway.
type DefaultBridge struct {
	Sessions      session.Store
	Gateway       *gateway.Client
	CreateUserURL string
	IP            *IPResolver
}

func (b *DefaultBridge) SignIn(ctx context.Context, sid string, credential string, clientIP string) models.Session {
	logger := utils.GetLogger()

	profile := DecodePayload(credential)

	// Persist identity first so the client is signed in regardless of what
	// the exchange below does. Repeated sign-ins simply overwrite.
	if err := b.Sessions.Save(ctx, sid, credential, profile, ""); err != nil {
		logger.Warn("Failed to persist identity", zap.String("sid", sid), zap.Error(err))
	}

	ip := clientIP
	if ip == "" && b.IP != nil {
		ip = b.IP.Lookup(ctx)
	}

	var resp createUserResponse
	err := b.Gateway.Post(ctx, b.CreateUserURL, CreateUserRequest{Auth: credential, IPAddress: ip}, &resp)
	if err != nil {
		logger.Warn("Create-user exchange failed, keeping identity-only session",
			zap.String("sid", sid), zap.Error(err))
		return models.Session{IdentityToken: credential, Profile: profile}
	}

	serverToken := resp.Token
	if serverToken == "" {
		serverToken = resp.APIToken
	}
	if err := b.Sessions.Save(ctx, sid, credential, profile, serverToken); err != nil {
		logger.Warn("Failed to persist exchanged session", zap.String("sid", sid), zap.Error(err))
	}
	return models.Session{IdentityToken: credential, Profile: profile, APIToken: serverToken}
}

func (b *DefaultBridge) SignOut(ctx context.Context, sid string) bool {
	logger := utils.GetLogger()
	if err := b.Sessions.Clear(ctx, sid); err != nil {
		// Best effort; the client still treats itself as signed out.
		logger.Warn("Failed to clear session", zap.String("sid", sid), zap.Error(err))
	}
	return true
}
