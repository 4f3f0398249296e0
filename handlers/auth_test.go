package handlers_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servecure/config"
	"servecure/handlers"
	"servecure/middleware"
	"servecure/models"
	"servecure/services/session"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore is an in-memory session.Store for tests.
type fakeStore struct {
	records map[string]models.Session
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]models.Session)}
}

func (f *fakeStore) Load(_ context.Context, sid string) models.Session {
	return f.records[sid]
}

func (f *fakeStore) Save(_ context.Context, sid string, identityToken string, profile models.Profile, apiToken string) error {
	f.records[sid] = models.Session{IdentityToken: identityToken, Profile: profile, APIToken: apiToken}
	return nil
}

func (f *fakeStore) Clear(_ context.Context, sid string) error {
	delete(f.records, sid)
	return nil
}

func (f *fakeStore) CurrentAPIToken(_ context.Context, sid string) string {
	return f.records[sid].BearerToken()
}

var _ session.Store = (*fakeStore)(nil)

// fakeBridge records sign-in/out calls and returns a fixed session.
type fakeBridge struct {
	store      *fakeStore
	exchangeOK bool
	gotIP      string
}

func (b *fakeBridge) SignIn(ctx context.Context, sid string, credential string, clientIP string) models.Session {
	b.gotIP = clientIP
	apiToken := ""
	if b.exchangeOK {
		apiToken = "srv-token"
	}
	profile := models.Profile{Email: "asha@example.com"}
	b.store.Save(ctx, sid, credential, profile, apiToken)
	return models.Session{IdentityToken: credential, Profile: profile, APIToken: apiToken}
}

func (b *fakeBridge) SignOut(ctx context.Context, sid string) bool {
	b.store.Clear(ctx, sid)
	return true
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, "sid-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func authRouter(store *fakeStore, bridge *fakeBridge) *gin.Engine {
	h := handlers.NewAuthHandler(bridge, store)
	r := gin.New()
	api := r.Group("/api/auth")
	api.Use(middleware.SessionMiddleware(true))
	api.POST("/google", h.GoogleSignInHandler)
	api.POST("/signout", h.SignOutHandler)
	api.GET("/session", h.SessionHandler)
	return r
}

func TestGoogleSignInSuccess(t *testing.T) {
	store := newFakeStore()
	r := authRouter(store, &fakeBridge{store: store, exchangeOK: true})

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/google", `{"credential":"tok"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if body["signed_in"] != true {
		t.Errorf("signed_in = %v", body["signed_in"])
	}
	if body["identity_only"] != false {
		t.Errorf("identity_only = %v", body["identity_only"])
	}
	if _, leaked := body["identity_token"]; leaked {
		t.Errorf("response leaked the identity token")
	}
}

func TestGoogleSignInIdentityOnlyMode(t *testing.T) {
	store := newFakeStore()
	r := authRouter(store, &fakeBridge{store: store})

	_, body := doJSON(t, r, http.MethodPost, "/api/auth/google", `{"credential":"tok"}`)
	if body["identity_only"] != true {
		t.Errorf("identity_only = %v, want true after failed exchange", body["identity_only"])
	}
}

func TestGoogleSignInRequiresCredential(t *testing.T) {
	store := newFakeStore()
	r := authRouter(store, &fakeBridge{store: store})

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/google", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGoogleSignInForwardsClientIP(t *testing.T) {
	store := newFakeStore()
	bridge := &fakeBridge{store: store, exchangeOK: true}
	r := authRouter(store, bridge)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/google", strings.NewReader(`{"credential":"tok"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, "sid-1")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if bridge.gotIP != "203.0.113.9" {
		t.Errorf("bridge received IP %q, want the forwarded address", bridge.gotIP)
	}
}

func TestGoogleSignInRejectsForeignAudience(t *testing.T) {
	config.AppConfig.GoogleClientID = "expected-client"
	defer func() { config.AppConfig.GoogleClientID = "" }()

	store := newFakeStore()
	r := authRouter(store, &fakeBridge{store: store, exchangeOK: true})

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"aud":"someone-else"}`))
	cred := header + "." + payload + ".sig"

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/google", `{"credential":"`+cred+`"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for foreign audience", w.Code)
	}
	if store.Load(context.Background(), "sid-1").SignedIn() {
		t.Fatalf("rejected credential still signed the session in")
	}
}

func TestSignOutThenSessionReadsLoggedOut(t *testing.T) {
	store := newFakeStore()
	r := authRouter(store, &fakeBridge{store: store, exchangeOK: true})

	doJSON(t, r, http.MethodPost, "/api/auth/google", `{"credential":"tok"}`)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/signout", "")
	if w.Code != http.StatusOK || body["disable_auto_select"] != true {
		t.Fatalf("signout = %d %v", w.Code, body)
	}

	_, sess := doJSON(t, r, http.MethodGet, "/api/auth/session", "")
	if sess["signed_in"] != false {
		t.Errorf("session after signout = %v", sess)
	}
}

func TestSessionEndpointNeverReturnsTokens(t *testing.T) {
	store := newFakeStore()
	store.Save(context.Background(), "sid-1", "id-token", models.Profile{Email: "a@b.c"}, "api-token")
	r := authRouter(store, &fakeBridge{store: store})

	_, body := doJSON(t, r, http.MethodGet, "/api/auth/session", "")
	raw, _ := json.Marshal(body)
	if strings.Contains(string(raw), "id-token") || strings.Contains(string(raw), "api-token") {
		t.Fatalf("session response leaked a token: %s", raw)
	}
	if body["signed_in"] != true {
		t.Errorf("signed_in = %v", body["signed_in"])
	}
}

func TestMissingSessionHeaderRejected(t *testing.T) {
	store := newFakeStore()
	r := authRouter(store, &fakeBridge{store: store})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status without session header = %d, want 400", w.Code)
	}
}
