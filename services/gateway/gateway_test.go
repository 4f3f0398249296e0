package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"servecure/services/gateway"
)

func TestAuthedGetAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"value":"ok"}`))
	}))
	defer srv.Close()

	var out struct {
		Value string `json:"value"`
	}
	if err := gateway.NewClient().AuthedGet(context.Background(), srv.URL, "tok-123", &out); err != nil {
		t.Fatalf("AuthedGet error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
	if out.Value != "ok" {
		t.Errorf("decoded value = %q", out.Value)
	}
}

func TestPostSendsJSONWithoutAuth(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := gateway.NewClient().Post(context.Background(), srv.URL, map[string]string{"auth": "cred"}, nil)
	if err != nil {
		t.Fatalf("Post error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("unauthenticated post carried Authorization %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
}

func TestNonOKStatusBecomesAPIError(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		wantMsg string
	}{
		{"message field", `{"message":"Booking slot taken"}`, http.StatusConflict, "Booking slot taken"},
		{"error field", `{"error":"Unauthorized"}`, http.StatusUnauthorized, "Unauthorized"},
		{"unusable body", `<html>oops</html>`, http.StatusBadGateway, "Request failed"},
		{"empty body", ``, http.StatusInternalServerError, "Request failed"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := gateway.NewClient().AuthedGet(context.Background(), srv.URL, "tok", nil)
			var apiErr *gateway.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %v is not an APIError", err)
			}
			if apiErr.Status != tc.status {
				t.Errorf("status = %d, want %d", apiErr.Status, tc.status)
			}
			if apiErr.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", apiErr.Message, tc.wantMsg)
			}
		})
	}
}

func TestMalformedSuccessBodyReadsAsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"services": [broken`))
	}))
	defer srv.Close()

	var out struct {
		Services []string `json:"services"`
	}
	if err := gateway.NewClient().AuthedGet(context.Background(), srv.URL, "tok", &out); err != nil {
		t.Fatalf("malformed success body must not fail the caller, got %v", err)
	}
	if len(out.Services) != 0 {
		t.Errorf("out = %+v, want zero value", out)
	}
}
