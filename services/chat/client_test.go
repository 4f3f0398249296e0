package chat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"servecure/models"
	"servecure/services/chat"
)

func TestSendRoundTrip(t *testing.T) {
	var gotReq models.ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(models.ChatReply{
			Response:         "We offer plumbing, cleaning and more.",
			Intent:           "service_inquiry",
			Sources:          []string{"faq"},
			SuggestedActions: []string{"Browse services", "Contact support"},
		})
	}))
	defer srv.Close()

	reply, ok := chat.NewClient(srv.URL).Send(context.Background(), models.ChatRequest{
		Message:   "What services do you offer?",
		UserID:    "asha@example.com",
		SessionID: "chat-1",
	})
	if !ok {
		t.Fatalf("Send reported degraded reply")
	}
	if gotReq.UserID != "asha@example.com" || gotReq.SessionID != "chat-1" {
		t.Errorf("forwarded request = %+v", gotReq)
	}
	if reply.Intent != "service_inquiry" || len(reply.SuggestedActions) != 2 {
		t.Errorf("reply = %+v", reply)
	}
}

func TestSendDegradesWhenBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	reply, ok := chat.NewClient(srv.URL).Send(context.Background(), models.ChatRequest{Message: "hi"})
	if ok {
		t.Fatalf("Send reported success against a failing backend")
	}
	if reply.Intent != "error" || reply.Response == "" {
		t.Fatalf("degraded reply = %+v", reply)
	}
}

func TestSendDegradesOnUnreachableHost(t *testing.T) {
	// Closed server makes the transport fail outright.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	reply, ok := chat.NewClient(srv.URL).Send(context.Background(), models.ChatRequest{Message: "hi"})
	if ok || reply.Intent != "error" {
		t.Fatalf("reply = %+v, ok = %v", reply, ok)
	}
}

func TestRouteSuggestedAction(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{"View open jobs", "#/careers"},
		{"Explore career opportunities", "#/careers"},
		{"Browse services", "#services"},
		{"Contact support", "#footer"},
		{"Talk to support team", "#footer"},
		{"Something else entirely", ""},
	}
	for _, tc := range tests {
		if got := chat.RouteSuggestedAction(tc.action); got != tc.want {
			t.Errorf("RouteSuggestedAction(%q) = %q, want %q", tc.action, got, tc.want)
		}
	}
}
