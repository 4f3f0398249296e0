package models

// ChatRequest is the body sent to the external chat backend.
type ChatRequest struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

// ChatReply is the structured reply from the chat backend.
type ChatReply struct {
	Response         string   `json:"response"`
	Intent           string   `json:"intent,omitempty"`
	Sources          []string `json:"sources,omitempty"`
	SuggestedActions []string `json:"suggested_actions,omitempty"`
}
