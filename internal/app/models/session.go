package models

import "time"

// Session is the JSON blob stored in Redis under the session id. Older
// mobile clients wrote the user id under different keys (uid, userId or
// the document id), so all three variants are kept on the struct and
// normalized through ActorUserID.
type Session struct {
	SessionID string    `json:"session_id"`
	UID       string    `json:"uid,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	DocID     string    `json:"$id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// ActorUserID returns the first non-empty legacy user id variant.
func (s *Session) ActorUserID() string {
	for _, candidate := range []string{s.UID, s.UserID, s.DocID} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// ActorContext is the canonical identity every authorization decision is
// computed against. It is built once per request at the session boundary;
// nothing below that layer touches the raw session fields.
type ActorContext struct {
	UserID string
	Email  string
	Role   string
}
