package models

import "time"

// Session correlates finalize/cancel requests with one order.
// It is created on load and regenerated on an explicit new-order action.
type Session struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionSnapshot is what the session store persists between requests.
// CaptureActive mirrors the client's voice-capture toggle so a reloaded
// page comes back in a consistent state.
type SessionSnapshot struct {
	Session       Session `json:"session"`
	Order         Order   `json:"order"`
	CaptureActive bool    `json:"captureActive"`
}
