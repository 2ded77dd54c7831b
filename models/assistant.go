package models

// AssistantResponse is everything the front end needs to render after one
// voice command: chat rows, speech to vocalize, the current order table,
// and the payment artifact when an order was just placed.
type AssistantResponse struct {
	SessionID     string           `json:"sessionId"`
	Messages      []ChatMessage    `json:"messages"`
	Speech        []SpeechRequest  `json:"speech"`
	Order         Order            `json:"order"`
	Payment       *PaymentArtifact `json:"payment,omitempty"`
	ClearPayment  bool             `json:"clearPayment,omitempty"`
	CaptureActive bool             `json:"captureActive"`
}
