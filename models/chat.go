package models

// Chat senders. App messages are also vocalized; user messages are not.
const (
	SenderUser = "user"
	SenderApp  = "app"
)

// ChatMessage is one row of the chat transcript projection.
type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// SpeechRequest asks the vocalization collaborator to speak a message.
// Fire-and-forget; nothing is read back.
type SpeechRequest struct {
	Text      string  `json:"text"`
	Rate      float64 `json:"rate"`
	VoiceHint string  `json:"voiceHint,omitempty"`
}

// PaymentArtifact is the scannable code rendered after a successful
// finalize: the UPI deep link plus its QR code PNG.
type PaymentArtifact struct {
	Total   int    `json:"total"`
	UPILink string `json:"upiLink"`
	PNG     []byte `json:"png,omitempty"`
}
