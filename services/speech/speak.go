package speech

import "brewvoice/models"

// Vocalization defaults. The front end speaks app replies slightly faster
// than normal and prefers the Zira voice when the browser has it.
const (
	DefaultRate      = 1.2
	DefaultVoiceHint = "zira"
)

// NewRequest builds a speech request with the default rate and voice hint.
// Delivery is fire-and-forget; overlapping requests queue at the
// vocalization collaborator's discretion.
func NewRequest(text string) models.SpeechRequest {
	return models.SpeechRequest{
		Text:      text,
		Rate:      DefaultRate,
		VoiceHint: DefaultVoiceHint,
	}
}
