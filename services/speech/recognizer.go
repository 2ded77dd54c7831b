package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

// Recognizer is the speech-input collaborator: it turns one recorded
// utterance into a final lowercase transcript. The core never sees
// partial or interim results.
type Recognizer interface {
	Recognize(ctx context.Context, wav []byte, language string) (string, error)
}

// GoogleRecognizer recognizes WAV uploads through Google Cloud Speech.
type GoogleRecognizer struct {
	CredentialsFile string
}

func NewGoogleRecognizer(credentialsFile string) *GoogleRecognizer {
	return &GoogleRecognizer{CredentialsFile: credentialsFile}
}

// Recognize validates the audio, runs one non-streaming recognition and
// returns the top alternative of the first result, lowercased.
func (g *GoogleRecognizer) Recognize(ctx context.Context, wav []byte, language string) (string, error) {
	header, err := validateWave(wav)
	if err != nil {
		return "", fmt.Errorf("invalid audio: %w", err)
	}

	var opts []option.ClientOption
	if g.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(g.CredentialsFile))
	}
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to initialize speech client: %w", err)
	}
	defer client.Close()

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   int32(header.SampleRate),
			LanguageCode:      language,
			AudioChannelCount: 1, // Mono
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: wav,
			},
		},
	}

	resp, err := client.Recognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}
	if len(resp.Results) == 0 || len(resp.Results[0].Alternatives) == 0 {
		return "", errors.New("no speech recognized")
	}

	transcript := resp.Results[0].Alternatives[0].Transcript
	return strings.ToLower(strings.TrimSpace(transcript)), nil
}
