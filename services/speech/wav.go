package speech

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	MaxDurationSeconds = 60              // 1 minute maximum
	MaxFileSize        = 5 * 1024 * 1024 // 5MB (conservative buffer)
	AllowedExtension   = ".wav"
)

type waveHeader struct {
	RiffTag       [4]byte
	FileSize      uint32
	WaveTag       [4]byte
	FmtTag        [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataTag       [4]byte
	DataSize      uint32
}

func parseWaveHeader(data []byte) (*waveHeader, error) {
	if len(data) < 44 {
		return nil, errors.New("invalid WAV header length")
	}

	var header waveHeader
	buf := bytes.NewReader(data)
	if err := binary.Read(buf, binary.LittleEndian, &header); err != nil {
		return nil, err
	}

	if string(header.RiffTag[:]) != "RIFF" || string(header.WaveTag[:]) != "WAVE" {
		return nil, errors.New("not a RIFF/WAVE file")
	}
	return &header, nil
}

// validateWave checks the upload is mono 16-bit PCM within the duration
// cap before it is sent to the recognition API.
func validateWave(data []byte) (*waveHeader, error) {
	header, err := parseWaveHeader(data)
	if err != nil {
		return nil, err
	}
	if header.AudioFormat != 1 {
		return nil, errors.New("audio must be PCM encoded")
	}
	if header.NumChannels != 1 {
		return nil, errors.New("audio must be mono")
	}
	if header.BitsPerSample != 16 {
		return nil, errors.New("audio must be 16-bit")
	}
	if header.ByteRate > 0 {
		duration := int(header.DataSize) / int(header.ByteRate)
		if duration > MaxDurationSeconds {
			return nil, errors.New("audio exceeds maximum duration")
		}
	}
	return header, nil
}
