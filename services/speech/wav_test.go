package speech

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWave(t *testing.T, mutate func(*waveHeader)) []byte {
	t.Helper()
	header := waveHeader{
		FileSize:      36,
		FmtSize:       16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    16000,
		ByteRate:      32000,
		BlockAlign:    2,
		BitsPerSample: 16,
		DataSize:      32000, // one second of audio
	}
	copy(header.RiffTag[:], "RIFF")
	copy(header.WaveTag[:], "WAVE")
	copy(header.FmtTag[:], "fmt ")
	copy(header.DataTag[:], "data")
	if mutate != nil {
		mutate(&header)
	}

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, &header))
	return buf.Bytes()
}

func TestValidateWave(t *testing.T) {
	t.Run("valid mono 16-bit PCM", func(t *testing.T) {
		header, err := validateWave(buildWave(t, nil))
		require.NoError(t, err)
		assert.Equal(t, uint32(16000), header.SampleRate)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := validateWave([]byte("tiny"))
		assert.Error(t, err)
	})

	t.Run("not a wave file", func(t *testing.T) {
		_, err := validateWave(buildWave(t, func(h *waveHeader) {
			copy(h.RiffTag[:], "OGGS")
		}))
		assert.Error(t, err)
	})

	t.Run("stereo rejected", func(t *testing.T) {
		_, err := validateWave(buildWave(t, func(h *waveHeader) {
			h.NumChannels = 2
		}))
		assert.Error(t, err)
	})

	t.Run("non-PCM rejected", func(t *testing.T) {
		_, err := validateWave(buildWave(t, func(h *waveHeader) {
			h.AudioFormat = 7
		}))
		assert.Error(t, err)
	})

	t.Run("over the duration cap", func(t *testing.T) {
		_, err := validateWave(buildWave(t, func(h *waveHeader) {
			h.DataSize = h.ByteRate * (MaxDurationSeconds + 10)
		}))
		assert.Error(t, err)
	})
}
