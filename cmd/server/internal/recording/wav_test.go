package recording

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	in := []float32{0, 0.5, -0.5, 1, -1, 2, -2}

	require.NoError(t, writeWAV(path, in, 16000))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	require.Equal(t, 1, buf.Format.NumChannels)
	require.Equal(t, 16000, buf.Format.SampleRate)
	require.Len(t, buf.Data, len(in))

	assert.Equal(t, 0, buf.Data[0])
	assert.Equal(t, 16383, buf.Data[1])
	assert.Equal(t, -16383, buf.Data[2])
	// out-of-range samples clamp to full scale
	assert.Equal(t, 32767, buf.Data[3])
	assert.Equal(t, -32767, buf.Data[4])
	assert.Equal(t, 32767, buf.Data[5])
	assert.Equal(t, -32767, buf.Data[6])
}

func TestWriteWAVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wav")
	require.NoError(t, writeWAV(path, nil, 16000))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
