package recording

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditvox/auditvox/cmd/server/internal/auditerr"
	"github.com/auditvox/auditvox/cmd/server/internal/history"
	"github.com/auditvox/auditvox/cmd/server/internal/speech"
)

// small rates keep segment boundaries cheap to cross in tests
const (
	testSampleRate     = 100
	testSegmentSeconds = 1
)

func newTestService(t *testing.T) (*Service, *MockDevice, *speech.MockTranscriber, *history.Store) {
	t.Helper()
	device := &MockDevice{}
	transcriber := speech.NewMockTranscriber()
	hist := history.NewStore()

	svc, err := NewService(device, transcriber, hist, Options{
		RecordingsDir:   t.TempDir(),
		SampleRate:      testSampleRate,
		SegmentSeconds:  testSegmentSeconds,
		DefaultLanguage: "fr",
	})
	require.NoError(t, err)
	return svc, device, transcriber, hist
}

func samples(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = 0.25
	}
	return out
}

func TestStartRejectsDoubleStart(t *testing.T) {
	svc, device, _, _ := newTestService(t)

	require.NoError(t, svc.Start("fr"))
	err := svc.Start("fr")
	require.Error(t, err)
	assert.Equal(t, auditerr.ALREADY_RECORDING, auditerr.CodeOf(err))
	assert.Equal(t, 1, device.Started)
}

func TestStartRejectsUnsupportedLanguage(t *testing.T) {
	svc, device, _, _ := newTestService(t)

	err := svc.Start("de")
	require.Error(t, err)
	assert.Equal(t, auditerr.VALIDATION_FAILED, auditerr.CodeOf(err))
	assert.Equal(t, "fr", svc.Language())
	assert.Equal(t, 0, device.Started)

	// the service stays idle and accepts a valid start afterwards
	require.NoError(t, svc.Start("en"))
	assert.Equal(t, "en", svc.Language())
}

func TestStopWithoutStart(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Stop(context.Background())
	require.Error(t, err)
	assert.Equal(t, auditerr.NOT_RECORDING, auditerr.CodeOf(err))
}

func TestSegmentBoundaryTriggersTranscription(t *testing.T) {
	svc, device, transcriber, _ := newTestService(t)
	require.NoError(t, svc.Start("fr"))

	// below one segment: no transcription yet
	device.Push(samples(testSampleRate / 2))
	assert.Equal(t, 0, transcriber.CallCount())
	assert.Empty(t, svc.LiveTranscriptions())

	// crossing the boundary flushes exactly one segment
	device.Push(samples(testSampleRate / 2))
	assert.Equal(t, 1, transcriber.CallCount())

	// second boundary crossing
	device.Push(samples(testSampleRate))
	assert.Equal(t, 2, transcriber.CallCount())

	live := svc.LiveTranscriptions()
	require.Len(t, live, 2)
	assert.Equal(t, 1, live[0].Segment)
	assert.Equal(t, 2, live[1].Segment)
	assert.NotEmpty(t, live[0].Transcription)
	assert.NotEmpty(t, live[0].Timestamp)
}

func TestStopFlushesPartialSegmentAndTranscribesWholeFile(t *testing.T) {
	svc, device, transcriber, hist := newTestService(t)
	require.NoError(t, svc.Start("fr"))

	// two full segments plus a partial one
	device.Push(samples(testSampleRate))
	device.Push(samples(testSampleRate))
	device.Push(samples(testSampleRate / 4))
	assert.Equal(t, 2, transcriber.CallCount())

	res, err := svc.Stop(context.Background())
	require.NoError(t, err)

	// partial flush plus the whole-file transcription
	assert.Equal(t, 4, transcriber.CallCount())
	assert.Len(t, svc.LiveTranscriptions(), 3)

	assert.True(t, strings.HasPrefix(filepath.Base(res.AudioPath), "recording_"))
	assert.NotEmpty(t, res.Transcription)

	info, err := os.Stat(res.AudioPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(44)) // more than a bare wav header

	// whole-file transcription lands in history
	require.Equal(t, 1, hist.Len())
	entry, err := hist.ByPath(res.AudioPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(res.AudioPath), entry.Filename)
}

func TestStopKeepsBufferUntilFileWritten(t *testing.T) {
	svc, device, _, _ := newTestService(t)
	require.NoError(t, svc.Start("fr"))
	device.Push(samples(testSampleRate / 2))

	device.StopErr = assert.AnError
	_, err := svc.Stop(context.Background())
	require.Error(t, err)
	assert.Equal(t, auditerr.CAPTURE_FAILED, auditerr.CodeOf(err))

	// nothing reached disk, so the accumulated samples are still held
	svc.mu.Lock()
	retained := len(svc.fullAudio)
	svc.mu.Unlock()
	assert.Equal(t, testSampleRate/2, retained)
}

func TestStopWithNoAudio(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	require.NoError(t, svc.Start("fr"))

	_, err := svc.Stop(context.Background())
	require.Error(t, err)
	assert.Equal(t, auditerr.VALIDATION_FAILED, auditerr.CodeOf(err))
}

func TestStartResetsSessionState(t *testing.T) {
	svc, device, transcriber, _ := newTestService(t)

	require.NoError(t, svc.Start("fr"))
	device.Push(samples(testSampleRate))
	_, err := svc.Stop(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Start("fr"))
	assert.Empty(t, svc.LiveTranscriptions())

	device.Push(samples(testSampleRate))
	live := svc.LiveTranscriptions()
	require.Len(t, live, 1)
	// segment ordinals restart per session
	assert.Equal(t, 1, live[0].Segment)

	_ = transcriber
}

func TestSamplesIgnoredWhenNotRecording(t *testing.T) {
	svc, device, transcriber, _ := newTestService(t)
	require.NoError(t, svc.Start("fr"))
	device.Push(samples(testSampleRate))
	_, err := svc.Stop(context.Background())
	require.NoError(t, err)

	before := transcriber.CallCount()
	svc.onSamples(samples(testSampleRate * 2))
	assert.Equal(t, before, transcriber.CallCount())
}

func TestSegmentFailureDoesNotAbortSession(t *testing.T) {
	svc, device, transcriber, _ := newTestService(t)
	require.NoError(t, svc.Start("fr"))

	transcriber.Err = auditerr.NewTranscriptionError(assert.AnError)
	device.Push(samples(testSampleRate))
	assert.Empty(t, svc.LiveTranscriptions())

	// later segments recover once the service does
	transcriber.Err = nil
	device.Push(samples(testSampleRate))
	live := svc.LiveTranscriptions()
	require.Len(t, live, 1)
	assert.Equal(t, 2, live[0].Segment)
}

func TestSetLanguage(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	require.NoError(t, svc.SetLanguage("en"))
	assert.Equal(t, "en", svc.Language())

	err := svc.SetLanguage("de")
	require.Error(t, err)
	assert.Equal(t, auditerr.VALIDATION_FAILED, auditerr.CodeOf(err))
	assert.Equal(t, "en", svc.Language())
}

func TestSaveUploadedFileAndTranscribe(t *testing.T) {
	svc, _, transcriber, hist := newTestService(t)

	path, err := svc.SaveUploadedFile("meeting.wav", strings.NewReader("RIFFfake"))
	require.NoError(t, err)
	assert.Equal(t, "meeting.wav", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RIFFfake", string(data))

	text, err := svc.TranscribeFile(context.Background(), path)
	require.NoError(t, err)
	assert.NotEmpty(t, text)
	assert.Equal(t, 1, transcriber.CallCount())
	assert.Equal(t, "fr", transcriber.Calls[0].Language)

	entry, err := hist.ByPath(path)
	require.NoError(t, err)
	assert.Equal(t, text, entry.Transcription)
}

func TestSaveUploadedFileGeneratesName(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	path, err := svc.SaveUploadedFile("", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "uploaded_"))
}

func TestTranscribeFileMissing(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.TranscribeFile(context.Background(), "/does/not/exist.wav")
	require.Error(t, err)
	assert.Equal(t, auditerr.NOT_FOUND, auditerr.CodeOf(err))
}

func TestStartDeviceFailure(t *testing.T) {
	svc, device, _, _ := newTestService(t)
	device.StartErr = assert.AnError

	err := svc.Start("fr")
	require.Error(t, err)
	assert.Equal(t, auditerr.CAPTURE_FAILED, auditerr.CodeOf(err))

	// failed start leaves the service idle
	device.StartErr = nil
	require.NoError(t, svc.Start("fr"))
}
