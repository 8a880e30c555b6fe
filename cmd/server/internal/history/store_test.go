package history

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditvox/auditvox/cmd/server/internal/auditerr"
)

func TestAppendAndAll(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.All())

	e1 := s.Append("a.wav", "recordings/x/a.wav", "first")
	e2 := s.Append("b.wav", "recordings/x/b.wav", "second")

	assert.Equal(t, "a.wav", e1.Filename)
	assert.NotEmpty(t, e1.Timestamp)

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, e1, all[0])
	assert.Equal(t, e2, all[1])
}

func TestAllReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append("a.wav", "recordings/x/a.wav", "first")

	all := s.All()
	all[0].Transcription = "mutated"

	assert.Equal(t, "first", s.All()[0].Transcription)
}

func TestByPath(t *testing.T) {
	s := NewStore()
	s.Append("a.wav", "recordings/x/a.wav", "first")
	s.Append("a.wav", "recordings/x/a.wav", "re-transcribed")

	// duplicates are kept; lookup returns the first match
	assert.Equal(t, 2, s.Len())
	got, err := s.ByPath("recordings/x/a.wav")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Transcription)
}

func TestByPathNotFound(t *testing.T) {
	s := NewStore()
	_, err := s.ByPath("recordings/missing.wav")
	require.Error(t, err)
	assert.Equal(t, auditerr.NOT_FOUND, auditerr.CodeOf(err))
}

func TestConcurrentAppend(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Append(fmt.Sprintf("f%d.wav", n), fmt.Sprintf("recordings/f%d.wav", n), "text")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
