// Package history keeps the in-memory record of transcribed audio files for
// the lifetime of the server process.
package history

import (
	"sync"
	"time"

	"github.com/auditvox/auditvox/cmd/server/internal/auditerr"
)

// Entry is one transcribed audio file.
type Entry struct {
	Filename      string `json:"filename"`
	AudioPath     string `json:"audio_path"`
	Transcription string `json:"transcription"`
	Timestamp     string `json:"timestamp"`
}

// Store is a concurrency-safe append-only transcription history. Entries are
// kept in insertion order and never deduplicated: the same file transcribed
// twice produces two entries.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewStore() *Store {
	return &Store{}
}

// Append records a transcription, stamping it with the current local time.
func (s *Store) Append(filename, audioPath, transcription string) Entry {
	entry := Entry{
		Filename:      filename,
		AudioPath:     audioPath,
		Transcription: transcription,
		Timestamp:     time.Now().Format("2006-01-02 15:04:05"),
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	return entry
}

// All returns a copy of every entry in insertion order.
func (s *Store) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ByPath returns the first entry recorded for the given audio path.
func (s *Store) ByPath(audioPath string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.AudioPath == audioPath {
			return e, nil
		}
	}
	return Entry{}, auditerr.NewNotFound("transcription")
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
