package testutils

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTemp writes content to name inside a fresh temp dir and returns the absolute path.
// It fails the test immediately on error.
func WriteTemp(t *testing.T, name, content string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join(t.TempDir(), name))
	require.NoError(t, err, "Failed to get absolute path for temp file")

	require.NoError(t, os.WriteFile(absPath, []byte(content), 0o644), "Failed to write temp file")
	return absPath
}

// Recorder collects the states a subscriber receives. Safe for concurrent use.
type Recorder[S any] struct {
	mu     sync.Mutex
	states []S
}

// Record is the subscriber callback.
func (r *Recorder[S]) Record(s S) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

// States returns a copy of everything recorded so far.
func (r *Recorder[S]) States() []S {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]S(nil), r.states...)
}

// Count returns how many states were recorded.
func (r *Recorder[S]) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}
