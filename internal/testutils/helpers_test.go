package testutils

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTemp(t *testing.T) {
	path := WriteTemp(t, "script.yaml", "name: x\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name: x\n", string(data))
}

func TestRecorder(t *testing.T) {
	var rec Recorder[int]

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			rec.Record(v)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, rec.Count())
	states := rec.States()
	states[0] = -1
	assert.NotEqual(t, -1, rec.States()[0], "States must return a copy")
}
