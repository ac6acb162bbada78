package app

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// StaticSource serves a fixed set of paragraphs, or Err when set.
type StaticSource struct {
	Items []string
	Err   error
}

func (s StaticSource) Paragraphs(context.Context) ([]string, error) {
	return s.Items, s.Err
}

// SetupAppTest creates a new app instance that writes formatted text and
// debug logs into the returned buffers.
func SetupAppTest(t *testing.T, cfg *Config, src Source) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(out, logBuffer, cfg, src)

	t.Cleanup(func() {
		if os.Getenv("ALIGNTEXT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer
}
