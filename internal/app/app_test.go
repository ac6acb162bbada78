package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/aligntext/internal/align"
	"github.com/specialistvlad/aligntext/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConfig(t *testing.T, cfg Config) *Config {
	t.Helper()
	if cfg.InputPath == "" {
		cfg.InputPath = "input.txt"
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	c, err := NewConfig(cfg)
	require.NoError(t, err)
	return c
}

func TestNewConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg, err := NewConfig(Config{InputPath: "in.txt", Width: 10, Workers: 1})
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Width)
		assert.Equal(t, align.Right, cfg.Mode)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := NewConfig(Config{Width: 10, Workers: 1})
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("non-positive width", func(t *testing.T) {
		for _, w := range []int{0, -3} {
			_, err := NewConfig(Config{InputPath: "in.txt", Width: w, Workers: 1})
			assert.ErrorIs(t, err, ErrInvalidWidth)
		}
	})

	t.Run("workers", func(t *testing.T) {
		_, err := NewConfig(Config{InputPath: "in.txt", Width: 10})
		assert.ErrorContains(t, err, "Workers must be at least 1")
	})
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	cfg := mustConfig(t, Config{Width: 10, Mode: align.Justify})
	src := StaticSource{Items: []string{"aa bb cc dd ee", "", "solo"}}
	testApp, out, logs := SetupAppTest(t, cfg, src)

	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, "aa  bb  cc\ndd ee\nsolo\n", out.String())
	assert.Contains(t, logs.String(), "Formatting finished.")
	assert.Contains(t, logs.String(), "lines=3")
}

func TestApp_Run_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	var items []string
	for i := 0; i < 20; i++ {
		items = append(items, "lorem ipsum dolor sit amet consectetur adipiscing elit")
	}

	seqApp, seqOut, _ := SetupAppTest(t, mustConfig(t, Config{Width: 12, Mode: align.Center}), StaticSource{Items: items})
	parApp, parOut, _ := SetupAppTest(t, mustConfig(t, Config{Width: 12, Mode: align.Center, Workers: 4}), StaticSource{Items: items})

	require.NoError(t, seqApp.Run(context.Background()))
	require.NoError(t, parApp.Run(context.Background()))
	assert.Equal(t, seqOut.String(), parOut.String())
}

func TestApp_Run_SourceErrorWritesNothing(t *testing.T) {
	t.Parallel()

	readErr := errors.New("disk on fire")
	testApp, out, _ := SetupAppTest(t, mustConfig(t, Config{Width: 10}), StaticSource{Err: readErr})

	err := testApp.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "failed to read input")
	assert.Empty(t, out.String())
}

func TestApp_Run_FileSourceAndOutputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("one two three\nfour"), 0o600))

	cfg := mustConfig(t, Config{InputPath: in, OutputPath: outPath, Width: 8})
	testApp, out, _ := SetupAppTest(t, cfg, source.NewFile(in, source.ByLine))

	require.NoError(t, testApp.Run(context.Background()))
	assert.Empty(t, out.String(), "output file replaces the writer")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, " one two\n   three\n    four\n", string(data))
}

func TestApp_Run_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	testApp, out, _ := SetupAppTest(t, mustConfig(t, Config{Width: 10}), StaticSource{Items: []string{"a b"}})
	err := testApp.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestNewLogger_Levels(t *testing.T) {
	buf := &SafeBuffer{}
	logger := newLogger("error", "json", buf)
	logger.Warn("hidden")
	logger.Error("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf = &SafeBuffer{}
	logger = newLogger("bogus", "text", buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
