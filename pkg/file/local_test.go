package file_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrdecode/pkg/file"
)

type failingReader struct{ after []byte }

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.after) > 0 {
		n := copy(p, r.after)
		r.after = r.after[n:]
		return n, nil
	}
	return 0, errors.New("read failed")
}

func TestNewLocalStorage(t *testing.T) {
	t.Parallel()

	t.Run("creates base directory", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nested", "out")
		storage, err := file.NewLocalStorage(dir)
		require.NoError(t, err)
		require.NotNil(t, storage)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("empty base directory", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewLocalStorage("")
		assert.ErrorIs(t, err, file.ErrInvalidConfig)
	})
}

func TestLocalStorage_Save(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	storage, err := file.NewLocalStorage(tempDir)
	require.NoError(t, err)

	t.Run("save simple file", func(t *testing.T) {
		t.Parallel()
		content := []byte("hello world")

		f, err := storage.Save(context.Background(), "test.txt", bytes.NewReader(content))
		require.NoError(t, err)
		require.NotNil(t, f)

		assert.Equal(t, "test.txt", f.Filename)
		assert.Equal(t, int64(len(content)), f.Size)
		assert.Equal(t, ".txt", f.Extension)
		assert.Equal(t, "test.txt", f.RelativePath)
		assert.Equal(t, "text/plain; charset=utf-8", f.MIMEType)

		data, err := os.ReadFile(f.AbsolutePath)
		require.NoError(t, err)
		assert.Equal(t, content, data)

		info, err := os.Stat(f.AbsolutePath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("save in nested directory", func(t *testing.T) {
		t.Parallel()
		content := []byte("%PDF-1.4")

		f, err := storage.Save(context.Background(), "scans/2024/report.pdf", bytes.NewReader(content))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("scans", "2024", "report.pdf"), f.RelativePath)
		assert.Equal(t, "application/pdf", f.MIMEType)
		assert.FileExists(t, filepath.Join(tempDir, "scans", "2024", "report.pdf"))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()
		_, err := storage.Save(context.Background(), "twice.bin", bytes.NewReader([]byte("first version")))
		require.NoError(t, err)
		f, err := storage.Save(context.Background(), "twice.bin", bytes.NewReader([]byte("v2")))
		require.NoError(t, err)

		data, err := os.ReadFile(f.AbsolutePath)
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), data)
	})

	t.Run("large content", func(t *testing.T) {
		t.Parallel()
		content := bytes.Repeat([]byte{0x00, 0xff}, 64*1024)

		f, err := storage.Save(context.Background(), "large.bin", bytes.NewReader(content))
		require.NoError(t, err)
		assert.Equal(t, int64(len(content)), f.Size)
		assert.Equal(t, "application/octet-stream", f.MIMEType)
	})

	t.Run("path traversal", func(t *testing.T) {
		t.Parallel()
		_, err := storage.Save(context.Background(), "../../etc/passwd", bytes.NewReader([]byte("x")))
		assert.ErrorIs(t, err, file.ErrInvalidPath)
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		_, err := storage.Save(context.Background(), " ", bytes.NewReader([]byte("x")))
		assert.ErrorIs(t, err, file.ErrInvalidPath)
	})

	t.Run("target is a directory", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "somedir"), 0o755))
		_, err := storage.Save(context.Background(), "somedir", bytes.NewReader([]byte("x")))
		assert.ErrorIs(t, err, file.ErrIsDirectory)
	})

	t.Run("read failure removes partial file", func(t *testing.T) {
		t.Parallel()
		_, err := storage.Save(context.Background(), "partial.bin", &failingReader{after: bytes.Repeat([]byte("a"), 600)})
		require.Error(t, err)
		assert.ErrorIs(t, err, file.ErrFailedToReadFile)
		assert.NoFileExists(t, filepath.Join(tempDir, "partial.bin"))
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := storage.Save(ctx, "canceled.txt", bytes.NewReader([]byte("x")))
		assert.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, filepath.Join(tempDir, "canceled.txt"))
	})
}

func TestLocalStorage_WithTimeout(t *testing.T) {
	t.Parallel()
	storage, err := file.NewLocalStorage(t.TempDir(), file.WithLocalWriteTimeout(time.Second))
	require.NoError(t, err)

	f, err := storage.Save(context.Background(), "fast.txt", bytes.NewReader([]byte("fast")))
	require.NoError(t, err)
	assert.Equal(t, int64(4), f.Size)
}

func TestLocalStorage_Exists(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	storage, err := file.NewLocalStorage(tempDir)
	require.NoError(t, err)

	_, err = storage.Save(context.Background(), "present.txt", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	assert.True(t, storage.Exists(context.Background(), "present.txt"))
	assert.False(t, storage.Exists(context.Background(), "absent.txt"))
	assert.False(t, storage.Exists(context.Background(), "../outside.txt"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, storage.Exists(ctx, "present.txt"))
}

func TestLocalStorage_URL(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	storage, err := file.NewLocalStorage(tempDir)
	require.NoError(t, err)

	abs, err := filepath.Abs(tempDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(abs, "out", "result.bin"), storage.URL("out/result.bin"))
}

func TestLocalStorage_RootBaseDir(t *testing.T) {
	t.Parallel()
	root := string(filepath.Separator)
	storage, err := file.NewLocalStorage(root)
	require.NoError(t, err)

	dir := t.TempDir()
	rel, err := filepath.Rel(root, dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "present.txt"), []byte("x"), 0o644))

	assert.True(t, storage.Exists(context.Background(), rel))
	assert.True(t, storage.Exists(context.Background(), filepath.Join(rel, "present.txt")))
	assert.Equal(t, filepath.Join(dir, "out.txt"), storage.URL(filepath.Join(rel, "out.txt")))

	f, err := storage.Save(context.Background(), filepath.Join(rel, "saved.txt"), bytes.NewReader([]byte("saved")))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "saved.txt"), f.AbsolutePath)
}

func TestLocalStorage_RejectsSiblingWithSharedPrefix(t *testing.T) {
	t.Parallel()
	parent := t.TempDir()
	base := filepath.Join(parent, "out")
	storage, err := file.NewLocalStorage(base)
	require.NoError(t, err)

	_, err = storage.Save(context.Background(), "../out-other/x.txt", bytes.NewReader([]byte("x")))
	assert.ErrorIs(t, err, file.ErrInvalidPath)
	assert.NoFileExists(t, filepath.Join(parent, "out-other", "x.txt"))

	_, err = storage.Save(context.Background(), ".", bytes.NewReader([]byte("x")))
	assert.ErrorIs(t, err, file.ErrInvalidPath)
}
