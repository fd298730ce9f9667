package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrdecode/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("scan", slog.String("file", "a.png"), slog.Int("n", 2))
	require.Equal(t, "scan", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "file", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")
	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRunID(t *testing.T) {
	attr := logger.RunID("abc")
	require.Equal(t, "run_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())

	assert.True(t, logger.RunID(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, "kind", logger.Kind("raw").Key)
	assert.Equal(t, int64(5), logger.InputSize(5).Value.Int64())
	assert.Equal(t, int64(7), logger.OutputSize(7).Value.Int64())
	assert.Equal(t, "out/file.bin", logger.Path("out/file.bin").Value.String())
	assert.Equal(t, "scanner", logger.Component("scanner").Value.String())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Any())
}
