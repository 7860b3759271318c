package logger

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newBufferedLogger(buf *bytes.Buffer) *ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	l := zap.New(core)
	return &ZapLogger{Logger: l, sugar: l.Sugar()}
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := NewZapLogger(ZapConfig{Level: "loud"}, nil)
	require.NoError(t, err)
	defer l.Close()

	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := t.TempDir() + "/logs/escort.log"

	l, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path}, nil)
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, l.Close())

	assert.Equal(t, path, l.filePath)
	assert.NotNil(t, l.file)
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferedLogger(&buf)

	l.LogHTTPRequest(nil, http.MethodGet, "/api/intents", "127.0.0.1", "u1", "r1", http.StatusOK, time.Millisecond, nil)
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), "Request processed")

	buf.Reset()
	l.LogHTTPRequest(nil, http.MethodGet, "/api/intents", "127.0.0.1", "u1", "r1", http.StatusConflict, time.Millisecond, nil)
	assert.Contains(t, buf.String(), `"level":"warn"`)

	buf.Reset()
	l.LogHTTPRequest(nil, http.MethodGet, "/api/intents", "127.0.0.1", "u1", "r1", http.StatusInternalServerError, time.Millisecond, errors.New("boom"))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "boom")
}

func TestZapEchoMiddleware_LogsUserAndStatus(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferedLogger(&buf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-123")

	handler := ZapEchoMiddleware(l)(func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	require.NoError(t, handler(c))
	assert.Contains(t, buf.String(), "user-123")
	assert.Contains(t, buf.String(), `"status":201`)
}

func TestGlobalLogger_DefaultWhenUnset(t *testing.T) {
	SetGlobalLogger(nil)
	assert.NotNil(t, GetGlobalLogger())

	var buf bytes.Buffer
	SetGlobalLogger(newBufferedLogger(&buf))
	Info("from global", String("k", "v"))
	assert.Contains(t, buf.String(), "from global")
}
