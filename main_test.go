package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutcas3/apikit/internal/config"
	"github.com/nutcas3/apikit/internal/httpclient"
)

func init() {
	color.NoColor = true
}

func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"method":"` + r.Method + `","q":"` + r.URL.Query().Get("q") +
			`","token":"` + r.Header.Get("X-Token") + `","body":` + string(b) + `}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRunSend_PrintsStatusAndBody(t *testing.T) {
	server := newEchoServer(t)
	var out bytes.Buffer

	err := runSend(context.Background(), &out, httpclient.New(), config.Default(), server.URL, sendOptions{
		method:  "post",
		body:    `{"a":1}`,
		headers: []string{"X-Token: abc"},
		params:  []string{"q=go"},
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "POST 200 OK")
	assert.Contains(t, out.String(), `"method": "POST"`)
	assert.Contains(t, out.String(), `"q": "go"`)
	assert.Contains(t, out.String(), `"token": "abc"`)
	assert.Contains(t, out.String(), `"a": 1`)
}

func TestRunSend_Query(t *testing.T) {
	server := newEchoServer(t)
	var out bytes.Buffer

	err := runSend(context.Background(), &out, httpclient.New(), config.Default(), server.URL, sendOptions{
		method: "PUT",
		body:   `{"items":[{"id":7}]}`,
		query:  "body.items.0.id",
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "PUT 200 OK")
	assert.Contains(t, out.String(), "\n7\n")
}

func TestRunSend_QueryMiss(t *testing.T) {
	server := newEchoServer(t)

	err := runSend(context.Background(), io.Discard, httpclient.New(), config.Default(), server.URL, sendOptions{
		method: "POST",
		body:   "null",
		query:  "nope",
	})

	assert.ErrorContains(t, err, `query "nope" matched nothing`)
}

func TestRunSend_InvalidURL(t *testing.T) {
	err := runSend(context.Background(), io.Discard, httpclient.New(), config.Default(), "not a url", sendOptions{method: "GET"})

	assert.ErrorIs(t, err, httpclient.ErrInvalidURL)
}

func TestRunSend_BadMethod(t *testing.T) {
	err := runSend(context.Background(), io.Discard, httpclient.New(), config.Default(), "http://x.test", sendOptions{method: "TRACE"})

	assert.ErrorContains(t, err, "unsupported method")
}

func TestReadPiped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"x":1}`), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	body, piped, err := readPiped(f)

	require.NoError(t, err)
	assert.True(t, piped)
	assert.Equal(t, `{"x":1}`, body)
}

func TestReadPiped_Binary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0xff}, 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, _, err = readPiped(f)

	assert.Error(t, err)
}

func TestNewLogger_Disabled(t *testing.T) {
	logger, closer, err := newLogger("")

	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apikit.log")
	logger, closer, err := newLogger(path)
	require.NoError(t, err)

	logger.Info("hello", "id", "42")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "id=42")
}
