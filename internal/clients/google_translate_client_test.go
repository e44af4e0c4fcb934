package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGoogleClient(endpoint string, retries int) *GoogleTranslateClient {
	c := NewGoogleTranslateClient(endpoint, 2*time.Second, retries)
	c.backoff = time.Millisecond
	return c
}

func TestGoogleTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "gtx", r.URL.Query().Get("client"))
		assert.Equal(t, "es", r.URL.Query().Get("sl"))
		assert.Equal(t, "en", r.URL.Query().Get("tl"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "Me encanta este día. Odio la lluvia.", r.PostForm.Get("q"))
		assert.Equal(t, USER_AGENT, r.Header.Get("User-Agent"))

		w.Write([]byte(`[[["I love this day. ","Me encanta este día. ",null,null,10],["I hate the rain.","Odio la lluvia.",null,null,10]],null,"es"]`))
	}))
	defer server.Close()

	out, err := newTestGoogleClient(server.URL, 1).Translate(context.Background(), "Me encanta este día. Odio la lluvia.", "es", "en")
	require.NoError(t, err)
	assert.Equal(t, "I love this day. I hate the rain.", out)
}

func TestGoogleTranslateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, "oops"},
		{"rate limited", http.StatusTooManyRequests, ""},
		{"bad request", http.StatusBadRequest, "{}"},
		{"not json", http.StatusOK, "<html>captcha</html>"},
		{"empty array", http.StatusOK, "[]"},
		{"no segments", http.StatusOK, `[[],null,"es"]`},
		{"wrong shape", http.StatusOK, `[{"a":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestGoogleClient(server.URL, 1).Translate(context.Background(), "hola", "es", "en")
			assert.Error(t, err)
		})
	}
}

func TestGoogleTranslateRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[[["hello","hola"]]]`))
	}))
	defer server.Close()

	out, err := newTestGoogleClient(server.URL, 3).Translate(context.Background(), "hola", "es", "en")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGoogleTranslateSingleAttemptByDefault(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestGoogleClient(server.URL, 0).Translate(context.Background(), "hola", "es", "en")
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGoogleTranslateUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	endpoint := server.URL
	server.Close()

	_, err := newTestGoogleClient(endpoint, 1).Translate(context.Background(), "hola", "es", "en")
	assert.Error(t, err)
}
