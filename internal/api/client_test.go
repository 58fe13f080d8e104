package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/f3rmion/wordahead/internal/wordahead"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestClient_ProcessText_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/process-text", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		body, _ := io.ReadAll(r.Body)
		var req map[string]string
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "  the cat  ", req["text"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"words":[
			{"word":"the","importance":0,"opacity":0.25},
			{"word":"cat","importance":4,"opacity":1.0,"cefr_level":"A1"}
		],"using_mock":true,"warning":null}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	words, err := c.ProcessText(context.Background(), "  the cat  ")
	require.NoError(t, err)
	require.Len(t, words, 2)

	assert.Equal(t, "the", words[0].Word)
	assert.Equal(t, wordahead.ImportanceLowest, words[0].Importance)
	assert.InDelta(t, 0.25, words[0].Opacity, 1e-9)
	assert.Equal(t, "cat", words[1].Word)
	assert.Equal(t, "A1", words[1].CEFRLevel)
}

func TestClient_ProcessText_StatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ProcessText(context.Background(), "text")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, 500, statusErr.Code)
	assert.Equal(t, "Server error: 500", err.Error())
}

func TestClient_ProcessText_BadJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ProcessText(context.Background(), "text")
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "unmarshaling response", transportErr.Op)
}

func TestClient_ProcessText_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).ProcessText(context.Background(), "text")
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "making request", transportErr.Op)
}

func TestClient_TranslateWord_EscapesPath(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/translate/word/rock%20n%2Froll", r.URL.EscapedPath())
		w.Write([]byte(`{"translation":"חתול","transliteration":"chatul"}`))
	}))
	defer srv.Close()

	patch, err := NewClient(srv.URL).TranslateWord(context.Background(), "rock n/roll")
	require.NoError(t, err)
	assert.JSONEq(t, `"חתול"`, string(patch["translation"]))
	assert.JSONEq(t, `"chatul"`, string(patch["transliteration"]))
}

func TestClient_TranslateSentenceAndHealth(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/translate/sentence", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "The forest is beautiful.", req["sentence"])
		w.Write([]byte(`{"english":"The forest is beautiful.","hebrew":"היער יפה.","transliteration":"haya'ar yafe"}`))
	})
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"healthy","gp_tsm_available":false,"openai_configured":true}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL + "/")

	tr, err := c.TranslateSentence(context.Background(), "The forest is beautiful.")
	require.NoError(t, err)
	assert.Equal(t, "היער יפה.", tr.Hebrew)

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
	assert.False(t, h.GPTSMAvailable)
	assert.True(t, h.OpenAIConfigured)
}

func TestClient_LogsTargetAndPayload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"words":[]}`))
	}))
	defer srv.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	c := NewClient(srv.URL, WithLogger(zap.New(core)))

	_, err := c.ProcessText(context.Background(), "hi")
	require.NoError(t, err)

	sent := logs.FilterMessage("sending request").All()
	require.Len(t, sent, 1)
	assert.Equal(t, srv.URL+"/api/process-text", sent[0].ContextMap()["url"])

	received := logs.FilterMessage("received response").All()
	require.Len(t, received, 1)
	assert.Equal(t, `{"words":[]}`, received[0].ContextMap()["body"])
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultBaseURL, NewClient("  ").BaseURL())
	assert.Equal(t, "http://example.com", NewClient("http://example.com/").BaseURL())
}
