package ollama

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_AssemblesFragments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"response":"A","done":false}`+"\n")
		io.WriteString(w, `{"response":"B","done":true}`+"\n")
		io.WriteString(w, `{"response":"C","done":false}`+"\n")
	}))
	defer server.Close()

	c := New(server.URL, "codellama")
	text, err := c.Generate(context.Background(), "prompt")
	require.NoError(t, err)

	// Folding stops at the done fragment; C is never consumed.
	assert.Equal(t, "AB", text)
}

func TestGenerate_SkipsMalformedLines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"response":"hello ","done":false}`+"\n")
		io.WriteString(w, "not json at all\n")
		io.WriteString(w, `{"response":"world","done":true}`+"\n")
	}))
	defer server.Close()

	c := New(server.URL, "codellama")
	text, err := c.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestGenerate_RequestShape(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, `{"response":"ok","done":true}`+"\n")
	}))
	defer server.Close()

	// Trailing slash on the base URL must not produce a double slash.
	c := New(server.URL+"/", "codellama")
	_, err := c.Generate(context.Background(), "review this")
	require.NoError(t, err)

	assert.Equal(t, "/api/generate", gotPath)
	assert.Equal(t, "codellama", gotBody["model"])
	assert.Equal(t, "review this", gotBody["prompt"])
	assert.Equal(t, false, gotBody["stream"], "stream must be serialized explicitly as false")
}

func TestGenerate_MissingFieldsDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"response":"partial"}`+"\n")
		io.WriteString(w, `{"done":true}`+"\n")
	}))
	defer server.Close()

	c := New(server.URL, "codellama")
	text, err := c.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "partial", text)
}

func TestGenerate_NoDoneFragment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"response":"a","done":false}`+"\n")
		io.WriteString(w, `{"response":"b","done":false}`+"\n")
	}))
	defer server.Close()

	c := New(server.URL, "codellama")
	text, err := c.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "ab", text, "without a done fragment the whole body is folded")
}

func TestGenerate_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := New(server.URL, "codellama")
	_, err := c.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending request")
}

func TestGenerate_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"response":"x","done":true}`+"\n")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(server.URL, "codellama")
	_, err := c.Generate(ctx, "prompt")
	require.Error(t, err)
}
