package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestUnavailable(t *testing.T) {
	cause := errors.New("bad credentials")

	_, err := Unavailable{Err: cause}.Generate(context.Background(), "hola")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, cause)

	_, err = Unavailable{}.Generate(context.Background(), "hola")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestConstructorsRequireKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")
	assert.Error(t, err)

	_, err = NewOpenAIClient("", "")
	assert.Error(t, err)
}

func TestNilClients(t *testing.T) {
	var g *GeminiClient
	_, err := g.Generate(context.Background(), "x")
	assert.Error(t, err)

	var o *OpenAIClient
	_, err = o.Generate(context.Background(), "x")
	assert.Error(t, err)
}

func TestGeminiGenerate(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.Unmarshal(body, &req)
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Resumen listo"}]}}]}`))
	}))
	defer srv.Close()

	c, err := newGeminiClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/"},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, defaultGeminiModel, c.model)

	out, err := c.Generate(context.Background(), "resume esto")
	require.NoError(t, err)
	assert.Equal(t, "Resumen listo", out)
	assert.Equal(t, "resume esto", gotPrompt)
}

func TestGeminiGenerateServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	c, err := newGeminiClient(context.Background(), &genai.ClientConfig{
		APIKey:      "bad-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/"},
	}, "gemini-1.5-flash")
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "hola")
	assert.Error(t, err)
}

func TestOpenAIGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Respuesta"}}]
		}`))
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("test-key", "", option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))
	require.NoError(t, err)

	out, err := c.Generate(context.Background(), "pregunta")
	require.NoError(t, err)
	assert.Equal(t, "Respuesta", out)
}

func TestOpenAIGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-2","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[]}`))
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("test-key", "gpt-4o-mini", option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "pregunta")
	assert.Error(t, err)
}
