package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tea-shop/services"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.reply}},
		},
	}, nil
}

func newChatRouter(completer services.ChatCompleter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewChatControllerWithService(services.NewChatServiceWithClient(completer))

	router := gin.New()
	router.GET("/chat", ctrl.Status)
	router.POST("/chat", ctrl.Send)
	return router
}

func TestChatStatus(t *testing.T) {
	router := newChatRouter(&stubCompleter{reply: "hi"})

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["openai_configured"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestChatSendReply(t *testing.T) {
	router := newChatRouter(&stubCompleter{reply: "Try our Sencha for a light afternoon cup. 🍃"})

	w := postJSON(router, "/chat", `{"message":"What green tea do you recommend?"}`)
	require.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Try our Sencha for a light afternoon cup. 🍃", resp["reply"])
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
}

func TestChatSendRejectsEmptyMessage(t *testing.T) {
	router := newChatRouter(&stubCompleter{reply: "hi"})

	for _, body := range []string{`{}`, `{"message":""}`, `{"message":"   "}`} {
		w := postJSON(router, "/chat", body)
		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid message")
	}
}

func TestChatSendFallbackOnError(t *testing.T) {
	router := newChatRouter(&stubCompleter{err: errors.New("upstream timeout")})

	w := postJSON(router, "/chat", `{"message":"hello"}`)
	require.Equal(t, 500, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, services.FallbackReply, resp["reply"])
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
}

func TestChatUnconfiguredService(t *testing.T) {
	router := newChatRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, false, status["openai_configured"])

	w2 := postJSON(router, "/chat", `{"message":"hello"}`)
	require.Equal(t, 200, w2.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
	assert.Contains(t, resp["reply"], "not configured yet")
}

func TestChatEmptyChoicesFallback(t *testing.T) {
	router := newChatRouter(&emptyCompleter{})

	w := postJSON(router, "/chat", `{"message":"hello"}`)
	require.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.Contains(resp["reply"].(string), "couldn't generate a response"))
}

type emptyCompleter struct{}

func (e *emptyCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{}, nil
}
