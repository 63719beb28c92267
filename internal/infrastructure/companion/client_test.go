package companion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-service/internal/config"
	"wellness-service/internal/domain/entity"
)

func testClient(baseURL string) *Client {
	return NewClient(&config.CompanionConfig{
		Enabled:    true,
		BaseURL:    baseURL,
		Model:      "test-model",
		Timeout:    5 * time.Second,
		MaxHistory: 10,
	})
}

func completionResponse(content string) string {
	return fmt.Sprintf(`{"choices":[{"message":{"role":"assistant","content":%q}}]}`, content)
}

func TestSendTurn(t *testing.T) {
	var captured apiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		fmt.Fprint(w, completionResponse("I hear you."))
	}))
	defer srv.Close()

	client := testClient(srv.URL + "/v1")

	reply, err := client.SendTurn(context.Background(), "rough day", []Turn{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "I hear you.", reply)

	require.Len(t, captured.Messages, 4)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "hi", captured.Messages[1].Content)
	assert.Equal(t, "rough day", captured.Messages[3].Content)
	assert.Equal(t, "test-model", captured.Model)
	assert.False(t, captured.Stream)
}

func TestSendTurn_TruncatesHistory(t *testing.T) {
	var captured apiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		fmt.Fprint(w, completionResponse("ok"))
	}))
	defer srv.Close()

	client := testClient(srv.URL + "/v1")

	var history []Turn
	for i := 0; i < 25; i++ {
		history = append(history, Turn{Role: "user", Content: fmt.Sprintf("turn %d", i)})
	}

	_, err := client.SendTurn(context.Background(), "latest", history)
	require.NoError(t, err)

	// system + last 10 history turns + new message
	require.Len(t, captured.Messages, 12)
	assert.Equal(t, "turn 15", captured.Messages[1].Content)
	assert.Equal(t, "turn 24", captured.Messages[10].Content)
}

func TestSendTurn_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := testClient(srv.URL + "/v1")

	_, err := client.SendTurn(context.Background(), "hello", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestSendTurn_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices": []}`)
	}))
	defer srv.Close()

	client := testClient(srv.URL + "/v1")

	_, err := client.SendTurn(context.Background(), "hello", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestSendTurn_ConnectionRefused(t *testing.T) {
	client := testClient("http://127.0.0.1:1/v1")

	_, err := client.SendTurn(context.Background(), "hello", nil)
	assert.Error(t, err)
}

func TestReflect_BuildsPromptFromEntry(t *testing.T) {
	var captured apiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		fmt.Fprint(w, completionResponse("A thoughtful day."))
	}))
	defer srv.Close()

	client := testClient(srv.URL + "/v1")

	entry := entity.JournalEntry{
		ID:           "j1",
		Date:         "2024-03-01",
		SleepHours:   7.5,
		SleepQuality: 8,
		StudyHours:   3,
		Gratitude:    "supportive classmates",
		Medications: []entity.Medication{
			{Name: "sertraline", Taken: true, Time: "08:00"},
		},
	}

	reflection, err := client.Reflect(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, "A thoughtful day.", reflection)

	require.Len(t, captured.Messages, 2)
	prompt := captured.Messages[1].Content
	assert.Contains(t, prompt, "2024-03-01")
	assert.Contains(t, prompt, "7.5 hours")
	assert.Contains(t, prompt, "Medications taken: 1 of 1")
	assert.Contains(t, prompt, "supportive classmates")
}
