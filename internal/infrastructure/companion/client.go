// Package companion talks to an OpenAI-compatible chat-completions endpoint
// (Ollama, vLLM, hosted APIs) for conversational support and journal
// reflections. Every call is a single non-streaming request; any failure is
// recoverable and never affects the entry or analytics core.
package companion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wellness-service/internal/config"
	"wellness-service/internal/domain/entity"
)

// maxResponseSize limits the response body read to prevent memory exhaustion.
const maxResponseSize = 1 * 1024 * 1024 // 1MB

// FallbackReply is substituted for the chat reply when the endpoint is
// unreachable or returns a malformed payload.
const FallbackReply = "I'm having trouble connecting right now, but I'm still here with you. " +
	"Whatever you're feeling at the moment is valid - would you like to write it down in your journal instead?"

const chatSystemPrompt = "You are a warm, supportive companion inside a personal health journal. " +
	"Listen, validate feelings, and gently encourage healthy routines. " +
	"You are not a clinician and never give medical advice; suggest contacting a care team for anything clinical. " +
	"Keep replies short and conversational."

const reflectSystemPrompt = "You write brief, encouraging reflections on a personal health journal entry. " +
	"Acknowledge what went well, note one gentle suggestion, and keep it under 120 words. " +
	"Never give medical advice."

// Turn is one prior message of the conversation.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Client is the text-generation collaborator.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	maxHistory int
}

// NewClient creates a companion client from configuration.
func NewClient(cfg *config.CompanionConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = 10
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		maxHistory: maxHistory,
	}
}

// SendTurn sends one conversational turn with the trailing history and
// returns the assistant reply.
func (c *Client) SendTurn(ctx context.Context, message string, history []Turn) (string, error) {
	if len(history) > c.maxHistory {
		history = history[len(history)-c.maxHistory:]
	}

	messages := make([]apiMessage, 0, len(history)+2)
	messages = append(messages, apiMessage{Role: "system", Content: chatSystemPrompt})
	for _, t := range history {
		messages = append(messages, apiMessage{Role: t.Role, Content: t.Content})
	}
	messages = append(messages, apiMessage{Role: "user", Content: message})

	return c.complete(ctx, messages)
}

// Reflect generates a short reflection on a journal entry.
func (c *Client) Reflect(ctx context.Context, entry entity.JournalEntry) (string, error) {
	messages := []apiMessage{
		{Role: "system", Content: reflectSystemPrompt},
		{Role: "user", Content: buildReflectionPrompt(entry)},
	}

	return c.complete(ctx, messages)
}

func buildReflectionPrompt(entry entity.JournalEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Journal entry for %s.\n", entry.Date)
	fmt.Fprintf(&b, "Sleep: %.1f hours, quality %d/10.\n", entry.SleepHours, entry.SleepQuality)
	fmt.Fprintf(&b, "Study: %.1f hours", entry.StudyHours)
	if entry.StudySubjects != "" {
		fmt.Fprintf(&b, " (%s)", entry.StudySubjects)
	}
	b.WriteString(".\n")

	taken, total := entry.MedicationCounts()
	if total > 0 {
		fmt.Fprintf(&b, "Medications taken: %d of %d.\n", taken, total)
	}

	for _, f := range []struct{ label, text string }{
		{"Clinical rotation", entry.ClinicalRotation},
		{"Journal", entry.JournalText},
		{"Gratitude", entry.Gratitude},
		{"Goals", entry.Goals},
		{"Wellness", entry.Wellness},
		{"Challenges", entry.Challenges},
		{"Learnings", entry.Learnings},
	} {
		if f.text != "" {
			fmt.Fprintf(&b, "%s: %s\n", f.label, f.text)
		}
	}

	return b.String()
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiRequest struct {
	Model    string       `json:"model"`
	Messages []apiMessage `json:"messages"`
	Stream   bool         `json:"stream"`
}

type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, messages []apiMessage) (string, error) {
	body, err := json.Marshal(apiRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion endpoint returned status %d", resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}

	return parsed.Choices[0].Message.Content, nil
}
