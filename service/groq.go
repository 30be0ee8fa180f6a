package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/voyage-finance/ai-graphql-server/models"
)

const (
	errorPrefix = "Error communicating with Groq API: "

	recommendationSystemPrompt = "You are an AI assistant that provides recommendations based on thought maps."
	recommendationUserPrompt   = "Given this thought map, provide a recommendation: %s"
)

var ErrMalformedResponse = errors.New("malformed response")

// StatusError is returned when the upstream answers with a non 2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s for url: %s", e.Status, e.URL)
}

// QueryAI sends the query to Groq and returns the completion text. Failures are
// reported in the returned string, never as an error.
func (s *Service) QueryAI(ctx context.Context, query string) string {
	content, err := s.Complete(ctx, query)
	if err != nil {
		log.Printf("QueryAI failed, error: %s\n", err.Error())
		return errorPrefix + err.Error()
	}
	return content
}

// Complete posts a single user message to the chat completion endpoint and
// returns choices[0].message.content.
func (s *Service) Complete(ctx context.Context, query string) (string, error) {
	return s.chat(ctx, []models.ChatMessage{{Role: models.RoleUser, Content: query}})
}

// Recommend asks for a recommendation on a thought map. Unlike QueryAI the
// failure is returned as an error.
func (s *Service) Recommend(ctx context.Context, thoughtMap string) (string, error) {
	content, err := s.chat(ctx, []models.ChatMessage{
		{Role: models.RoleSystem, Content: recommendationSystemPrompt},
		{Role: models.RoleUser, Content: fmt.Sprintf(recommendationUserPrompt, thoughtMap)},
	})
	if err != nil {
		log.Printf("Recommend failed, error: %s\n", err.Error())
		return "", fmt.Errorf("failed to get recommendation: %w", err)
	}
	return content, nil
}

func (s *Service) chat(ctx context.Context, messages []models.ChatMessage) (string, error) {
	request := models.ChatCompletionRequest{
		Model:       s.Settings.GroqModel,
		Messages:    messages,
		Temperature: s.Settings.Temperature,
	}
	rs, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	start := time.Now()
	resp, err := s.Client.R().
		SetContext(ctx).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", s.Settings.GroqAPIKey)).
		SetHeader("Content-Type", "application/json").
		SetBody(rs).
		Post(s.Settings.GroqAPIURL)
	if err != nil {
		return "", err
	}
	log.Printf("Groq responded %s in %v (%s)\n", resp.Status(), time.Since(start).Round(time.Millisecond), humanize.Bytes(uint64(len(resp.Body()))))

	if !resp.IsSuccess() {
		return "", &StatusError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			URL:        s.Settings.GroqAPIURL,
		}
	}

	var rsp models.ChatCompletionResponse
	if err := json.Unmarshal(resp.Body(), &rsp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	content, ok := rsp.FirstContent()
	if !ok {
		return "", fmt.Errorf("%w: no choices[0].message.content in response", ErrMalformedResponse)
	}
	return content, nil
}
