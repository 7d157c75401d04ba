package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

// fallbackReplies are served whenever the upstream model is unreachable
// or returns nothing usable, so the user always gets a supportive answer.
var fallbackReplies = []string{
	"I'm here to support you through this. Can you share more about what's been weighing on your mind?",
	"Thank you for reaching out - that takes real courage. I'm Mentrix, and I'm here to listen and help however I can.",
	"I can hear that you're going through something difficult. You're not alone in this, and I'm here to support you.",
	"It sounds like you're dealing with something challenging. I'm here to provide a safe space for you to share and work through your feelings.",
}

type Service struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewService(apiKey, endpoint string) *Service {
	return &Service{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Reply asks the generative model for a Mentrix response to the user's
// message, carrying the last six turns of history as context. Any
// failure along the way degrades to a canned supportive reply.
func (s *Service) Reply(ctx context.Context, message string, history []Message) string {
	reply, err := s.generate(ctx, message, history)
	if err != nil {
		log.Printf("chat upstream error: %v", err)
		return fallbackReplies[rand.Intn(len(fallbackReplies))]
	}
	return reply
}

func (s *Service) generate(ctx context.Context, message string, history []Message) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("api key not configured")
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(message, history)}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.8,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 500,
		},
		SafetySettings: []safetySetting{
			{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
			{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"?key="+s.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response generated")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func buildPrompt(message string, history []Message) string {
	if len(history) > 6 {
		history = history[len(history)-6:]
	}
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		speaker := "Mentrix"
		if msg.IsUser {
			speaker = "User"
		}
		lines = append(lines, speaker+": "+msg.Text)
	}

	return fmt.Sprintf(`You are Mentrix, a compassionate AI mental health support assistant. Your purpose is to provide empathetic, supportive, and helpful responses to people seeking mental health support.

Key guidelines:
- Always be warm, empathetic, and non-judgmental
- Provide emotional support and validation
- Ask thoughtful follow-up questions to help users explore their feelings
- Offer practical coping strategies when appropriate
- If someone asks about your name or identity, say you are "Mentrix"
- Never provide medical diagnoses or replace professional therapy
- Encourage seeking professional help when needed
- Use a caring, understanding tone
- Keep responses conversational and supportive

Previous conversation:
%s

Current user message: %s

Respond as Mentrix with empathy and support:`, strings.Join(lines, "\n"), message)
}
