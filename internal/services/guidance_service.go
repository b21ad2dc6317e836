package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/moodsync/moodsync-backend/internal/config"
)

// GuidanceRequest carries the check-in fields the guidance prompt is built from.
type GuidanceRequest struct {
	Emotion         string
	EmotionLevel    int
	EnergyLevel     int
	FocusLevel      int
	Overthinking    string
	Trigger         string
	Pattern         string
	UnderlyingCause string
	AdditionalNotes string
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const guidanceSystemPrompt = `You are a compassionate mental wellness assistant. Your role is to:
1. Acknowledge the user's emotional state with empathy
2. Validate their feelings
3. Provide 3-5 practical, actionable coping strategies
4. Suggest wellness activities appropriate to their energy and focus levels
5. Offer encouragement and remind them this feeling is temporary

Keep responses warm, supportive, and under 200 words. Focus on immediate, practical help.`

// GuidanceService generates supportive text for a mood check-in via an
// external chat-completion provider, degrading to a templated fallback when
// no provider answers in time.
type GuidanceService struct {
	cfg *config.Config
}

func NewGuidanceService(cfg *config.Config) *GuidanceService {
	return &GuidanceService{cfg: cfg}
}

// Generate never fails: any provider error is absorbed and the fallback
// message is returned instead. The result is always non-empty.
func (s *GuidanceService) Generate(req GuidanceRequest) string {
	text, err := s.generate(req)
	if err != nil {
		slog.Warn("guidance generation degraded to fallback", "error", err)
		return FallbackGuidance(req.Emotion)
	}
	return text
}

func (s *GuidanceService) generate(req GuidanceRequest) (string, error) {
	prompt := buildGuidancePrompt(req)

	// GLM first, then DeepSeek
	if s.cfg.GLMAPIKey != "" {
		text, err := s.complete(s.cfg.GLMAPIURL, s.cfg.GLMAPIKey, s.cfg.GLMModel, prompt)
		if err == nil {
			return text, nil
		}
		slog.Warn("GLM guidance failed", "error", err)
	}

	if s.cfg.DeepSeekAPIKey != "" {
		text, err := s.complete(s.cfg.DeepSeekAPIURL, s.cfg.DeepSeekAPIKey, s.cfg.DeepSeekModel, prompt)
		if err == nil {
			return text, nil
		}
		slog.Warn("DeepSeek guidance failed", "error", err)
	}

	return "", errors.New("no AI provider available")
}

func (s *GuidanceService) complete(apiURL, apiKey, model, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: guidanceSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	timeout := s.cfg.AITimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("AI API error: status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no response from AI")
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("empty guidance from AI")
	}
	return text, nil
}

func buildGuidancePrompt(req GuidanceRequest) string {
	var b strings.Builder
	b.WriteString("Current emotional state:\n")
	fmt.Fprintf(&b, "- Dominant emotion: %s\n", req.Emotion)
	fmt.Fprintf(&b, "- Emotion intensity: %d/10\n", req.EmotionLevel)
	fmt.Fprintf(&b, "- Energy level: %d/10\n", req.EnergyLevel)
	fmt.Fprintf(&b, "- Focus level: %d/10\n", req.FocusLevel)
	fmt.Fprintf(&b, "- Overthinking: %s\n", req.Overthinking)
	if req.Trigger != "" {
		fmt.Fprintf(&b, "- Trigger: %s\n", req.Trigger)
	}
	if req.Pattern != "" {
		fmt.Fprintf(&b, "- Recurring pattern: %s\n", req.Pattern)
	}
	if req.UnderlyingCause != "" {
		fmt.Fprintf(&b, "- Underlying cause: %s\n", req.UnderlyingCause)
	}
	if req.AdditionalNotes != "" {
		fmt.Fprintf(&b, "- Additional notes: %s\n", req.AdditionalNotes)
	}
	b.WriteString("\nPlease provide personalized wellness guidance and coping strategies.")
	return b.String()
}

// FallbackGuidance is attached when no provider could be reached. Entries
// always carry guidance text, degraded or not.
func FallbackGuidance(emotion string) string {
	return fmt.Sprintf("I hear you're feeling %s. Remember to take deep breaths, reach out to someone you trust, and be gentle with yourself. This feeling will pass.", strings.ToLower(emotion))
}
