package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/trackscope/pkg/config"
)

// Synthesizer turns collected activity into a narrative digest using an
// OpenAI-compatible chat endpoint
type Synthesizer struct {
	client    *openai.Client
	config    config.DigestConfig
	systemMsg string
}

// NewSynthesizer creates a digest synthesizer
func NewSynthesizer(cfg config.DigestConfig) *Synthesizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Synthesizer{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for digest synthesis
const defaultSystemPrompt = `You are an analyst writing a daily digest about tracked people and companies
for a reader who follows the developer tools and infrastructure space.

Rules:
- Lead with the most significant items. Releases and launches beat opinion posts.
- Group related items: one paragraph per person or company with activity.
- Every claim must reference one of the provided links. Never invent activity.
- Skip entities with nothing to report, do not write "no updates" filler.
- If a "previously covered" link list is provided, do not repeat those items
  unless there is a material follow-up.
- Plain prose, no bullet spam, no marketing language. 300-600 words total.
- Write in the same language as the source material.`

// SynthesizeRequest contains everything the digest is built from
type SynthesizeRequest struct {
	Date         time.Time
	PeopleBrief  string   // formatted people activity, markdown
	CompanyBrief string   // formatted company updates, markdown
	NewsBrief    string   // formatted news mentions, markdown
	CoveredLinks []string // links already published in recent digests
}

// Synthesize produces the digest text. Empty responses are retried up to
// 3 times, smaller local models return them sporadically.
func (s *Synthesizer) Synthesize(ctx context.Context, req SynthesizeRequest) (string, error) {
	if req.PeopleBrief == "" && req.CompanyBrief == "" && req.NewsBrief == "" {
		return "", fmt.Errorf("nothing to synthesize")
	}

	prompt := s.buildPrompt(req)

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		chatReq := openai.ChatCompletionRequest{
			Model:       s.config.Model,
			Temperature: float32(s.config.Temperature),
			MaxTokens:   s.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: s.systemMsg,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		}

		resp, err := s.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			return "", fmt.Errorf("llm request failed: %w", err)
		}

		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("no response from llm")
			continue
		}

		content := strings.TrimSpace(resp.Choices[0].Message.Content)
		if content == "" {
			lastErr = fmt.Errorf("empty response from llm")
			continue
		}

		return content, nil
	}

	return "", fmt.Errorf("failed after 3 attempts: %w", lastErr)
}

// buildPrompt assembles the user message from the collected briefs
func (s *Synthesizer) buildPrompt(req SynthesizeRequest) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Write the digest for %s.\n\n", req.Date.Format("Monday, January 2, 2006")))

	if len(req.CoveredLinks) > 0 {
		sb.WriteString("Previously covered links (do not repeat):\n")
		for _, link := range req.CoveredLinks {
			sb.WriteString("- " + link + "\n")
		}
		sb.WriteString("\n")
	}

	if req.PeopleBrief != "" {
		sb.WriteString("Collected people activity:\n\n")
		sb.WriteString(req.PeopleBrief)
		sb.WriteString("\n\n")
	}

	if req.CompanyBrief != "" {
		sb.WriteString("Collected company updates:\n\n")
		sb.WriteString(req.CompanyBrief)
		sb.WriteString("\n\n")
	}

	if req.NewsBrief != "" {
		sb.WriteString("Collected news mentions:\n\n")
		sb.WriteString(req.NewsBrief)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Write the digest now.")
	return sb.String()
}
