package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"gopkg.in/yaml.v3"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// ClaudeProvider implements the enhancement provider interface using
// Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
	}
}

// EnhanceResume sends the CV content to Claude with a fixed rewriting
// instruction and parses the reply back into the same document shape.
func (cp *ClaudeProvider) EnhanceResume(ctx context.Context, cv *models.RenderCV) (*models.RenderCV, error) {
	startTime := time.Now()
	logger := logging.GetGlobalLogger()

	document, err := yaml.Marshal(cv)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize cv content: %w", err)
	}

	prompt := cp.buildEnhancementPrompt(string(document))

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	enhanced, err := cp.parseClaudeResponse(response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Claude response: %w", err)
	}

	logger.Info("Resume enhancement completed", map[string]interface{}{
		"provider":        "claude",
		"processing_time": time.Since(startTime),
	})

	return enhanced, nil
}

// buildEnhancementPrompt creates the fixed rewriting instruction around the
// serialized CV content
func (cp *ClaudeProvider) buildEnhancementPrompt(document string) string {
	return fmt.Sprintf(`You are a professional resume writer. Improve the prose of the resume below: rewrite summaries and highlight bullets to be concise, action-oriented and impactful.

IMPORTANT RULES:
1. Return ONLY a valid YAML document with exactly the same structure and keys as the input, no additional text or explanation
2. Never invent facts, employers, dates or qualifications that are not in the input
3. Never change name, location, email, phone, website or social_networks
4. Keep every section and every entry; only improve the wording of prose fields
5. Dates and identifiers must be preserved verbatim

RESUME CONTENT:
%s`, document)
}

// parseClaudeResponse extracts the rewritten document from the API response
// and validates it still carries the required identity fields.
func (cp *ClaudeProvider) parseClaudeResponse(response *anthropic.Message) (*models.RenderCV, error) {
	if len(response.Content) == 0 {
		return nil, fmt.Errorf("empty response from Claude")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in Claude response")
	}

	return decodeEnhancedCV(responseText)
}

// decodeEnhancedCV strips markdown code fences, parses the text as a RenderCV
// document and rejects replies that lost the required identity fields.
func decodeEnhancedCV(text string) (*models.RenderCV, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```yaml") {
		text = strings.TrimPrefix(text, "```yaml")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	var cv models.RenderCV
	if err := yaml.Unmarshal([]byte(text), &cv); err != nil {
		return nil, fmt.Errorf("response is not valid YAML: %w", err)
	}

	// A reply that dropped the identity fields would silently produce a
	// broken CV; treat it like any other provider failure
	if cv.Name == "" || cv.Email == "" || cv.Phone == "" {
		return nil, fmt.Errorf("enhanced document lost required fields")
	}

	return &cv, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.config.LLM.Model),
		MaxTokens: 10,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "ping"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
