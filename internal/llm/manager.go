package llm

import (
	"context"
	"fmt"

	"resumeforge/internal/config"
	"resumeforge/internal/llm/providers"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// Manager wraps the configured provider behind the best-effort enhancement
// policy: a failed or disabled enhancement degrades to the original content
// instead of failing the request.
type Manager struct {
	config   *config.Config
	provider Provider
}

// NewManager creates a new LLM manager
func NewManager(cfg *config.Config) *Manager {
	return &Manager{config: cfg}
}

// Start initializes the configured provider. Enhancement stays disabled when
// no API key is configured; that is a valid deployment, not an error.
func (m *Manager) Start() error {
	if !m.config.LLM.Enabled || m.config.LLM.APIKey == "" {
		logging.GetGlobalLogger().Info("Resume enhancement disabled", map[string]interface{}{
			"enabled":     m.config.LLM.Enabled,
			"api_key_set": m.config.LLM.APIKey != "",
		})
		return nil
	}

	switch m.config.LLM.Provider {
	case "claude", "":
		m.provider = providers.NewClaudeProvider(m.config)
	default:
		return fmt.Errorf("unsupported LLM provider: %s", m.config.LLM.Provider)
	}

	logging.GetGlobalLogger().Info("LLM manager started", map[string]interface{}{
		"provider": m.provider.GetProviderName(),
		"model":    m.config.LLM.Model,
	})
	return nil
}

// Stop shuts down the manager
func (m *Manager) Stop() error {
	m.provider = nil
	return nil
}

// Enabled reports whether a provider is active.
func (m *Manager) Enabled() bool {
	return m != nil && m.provider != nil
}

// Enhance rewrites the prose of cv via the provider. It never returns an
// error: any failure, including a provider timeout, yields the original
// document with a reason.
func (m *Manager) Enhance(ctx context.Context, cv *models.RenderCV) EnhanceResult {
	logger := logging.GetGlobalLogger()

	if !m.Enabled() {
		return unchanged(cv, "enhancement disabled")
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.LLM.Timeout)
	defer cancel()

	improved, err := m.provider.EnhanceResume(ctx, cv)
	if err != nil {
		logger.Warn("Resume enhancement failed, using original content", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
			"error":    err.Error(),
		})
		return unchanged(cv, err.Error())
	}

	return enhanced(improved)
}
