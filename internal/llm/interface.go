package llm

import (
	"context"

	"resumeforge/pkg/models"
)

// Provider defines the interface for text-generation providers used to
// rewrite résumé prose.
type Provider interface {
	// EnhanceResume rewrites the prose fields of a RenderCV document and
	// returns the improved document
	EnhanceResume(ctx context.Context, cv *models.RenderCV) (*models.RenderCV, error)

	// IsHealthy checks if the provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}

// EnhanceResult is the outcome of a best-effort enhancement. Enhancement
// never fails a request: when the provider is unavailable or returns
// something unusable, CV is the original document and Reason says why.
type EnhanceResult struct {
	CV       *models.RenderCV
	Enhanced bool
	Reason   string
}

// enhanced and unchanged are the two constructors for EnhanceResult.

func enhanced(cv *models.RenderCV) EnhanceResult {
	return EnhanceResult{CV: cv, Enhanced: true}
}

func unchanged(cv *models.RenderCV, reason string) EnhanceResult {
	return EnhanceResult{CV: cv, Enhanced: false, Reason: reason}
}
