package generator

import (
	"context"
	"time"

	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/internal/rendercv"
	"resumeforge/pkg/models"
)

// Result carries the rendered artifact plus what happened to the optional
// enhancement step.
type Result struct {
	PDF           []byte
	Enhanced      bool
	EnhanceReason string
	Duration      time.Duration
}

// GeneratePDF runs the full pipeline for one request: convert the JSON Resume
// to RenderCV content, optionally enhance the prose, merge into the base
// template and render the PDF. Both HTTP entry points share this path; they
// differ only in how input arrives and how the artifact is delivered.
//
// Enhancement is strictly best-effort. Every other stage returns a typed
// error for the handler to map (MissingFieldError, ErrTemplateLoad,
// ErrRendererMissing, RenderError, ErrArtifactNotProduced, ErrRenderTimeout).
func GeneratePDF(ctx context.Context, cfg *config.Config, llmManager *llm.Manager, resume *models.Resume, opts models.GenerateOptions) (*Result, error) {
	logger := logging.GetGlobalLogger()
	startTime := time.Now()

	cv, err := rendercv.Convert(resume)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	if opts.Enhance {
		enhancement := llmManager.Enhance(ctx, cv)
		cv = enhancement.CV
		result.Enhanced = enhancement.Enhanced
		result.EnhanceReason = enhancement.Reason
	} else {
		result.EnhanceReason = "enhancement not requested"
	}

	base, err := rendercv.LoadBaseTemplate(cfg.Template.Path)
	if err != nil {
		logger.Error("Failed to load base template", map[string]interface{}{
			"path":  cfg.Template.Path,
			"error": err.Error(),
		})
		return nil, err
	}

	if err := rendercv.Merge(base, cv); err != nil {
		return nil, err
	}

	// Cosmetic normalization; a template without the expected design path is
	// rendered unmodified
	if err := rendercv.NormalizeBulletGlyph(base); err != nil {
		logger.Warn("Skipping bullet glyph normalization", map[string]interface{}{
			"error": err.Error(),
		})
	}

	document, err := rendercv.Serialize(base)
	if err != nil {
		return nil, err
	}

	pdf, err := rendercv.Compile(ctx, cfg, document)
	if err != nil {
		return nil, err
	}

	result.PDF = pdf
	result.Duration = time.Since(startTime)

	logger.Info("Resume rendered", map[string]interface{}{
		"name":            cv.Name,
		"enhanced":        result.Enhanced,
		"pdf_bytes":       len(pdf),
		"processing_time": result.Duration,
	})

	return result, nil
}
