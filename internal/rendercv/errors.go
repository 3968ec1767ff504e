package rendercv

import (
	"errors"
	"fmt"
)

// Sentinel errors to allow precise mapping in handlers
var (
	ErrRendererMissing     = errors.New("renderer_missing")
	ErrRenderTimeout       = errors.New("render_timeout")
	ErrArtifactNotProduced = errors.New("artifact_not_produced")
	ErrTemplateLoad        = errors.New("template_load_error")
)

// MissingFieldError reports a required résumé field that was absent from the
// input document. It is a client error, not a server fault.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required resume field: %s", e.Field)
}

// RenderError carries the captured output of a failed renderer invocation so
// it can be surfaced to the caller for debugging.
type RenderError struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("renderer exited with code %d", e.ExitCode)
}
