package rendercv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"resumeforge/internal/config"
)

// Compile writes the merged document to a per-request working directory,
// invokes the external renderer on it and returns the produced PDF bytes.
// Every file the call creates is removed before it returns, success or not.
func Compile(ctx context.Context, cfg *config.Config, document []byte) ([]byte, error) {
	if len(bytes.TrimSpace(document)) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	// Resolve the renderer before touching the filesystem
	binary, err := exec.LookPath(cfg.Renderer.Binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found in PATH", ErrRendererMissing, cfg.Renderer.Binary)
	}

	// MkdirTemp gives each in-flight request its own collision-free directory
	workDir, err := os.MkdirTemp(cfg.Renderer.WorkDir, "rendercv-*")
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	inputPath := filepath.Join(workDir, "resume.yaml")
	if err := os.WriteFile(inputPath, document, 0644); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}

	outputDir := filepath.Join(workDir, "output")
	if err := os.Mkdir(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Renderer.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, "render", inputPath, "-o", outputDir)
	cmd.Dir = workDir
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: renderer exceeded %s", ErrRenderTimeout, cfg.Renderer.Timeout)
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, &RenderError{
			ExitCode: exitCode,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}
	}

	pdfPath, err := findPDF(outputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v; renderer output:\n%s", ErrArtifactNotProduced, err, stdout.String())
	}

	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	return pdf, nil
}

// findPDF locates the rendered artifact. The renderer names the PDF after the
// CV owner, so the output directory is scanned instead of assuming a name.
func findPDF(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("no pdf file in %s", dir)
}
