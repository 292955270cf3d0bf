package review

import (
	"context"
	"fmt"

	"github.com/redline-cli/redline/internal/logging"
	"github.com/redline-cli/redline/internal/redact"
	"github.com/redline-cli/redline/internal/scan"
)

// Walker enumerates codebase files into a snapshot.
type Walker interface {
	Walk(root string) (scan.Snapshot, error)
}

// DiffSource retrieves a version-control diff for a path scope.
type DiffSource interface {
	Diff(path string, staged bool) (string, error)
}

// Generator produces review text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// WalkerFunc adapts a function to the Walker interface.
type WalkerFunc func(root string) (scan.Snapshot, error)

func (f WalkerFunc) Walk(root string) (scan.Snapshot, error) { return f(root) }

// DiffFunc adapts a function to the DiffSource interface.
type DiffFunc func(path string, staged bool) (string, error)

func (f DiffFunc) Diff(path string, staged bool) (string, error) { return f(path, staged) }

// Pipeline wires the walk, diff, prompt, and inference stages into one
// run. Every stage completes before the next begins; nothing is shared
// across runs.
type Pipeline struct {
	Walker   Walker
	Diffs    DiffSource
	Gen      Generator
	MaxFiles int
	Redact   bool
}

// Run executes the pipeline against root and returns the review text.
// Any stage failure aborts the run.
func (p *Pipeline) Run(ctx context.Context, root string, staged bool) (string, error) {
	logger := logging.Component("review")

	snapshot, err := p.Walker.Walk(root)
	if err != nil {
		return "", fmt.Errorf("scanning codebase: %w", err)
	}

	diff, err := p.Diffs.Diff(root, staged)
	if err != nil {
		return "", fmt.Errorf("collecting diff: %w", err)
	}
	if p.Redact {
		diff = redact.Secrets(diff)
	}

	prompt := BuildPrompt(diff, snapshot, p.MaxFiles)
	logger.Debug().
		Int("files", len(snapshot)).
		Int("diff_bytes", len(diff)).
		Int("prompt_bytes", len(prompt)).
		Bool("staged", staged).
		Msg("prompt assembled")

	text, err := p.Gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating review: %w", err)
	}
	return text, nil
}
