package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/easytest/internal/logging"
	"github.com/aretw0/easytest/internal/presentation/tui"
	"github.com/aretw0/easytest/pkg/looks"
)

// ErrMismatch is returned by Check when a document does not match the spec.
var ErrMismatch = errors.New("documents do not match the spec")

// CheckOptions configures Check.
type CheckOptions struct {
	SpecPath string
	Targets  []string
	// All reports every violation of a document instead of the first.
	All    bool
	Out    io.Writer
	Logger *slog.Logger
}

// Check validates every target document against the spec and prints one
// PASS or FAIL line per target. It stops early when ctx is cancelled.
func Check(ctx context.Context, opts CheckOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	spec, err := LoadSpec(opts.SpecPath)
	if err != nil {
		return err
	}
	logger.Debug("spec loaded", "path", opts.SpecPath, "spec", spec.String())

	styler := tui.NewStyler(opts.Out)
	failed := 0
	for _, target := range opts.Targets {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc, err := LoadDocument(target)
		if err != nil {
			return err
		}

		if opts.All {
			err = looks.All(doc.Value, spec)
		} else {
			err = looks.Like(doc.Value, spec)
		}
		switch {
		case err == nil:
			fmt.Fprintf(opts.Out, "%s %s\n", styler.Status(true), target)
		case looks.IsViolation(err) || errors.Is(err, looks.ErrInvalidTarget):
			failed++
			fmt.Fprintf(opts.Out, "%s %s %s\n", styler.Status(false), target, styler.Faint(err.Error()))
		default:
			return err
		}
		logger.Debug("document checked", "path", target, "error", err)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrMismatch, failed, len(opts.Targets))
	}
	return nil
}
