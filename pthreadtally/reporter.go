//go:build !solution

package pthreadtally

import (
	"context"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"gitlab.com/slon/pthreadtally/linetally"
)

// Reporter tallies the configured platform lists and prints the grouped report.
type Reporter struct {
	fs     afero.Fs
	config Config
	logger *zap.Logger
}

// NewReporter returns a reporter reading from fs. A nil logger discards log output.
func NewReporter(fs afero.Fs, config Config, logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(config.Sections) == 0 {
		config.Sections = linetally.DefaultSections
	}
	return &Reporter{
		fs:     fs,
		config: config,
		logger: logger,
	}
}

// Tally reads every platform list in order. The first unreadable list aborts the run.
func (r *Reporter) Tally(ctx context.Context) (*linetally.Tally, error) {
	if err := r.config.Validate(); err != nil {
		return nil, err
	}

	tally := linetally.New(r.config.Count)
	for _, p := range r.config.Platforms {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		counted, err := r.consume(tally, p)
		if err != nil {
			r.logger.Error("failed to read platform list",
				zap.String("platform", p.Name),
				zap.String("path", p.File),
				zap.Error(err),
			)
			return nil, err
		}
		r.logger.Debug("platform list read",
			zap.String("platform", p.Name),
			zap.String("path", p.File),
			zap.Int("lines", counted),
		)
	}
	return tally, nil
}

func (r *Reporter) consume(tally *linetally.Tally, p Platform) (int, error) {
	f, err := r.fs.Open(p.File)
	if err != nil {
		return 0, &InputError{Platform: p.Name, Path: p.File, Err: err}
	}
	defer f.Close()

	counted, err := tally.Consume(f)
	if err != nil {
		return counted, &InputError{Platform: p.Name, Path: p.File, Err: err}
	}
	return counted, nil
}

// Run builds the whole tally before writing anything, so a failed run prints no report.
func (r *Reporter) Run(ctx context.Context, w io.Writer) error {
	tally, err := r.Tally(ctx)
	if err != nil {
		return err
	}

	r.logger.Info("tally complete",
		zap.Int("platforms", len(r.config.Platforms)),
		zap.Int("distinct", tally.Len()),
		zap.Stringer("order", r.config.Order),
		zap.Stringer("count", r.config.Count),
	)

	return linetally.WriteReport(w, tally, r.config.Sections, r.config.Order)
}
