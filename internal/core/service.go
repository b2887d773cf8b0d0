// Package core provides the document-processing logic shared by the CLI,
// the interactive TUI, and the web frontend. It glues the vcard record
// model to the transform pipeline and maps technical errors to
// user-friendly messages. The package has no UI dependencies.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmvcosta/vcfkit/internal/transform"
	"github.com/jmvcosta/vcfkit/internal/vcard"
)

// ErrNoOperations is returned when a processing run requests no transform
// and no sort; running the pipeline would be a pointless copy.
var ErrNoOperations = errors.New("no operation selected")

// Service runs processing operations over whole VCF documents.
type Service struct {
	limiter *ProcessLimiter
}

// NewService creates a Service whose concurrent document processing is
// bounded by the given limiter. A nil limiter means unbounded (CLI usage).
func NewService(limiter *ProcessLimiter) *Service {
	return &Service{limiter: limiter}
}

// Limiter returns the concurrency limiter, or nil when unbounded.
func (s *Service) Limiter() *ProcessLimiter {
	return s.limiter
}

// Transforms returns the transform catalog in pipeline order.
func (s *Service) Transforms() []transform.Definition {
	return transform.All()
}

// Stats summarizes one processing run.
type Stats struct {
	Records int      `json:"records"`
	Applied []string `json:"applied"`
	Sorted  bool     `json:"sorted"`
}

// Process parses a VCF document, applies the requested transforms in
// canonical order, optionally sorts, and serializes the result. The whole
// document fails on structural errors; no partial output is produced.
func (s *Service) Process(ctx context.Context, text string, opts transform.Options) (string, Stats, error) {
	if !opts.Any() {
		return "", Stats{}, ErrNoOperations
	}

	if s.limiter != nil {
		if err := s.limiter.Acquire(ctx); err != nil {
			return "", Stats{}, err
		}
		defer s.limiter.Release()
	}

	records, err := vcard.LoadRecords(text)
	if err != nil {
		return "", Stats{}, fmt.Errorf("load records: %w", err)
	}

	plan := transform.Plan(opts)
	records = transform.Apply(records, plan)

	stats := Stats{Records: len(records), Sorted: opts.Sort}
	for _, def := range plan {
		stats.Applied = append(stats.Applied, def.Key)
		slog.Debug("transform applied", "transform", def.Key, "records", len(records))
	}

	if opts.Sort {
		records = vcard.SortByName(records)
	}

	slog.Info("document processed",
		"records", stats.Records,
		"transforms", len(stats.Applied),
		"sorted", stats.Sorted,
	)
	return vcard.RenderRecords(records), stats, nil
}

// ProcessReader reads a raw VCF stream (BOM-skipped and UTF-8-sanitized)
// and processes it like Process. Callers bound the reader's size.
func (s *Service) ProcessReader(ctx context.Context, r io.Reader, opts transform.Options) (string, Stats, error) {
	data, err := io.ReadAll(vcard.WrapReader(r))
	if err != nil {
		return "", Stats{}, fmt.Errorf("read input: %w", err)
	}
	return s.Process(ctx, string(data), opts)
}
