// Package pipeline orchestrates the end-to-end generation flow: load
// the dataset, render one or all styles, record runs, and validate the
// inputs and outputs.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/stuagano/awesome-claude-code/internal/catalog"
	"github.com/stuagano/awesome-claude-code/internal/config"
	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
	"github.com/stuagano/awesome-claude-code/internal/generator"
	"github.com/stuagano/awesome-claude-code/internal/history"
	"github.com/stuagano/awesome-claude-code/internal/lint"
	"github.com/stuagano/awesome-claude-code/internal/metrics"
	"github.com/stuagano/awesome-claude-code/internal/sorter"
	"github.com/stuagano/awesome-claude-code/internal/taxonomy"
)

// Pipeline ties the generation stages together behind one entry point.
type Pipeline struct {
	cfg      *config.Config
	logger   *slog.Logger
	recorder metrics.Recorder
	store    history.Store
}

// New builds a pipeline. Nil recorder and store fall back to no-ops.
func New(cfg *config.Config, logger *slog.Logger, recorder metrics.Recorder, store history.Store) *Pipeline {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	if store == nil {
		store = history.NoopStore{}
	}
	return &Pipeline{cfg: cfg, logger: logger, recorder: recorder, store: store}
}

// StyleResult describes one rendered document.
type StyleResult struct {
	Style         string
	OutputPath    string
	ResourceCount int
	Warnings      []string
	Duration      time.Duration
}

func (p *Pipeline) taxonomyPath() string {
	return filepath.Join(p.cfg.TemplatesDir, generator.TaxonomyFileName)
}

func (p *Pipeline) newGenerator(styleID string) (generator.Generator, error) {
	gen, err := generator.New(styleID, p.cfg.Dataset, p.cfg.TemplatesDir, p.cfg.AssetsDir, p.cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	gen.SetRecorder(p.recorder)
	return gen, nil
}

// GenerateStyle renders a single style. An empty outputPath uses the
// style's default filename.
func (p *Pipeline) GenerateStyle(ctx context.Context, styleID, outputPath string) (*StyleResult, error) {
	gen, err := p.newGenerator(styleID)
	if err != nil {
		return nil, err
	}
	return p.run(ctx, gen, outputPath)
}

// GenerateFlat renders the parameterized flat style for one category
// slug and sort mode.
func (p *Pipeline) GenerateFlat(ctx context.Context, categorySlug, sortMode, outputPath string) (*StyleResult, error) {
	gen := generator.NewFlat(p.cfg.Dataset, p.cfg.TemplatesDir, p.cfg.AssetsDir, p.cfg.OutputDir, categorySlug, sortMode)
	gen.SetRecorder(p.recorder)
	return p.run(ctx, gen, outputPath)
}

// GenerateAll renders every primary style. The configured root style is
// written to README.md; the others keep their default filenames, with
// the root style's default claimed by none. After rendering it checks
// that all primary styles covered the same number of resources.
func (p *Pipeline) GenerateAll(ctx context.Context) ([]StyleResult, error) {
	root, err := generator.BuildRootGenerator(p.cfg.RootStyle, p.cfg.Dataset, p.cfg.TemplatesDir, p.cfg.AssetsDir, p.cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	root.SetRecorder(p.recorder)

	results := make([]StyleResult, 0, len(generator.PrimaryStyleIDs))

	rootResult, err := p.run(ctx, root, "README.md")
	if err != nil {
		return nil, err
	}
	results = append(results, *rootResult)

	for _, styleID := range generator.PrimaryStyleIDs {
		if styleID == p.cfg.RootStyle {
			continue
		}
		gen, err := p.newGenerator(styleID)
		if err != nil {
			return nil, err
		}
		outputPath := gen.DefaultOutputPath()
		if outputPath == "README.md" {
			outputPath = fmt.Sprintf("README-%s.md", styleID)
		}
		result, err := p.run(ctx, gen, outputPath)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}

	if err := checkCountConsistency(results); err != nil {
		return results, err
	}
	return results, nil
}

func (p *Pipeline) run(ctx context.Context, gen generator.Generator, outputPath string) (*StyleResult, error) {
	start := time.Now()
	count, warnings, err := gen.Generate(outputPath)
	if err != nil {
		return nil, err
	}

	resolved := outputPath
	if resolved == "" {
		resolved = gen.DefaultOutputPath()
	}
	result := &StyleResult{
		Style:         gen.StyleID(),
		OutputPath:    resolved,
		ResourceCount: count,
		Warnings:      warnings,
		Duration:      time.Since(start),
	}

	for _, warning := range warnings {
		p.logger.Warn("generation warning", "style", result.Style, "warning", warning)
	}
	p.logger.Info("generated document",
		"style", result.Style,
		"output", result.OutputPath,
		"resources", result.ResourceCount,
		"duration", result.Duration)

	if err := p.store.Record(ctx, &history.Run{
		Style:         result.Style,
		OutputPath:    result.OutputPath,
		ResourceCount: result.ResourceCount,
		Duration:      result.Duration,
	}); err != nil {
		p.logger.Warn("failed to record run history", "error", err)
	}
	return result, nil
}

// checkCountConsistency verifies that every primary style rendered the
// same number of resources. A mismatch means a generator silently
// dropped entries.
func checkCountConsistency(results []StyleResult) error {
	if len(results) < 2 {
		return nil
	}
	want := results[0].ResourceCount
	for _, r := range results[1:] {
		if r.ResourceCount != want {
			return pkgerrors.New(pkgerrors.CategoryInternal, pkgerrors.SeverityError, fmt.Sprintf(
				"style %q rendered %d resources while %q rendered %d",
				r.Style, r.ResourceCount, results[0].Style, want))
		}
	}
	return nil
}

// Sort rewrites the dataset in canonical order.
func (p *Pipeline) Sort(ctx context.Context) error {
	snap, err := taxonomy.LoadSnapshot(p.taxonomyPath())
	if err != nil {
		return err
	}
	if err := sorter.Sort(p.cfg.Dataset, snap); err != nil {
		p.recorder.IncSortRun(false)
		return err
	}
	p.recorder.IncSortRun(true)
	p.logger.Info("dataset sorted", "path", p.cfg.Dataset)
	return nil
}

// ValidationReport aggregates dataset and output findings.
type ValidationReport struct {
	DatasetProblems []string
	LintResult      *lint.Result
}

// OK reports whether validation found nothing blocking.
func (r *ValidationReport) OK() bool {
	return len(r.DatasetProblems) == 0 && (r.LintResult == nil || !r.LintResult.HasErrors())
}

// Validate checks the dataset against its schema and the taxonomy, and
// lints any already-rendered documents passed in outputPaths.
func (p *Pipeline) Validate(ctx context.Context, outputPaths ...string) (*ValidationReport, error) {
	table, err := catalog.Load(p.cfg.Dataset)
	if err != nil {
		return nil, err
	}
	snap, err := taxonomy.LoadSnapshot(p.taxonomyPath())
	if err != nil {
		return nil, err
	}

	report := &ValidationReport{}
	report.DatasetProblems = append(report.DatasetProblems, catalog.CheckActiveFields(table)...)
	report.DatasetProblems = append(report.DatasetProblems, catalog.CheckUniqueIDs(table)...)
	if err := catalog.CheckCategoryCoverage(table, snap); err != nil {
		report.DatasetProblems = append(report.DatasetProblems, err.Error())
	}

	if len(outputPaths) > 0 {
		linter := lint.New(p.logger)
		result, err := linter.LintFiles(outputPaths...)
		if err != nil {
			return nil, err
		}
		report.LintResult = result
	}
	return report, nil
}
