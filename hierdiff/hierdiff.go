// Package hierdiff compares two snapshots of a hierarchical UI element
// tree and reports the differences that represent a meaningful UI change,
// suppressing cosmetic noise. It pairs nodes across the trees despite
// reordering, insertion, and removal, classifies the differences of each
// pair, and scores the aggregate change.
//
// hierdiff compares, it does not capture: snapshots come from files written
// by a collaborator (see cmd/uicap) and are parsed through the element
// package before they reach the engine.
package hierdiff

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hazyhaar/uidiff/element"
	"github.com/hazyhaar/uidiff/hierdiff/internal/config"
	"github.com/hazyhaar/uidiff/hierdiff/internal/differ"
	"github.com/hazyhaar/uidiff/hierdiff/internal/match"
	"github.com/hazyhaar/uidiff/hierdiff/internal/score"
	"github.com/hazyhaar/uidiff/hierdiff/internal/tree"
	"github.com/hazyhaar/uidiff/idgen"
	"github.com/hazyhaar/uidiff/report"
)

// Engine is the comparison pipeline: collect → match → diff → score.
// An Engine is stateless across calls and may be reused; each Compare owns
// its consumed-input tracking for the duration of that call only.
type Engine struct {
	collector *tree.Collector
	matcher   *match.Matcher
	differ    *differ.Differ
	scorer    *score.Calculator
	logger    *slog.Logger
	newID     idgen.Generator
}

// New creates an Engine from configuration. A nil or zero-value cfg uses
// the defaults (unset fields are filled on a copy, the caller's config is
// never mutated); a nil logger uses slog.Default.
func New(cfg *Config, logger *slog.Logger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	} else {
		cfg = cfg.Normalized()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		collector: tree.NewCollector(cfg.Attributes.Keep),
		matcher:   match.New(cfg.Match.AcceptThreshold, cfg.Match.ContentBoost, cfg.Match.OverlapBonus),
		differ:    differ.New(cfg.Text.SimilarityThreshold),
		scorer:    score.New(cfg.Score.Weights, cfg.Score.DefaultWeight),
		logger:    logger,
		newID:     idgen.Prefixed("cmp_", idgen.Default),
	}
}

// Compare runs the full pipeline over two parsed trees. It is synchronous,
// single-threaded, and deterministic up to exact score ties in the
// heuristic matcher (resolved by base collection order).
func (e *Engine) Compare(base, input *element.Element) *report.Report {
	baseNodes := e.collector.Collect(base)
	inputNodes := e.collector.Collect(input)

	pairs := e.matcher.Match(baseNodes, inputNodes)
	diffs := e.differ.Diff(pairs)

	e.logger.Debug("hierdiff: compared",
		"base_nodes", len(baseNodes),
		"input_nodes", len(inputNodes),
		"pairs", len(pairs),
		"differences", len(diffs))

	return &report.Report{
		ID:          e.newID(),
		Differences: diffs,
		Score:       e.scorer.Score(diffs, len(baseNodes)),
		TotalDiffs:  len(diffs),
		BaseNodes:   len(baseNodes),
		Timestamp:   time.Now().UnixMilli(),
	}
}

// CompareFiles parses both snapshot files and compares them. A structural
// parse failure on either side aborts the whole comparison; there is no
// partial diff.
func (e *Engine) CompareFiles(basePath, inputPath string) (*report.Report, error) {
	base, err := element.ParseFile(basePath)
	if err != nil {
		return nil, fmt.Errorf("hierdiff: base snapshot: %w", err)
	}
	input, err := element.ParseFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("hierdiff: input snapshot: %w", err)
	}

	rep := e.Compare(base, input)
	rep.BaseFile = basePath
	rep.InputFile = inputPath
	return rep, nil
}
