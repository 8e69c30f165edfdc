package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/e-Spirit/FSDevTools-sub000/internal/changeset"
	"github.com/e-Spirit/FSDevTools-sub000/internal/config"
	"github.com/e-Spirit/FSDevTools-sub000/internal/report"
)

// Engine reports the outcome of a synchronization operation
type Engine struct {
	cfg      *config.Config
	sink     report.Sink
	logger   *slog.Logger
	renderer report.Renderer
}

// NewEngine creates a new reporting engine. Detail trees are written to sink,
// progress messages to logger.
func NewEngine(cfg *config.Config, sink report.Sink, logger *slog.Logger) *Engine {
	return &Engine{
		cfg:      cfg,
		sink:     sink,
		logger:   logger,
		renderer: report.Renderer{AlignColumn: cfg.Report.AlignColumn},
	}
}

// Run renders one detail tree per status bucket and collects the combined
// summary. An error is returned when the operation itself reported failure
// or ctx is done.
func (e *Engine) Run(ctx context.Context, result *changeset.Result) (*Outcome, error) {
	if result == nil {
		return nil, fmt.Errorf("no operation result to report")
	}

	e.logger.Debug("reporting operation outcome",
		"operation", result.Operation,
		"summary_only", e.cfg.Report.SummaryOnly)

	outcome := &Outcome{Operation: result.Operation}
	for _, status := range reportedStatuses(result) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("report interrupted: %w", err)
		}

		records := result.Bucket(status)
		description := e.cfg.Description(status)
		if !e.cfg.Report.SummaryOnly {
			e.renderer.Render(e.sink, records, description)
		}

		outcome.Summaries = append(outcome.Summaries, BucketSummary{
			Status: status,
			Count:  len(records),
			Line:   report.Summary(records, description),
		})
	}

	if result.Failed() {
		e.logger.Error("operation reported failure", "operation", result.Operation, "error", result.Error)
		outcome.Error = result.Error
		return outcome, Failure(result)
	}

	e.logger.Info("operation outcome reported", "operation", result.Operation, "buckets", len(outcome.Summaries))
	return outcome, nil
}

// Summarize returns the summary lines of all status buckets without
// rendering any detail tree
func (e *Engine) Summarize(result *changeset.Result) []string {
	var lines []string
	for _, status := range reportedStatuses(result) {
		lines = append(lines, report.Summary(result.Bucket(status), e.cfg.Description(status)))
	}
	return lines
}

// reportedStatuses returns the four regular buckets, plus lost-and-found
// when it holds records
func reportedStatuses(result *changeset.Result) []changeset.Status {
	statuses := make([]changeset.Status, 0, 5)
	for _, status := range changeset.Statuses() {
		if status == changeset.StatusLostAndFound && len(result.Bucket(status)) == 0 {
			continue
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// Failure returns the error describing a failed operation, or nil when the
// operation succeeded
func Failure(result *changeset.Result) error {
	if !result.Failed() {
		return nil
	}
	return fmt.Errorf("%s failed: %s", operationName(result.Operation), result.Error)
}

func operationName(operation string) string {
	if operation == "" {
		return "operation"
	}
	return operation
}
