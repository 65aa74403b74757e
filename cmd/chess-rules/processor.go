package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Stats counts the outcome of a run.
type Stats struct {
	Games      int
	Checkmates int
	Rejected   int
	Duplicates int
}

// ProcessingContext holds what every input of a run shares.
type ProcessingContext struct {
	cfg      *config.Config
	logger   *zap.Logger
	writer   output.GameWriter
	detector *hashing.DuplicateDetector // nil unless duplicates are suppressed
	stats    Stats
}

// newProcessingContext builds the writer and, if configured, the detector.
func newProcessingContext(cfg *config.Config, logger *zap.Logger) *ProcessingContext {
	ctx := &ProcessingContext{
		cfg:    cfg,
		logger: logger,
		writer: output.NewWriter(cfg.OutputFile, cfg),
	}
	if cfg.Batch.SuppressDuplicates {
		ctx.detector = hashing.NewDuplicateDetector(cfg.Batch.ExactDuplicates, cfg.Batch.DuplicateCapacity)
	}
	return ctx
}

// processAllInputs replays stdin, or each named file in turn, and writes
// every game to the configured output.
func processAllInputs(cfg *config.Config, logger *zap.Logger, args []string) (Stats, error) {
	ctx := newProcessingContext(cfg, logger)

	if len(args) == 0 {
		if err := processInput(os.Stdin, "stdin", ctx); err != nil {
			return ctx.stats, err
		}
	} else {
		for _, filename := range args {
			file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
			if err != nil {
				logger.Error("cannot open input", zap.String("file", filename), zap.Error(err))
				continue
			}

			err = processInput(file, filename, ctx)
			file.Close() //nolint:errcheck,gosec // G104: read-only file
			if err != nil {
				return ctx.stats, err
			}
		}
	}

	if err := ctx.writer.Close(); err != nil {
		return ctx.stats, fmt.Errorf("write output: %w", err)
	}
	return ctx.stats, nil
}

// processInput replays every game in r and writes the results in input order.
func processInput(r io.Reader, name string, ctx *ProcessingContext) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	items := worker.Lines(string(data))
	log := ctx.logger.With(zap.String("input", name))
	log.Debug("replaying", zap.Int("games", len(items)))

	offset := ctx.stats.Games
	for _, res := range replayAll(items, ctx.cfg, log) {
		ctx.record(res, log)
		if ctx.isDuplicate(res) {
			log.Debug("duplicate game suppressed", zap.Int("line", res.Line))
			continue
		}
		if err := ctx.writer.WriteGame(toGame(res, offset)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// replayAll replays items on the worker pool.
func replayAll(items []worker.WorkItem, cfg *config.Config, logger *zap.Logger) []worker.ProcessResult {
	replayer := worker.NewReplayer(cfg.Batch.StartFEN, logger)

	opts := []worker.PoolOption{}
	if cfg.Batch.Workers > 0 {
		opts = append(opts, worker.WithWorkers(cfg.Batch.Workers))
	}
	if cfg.Batch.BufferSize > 0 {
		opts = append(opts, worker.WithBufferSize(cfg.Batch.BufferSize))
	}

	return worker.NewPool(replayer.Process, opts...).Run(items)
}

// toGame numbers a result after the games of earlier inputs.
func toGame(res worker.ProcessResult, offset int) output.Game {
	return output.Game{
		Number:  offset + res.Index + 1,
		Line:    res.Line,
		Session: res.Session,
		Err:     res.Error,
	}
}

// record updates the run statistics for one result.
func (ctx *ProcessingContext) record(res worker.ProcessResult, logger *zap.Logger) {
	ctx.stats.Games++
	if res.Error != nil {
		ctx.stats.Rejected++
		logger.Warn("game rejected", zap.Int("line", res.Line), zap.Error(res.Error))
	}
	if res.Session != nil && res.Session.IsGameOver() {
		ctx.stats.Checkmates++
	}
}

// isDuplicate reports whether a fully replayed game repeats the final
// position of one already written. Rejected games are never suppressed.
func (ctx *ProcessingContext) isDuplicate(res worker.ProcessResult) bool {
	if ctx.detector == nil || res.Error != nil || res.Session == nil {
		return false
	}
	if ctx.detector.CheckAndAdd(res.Session) {
		ctx.stats.Duplicates++
		return true
	}
	return false
}
