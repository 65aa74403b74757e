// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Configuration file; flags override its values
	configFile = flag.String("config", "", "YAML configuration file")

	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	appendOutput  = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput    = flag.Bool("J", false, "Output in JSON format")
	showBoard     = flag.Bool("board", false, "Print the final board of each game")
	showFEN       = flag.Bool("fen", false, "Print the final position of each game as FEN")
	historyWindow = flag.Int("window", -1, "Show only the last N move-list lines (0 = all)")

	// Replay options
	startFEN = flag.String("start", "", "Starting position for every game (FEN)")
	workers  = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games whose final position was already output")
	exactDuplicates    = flag.Bool("exactdups", false, "Duplicates must also have the same number of plies")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered positions (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	logLevel  = flag.String("loglevel", "", "Log level: debug, info, warn, error")
	logFormat = flag.String("logformat", "", "Log format: console or json")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration. Flags left
// at their defaults keep the configured values.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyReplayFlags(cfg)
	applyDuplicateFlags(cfg)
	applyLogFlags(cfg)
}

// applyOutputFlags configures output format settings.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	if *showBoard {
		cfg.Output.ShowBoard = true
	}
	if *showFEN {
		cfg.Output.ShowFEN = true
	}
	if *historyWindow >= 0 {
		cfg.Output.HistoryWindow = *historyWindow
	}
}

// applyReplayFlags configures the batch replay.
func applyReplayFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.Batch.StartFEN = *startFEN
	}
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
}

// applyDuplicateFlags configures duplicate suppression.
func applyDuplicateFlags(cfg *config.Config) {
	if *suppressDuplicates || *exactDuplicates {
		cfg.Batch.SuppressDuplicates = true
	}
	if *exactDuplicates {
		cfg.Batch.ExactDuplicates = true
	}
	if *duplicateCapacity > 0 {
		cfg.Batch.DuplicateCapacity = *duplicateCapacity
	}
}

// applyLogFlags configures the logger.
func applyLogFlags(cfg *config.Config) {
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
}
