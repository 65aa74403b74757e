// chess-rules replays games given as coordinate moves and reports each
// game's notation, final position and first illegal move.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := loadConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	logger := logging.New(cfg.Log, cfg.LogFile)
	defer logger.Sync() //nolint:errcheck // nothing to do if stderr cannot be synced

	stats, err := processAllInputs(cfg, logger, flag.Args())
	if err != nil {
		logger.Error("replay failed", zap.Error(err))
		os.Exit(2)
	}

	if !*quiet {
		reportStatistics(stats)
	}
	if stats.Rejected > 0 {
		os.Exit(1)
	}
}

// loadConfig reads the configuration file if one was given.
func loadConfig() *config.Config {
	if *configFile == "" {
		return config.NewConfig()
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLogOutput(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLogOutput(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// reportStatistics prints the final statistics to stderr.
func reportStatistics(stats Stats) {
	if stats.Duplicates > 0 {
		fmt.Fprintf(os.Stderr, "%d game(s) replayed, %d checkmate(s), %d rejected, %d duplicate(s).\n",
			stats.Games, stats.Checkmates, stats.Rejected, stats.Duplicates)
		return
	}
	fmt.Fprintf(os.Stderr, "%d game(s) replayed, %d checkmate(s), %d rejected.\n",
		stats.Games, stats.Checkmates, stats.Rejected)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games written as coordinate moves, one game per line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput format:\n")
	fmt.Fprintf(os.Stderr, "  1. e2e4 e7e5 2. g1f3 b8c6    move numbers are optional\n")
	fmt.Fprintf(os.Stderr, "  e7e8q                         only queen promotion is accepted\n")
	fmt.Fprintf(os.Stderr, "  # comment                     blank and '#' lines are skipped\n")
}
