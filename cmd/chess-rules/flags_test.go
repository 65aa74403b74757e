package main

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyOutputFlags(t *testing.T) {
	t.Run("defaults keep config", func(t *testing.T) {
		cfg := config.NewConfigBuilder().WithJSONOutput(true).WithHistoryWindow(5).Build()
		applyOutputFlags(cfg)
		if cfg.Output.Format != config.JSON {
			t.Errorf("Format = %q; want %q", cfg.Output.Format, config.JSON)
		}
		if cfg.Output.HistoryWindow != 5 {
			t.Errorf("HistoryWindow = %d; want 5", cfg.Output.HistoryWindow)
		}
	})

	t.Run("J selects JSON", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.Format != config.JSON {
			t.Errorf("Format = %q; want %q", cfg.Output.Format, config.JSON)
		}
	})

	t.Run("board and fen", func(t *testing.T) {
		defer saveRestoreBool(showBoard, true)()
		defer saveRestoreBool(showFEN, true)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if !cfg.Output.ShowBoard || !cfg.Output.ShowFEN {
			t.Errorf("ShowBoard/ShowFEN = %v/%v; want true/true", cfg.Output.ShowBoard, cfg.Output.ShowFEN)
		}
	})

	t.Run("window zero shows all", func(t *testing.T) {
		defer saveRestoreInt(historyWindow, 0)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.HistoryWindow != 0 {
			t.Errorf("HistoryWindow = %d; want 0", cfg.Output.HistoryWindow)
		}
	})
}

func TestApplyReplayFlags(t *testing.T) {
	const fen = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	defer saveRestoreString(startFEN, fen)()
	defer saveRestoreInt(workers, 3)()

	cfg := config.NewConfig()
	applyReplayFlags(cfg)
	if cfg.Batch.StartFEN != fen {
		t.Errorf("StartFEN = %q; want %q", cfg.Batch.StartFEN, fen)
	}
	if cfg.Batch.Workers != 3 {
		t.Errorf("Workers = %d; want 3", cfg.Batch.Workers)
	}
}

func TestApplyLogFlags(t *testing.T) {
	defer saveRestoreString(logLevel, "debug")()
	defer saveRestoreString(logFormat, "json")()

	cfg := config.NewConfig()
	applyFlags(cfg)
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v; want debug/json", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestApplyDuplicateFlags(t *testing.T) {
	t.Run("D enables position matching", func(t *testing.T) {
		defer saveRestoreBool(suppressDuplicates, true)()
		cfg := config.NewConfig()
		applyDuplicateFlags(cfg)
		if !cfg.Batch.SuppressDuplicates || cfg.Batch.ExactDuplicates {
			t.Errorf("Batch = %+v; want position-only suppression", cfg.Batch)
		}
	})

	t.Run("exactdups implies D", func(t *testing.T) {
		defer saveRestoreBool(exactDuplicates, true)()
		defer saveRestoreInt(duplicateCapacity, 50)()
		cfg := config.NewConfig()
		applyDuplicateFlags(cfg)
		if !cfg.Batch.SuppressDuplicates || !cfg.Batch.ExactDuplicates {
			t.Errorf("Batch = %+v; want exact suppression", cfg.Batch)
		}
		if cfg.Batch.DuplicateCapacity != 50 {
			t.Errorf("DuplicateCapacity = %d; want 50", cfg.Batch.DuplicateCapacity)
		}
	})
}
