package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}

	WithRunMode()(cfg)
	if cfg.mode != ModeRun {
		t.Fatalf("WithRunMode() mode = %v, want %v", cfg.mode, ModeRun)
	}

	WithViewMode()(cfg)
	if cfg.mode != ModeView {
		t.Fatalf("WithViewMode() mode = %v, want %v", cfg.mode, ModeView)
	}

	WithExtractMode()(cfg)
	if cfg.mode != ModeExtract {
		t.Fatalf("WithExtractMode() mode = %v, want %v", cfg.mode, ModeExtract)
	}
}

func TestSimpleUI_StartRecordsMode(t *testing.T) {
	ui := NewSimpleUI(nil)

	if err := ui.Start(WithViewMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if ui.mode != ModeView {
		t.Fatalf("mode = %v, want %v", ui.mode, ModeView)
	}

	ui.Close()
	ui.Wait()
}
