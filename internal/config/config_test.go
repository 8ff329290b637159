package config

import "testing"

func TestLoadArgsFlagsWin(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"-world", "flag.json", "-company", "3", "-width", "100", "-footer", "-trace"},
		[]string{"LIVERY_POPUP_CONTROL_WORLD=env.json", "LIVERY_POPUP_CONTROL_WIDTH=40"},
	)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.WorldPath != "flag.json" {
		t.Fatalf("expected flag world path, got %q", cfg.App.WorldPath)
	}
	if cfg.App.Company != 3 {
		t.Fatalf("expected company 3, got %d", cfg.App.Company)
	}
	if cfg.App.Width != 100 {
		t.Fatalf("expected width 100, got %d", cfg.App.Width)
	}
	if !cfg.App.ShowFooter || !cfg.Logging.Trace {
		t.Fatalf("expected footer and trace enabled: %+v", cfg)
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{
		"LIVERY_POPUP_CONTROL_WORLD=env.json",
		"LIVERY_POPUP_CONTROL_GROUP=7",
		"LIVERY_POPUP_CONTROL_VERBOSE=1",
		"LIVERY_POPUP_CONTROL_LOG_FILE=out.log",
	})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.WorldPath != "env.json" {
		t.Fatalf("expected env world path, got %q", cfg.App.WorldPath)
	}
	if cfg.App.Group != 7 {
		t.Fatalf("expected group 7, got %d", cfg.App.Group)
	}
	if !cfg.App.Verbose || cfg.Logging.FilePath != "out.log" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Company != -1 || cfg.App.Group != -1 {
		t.Fatalf("expected -1 defaults, got company %d group %d", cfg.App.Company, cfg.App.Group)
	}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error without a world path")
	}
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatal("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatal("expected error for negative height")
	}
	if _, err := LoadArgs([]string{"-company", "-2"}, nil); err == nil {
		t.Fatal("expected error for company below -1")
	}
}
