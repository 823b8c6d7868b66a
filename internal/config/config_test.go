package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/bitboard-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != Text {
		t.Errorf("Format = %v, want %v", cfg.Format, Text)
	}
	if cfg.SquareSize != 45 {
		t.Errorf("SquareSize = %d, want 45", cfg.SquareSize)
	}
	if cfg.HighlightAttacks {
		t.Error("HighlightAttacks should be false by default")
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"text", Text, false},
		{"svg", SVG, false},
		{"fen", FEN, false},
		{"attacks", Attacks, false},
		{"json", JSON, false},
		{" SVG ", SVG, false},
		{"pgn", Text, true},
		{"", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputFormat_String(t *testing.T) {
	for f := Text; f <= JSON; f++ {
		got, err := ParseOutputFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseOutputFormat(%q) = %v, %v; want %v", f.String(), got, err, f)
		}
	}
	if got := OutputFormat(99).String(); got != "OutputFormat(99)" {
		t.Errorf("String() = %q, want OutputFormat(99)", got)
	}
}

// TestMoveConfig_Validate verifies move config validation
func TestMoveConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     MoveConfig
		wantErr bool
	}{
		{
			name:    "empty config is valid",
			cfg:     MoveConfig{},
			wantErr: false,
		},
		{
			name:    "valid move",
			cfg:     MoveConfig{Coordinates: "e5f4"},
			wantErr: false,
		},
		{
			name:    "valid move with undo",
			cfg:     MoveConfig{Coordinates: "g1f3", Undo: true},
			wantErr: false,
		},
		{
			name:    "undo without move",
			cfg:     MoveConfig{Undo: true},
			wantErr: true,
		},
		{
			name:    "malformed move",
			cfg:     MoveConfig{Coordinates: "e9f4"},
			wantErr: true,
		},
		{
			name:    "short move",
			cfg:     MoveConfig{Coordinates: "e5"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"many workers", func(c *Config) { c.Workers = 8 }, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"bad format", func(c *Config) { c.Output.Format = OutputFormat(42) }, true},
		{"zero square size", func(c *Config) { c.Output.SquareSize = 0 }, true},
		{"bad move", func(c *Config) { c.Move.Coordinates = "zz" }, true},
		{"negative stop after", func(c *Config) { c.StopAfter = -1 }, true},
		{"stop after", func(c *Config) { c.StopAfter = 10 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestDuplicateConfig_Defaults verifies DuplicateConfig has sensible defaults
func TestDuplicateConfig_Defaults(t *testing.T) {
	cfg := NewDuplicateConfig()

	if cfg.Suppress {
		t.Error("Suppress should be false by default")
	}
	if cfg.MaxCapacity != 0 {
		t.Errorf("MaxCapacity = %d, want 0", cfg.MaxCapacity)
	}
}

// TestAnnotationConfig_Defaults verifies AnnotationConfig has sensible defaults
func TestAnnotationConfig_Defaults(t *testing.T) {
	cfg := NewAnnotationConfig()

	if cfg.AddFEN {
		t.Error("AddFEN should be false by default")
	}
	if cfg.AddHash {
		t.Error("AddHash should be false by default")
	}
	if cfg.AddState {
		t.Error("AddState should be false by default")
	}
}

// TestConfig_SubConfigs verifies that NewConfig fills every sub-config
func TestConfig_SubConfigs(t *testing.T) {
	cfg := NewConfig()

	if cfg.Output.Format != Text {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, Text)
	}
	if cfg.Move.Enabled() {
		t.Error("Move should be disabled")
	}
	if cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be false")
	}
	if cfg.Annotation.AddHash {
		t.Error("Annotation.AddHash should be false")
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithOutputFormat(SVG).
		WithSquareSize(60).
		WithHighlightAttacks(true).
		WithDuplicateSuppression(true).
		WithMaxCapacity(100).
		WithMove("e2e4", true).
		WithWorkers(4).
		WithVerify(true).
		WithHash(true).
		WithVerbosity(2).
		Build()

	if cfg.Output.Format != SVG {
		t.Errorf("Format = %v, want SVG", cfg.Output.Format)
	}
	if cfg.Output.SquareSize != 60 {
		t.Errorf("SquareSize = %d, want 60", cfg.Output.SquareSize)
	}
	if !cfg.Output.HighlightAttacks {
		t.Error("HighlightAttacks should be true")
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be true")
	}
	if cfg.Duplicate.MaxCapacity != 100 {
		t.Errorf("MaxCapacity = %d, want 100", cfg.Duplicate.MaxCapacity)
	}
	if cfg.Move.Coordinates != "e2e4" || !cfg.Move.Undo {
		t.Errorf("Move = %+v, want e2e4 with undo", cfg.Move)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if !cfg.Verify {
		t.Error("Verify should be true")
	}
	if !cfg.Annotation.AddHash {
		t.Error("AddHash should be true")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
