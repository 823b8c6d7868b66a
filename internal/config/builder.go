package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithSquareSize sets the SVG square size.
func (b *ConfigBuilder) WithSquareSize(size int) *ConfigBuilder {
	b.cfg.Output.SquareSize = size
	return b
}

// WithHighlightAttacks enables attack shading in SVG output.
func (b *ConfigBuilder) WithHighlightAttacks(enabled bool) *ConfigBuilder {
	b.cfg.Output.HighlightAttacks = enabled
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithMaxCapacity bounds the duplicate table.
func (b *ConfigBuilder) WithMaxCapacity(n int) *ConfigBuilder {
	b.cfg.Duplicate.MaxCapacity = n
	return b
}

// WithMove sets the move to play on each position.
func (b *ConfigBuilder) WithMove(coords string, undo bool) *ConfigBuilder {
	b.cfg.Move.Coordinates = coords
	b.cfg.Move.Undo = undo
	return b
}

// WithWorkers sets the number of decode workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithVerify enables the reference cross-check.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Verify = enabled
	return b
}

// WithHash enables the Zobrist key annotation.
func (b *ConfigBuilder) WithHash(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddHash = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
