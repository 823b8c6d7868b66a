package config

// AnnotationConfig holds settings for extra lines written after each
// position.
type AnnotationConfig struct {
	AddFEN   bool // Write the re-encoded FEN
	AddHash  bool // Write the Zobrist key
	AddState bool // Write the side to move and game state
}

// NewAnnotationConfig creates an AnnotationConfig with default values.
// All boolean fields default to false (Go zero value).
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{}
}
