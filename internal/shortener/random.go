package shortener

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// RandomGenerator produces hex encoded short codes from a random source
type RandomGenerator struct {
	source io.Reader
	size   int
}

// NewRandomGenerator creates a generator reading size bytes per code from crypto/rand
func NewRandomGenerator(size int) *RandomGenerator {
	return NewRandomGeneratorWithSource(rand.Reader, size)
}

// NewRandomGeneratorWithSource creates a generator reading from the given source
func NewRandomGeneratorWithSource(source io.Reader, size int) *RandomGenerator {
	if size <= 0 {
		size = DefaultCodeBytes
	}
	return &RandomGenerator{source: source, size: size}
}

// GenerateShortCode returns 2*size lowercase hex characters
func (g *RandomGenerator) GenerateShortCode(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	buf := make([]byte, g.size)
	if _, err := io.ReadFull(g.source, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Type returns the generator type
func (g *RandomGenerator) Type() string {
	return TypeRandom
}

// Ensure RandomGenerator implements Generator
var _ Generator = (*RandomGenerator)(nil)
