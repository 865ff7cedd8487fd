package shortener

import (
	"context"
)

// Generator defines the interface for generating short codes
type Generator interface {
	// GenerateShortCode generates a candidate short code
	GenerateShortCode(ctx context.Context) (string, error)

	// Type returns the type identifier of the generator
	Type() string
}

// GeneratorType constants
const (
	TypeRandom = "random"
)

// DefaultCodeBytes is the number of random bytes in a short code (8 hex characters)
const DefaultCodeBytes = 4
