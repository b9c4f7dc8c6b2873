package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"absensi/internal/ports/output"
)

// tokenBytes gives 32 hex characters, far beyond what collision retries or
// guessing from the participant id could reach.
const tokenBytes = 16

var _ output.TokenGenerator = (*Generator)(nil)

// Generator issues random hex check-in tokens from crypto/rand.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (*Generator) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
