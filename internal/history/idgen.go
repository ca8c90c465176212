package history

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// idAlphabet keeps generated IDs lowercase so they read cleanly in YAML and
// shell output.
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// idLength gives ~2^51 possible IDs, plenty for a per-user history file.
const idLength = 10

// NewID generates a short unique identifier for a history entry.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
