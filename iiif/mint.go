package iiif

import (
	"strings"

	"github.com/google/uuid"
)

// MintID returns base followed by a fresh random UUID path segment.
func MintID(base string) string {
	return strings.TrimRight(base, "/") + "/" + uuid.NewString()
}
