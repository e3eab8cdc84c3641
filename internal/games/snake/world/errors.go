package world

import (
	"github.com/pkg/errors"
)

// Invariant violations. These never occur under correct operation; callers
// abort the frame and halt the session when one is returned.
var (
	ErrNotSpawned       = errors.New("no snake is spawned")
	ErrUnknownSegment   = errors.New("unknown segment id")
	ErrInconsistentBody = errors.New("snake body is inconsistent")
	ErrBrokenPartition  = errors.New("free cells, snake and food do not partition the grid")
	ErrInvalidLayout    = errors.New("invalid spawn layout")
)
