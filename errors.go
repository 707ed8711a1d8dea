package hashmap

import "github.com/efficientgo/core/errors"

var (
	// ErrCapacityExceeded is returned when growing would pass the configured
	// maximum capacity. The table is left unchanged.
	ErrCapacityExceeded = errors.Newf("hash table capacity exceeded")

	// ErrTableFull is returned when a probe sequence visits every slot without
	// finding room. The resize policy keeps this from happening.
	ErrTableFull = errors.Newf("hash table full")

	// ErrClosed is returned by Insert after Close.
	ErrClosed = errors.Newf("hash table closed")

	// ErrInvalidConfig is returned by New for unusable options.
	ErrInvalidConfig = errors.Newf("invalid hash table configuration")
)
