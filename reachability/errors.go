// SPDX-License-Identifier: MIT
// Package reachability: sentinel error set.
// Every message is prefixed with "reachability: ..."; context is attached by
// wrapping with fmt.Errorf("...: %w", ErrX) and matched with errors.Is.

package reachability

import "errors"

var (
	// ErrInvalidSize is returned when the requested island count is negative.
	ErrInvalidSize = errors.New("reachability: island count must be >= 0")

	// ErrQueryOutOfRange indicates that a queried island ID is outside [1, N].
	ErrQueryOutOfRange = errors.New("reachability: island id out of range")

	// ErrNilPartition indicates FromPartition received a nil partition.
	ErrNilPartition = errors.New("reachability: partition is nil")
)
