package testutil

import "errors"

// ErrSimulated is a sentinel error for testing error handling paths
var ErrSimulated = errors.New("simulated error for testing")

// ErrSimulatedDisk stands in for a full or read-only disk.
var ErrSimulatedDisk = errors.New("simulated disk failure")
