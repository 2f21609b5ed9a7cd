package scan

import (
	"time"

	"github.com/temirov/pplaces/internal/inspect"
)

// CommandOptions captures the configurable parameters for a scan run.
type CommandOptions struct {
	Roots      []string
	DaysToShow *uint
	Full       bool
	Clock      Clock
}

// ScanResult carries the ordered records and accumulated warnings of one run.
type ScanResult struct {
	Records  []inspect.RepositoryRecord
	Warnings []string
}

// MissingRootsError indicates a scan was requested without any usable root.
type MissingRootsError struct {
	Message string
}

// Error describes the missing roots.
func (missingRoots *MissingRootsError) Error() string {
	return missingRoots.Message
}

// Clock abstracts time-dependent functionality for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard library.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
