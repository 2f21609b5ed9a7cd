package pathutils

import (
	"path/filepath"
	"strings"
)

// ScanRootSanitizer normalizes scan root inputs consistently across commands.
type ScanRootSanitizer struct {
	homeExpander *HomeExpander
}

// NewScanRootSanitizer constructs a ScanRootSanitizer with default behavior.
func NewScanRootSanitizer() *ScanRootSanitizer {
	return NewScanRootSanitizerWithExpander(nil)
}

// NewScanRootSanitizerWithExpander constructs a ScanRootSanitizer using the provided expander.
func NewScanRootSanitizerWithExpander(homeExpander *HomeExpander) *ScanRootSanitizer {
	resolvedExpander := homeExpander
	if resolvedExpander == nil {
		resolvedExpander = NewHomeExpander()
	}
	return &ScanRootSanitizer{homeExpander: resolvedExpander}
}

// Sanitize trims whitespace, expands the user's home directory, resolves each
// path to an absolute one, and removes empty values. Repository paths serve as
// unique keys downstream, so relative inputs must not survive sanitization.
func (sanitizer *ScanRootSanitizer) Sanitize(candidateRoots []string) []string {
	expander := sanitizer.resolveExpander()

	sanitizedRoots := make([]string, 0, len(candidateRoots))
	for candidateIndex := range candidateRoots {
		trimmedCandidate := strings.TrimSpace(candidateRoots[candidateIndex])
		if len(trimmedCandidate) == 0 {
			continue
		}
		sanitizedRoots = append(sanitizedRoots, resolveAbsolutePath(expander.Expand(trimmedCandidate)))
	}

	if len(sanitizedRoots) == 0 {
		return nil
	}
	return sanitizedRoots
}

// SanitizeOne normalizes a single path argument, returning an empty string for blank input.
func (sanitizer *ScanRootSanitizer) SanitizeOne(candidatePath string) string {
	trimmedCandidate := strings.TrimSpace(candidatePath)
	if len(trimmedCandidate) == 0 {
		return ""
	}
	return resolveAbsolutePath(sanitizer.resolveExpander().Expand(trimmedCandidate))
}

func resolveAbsolutePath(candidatePath string) string {
	absolutePath, absoluteError := filepath.Abs(candidatePath)
	if absoluteError != nil {
		return candidatePath
	}
	return absolutePath
}

func (sanitizer *ScanRootSanitizer) resolveExpander() *HomeExpander {
	if sanitizer == nil || sanitizer.homeExpander == nil {
		return NewHomeExpander()
	}
	return sanitizer.homeExpander
}
