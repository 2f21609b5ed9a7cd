package pathutils

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	tildeShortcutConstant     = "~"
	tildePathPrefixConstant   = "~/"
	tildePathPrefixByteLength = len(tildePathPrefixConstant)
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander rewrites leading tilde shortcuts in scan roots to the user's
// home directory. Unresolvable shortcuts pass through unchanged so the
// discoverer reports them as inaccessible roots instead.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &HomeExpander{homeDirectoryProvider: provider}
}

// Expand resolves a leading "~" or "~/" prefix to the user's home directory.
// Other tilde forms, such as "~user", are returned unchanged.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if expander == nil || !strings.HasPrefix(candidatePath, tildeShortcutConstant) {
		return candidatePath
	}

	homeDirectory, homeLookupError := expander.homeDirectoryProvider()
	if homeLookupError != nil || len(homeDirectory) == 0 {
		return candidatePath
	}

	if candidatePath == tildeShortcutConstant {
		return homeDirectory
	}
	if strings.HasPrefix(candidatePath, tildePathPrefixConstant) {
		return filepath.Join(homeDirectory, candidatePath[tildePathPrefixByteLength:])
	}
	return candidatePath
}
