package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

const (
	gitMetadataDirectoryNameConstant   = ".git"
	unreadableDirectoryReasonConstant  = "directory could not be read"
	unreachableRootReasonTemplateConst = "scan root is not accessible: %w"
)

// Warning describes a non-fatal problem encountered while walking the filesystem.
type Warning struct {
	Path   string
	Reason string
	Cause  error
}

// String renders the warning for report output.
func (warning Warning) String() string {
	if warning.Cause == nil {
		return fmt.Sprintf("%s: %s", warning.Path, warning.Reason)
	}
	return fmt.Sprintf("%s: %s (%v)", warning.Path, warning.Reason, warning.Cause)
}

// FilesystemRepositoryDiscoverer locates git repository roots on disk.
//
// Traversal never descends beneath a discovered repository root, so a .git
// entry vendored inside another repository's working tree is not reported.
// Symbolic links are not followed, which bounds traversal on cyclic links.
type FilesystemRepositoryDiscoverer struct{}

// NewFilesystemRepositoryDiscoverer constructs a repository discoverer backed by filepath.WalkDir.
func NewFilesystemRepositoryDiscoverer() *FilesystemRepositoryDiscoverer {
	return &FilesystemRepositoryDiscoverer{}
}

// DiscoverRepositories walks the provided roots and returns directories containing a .git entry.
//
// Roots are resolved to absolute paths first, so reported repository paths are
// always absolute and a root given in both relative and absolute form
// deduplicates. Unreadable directories are collected as warnings and skipped;
// an unreachable root is a fatal error. Results are sorted lexicographically.
func (discoverer *FilesystemRepositoryDiscoverer) DiscoverRepositories(roots []string) ([]string, []Warning, error) {
	seen := make(map[string]struct{})
	var repositories []string
	var warnings []Warning

	for _, root := range roots {
		absoluteRoot, absoluteError := filepath.Abs(root)
		if absoluteError != nil {
			return nil, nil, fmt.Errorf(unreachableRootReasonTemplateConst, absoluteError)
		}
		walkError := filepath.WalkDir(absoluteRoot, func(path string, directoryEntry fs.DirEntry, visitError error) error {
			if visitError != nil {
				if path == absoluteRoot {
					return fmt.Errorf(unreachableRootReasonTemplateConst, visitError)
				}
				warnings = append(warnings, Warning{Path: path, Reason: unreadableDirectoryReasonConstant, Cause: visitError})
				if directoryEntry != nil && directoryEntry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if !directoryEntry.IsDir() {
				return nil
			}

			if !containsGitMetadata(path) {
				return nil
			}

			if _, alreadySeen := seen[path]; !alreadySeen {
				seen[path] = struct{}{}
				repositories = append(repositories, path)
			}
			return fs.SkipDir
		})
		if walkError != nil {
			return nil, nil, walkError
		}
	}

	sort.Strings(repositories)
	return repositories, warnings, nil
}

// containsGitMetadata reports whether the directory holds a .git entry.
// A .git file (linked worktree layout) counts the same as a directory.
func containsGitMetadata(directoryPath string) bool {
	_, statError := os.Lstat(filepath.Join(directoryPath, gitMetadataDirectoryNameConstant))
	return statError == nil
}
