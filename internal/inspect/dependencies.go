package inspect

import (
	"context"
	"time"
)

// GitRepositoryManager exposes the repository-level git reads used by the inspector.
type GitRepositoryManager interface {
	CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error)
	GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
	GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error)
	GetLastCommitTime(executionContext context.Context, repositoryPath string) (time.Time, error)
}
