package gitrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/temirov/pplaces/internal/execshell"
)

const (
	gitStatusSubcommandConstant       = "status"
	gitStatusPorcelainFlagConstant    = "--porcelain"
	gitRevParseSubcommandConstant     = "rev-parse"
	gitAbbrevRefFlagConstant          = "--abbrev-ref"
	gitHeadReferenceConstant          = "HEAD"
	gitRemoteSubcommandConstant       = "remote"
	gitRemoteGetURLSubcommandConstant = "get-url"
	gitLogSubcommandConstant          = "log"
	gitLogSingleCommitFlagConstant    = "-1"
	gitLogCommitterDateFormatConstant = "--format=%cI"
	gitCloneSubcommandConstant        = "clone"
	requiredValueMessageConstant      = "value is required"
)

// OriginRemoteNameConstant names the conventional primary remote.
const OriginRemoteNameConstant = "origin"

// ErrExecutorNotConfigured indicates the repository manager was constructed without an executor.
var ErrExecutorNotConfigured = errors.New("git executor not configured")

// ErrNoCommits indicates the repository history is empty.
var ErrNoCommits = errors.New("repository has no commits")

// GitExecutor runs git commands on behalf of the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager performs read and clone operations against local repositories.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager validates the executor and returns a RepositoryManager.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// CheckCleanWorktree reports whether the repository worktree carries no pending changes.
// Untracked files count as pending changes.
func (manager *RepositoryManager) CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitStatusSubcommandConstant, gitStatusPorcelainFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return false, executionError
	}
	return len(strings.TrimSpace(executionResult.StandardOutput)) == 0, nil
}

// GetCurrentBranch returns the checked out branch name, or "HEAD" when detached.
func (manager *RepositoryManager) GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitAbbrevRefFlagConstant, gitHeadReferenceConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// GetRemoteURL returns the fetch URL configured for the named remote.
func (manager *RepositoryManager) GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitRemoteGetURLSubcommandConstant, remoteName},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// GetLastCommitTime returns the committer timestamp of the newest commit on the
// current branch. ErrNoCommits is returned when the history is empty.
func (manager *RepositoryManager) GetLastCommitTime(executionContext context.Context, repositoryPath string) (time.Time, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitLogSubcommandConstant, gitLogSingleCommitFlagConstant, gitLogCommitterDateFormatConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		var commandFailure execshell.CommandFailedError
		if errors.As(executionError, &commandFailure) {
			return time.Time{}, ErrNoCommits
		}
		return time.Time{}, executionError
	}

	trimmedTimestamp := strings.TrimSpace(executionResult.StandardOutput)
	if len(trimmedTimestamp) == 0 {
		return time.Time{}, ErrNoCommits
	}

	commitTime, parseError := time.Parse(time.RFC3339, trimmedTimestamp)
	if parseError != nil {
		return time.Time{}, parseError
	}
	return commitTime, nil
}

// CloneRepository clones the remote URL into the destination path.
func (manager *RepositoryManager) CloneRepository(executionContext context.Context, remoteURL string, destinationPath string) error {
	trimmedRemote := strings.TrimSpace(remoteURL)
	if len(trimmedRemote) == 0 {
		return RemoteURLParseError{Input: remoteURL, Message: requiredValueMessageConstant}
	}
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments: []string{gitCloneSubcommandConstant, trimmedRemote, destinationPath},
	})
	return executionError
}
