package inspect

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/pplaces/internal/execshell"
	"github.com/temirov/pplaces/internal/gitrepo"
)

const (
	gitMetadataEntryNameConstant = ".git"
	branchFieldNameConstant      = "branch"
	worktreeFieldNameConstant    = "worktree status"
	remoteFieldNameConstant      = "remote url"
	lastCommitFieldNameConstant  = "last commit time"
	warningLogMessageConstant    = "repository metadata read failed"
	pathLogFieldNameConstant     = "path"
	fieldLogFieldNameConstant    = "field"
)

// ErrRepositoryManagerNotConfigured indicates the inspector was constructed without a repository manager.
var ErrRepositoryManagerNotConfigured = errors.New("repository manager not configured")

// RepositoryInspector reads per-repository metadata through git.
type RepositoryInspector struct {
	logger            *zap.Logger
	repositoryManager GitRepositoryManager
}

// NewRepositoryInspector validates dependencies and returns a RepositoryInspector.
func NewRepositoryInspector(logger *zap.Logger, repositoryManager GitRepositoryManager) (*RepositoryInspector, error) {
	if repositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RepositoryInspector{logger: logger, repositoryManager: repositoryManager}, nil
}

// InspectRepository builds the metadata record for the repository at the given
// path. A nil record is returned when the path carries no .git entry. Metadata
// reads that fail degrade into warnings on a partial record; only context
// cancellation aborts inspection.
func (inspector *RepositoryInspector) InspectRepository(executionContext context.Context, repositoryPath string) (*RepositoryRecord, []Warning, error) {
	if contextError := executionContext.Err(); contextError != nil {
		return nil, nil, contextError
	}

	gitMetadataPath := filepath.Join(repositoryPath, gitMetadataEntryNameConstant)
	if _, statError := os.Lstat(gitMetadataPath); statError != nil {
		return nil, nil, nil
	}

	record := &RepositoryRecord{Path: repositoryPath}
	warnings := make([]Warning, 0)

	branchName, branchError := inspector.repositoryManager.GetCurrentBranch(executionContext, repositoryPath)
	if branchError != nil {
		warnings = inspector.appendWarning(warnings, repositoryPath, branchFieldNameConstant, branchError)
	} else {
		record.Branch = branchName
	}

	cleanWorktree, worktreeError := inspector.repositoryManager.CheckCleanWorktree(executionContext, repositoryPath)
	if worktreeError != nil {
		warnings = inspector.appendWarning(warnings, repositoryPath, worktreeFieldNameConstant, worktreeError)
	} else {
		record.Dirty = !cleanWorktree
	}

	remoteURL, remoteError := inspector.repositoryManager.GetRemoteURL(executionContext, repositoryPath, gitrepo.OriginRemoteNameConstant)
	switch {
	case remoteError == nil:
		record.RemoteURL = remoteURL
	case isMissingRemoteError(remoteError):
		// No origin configured; the record simply carries no remote.
	default:
		warnings = inspector.appendWarning(warnings, repositoryPath, remoteFieldNameConstant, remoteError)
	}

	lastCommitTime, commitTimeError := inspector.repositoryManager.GetLastCommitTime(executionContext, repositoryPath)
	switch {
	case commitTimeError == nil:
		record.LastCommitTime = &lastCommitTime
	case errors.Is(commitTimeError, gitrepo.ErrNoCommits):
		// History is empty; the record carries no commit time.
	default:
		warnings = inspector.appendWarning(warnings, repositoryPath, lastCommitFieldNameConstant, commitTimeError)
	}

	if contextError := executionContext.Err(); contextError != nil {
		return nil, nil, contextError
	}
	return record, warnings, nil
}

func (inspector *RepositoryInspector) appendWarning(warnings []Warning, repositoryPath string, fieldName string, cause error) []Warning {
	inspector.logger.Warn(warningLogMessageConstant,
		zap.String(pathLogFieldNameConstant, repositoryPath),
		zap.String(fieldLogFieldNameConstant, fieldName),
		zap.Error(cause),
	)
	return append(warnings, Warning{Path: repositoryPath, Field: fieldName, Cause: cause})
}

func isMissingRemoteError(remoteError error) bool {
	var commandFailure execshell.CommandFailedError
	return errors.As(remoteError, &commandFailure)
}
