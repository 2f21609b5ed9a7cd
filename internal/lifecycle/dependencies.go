package lifecycle

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/pplaces/internal/execshell"
	"github.com/temirov/pplaces/internal/gitrepo"
	"github.com/temirov/pplaces/internal/inspect"
)

// RepositoryInspector checks whether local paths hold repositories.
type RepositoryInspector interface {
	InspectRepository(executionContext context.Context, repositoryPath string) (*inspect.RepositoryRecord, []inspect.Warning, error)
}

// RepositoryCloner clones remote repositories into local destinations.
type RepositoryCloner interface {
	CloneRepository(executionContext context.Context, remoteURL string, destinationPath string) error
}

// GitHubExecutor runs GitHub CLI commands on behalf of upload operations.
type GitHubExecutor interface {
	ExecuteGitHubCLI(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ResolveShellExecutor returns the provided executor or constructs a shell-backed default.
func ResolveShellExecutor(existing *execshell.ShellExecutor, logger *zap.Logger, eventObserver execshell.CommandEventObserver) (*execshell.ShellExecutor, error) {
	if existing != nil {
		return existing, nil
	}
	commandRunner := execshell.NewOSCommandRunner()
	return execshell.NewShellExecutorWithObserver(logger, commandRunner, eventObserver)
}

// ResolveRepositoryInspector returns the provided inspector or constructs one over the executor.
func ResolveRepositoryInspector(existing RepositoryInspector, logger *zap.Logger, executor gitrepo.GitExecutor) (RepositoryInspector, error) {
	if existing != nil {
		return existing, nil
	}
	repositoryManager, managerError := gitrepo.NewRepositoryManager(executor)
	if managerError != nil {
		return nil, managerError
	}
	repositoryInspector, inspectorError := inspect.NewRepositoryInspector(logger, repositoryManager)
	if inspectorError != nil {
		return nil, inspectorError
	}
	return repositoryInspector, nil
}

// ResolveRepositoryCloner returns the provided cloner or constructs one over the executor.
func ResolveRepositoryCloner(existing RepositoryCloner, executor gitrepo.GitExecutor) (RepositoryCloner, error) {
	if existing != nil {
		return existing, nil
	}
	repositoryManager, managerError := gitrepo.NewRepositoryManager(executor)
	if managerError != nil {
		return nil, managerError
	}
	return repositoryManager, nil
}
