package scan

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/pplaces/internal/discovery"
	"github.com/temirov/pplaces/internal/execshell"
	"github.com/temirov/pplaces/internal/gitrepo"
	"github.com/temirov/pplaces/internal/inspect"
)

// RepositoryDiscoverer locates repository paths beneath the scan roots.
type RepositoryDiscoverer interface {
	DiscoverRepositories(roots []string) ([]string, []discovery.Warning, error)
}

// RepositoryInspector reads metadata records for discovered repositories.
type RepositoryInspector interface {
	InspectRepository(executionContext context.Context, repositoryPath string) (*inspect.RepositoryRecord, []inspect.Warning, error)
}

// ResolveRepositoryDiscoverer returns the provided discoverer or a filesystem-backed default.
func ResolveRepositoryDiscoverer(existing RepositoryDiscoverer) RepositoryDiscoverer {
	if existing != nil {
		return existing
	}
	return discovery.NewFilesystemRepositoryDiscoverer()
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default.
func ResolveGitExecutor(existing gitrepo.GitExecutor, logger *zap.Logger, eventObserver execshell.CommandEventObserver) (gitrepo.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}
	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutorWithObserver(logger, commandRunner, eventObserver)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
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
