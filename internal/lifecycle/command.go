package lifecycle

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/pplaces/internal/execshell"
	pathutils "github.com/temirov/pplaces/internal/utils/path"
)

const (
	cloneCommandUseConstant       = "clone <url> [<destination>]"
	cloneCommandShortDescription  = "Clone a remote repository into a fresh destination"
	cloneCommandLongDescription   = "Clone checks that the destination holds no repository yet, then delegates to git clone. The destination defaults to the repository name from the URL."
	uploadCommandUseConstant      = "upload <path> <target>"
	uploadCommandShortDescription = "Publish a local repository to GitHub"
	uploadCommandLongDescription  = "Upload checks that the path holds a repository, then delegates to gh repo create with --push."
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the clone and upload cobra commands with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	Inspector             RepositoryInspector
	Cloner                RepositoryCloner
	GitHubExecutor        GitHubExecutor
	ShellExecutor         *execshell.ShellExecutor
	CommandEventsObserver execshell.CommandEventObserver
}

// BuildCloneCommand constructs the cobra command for cloning repositories.
func (builder *CommandBuilder) BuildCloneCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   cloneCommandUseConstant,
		Short: cloneCommandShortDescription,
		Long:  cloneCommandLongDescription,
		Args:  cobra.RangeArgs(1, 2),
		RunE:  builder.runClone,
	}
	return command, nil
}

// BuildUploadCommand constructs the cobra command for publishing repositories.
func (builder *CommandBuilder) BuildUploadCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   uploadCommandUseConstant,
		Short: uploadCommandShortDescription,
		Long:  uploadCommandLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE:  builder.runUpload,
	}
	return command, nil
}

func (builder *CommandBuilder) runClone(command *cobra.Command, arguments []string) error {
	remoteURL, destinationPath, extractionError := ExtractCloneArguments(arguments)
	if extractionError != nil {
		return extractionError
	}

	service, serviceError := builder.resolveService()
	if serviceError != nil {
		return serviceError
	}

	return service.Clone(command.Context(), CloneOptions{
		RemoteURL:   remoteURL,
		Destination: pathutils.NewScanRootSanitizer().SanitizeOne(destinationPath),
	})
}

func (builder *CommandBuilder) runUpload(command *cobra.Command, arguments []string) error {
	service, serviceError := builder.resolveService()
	if serviceError != nil {
		return serviceError
	}

	return service.Upload(command.Context(), UploadOptions{
		RepositoryPath: pathutils.NewScanRootSanitizer().SanitizeOne(arguments[0]),
		Target:         arguments[1],
	})
}

func (builder *CommandBuilder) resolveService() (*Service, error) {
	logger := builder.resolveLogger()

	shellExecutor, executorError := ResolveShellExecutor(builder.ShellExecutor, logger, builder.CommandEventsObserver)
	if executorError != nil && builder.needsShellExecutor() {
		return nil, executorError
	}

	repositoryInspector := builder.Inspector
	if repositoryInspector == nil {
		resolvedInspector, inspectorError := ResolveRepositoryInspector(nil, logger, shellExecutor)
		if inspectorError != nil {
			return nil, inspectorError
		}
		repositoryInspector = resolvedInspector
	}

	repositoryCloner := builder.Cloner
	if repositoryCloner == nil {
		resolvedCloner, clonerError := ResolveRepositoryCloner(nil, shellExecutor)
		if clonerError != nil {
			return nil, clonerError
		}
		repositoryCloner = resolvedCloner
	}

	githubExecutor := builder.GitHubExecutor
	if githubExecutor == nil {
		githubExecutor = shellExecutor
	}

	return NewService(logger, repositoryInspector, repositoryCloner, githubExecutor)
}

func (builder *CommandBuilder) needsShellExecutor() bool {
	return builder.Inspector == nil || builder.Cloner == nil || builder.GitHubExecutor == nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
