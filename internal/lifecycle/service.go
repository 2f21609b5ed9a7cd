package lifecycle

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/pplaces/internal/execshell"
	"github.com/temirov/pplaces/internal/gitrepo"
)

const (
	cloneOperationNameConstant      = "git clone"
	uploadOperationNameConstant     = "gh repo create"
	githubRepoSubcommandConstant    = "repo"
	githubCreateSubcommandConstant  = "create"
	githubSourceFlagConstant        = "--source"
	githubPushFlagConstant          = "--push"
	httpURLPrefixConstant           = "http://"
	httpsURLPrefixConstant          = "https://"
	sshURLPrefixConstant            = "ssh://"
	gitUserURLPrefixConstant        = "git@"
	cloneStartedLogMessageConstant  = "cloning repository"
	uploadStartedLogMessageConstant = "uploading repository"
	remoteLogFieldNameConstant      = "remote"
	destinationLogFieldNameConstant = "destination"
	targetLogFieldNameConstant      = "target"
	pathLogFieldNameConstant        = "path"
)

// ErrInspectorNotConfigured indicates the service was constructed without an inspector.
var ErrInspectorNotConfigured = errors.New("repository inspector not configured")

// ErrClonerNotConfigured indicates the service was constructed without a cloner.
var ErrClonerNotConfigured = errors.New("repository cloner not configured")

// ErrGitHubExecutorNotConfigured indicates the service was constructed without a GitHub executor.
var ErrGitHubExecutorNotConfigured = errors.New("github executor not configured")

// Service executes clone and upload operations behind inspection checks.
type Service struct {
	logger         *zap.Logger
	inspector      RepositoryInspector
	cloner         RepositoryCloner
	githubExecutor GitHubExecutor
}

// NewService validates dependencies and returns a lifecycle Service.
func NewService(logger *zap.Logger, inspector RepositoryInspector, cloner RepositoryCloner, githubExecutor GitHubExecutor) (*Service, error) {
	if inspector == nil {
		return nil, ErrInspectorNotConfigured
	}
	if cloner == nil {
		return nil, ErrClonerNotConfigured
	}
	if githubExecutor == nil {
		return nil, ErrGitHubExecutorNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger, inspector: inspector, cloner: cloner, githubExecutor: githubExecutor}, nil
}

// Clone clones the remote URL into the destination after confirming the
// destination does not already hold a repository. An empty destination is
// derived from the repository name in the URL.
func (service *Service) Clone(executionContext context.Context, options CloneOptions) error {
	destinationPath := strings.TrimSpace(options.Destination)
	if len(destinationPath) == 0 {
		derivedDestination, derivationError := DeriveCloneDestination(options.RemoteURL)
		if derivationError != nil {
			return derivationError
		}
		destinationPath = derivedDestination
	}

	existingRecord, _, inspectionError := service.inspector.InspectRepository(executionContext, destinationPath)
	if inspectionError != nil {
		return inspectionError
	}
	if existingRecord != nil {
		return &AlreadyExistsError{Path: destinationPath}
	}

	remoteURL := normalizeCloneRemote(options.RemoteURL)

	service.logger.Info(cloneStartedLogMessageConstant,
		zap.String(remoteLogFieldNameConstant, remoteURL),
		zap.String(destinationLogFieldNameConstant, destinationPath),
	)

	if cloneError := service.cloner.CloneRepository(executionContext, remoteURL, destinationPath); cloneError != nil {
		return &ExternalOperationFailedError{Operation: cloneOperationNameConstant, Cause: cloneError}
	}
	return nil
}

// Upload publishes the local repository to the named target through the GitHub
// CLI after confirming the path actually holds a repository.
func (service *Service) Upload(executionContext context.Context, options UploadOptions) error {
	repositoryRecord, _, inspectionError := service.inspector.InspectRepository(executionContext, options.RepositoryPath)
	if inspectionError != nil {
		return inspectionError
	}
	if repositoryRecord == nil {
		return &NotARepositoryError{Path: options.RepositoryPath}
	}

	service.logger.Info(uploadStartedLogMessageConstant,
		zap.String(pathLogFieldNameConstant, options.RepositoryPath),
		zap.String(targetLogFieldNameConstant, options.Target),
	)

	_, executionError := service.githubExecutor.ExecuteGitHubCLI(executionContext, execshell.CommandDetails{
		Arguments: []string{
			githubRepoSubcommandConstant,
			githubCreateSubcommandConstant,
			options.Target,
			githubSourceFlagConstant,
			options.RepositoryPath,
			githubPushFlagConstant,
		},
	})
	if executionError != nil {
		return &ExternalOperationFailedError{Operation: uploadOperationNameConstant, Cause: executionError}
	}
	return nil
}

// ExtractCloneArguments finds the clone URL among the arguments and returns
// the remaining argument as the destination. The URL may appear in any
// position.
func ExtractCloneArguments(arguments []string) (string, string, error) {
	remoteURL := ""
	destinationPath := ""
	for _, argument := range arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) == 0 {
			continue
		}
		if len(remoteURL) == 0 && looksLikeCloneURL(trimmedArgument) {
			remoteURL = trimmedArgument
			continue
		}
		if len(destinationPath) == 0 {
			destinationPath = trimmedArgument
		}
	}
	if len(remoteURL) == 0 {
		return "", "", &MissingCloneURLError{}
	}
	return remoteURL, destinationPath, nil
}

// DeriveCloneDestination extracts the repository name from the remote URL.
func DeriveCloneDestination(remoteURL string) (string, error) {
	parsedRemote, parseError := gitrepo.ParseRemoteURL(remoteURL)
	if parseError != nil {
		return "", parseError
	}
	return parsedRemote.Repository, nil
}

// normalizeCloneRemote rewrites a parseable remote into its canonical form,
// preserving the raw string for shapes the parser does not understand so git
// still receives them untouched.
func normalizeCloneRemote(remoteURL string) string {
	parsedRemote, parseError := gitrepo.ParseRemoteURL(remoteURL)
	if parseError != nil {
		return remoteURL
	}
	formattedRemote, formatError := gitrepo.FormatRemoteURL(parsedRemote)
	if formatError != nil {
		return remoteURL
	}
	return formattedRemote
}

func looksLikeCloneURL(candidate string) bool {
	return strings.HasPrefix(candidate, httpURLPrefixConstant) ||
		strings.HasPrefix(candidate, httpsURLPrefixConstant) ||
		strings.HasPrefix(candidate, sshURLPrefixConstant) ||
		strings.HasPrefix(candidate, gitUserURLPrefixConstant)
}
