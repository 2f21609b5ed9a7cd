package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	loggerNotConfiguredMessageConstant        = "logger not configured"
	commandRunnerNotConfiguredMessageConstant = "command runner not configured"
	commandFailedTemplateConstant             = "%s exited with code %d%s"
	commandExecutionFailedTemplateConstant    = "%s execution failed: %v"
	commandStandardErrorSuffixConstant        = ": %s"
	commandLabelJoinSeparatorConstant         = " "
)

// Sentinel errors surfaced during executor construction.
var (
	// ErrLoggerNotConfigured indicates the executor was constructed without a logger.
	ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)
	// ErrCommandRunnerNotConfigured indicates the executor was constructed without a runner.
	ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)
)

// CommandName identifies a supported external executable.
type CommandName string

// Supported external executables.
const (
	CommandGit    CommandName = "git"
	CommandGitHub CommandName = "gh"
)

// CommandDetails describes a single invocation of an external executable.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand combines a CommandName with invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// String renders the command the way it would appear on a shell prompt.
func (command ShellCommand) String() string {
	commandParts := append([]string{string(command.Name)}, command.Details.Arguments...)
	return strings.Join(commandParts, commandLabelJoinSeparatorConstant)
}

// ExecutionResult captures the observable results of executing a command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner executes shell commands and reports their results.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// CommandFailedError reports a command that completed with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command including captured standard error output.
func (failure CommandFailedError) Error() string {
	standardErrorSuffix := ""
	trimmedStandardError := strings.TrimSpace(failure.Result.StandardError)
	if len(trimmedStandardError) > 0 {
		standardErrorSuffix = fmt.Sprintf(commandStandardErrorSuffixConstant, trimmedStandardError)
	}
	return fmt.Sprintf(commandFailedTemplateConstant, failure.Command.String(), failure.Result.ExitCode, standardErrorSuffix)
}

// CommandExecutionError reports a command that could not be executed at all.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the execution failure.
func (failure CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionFailedTemplateConstant, failure.Command.String(), failure.Cause)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As inspection.
func (failure CommandExecutionError) Unwrap() error {
	return failure.Cause
}

// ShellExecutor runs external commands with structured logging and lifecycle notifications.
type ShellExecutor struct {
	logger           *zap.Logger
	commandRunner    CommandRunner
	eventObserver    CommandEventObserver
	messageFormatter CommandMessageFormatter
}

// NewShellExecutor constructs a ShellExecutor with a no-op event observer.
func NewShellExecutor(logger *zap.Logger, commandRunner CommandRunner) (*ShellExecutor, error) {
	return NewShellExecutorWithObserver(logger, commandRunner, discardCommandEventObserver{})
}

// NewShellExecutorWithObserver constructs a ShellExecutor that notifies the provided observer.
func NewShellExecutorWithObserver(logger *zap.Logger, commandRunner CommandRunner, eventObserver CommandEventObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if commandRunner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	if eventObserver == nil {
		eventObserver = discardCommandEventObserver{}
	}

	return &ShellExecutor{
		logger:           logger,
		commandRunner:    commandRunner,
		eventObserver:    eventObserver,
		messageFormatter: CommandMessageFormatter{},
	}, nil
}

// ExecuteGit runs the git executable with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

// ExecuteGitHubCLI runs the GitHub CLI executable with the provided details.
func (executor *ShellExecutor) ExecuteGitHubCLI(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandGitHub, Details: details})
}

// Execute runs an arbitrary supported command and reports the result.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logger.Debug(executor.messageFormatter.BuildStartedMessage(command))
	executor.eventObserver.CommandStarted(command)

	executionResult, executionError := executor.commandRunner.Run(executionContext, command)
	if executionError != nil {
		executor.logger.Error(executor.messageFormatter.BuildExecutionFailureMessage(command, executionError))
		executor.eventObserver.CommandExecutionFailed(command, executionError)
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: executionError}
	}

	executor.eventObserver.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		executor.logger.Debug(executor.messageFormatter.BuildFailureMessage(command, executionResult))
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Debug(executor.messageFormatter.BuildSuccessMessage(command))
	return executionResult, nil
}
