package execshell_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/pplaces/internal/execshell"
)

const (
	testRepositoryWorkingDirectoryConstant = "/workspace/widgets"
	testPorcelainOutputConstant            = " M internal/scan/service.go\n"
	testNotARepositoryStderrConstant       = "fatal: not a git repository"
	testSpawnFailureMessageConstant        = "executable not found"
)

var testStatusArguments = []string{"status", "--porcelain"}

type scriptedCommandRunner struct {
	executionResult  execshell.ExecutionResult
	executionError   error
	recordedCommands []execshell.ShellCommand
}

func (runner *scriptedCommandRunner) Run(_ context.Context, command execshell.ShellCommand) (execshell.ExecutionResult, error) {
	runner.recordedCommands = append(runner.recordedCommands, command)
	return runner.executionResult, runner.executionError
}

func TestNewShellExecutorRejectsMissingDependencies(testInstance *testing.T) {
	testCases := []struct {
		name          string
		logger        *zap.Logger
		runner        execshell.CommandRunner
		expectedError error
	}{
		{name: "missing_logger", logger: nil, runner: &scriptedCommandRunner{}, expectedError: execshell.ErrLoggerNotConfigured},
		{name: "missing_runner", logger: zap.NewNop(), runner: nil, expectedError: execshell.ErrCommandRunnerNotConfigured},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor, creationError := execshell.NewShellExecutor(testCase.logger, testCase.runner)
			require.Nil(testInstance, executor)
			require.ErrorIs(testInstance, creationError, testCase.expectedError)
		})
	}

	executor, creationError := execshell.NewShellExecutor(zap.NewNop(), &scriptedCommandRunner{})
	require.NoError(testInstance, creationError)
	require.NotNil(testInstance, executor)
}

func TestShellExecutorReportsResultsAndFailures(testInstance *testing.T) {
	testCases := []struct {
		name              string
		runnerResult      execshell.ExecutionResult
		runnerError       error
		expectedErrorType any
		expectedLogCount  int
	}{
		{
			name:             "clean_worktree_status",
			runnerResult:     execshell.ExecutionResult{StandardOutput: testPorcelainOutputConstant},
			expectedLogCount: 2,
		},
		{
			name:              "non_zero_exit_code",
			runnerResult:      execshell.ExecutionResult{StandardError: testNotARepositoryStderrConstant, ExitCode: 128},
			expectedErrorType: execshell.CommandFailedError{},
			expectedLogCount:  2,
		},
		{
			name:              "process_never_started",
			runnerError:       errors.New(testSpawnFailureMessageConstant),
			expectedErrorType: execshell.CommandExecutionError{},
			expectedLogCount:  2,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observedLogs := observer.New(zap.DebugLevel)
			commandRunner := &scriptedCommandRunner{
				executionResult: testCase.runnerResult,
				executionError:  testCase.runnerError,
			}

			shellExecutor, creationError := execshell.NewShellExecutor(zap.New(observerCore), commandRunner)
			require.NoError(testInstance, creationError)

			executionResult, executionError := shellExecutor.ExecuteGit(context.Background(), execshell.CommandDetails{
				Arguments:        testStatusArguments,
				WorkingDirectory: testRepositoryWorkingDirectoryConstant,
			})

			if testCase.expectedErrorType != nil {
				require.Error(testInstance, executionError)
				require.IsType(testInstance, testCase.expectedErrorType, executionError)
				require.Empty(testInstance, executionResult.StandardOutput)
			} else {
				require.NoError(testInstance, executionError)
				require.Equal(testInstance, testCase.runnerResult.StandardOutput, executionResult.StandardOutput)
			}

			require.Len(testInstance, observedLogs.All(), testCase.expectedLogCount)
			require.Len(testInstance, commandRunner.recordedCommands, 1)
			require.Equal(testInstance, testStatusArguments, commandRunner.recordedCommands[0].Details.Arguments)
		})
	}
}

func TestShellExecutorRoutesCommandsToTheNamedExecutable(testInstance *testing.T) {
	testCases := []struct {
		name            string
		invoke          func(executor *execshell.ShellExecutor) error
		expectedCommand execshell.CommandName
	}{
		{
			name: "git_invocations",
			invoke: func(executor *execshell.ShellExecutor) error {
				_, executionError := executor.ExecuteGit(context.Background(), execshell.CommandDetails{Arguments: testStatusArguments})
				return executionError
			},
			expectedCommand: execshell.CommandGit,
		},
		{
			name: "github_cli_invocations",
			invoke: func(executor *execshell.ShellExecutor) error {
				_, executionError := executor.ExecuteGitHubCLI(context.Background(), execshell.CommandDetails{Arguments: []string{"repo", "create"}})
				return executionError
			},
			expectedCommand: execshell.CommandGitHub,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			commandRunner := &scriptedCommandRunner{}
			executor, creationError := execshell.NewShellExecutor(zap.NewNop(), commandRunner)
			require.NoError(testInstance, creationError)

			require.NoError(testInstance, testCase.invoke(executor))
			require.Len(testInstance, commandRunner.recordedCommands, 1)
			require.Equal(testInstance, testCase.expectedCommand, commandRunner.recordedCommands[0].Name)
		})
	}
}
