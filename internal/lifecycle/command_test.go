package lifecycle_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/temirov/pplaces/internal/inspect"
	"github.com/temirov/pplaces/internal/lifecycle"
)

func executeLifecycleCommand(testFramework *testing.T, command *cobra.Command, arguments []string) error {
	testFramework.Helper()
	rootCommand := &cobra.Command{Use: "pplaces"}
	rootCommand.AddCommand(command)
	rootCommand.SetOut(&bytes.Buffer{})
	rootCommand.SetErr(&bytes.Buffer{})
	rootCommand.SetArgs(arguments)
	return rootCommand.Execute()
}

func TestCloneCommandAcceptsURLInAnyPosition(testFramework *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
	}{
		{name: "url_first", arguments: []string{"clone", cloneRemoteURLConstant, cloneDestinationConstant}},
		{name: "url_last", arguments: []string{"clone", cloneDestinationConstant, cloneRemoteURLConstant}},
	}

	for _, testCase := range testCases {
		testFramework.Run(testCase.name, func(subtestFramework *testing.T) {
			cloner := &recordingCloner{}
			builder := &lifecycle.CommandBuilder{
				Inspector:      stubInspector{},
				Cloner:         cloner,
				GitHubExecutor: &recordingGitHubExecutor{},
			}

			cloneCommand, buildError := builder.BuildCloneCommand()
			require.NoError(subtestFramework, buildError)

			executionError := executeLifecycleCommand(subtestFramework, cloneCommand, testCase.arguments)
			require.NoError(subtestFramework, executionError)
			require.Equal(subtestFramework, []string{cloneRemoteURLConstant}, cloner.clonedRemotes)
			require.Equal(subtestFramework, []string{cloneDestinationConstant}, cloner.clonedDestinations)
		})
	}
}

func TestCloneCommandRejectsArgumentsWithoutURL(testFramework *testing.T) {
	builder := &lifecycle.CommandBuilder{
		Inspector:      stubInspector{},
		Cloner:         &recordingCloner{},
		GitHubExecutor: &recordingGitHubExecutor{},
	}

	cloneCommand, buildError := builder.BuildCloneCommand()
	require.NoError(testFramework, buildError)

	executionError := executeLifecycleCommand(testFramework, cloneCommand, []string{"clone", cloneDestinationConstant})

	var missingURL *lifecycle.MissingCloneURLError
	require.ErrorAs(testFramework, executionError, &missingURL)
}

func TestUploadCommandRequiresPathAndTarget(testFramework *testing.T) {
	builder := &lifecycle.CommandBuilder{
		Inspector:      stubInspector{},
		Cloner:         &recordingCloner{},
		GitHubExecutor: &recordingGitHubExecutor{},
	}

	uploadCommand, buildError := builder.BuildUploadCommand()
	require.NoError(testFramework, buildError)

	executionError := executeLifecycleCommand(testFramework, uploadCommand, []string{"upload", uploadRepositoryPathConstant})
	require.Error(testFramework, executionError)
}

func TestUploadCommandDelegatesThroughService(testFramework *testing.T) {
	inspector := stubInspector{recordsByPath: map[string]*inspect.RepositoryRecord{
		uploadRepositoryPathConstant: {Path: uploadRepositoryPathConstant},
	}}
	githubExecutor := &recordingGitHubExecutor{}
	builder := &lifecycle.CommandBuilder{
		Inspector:      inspector,
		Cloner:         &recordingCloner{},
		GitHubExecutor: githubExecutor,
	}

	uploadCommand, buildError := builder.BuildUploadCommand()
	require.NoError(testFramework, buildError)

	executionError := executeLifecycleCommand(testFramework, uploadCommand, []string{"upload", uploadRepositoryPathConstant, uploadTargetConstant})
	require.NoError(testFramework, executionError)
	require.Len(testFramework, githubExecutor.executedDetails, 1)
}
