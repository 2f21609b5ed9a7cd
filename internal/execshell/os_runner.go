package execshell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

const environmentAssignmentSeparatorConstant = "="

// OSCommandRunner executes git and gh through os/exec. A non-zero exit status
// is reported through ExecutionResult, not as an error, so callers can
// distinguish command failures from commands that never ran.
type OSCommandRunner struct{}

// NewOSCommandRunner constructs a runner backed by os/exec.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// Run executes the supplied command and captures its output streams.
func (runner *OSCommandRunner) Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	processCommand := exec.CommandContext(executionContext, string(command.Name), command.Details.Arguments...)
	processCommand.Dir = command.Details.WorkingDirectory
	processCommand.Env = buildProcessEnvironment(command.Details.EnvironmentVariables)

	var standardOutput strings.Builder
	var standardError strings.Builder
	processCommand.Stdout = &standardOutput
	processCommand.Stderr = &standardError
	if len(command.Details.StandardInput) > 0 {
		processCommand.Stdin = bytes.NewReader(command.Details.StandardInput)
	}

	runError := processCommand.Run()
	executionResult := ExecutionResult{
		StandardOutput: standardOutput.String(),
		StandardError:  standardError.String(),
	}
	if runError != nil {
		var exitError *exec.ExitError
		if !errors.As(runError, &exitError) {
			return ExecutionResult{}, runError
		}
		executionResult.ExitCode = exitError.ExitCode()
	}
	return executionResult, nil
}

// buildProcessEnvironment merges extra variables over the inherited
// environment; nil keeps os/exec's default inheritance.
func buildProcessEnvironment(extraVariables map[string]string) []string {
	if len(extraVariables) == 0 {
		return nil
	}
	environment := os.Environ()
	for variableName, variableValue := range extraVariables {
		environment = append(environment, variableName+environmentAssignmentSeparatorConstant+variableValue)
	}
	return environment
}
