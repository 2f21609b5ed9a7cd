package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	gitRevParseSubcommandNameConstant     = "rev-parse"
	gitAbbrevRefFlagConstant              = "--abbrev-ref"
	gitLogSubcommandNameConstant          = "log"
	gitStatusSubcommandNameConstant       = "status"
	gitStatusPorcelainFlagConstant        = "--porcelain"
	gitRemoteSubcommandNameConstant       = "remote"
	gitRemoteGetURLSubcommandNameConstant = "get-url"
	gitCloneSubcommandNameConstant        = "clone"
	detachedHeadMarkerConstant            = "HEAD"
)

const (
	gitCurrentBranchStartTemplateConstant            = "Identifying current branch in %s"
	gitCurrentBranchSuccessTemplateConstant          = "Current branch in %s is %s"
	gitCurrentBranchDetachedSuccessTemplateConstant  = "%s is in a detached HEAD state"
	gitCurrentBranchFailureTemplateConstant          = "Failed to identify current branch in %s (exit code %d%s)"
	gitCurrentBranchExecutionFailureTemplateConstant = "Unable to identify current branch in %s: %s"
	gitCommitTimeStartTemplateConstant               = "Reading latest commit timestamp in %s"
	gitCommitTimeSuccessTemplateConstant             = "Latest commit in %s is from %s"
	gitCommitTimeEmptySuccessTemplateConstant        = "%s has no commits"
	gitCommitTimeFailureTemplateConstant             = "Failed to read latest commit timestamp in %s (exit code %d%s)"
	gitCommitTimeExecutionFailureTemplateConstant    = "Unable to read latest commit timestamp in %s: %s"
	gitStatusStartTemplateConstant                   = "Reviewing working tree status in %s"
	gitStatusSuccessTemplateConstant                 = "Collected working tree status for %s"
	gitStatusFailureTemplateConstant                 = "Failed to review working tree status in %s (exit code %d%s)"
	gitStatusExecutionFailureTemplateConstant        = "Unable to review working tree status in %s: %s"
	gitRemoteLookupStartTemplateConstant             = "Checking %s remote for %s"
	gitRemoteLookupSuccessTemplateConstant           = "%s remote for %s points to %s"
	gitRemoteLookupFailureTemplateConstant           = "Failed to read %s remote for %s (exit code %d%s)"
	gitRemoteLookupExecutionFailureTemplateConstant  = "Unable to read %s remote for %s: %s"
	gitCloneStartTemplateConstant                    = "Cloning %s into %s"
	gitCloneSuccessTemplateConstant                  = "Cloned %s into %s"
	gitCloneFailureTemplateConstant                  = "Failed to clone %s into %s (exit code %d%s)"
	gitCloneExecutionFailureTemplateConstant         = "Unable to clone %s into %s: %s"
)

const (
	githubRepoSubcommandNameConstant         = "repo"
	githubRepoCreateSubcommandNameConstant   = "create"
	githubRepoCreateArgumentCountConstant    = 3
	githubRepoCreateStartTemplateConstant    = "Publishing repository %s"
	githubRepoCreateSuccessTemplateConstant  = "Published repository %s"
	githubRepoCreateFailureTemplateConstant  = "Failed to publish repository %s (exit code %d%s)"
	githubRepoCreateExecutionFailureTemplate = "Unable to publish repository %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch command.Name {
	case CommandGit:
		return formatter.describeGitMessage(command, result, failure, stage)
	case CommandGitHub:
		return formatter.describeGitHubMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(command.Details.Arguments[0])
	switch subcommand {
	case gitRevParseSubcommandNameConstant:
		return formatter.describeGitRevParseMessage(command, result, failure, stage)
	case gitLogSubcommandNameConstant:
		return formatter.describeGitLogMessage(command, result, failure, stage)
	case gitStatusSubcommandNameConstant:
		return formatter.describeGitStatusMessage(command, result, failure, stage)
	case gitRemoteSubcommandNameConstant:
		return formatter.describeGitRemoteMessage(command, result, failure, stage)
	case gitCloneSubcommandNameConstant:
		return formatter.describeGitCloneMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitRevParseMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if !containsArgument(command.Details.Arguments, gitAbbrevRefFlagConstant) {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCurrentBranchStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		trimmedBranch := strings.TrimSpace(result.StandardOutput)
		if len(trimmedBranch) == 0 {
			return fmt.Sprintf(gitCurrentBranchSuccessTemplateConstant, workingDirectory, fallbackUnknownValueLabelConstant)
		}
		if trimmedBranch == detachedHeadMarkerConstant {
			return fmt.Sprintf(gitCurrentBranchDetachedSuccessTemplateConstant, workingDirectory)
		}
		return fmt.Sprintf(gitCurrentBranchSuccessTemplateConstant, workingDirectory, trimmedBranch)
	case messageStageFailure:
		return fmt.Sprintf(gitCurrentBranchFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitCurrentBranchExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitLogMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCommitTimeStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		trimmedTimestamp := strings.TrimSpace(result.StandardOutput)
		if len(trimmedTimestamp) == 0 {
			return fmt.Sprintf(gitCommitTimeEmptySuccessTemplateConstant, workingDirectory)
		}
		return fmt.Sprintf(gitCommitTimeSuccessTemplateConstant, workingDirectory, trimmedTimestamp)
	case messageStageFailure:
		return fmt.Sprintf(gitCommitTimeFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitCommitTimeExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitStatusMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if !containsArgument(command.Details.Arguments, gitStatusPorcelainFlagConstant) {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitStatusStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitStatusSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitStatusFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitStatusExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitRemoteMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) < 3 || strings.TrimSpace(arguments[1]) != gitRemoteGetURLSubcommandNameConstant {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	remoteName := strings.TrimSpace(arguments[2])
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitRemoteLookupStartTemplateConstant, remoteName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitRemoteLookupSuccessTemplateConstant, remoteName, workingDirectory, strings.TrimSpace(result.StandardOutput))
	case messageStageFailure:
		return fmt.Sprintf(gitRemoteLookupFailureTemplateConstant, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitRemoteLookupExecutionFailureTemplateConstant, remoteName, workingDirectory, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitCloneMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	remoteURL := fallbackUnknownValueLabelConstant
	destination := fallbackUnknownValueLabelConstant
	if len(arguments) > 1 {
		remoteURL = strings.TrimSpace(arguments[1])
	}
	if len(arguments) > 2 {
		destination = strings.TrimSpace(arguments[2])
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCloneStartTemplateConstant, remoteURL, destination)
	case messageStageSuccess:
		return fmt.Sprintf(gitCloneSuccessTemplateConstant, remoteURL, destination)
	case messageStageFailure:
		return fmt.Sprintf(gitCloneFailureTemplateConstant, remoteURL, destination, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitCloneExecutionFailureTemplateConstant, remoteURL, destination, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitHubMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) < githubRepoCreateArgumentCountConstant {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
	if strings.TrimSpace(arguments[0]) != githubRepoSubcommandNameConstant || strings.TrimSpace(arguments[1]) != githubRepoCreateSubcommandNameConstant {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	targetRepository := strings.TrimSpace(arguments[2])
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(githubRepoCreateStartTemplateConstant, targetRepository)
	case messageStageSuccess:
		return fmt.Sprintf(githubRepoCreateSuccessTemplateConstant, targetRepository)
	case messageStageFailure:
		return fmt.Sprintf(githubRepoCreateFailureTemplateConstant, targetRepository, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(githubRepoCreateExecutionFailureTemplate, targetRepository, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		commandParts = append(commandParts, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	commandLabel := strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, formatter.formatWorkingDirectorySuffix(command))
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	return failureDescription(failure)
}

func failureDescription(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func containsArgument(arguments []string, wanted string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == wanted {
			return true
		}
	}
	return false
}
