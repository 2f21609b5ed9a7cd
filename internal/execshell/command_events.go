package execshell

// CommandEventObserver receives lifecycle notifications for the git and gh
// invocations issued while inspecting, cloning, and uploading repositories.
// Implementations must be safe for concurrent use: repository inspection runs
// commands from a worker pool.
type CommandEventObserver interface {
	// CommandStarted fires before the command process is spawned.
	CommandStarted(command ShellCommand)
	// CommandCompleted fires once the process exits, whatever its exit code.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed fires when the process could not be started or
	// was interrupted before producing a result.
	CommandExecutionFailed(command ShellCommand, failure error)
}

// discardCommandEventObserver drops all notifications. It stands in whenever
// no observer was wired so executor code never nil-checks.
type discardCommandEventObserver struct{}

func (discardCommandEventObserver) CommandStarted(ShellCommand) {}

func (discardCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

func (discardCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}
