package scan

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/pplaces/internal/execshell"
	"github.com/temirov/pplaces/internal/gitrepo"
	"github.com/temirov/pplaces/internal/report"
	"github.com/temirov/pplaces/internal/utils"
	pathutils "github.com/temirov/pplaces/internal/utils/path"
)

// Shared flag names registered by the application root command.
const (
	DaysToShowFlagName      = "days-to-show"
	DaysToShowFlagShorthand = "d"
	FullFlagName            = "full"
	FullFlagShorthand       = "f"
)

const (
	scanCommandUseConstant              = "scan <path> [<path>...]"
	scanCommandShortDescription         = "Scan the given paths for git repositories and report them"
	scanCommandLongDescription          = "Scan walks the given paths, records every git repository it finds, and prints a recency-filtered report."
	showCommandUseConstant              = "show"
	showCommandShortDescription         = "Report repositories beneath the configured root"
	showCommandLongDescription          = "Show scans the configured root and prints a recency-filtered repository report."
	missingRootsMessageConstant         = "no scan paths provided"
	unfilteredDaysToShowValue           = uint(0)
	configurationRootMissingMessage     = "no scan root configured"
	configurationFileLogMessageConstant = "using configuration file"
	configurationFileLogFieldConstant   = "config_file"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the effective scan configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the scan and show cobra commands with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Discoverer            RepositoryDiscoverer
	Inspector             RepositoryInspector
	GitExecutor           gitrepo.GitExecutor
	CommandEventsObserver execshell.CommandEventObserver
	Clock                 Clock
}

// BuildScanCommand constructs the cobra command for scanning explicit paths.
func (builder *CommandBuilder) BuildScanCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   scanCommandUseConstant,
		Short: scanCommandShortDescription,
		Long:  scanCommandLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE:  builder.runScan,
	}
	return command, nil
}

// BuildShowCommand constructs the cobra command reporting the configured root.
func (builder *CommandBuilder) BuildShowCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   showCommandUseConstant,
		Short: showCommandShortDescription,
		Long:  showCommandLongDescription,
		Args:  cobra.NoArgs,
		RunE:  builder.runShow,
	}
	return command, nil
}

func (builder *CommandBuilder) runScan(command *cobra.Command, arguments []string) error {
	sanitizedRoots := pathutils.NewScanRootSanitizer().Sanitize(arguments)
	if len(sanitizedRoots) == 0 {
		return &MissingRootsError{Message: missingRootsMessageConstant}
	}
	return builder.run(command, sanitizedRoots)
}

func (builder *CommandBuilder) runShow(command *cobra.Command, _ []string) error {
	configuredRoot := pathutils.NewScanRootSanitizer().SanitizeOne(builder.resolveConfiguration().Root)
	if len(configuredRoot) == 0 {
		return &MissingRootsError{Message: configurationRootMissingMessage}
	}
	return builder.run(command, []string{configuredRoot})
}

func (builder *CommandBuilder) run(command *cobra.Command, roots []string) error {
	options := builder.parseOptions(command, roots)

	logger := builder.resolveLogger()
	if configurationFilePath, configurationFileUsed := utils.ConfigurationFilePathFromContext(command.Context()); configurationFileUsed {
		logger.Debug(configurationFileLogMessageConstant, zap.String(configurationFileLogFieldConstant, configurationFilePath))
	}
	gitExecutor, executorError := ResolveGitExecutor(builder.GitExecutor, logger, builder.CommandEventsObserver)
	if executorError != nil {
		return executorError
	}
	repositoryInspector, inspectorError := ResolveRepositoryInspector(builder.Inspector, logger, gitExecutor)
	if inspectorError != nil {
		return inspectorError
	}
	repositoryDiscoverer := ResolveRepositoryDiscoverer(builder.Discoverer)

	service, serviceError := NewService(repositoryDiscoverer, repositoryInspector)
	if serviceError != nil {
		return serviceError
	}

	result, runError := service.Run(command.Context(), options)
	if runError != nil {
		return runError
	}

	formatter := report.NewFormatter()
	if warningsError := formatter.WriteWarnings(utils.NewFlushingWriter(command.ErrOrStderr()), result.Warnings); warningsError != nil {
		return warningsError
	}
	return formatter.WriteReport(utils.NewFlushingWriter(command.OutOrStdout()), result.Records, options.Full)
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, roots []string) CommandOptions {
	flagSet := command.Flags()

	daysToShow := builder.resolveConfiguration().DaysToShow
	if daysFlag := flagSet.Lookup(DaysToShowFlagName); daysFlag != nil && daysFlag.Changed {
		if flagValue, flagError := flagSet.GetUint(DaysToShowFlagName); flagError == nil {
			daysToShow = flagValue
		}
	}
	var daysToShowFilter *uint
	if daysToShow != unfilteredDaysToShowValue {
		daysToShowFilter = &daysToShow
	}

	fullReport := false
	if fullFlag := flagSet.Lookup(FullFlagName); fullFlag != nil {
		if flagValue, flagError := flagSet.GetBool(FullFlagName); flagError == nil {
			fullReport = flagValue
		}
	}

	return CommandOptions{
		Roots:      roots,
		DaysToShow: daysToShowFilter,
		Full:       fullReport,
		Clock:      builder.Clock,
	}
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

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}
