package scan_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/pplaces/internal/inspect"
	"github.com/temirov/pplaces/internal/scan"
	"github.com/temirov/pplaces/internal/utils"
	"github.com/temirov/pplaces/internal/utils/flags"
)

const (
	configuredRootConstant        = "/workspace"
	recentRepositoryConstant      = "/workspace/recent"
	dormantRepositoryConstant     = "/workspace/dormant"
	configurationFilePathConstant = "/etc/pplaces/config.yaml"
)

func buildTestRootCommand(subcommand *cobra.Command, outputBuffer *bytes.Buffer, errorBuffer *bytes.Buffer) *cobra.Command {
	rootCommand := &cobra.Command{Use: "pplaces"}
	rootCommand.PersistentFlags().UintP(scan.DaysToShowFlagName, scan.DaysToShowFlagShorthand, 0, "")
	var fullValue bool
	flags.AddToggleFlag(rootCommand.PersistentFlags(), &fullValue, scan.FullFlagName, scan.FullFlagShorthand, false, "")
	rootCommand.AddCommand(subcommand)
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(errorBuffer)
	return rootCommand
}

func buildScanFixtures() (stubDiscoverer, stubInspector) {
	recentCommitTime := time.Now().AddDate(0, 0, -1)
	dormantCommitTime := time.Now().AddDate(0, 0, -30)
	discoverer := stubDiscoverer{paths: []string{recentRepositoryConstant, dormantRepositoryConstant}}
	inspector := stubInspector{records: map[string]*inspect.RepositoryRecord{
		recentRepositoryConstant:  {Path: recentRepositoryConstant, LastCommitTime: &recentCommitTime, Branch: "main"},
		dormantRepositoryConstant: {Path: dormantRepositoryConstant, LastCommitTime: &dormantCommitTime, Branch: "main"},
	}}
	return discoverer, inspector
}

func TestScanCommandFiltersWithConfiguredDefaultDays(testFramework *testing.T) {
	discoverer, inspector := buildScanFixtures()
	builder := &scan.CommandBuilder{
		ConfigurationProvider: func() scan.CommandConfiguration { return scan.DefaultCommandConfiguration() },
		Discoverer:            discoverer,
		Inspector:             inspector,
	}

	scanCommand, buildError := builder.BuildScanCommand()
	require.NoError(testFramework, buildError)

	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}
	rootCommand := buildTestRootCommand(scanCommand, outputBuffer, errorBuffer)
	rootCommand.SetArgs([]string{"scan", configuredRootConstant})

	require.NoError(testFramework, rootCommand.Execute())
	require.Contains(testFramework, outputBuffer.String(), recentRepositoryConstant)
	require.NotContains(testFramework, outputBuffer.String(), dormantRepositoryConstant)
}

func TestScanCommandDaysFlagOverridesConfiguration(testFramework *testing.T) {
	discoverer, inspector := buildScanFixtures()
	builder := &scan.CommandBuilder{
		ConfigurationProvider: func() scan.CommandConfiguration { return scan.DefaultCommandConfiguration() },
		Discoverer:            discoverer,
		Inspector:             inspector,
	}

	scanCommand, buildError := builder.BuildScanCommand()
	require.NoError(testFramework, buildError)

	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}
	rootCommand := buildTestRootCommand(scanCommand, outputBuffer, errorBuffer)
	rootCommand.SetArgs([]string{"scan", "--days-to-show=60", configuredRootConstant})

	require.NoError(testFramework, rootCommand.Execute())
	require.Contains(testFramework, outputBuffer.String(), recentRepositoryConstant)
	require.Contains(testFramework, outputBuffer.String(), dormantRepositoryConstant)
}

func TestScanCommandZeroDaysDisablesFilter(testFramework *testing.T) {
	discoverer, inspector := buildScanFixtures()
	builder := &scan.CommandBuilder{
		ConfigurationProvider: func() scan.CommandConfiguration { return scan.DefaultCommandConfiguration() },
		Discoverer:            discoverer,
		Inspector:             inspector,
	}

	scanCommand, buildError := builder.BuildScanCommand()
	require.NoError(testFramework, buildError)

	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}
	rootCommand := buildTestRootCommand(scanCommand, outputBuffer, errorBuffer)
	rootCommand.SetArgs([]string{"scan", "--days-to-show=0", configuredRootConstant})

	require.NoError(testFramework, rootCommand.Execute())
	require.Contains(testFramework, outputBuffer.String(), dormantRepositoryConstant)
}

func TestScanCommandFullFlagAddsColumns(testFramework *testing.T) {
	discoverer, inspector := buildScanFixtures()
	builder := &scan.CommandBuilder{
		ConfigurationProvider: func() scan.CommandConfiguration { return scan.DefaultCommandConfiguration() },
		Discoverer:            discoverer,
		Inspector:             inspector,
	}

	scanCommand, buildError := builder.BuildScanCommand()
	require.NoError(testFramework, buildError)

	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}
	rootCommand := buildTestRootCommand(scanCommand, outputBuffer, errorBuffer)
	rootCommand.SetArgs([]string{"scan", "--full", configuredRootConstant})

	require.NoError(testFramework, rootCommand.Execute())
	require.Contains(testFramework, outputBuffer.String(), "BRANCH")
}

func TestScanCommandLogsConfigurationFileFromContext(testFramework *testing.T) {
	discoverer, inspector := buildScanFixtures()
	observerCore, observedLogs := observer.New(zap.DebugLevel)
	builder := &scan.CommandBuilder{
		LoggerProvider:        func() *zap.Logger { return zap.New(observerCore) },
		ConfigurationProvider: func() scan.CommandConfiguration { return scan.DefaultCommandConfiguration() },
		Discoverer:            discoverer,
		Inspector:             inspector,
	}

	scanCommand, buildError := builder.BuildScanCommand()
	require.NoError(testFramework, buildError)

	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}
	rootCommand := buildTestRootCommand(scanCommand, outputBuffer, errorBuffer)
	rootCommand.SetArgs([]string{"scan", configuredRootConstant})

	executionContext := utils.ContextWithConfigurationFilePath(context.Background(), configurationFilePathConstant)
	require.NoError(testFramework, rootCommand.ExecuteContext(executionContext))

	matchingEntries := observedLogs.FilterMessage("using configuration file").All()
	require.Len(testFramework, matchingEntries, 1)
	require.Equal(testFramework, configurationFilePathConstant, matchingEntries[0].ContextMap()["config_file"])
}

func TestShowCommandUsesConfiguredRoot(testFramework *testing.T) {
	discoverer, inspector := buildScanFixtures()
	builder := &scan.CommandBuilder{
		ConfigurationProvider: func() scan.CommandConfiguration {
			return scan.CommandConfiguration{Root: configuredRootConstant, DaysToShow: 60}
		},
		Discoverer: discoverer,
		Inspector:  inspector,
	}

	showCommand, buildError := builder.BuildShowCommand()
	require.NoError(testFramework, buildError)

	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}
	rootCommand := buildTestRootCommand(showCommand, outputBuffer, errorBuffer)
	rootCommand.SetArgs([]string{"show"})

	require.NoError(testFramework, rootCommand.Execute())
	require.Contains(testFramework, outputBuffer.String(), recentRepositoryConstant)
	require.Contains(testFramework, outputBuffer.String(), dormantRepositoryConstant)
}

func TestScanCommandRejectsBlankPaths(testFramework *testing.T) {
	builder := &scan.CommandBuilder{}

	scanCommand, buildError := builder.BuildScanCommand()
	require.NoError(testFramework, buildError)

	outputBuffer := &bytes.Buffer{}
	errorBuffer := &bytes.Buffer{}
	rootCommand := buildTestRootCommand(scanCommand, outputBuffer, errorBuffer)
	rootCommand.SetArgs([]string{"scan", "   "})

	executionError := rootCommand.Execute()
	require.Error(testFramework, executionError)

	var missingRoots *scan.MissingRootsError
	require.ErrorAs(testFramework, executionError, &missingRoots)
}
