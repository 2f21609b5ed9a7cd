package scan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/pplaces/internal/discovery"
	"github.com/temirov/pplaces/internal/inspect"
	"github.com/temirov/pplaces/internal/scan"
)

const (
	alphaRepositoryPathConstant = "/workspace/alpha"
	betaRepositoryPathConstant  = "/workspace/beta"
	gammaRepositoryPathConstant = "/workspace/gamma"
	plainDirectoryPathConstant  = "/workspace/plain"
	recentDaysFilterConstant    = uint(7)
)

var scanReferenceTime = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (clock fixedClock) Now() time.Time {
	return clock.now
}

type stubDiscoverer struct {
	paths    []string
	warnings []discovery.Warning
	failure  error
}

func (discoverer stubDiscoverer) DiscoverRepositories([]string) ([]string, []discovery.Warning, error) {
	return discoverer.paths, discoverer.warnings, discoverer.failure
}

type stubInspector struct {
	records  map[string]*inspect.RepositoryRecord
	warnings map[string][]inspect.Warning
}

func (inspector stubInspector) InspectRepository(_ context.Context, repositoryPath string) (*inspect.RepositoryRecord, []inspect.Warning, error) {
	return inspector.records[repositoryPath], inspector.warnings[repositoryPath], nil
}

func recordWithCommitDaysAgo(repositoryPath string, daysAgo int) *inspect.RepositoryRecord {
	commitTime := scanReferenceTime.AddDate(0, 0, -daysAgo)
	return &inspect.RepositoryRecord{Path: repositoryPath, LastCommitTime: &commitTime}
}

func TestNewServiceValidatesDependencies(testFramework *testing.T) {
	_, missingDiscovererError := scan.NewService(nil, stubInspector{})
	require.ErrorIs(testFramework, missingDiscovererError, scan.ErrDiscovererNotConfigured)

	_, missingInspectorError := scan.NewService(stubDiscoverer{}, nil)
	require.ErrorIs(testFramework, missingInspectorError, scan.ErrInspectorNotConfigured)
}

func TestServiceRunSortsRecordsByPath(testFramework *testing.T) {
	discoverer := stubDiscoverer{paths: []string{gammaRepositoryPathConstant, alphaRepositoryPathConstant, betaRepositoryPathConstant}}
	inspector := stubInspector{records: map[string]*inspect.RepositoryRecord{
		gammaRepositoryPathConstant: recordWithCommitDaysAgo(gammaRepositoryPathConstant, 1),
		alphaRepositoryPathConstant: recordWithCommitDaysAgo(alphaRepositoryPathConstant, 2),
		betaRepositoryPathConstant:  recordWithCommitDaysAgo(betaRepositoryPathConstant, 3),
	}}

	service, constructionError := scan.NewService(discoverer, inspector)
	require.NoError(testFramework, constructionError)

	firstResult, firstRunError := service.Run(context.Background(), scan.CommandOptions{Clock: fixedClock{now: scanReferenceTime}})
	require.NoError(testFramework, firstRunError)

	orderedPaths := make([]string, 0, len(firstResult.Records))
	for _, record := range firstResult.Records {
		orderedPaths = append(orderedPaths, record.Path)
	}
	require.Equal(testFramework, []string{alphaRepositoryPathConstant, betaRepositoryPathConstant, gammaRepositoryPathConstant}, orderedPaths)

	secondResult, secondRunError := service.Run(context.Background(), scan.CommandOptions{Clock: fixedClock{now: scanReferenceTime}})
	require.NoError(testFramework, secondRunError)
	require.Equal(testFramework, firstResult.Records, secondResult.Records)
}

func TestServiceRunDropsNonRepositories(testFramework *testing.T) {
	discoverer := stubDiscoverer{paths: []string{alphaRepositoryPathConstant, plainDirectoryPathConstant}}
	inspector := stubInspector{records: map[string]*inspect.RepositoryRecord{
		alphaRepositoryPathConstant: recordWithCommitDaysAgo(alphaRepositoryPathConstant, 1),
	}}

	service, constructionError := scan.NewService(discoverer, inspector)
	require.NoError(testFramework, constructionError)

	result, runError := service.Run(context.Background(), scan.CommandOptions{})
	require.NoError(testFramework, runError)
	require.Len(testFramework, result.Records, 1)
	require.Equal(testFramework, alphaRepositoryPathConstant, result.Records[0].Path)
}

func TestServiceRunAppliesDayFilter(testFramework *testing.T) {
	daysToShow := recentDaysFilterConstant

	testCases := []struct {
		name          string
		record        *inspect.RepositoryRecord
		expectedMatch bool
	}{
		{name: "commit_inside_window", record: recordWithCommitDaysAgo(alphaRepositoryPathConstant, 3), expectedMatch: true},
		{name: "commit_on_window_boundary", record: recordWithCommitDaysAgo(alphaRepositoryPathConstant, 7), expectedMatch: true},
		{name: "commit_outside_window", record: recordWithCommitDaysAgo(alphaRepositoryPathConstant, 8), expectedMatch: false},
		{name: "no_commits_excluded_by_filter", record: &inspect.RepositoryRecord{Path: alphaRepositoryPathConstant}, expectedMatch: false},
	}

	for _, testCase := range testCases {
		testFramework.Run(testCase.name, func(subtestFramework *testing.T) {
			discoverer := stubDiscoverer{paths: []string{alphaRepositoryPathConstant}}
			inspector := stubInspector{records: map[string]*inspect.RepositoryRecord{alphaRepositoryPathConstant: testCase.record}}

			service, constructionError := scan.NewService(discoverer, inspector)
			require.NoError(subtestFramework, constructionError)

			result, runError := service.Run(context.Background(), scan.CommandOptions{
				DaysToShow: &daysToShow,
				Clock:      fixedClock{now: scanReferenceTime},
			})
			require.NoError(subtestFramework, runError)
			require.Equal(subtestFramework, testCase.expectedMatch, len(result.Records) == 1)
		})
	}
}

func TestServiceRunUnfilteredKeepsRecordsWithoutCommits(testFramework *testing.T) {
	discoverer := stubDiscoverer{paths: []string{alphaRepositoryPathConstant}}
	inspector := stubInspector{records: map[string]*inspect.RepositoryRecord{
		alphaRepositoryPathConstant: {Path: alphaRepositoryPathConstant},
	}}

	service, constructionError := scan.NewService(discoverer, inspector)
	require.NoError(testFramework, constructionError)

	result, runError := service.Run(context.Background(), scan.CommandOptions{})
	require.NoError(testFramework, runError)
	require.Len(testFramework, result.Records, 1)
}

func TestServiceRunAccumulatesWarnings(testFramework *testing.T) {
	discoverer := stubDiscoverer{
		paths:    []string{alphaRepositoryPathConstant},
		warnings: []discovery.Warning{{Path: plainDirectoryPathConstant, Reason: "directory not readable", Cause: errors.New("permission denied")}},
	}
	inspector := stubInspector{
		records: map[string]*inspect.RepositoryRecord{
			alphaRepositoryPathConstant: recordWithCommitDaysAgo(alphaRepositoryPathConstant, 1),
		},
		warnings: map[string][]inspect.Warning{
			alphaRepositoryPathConstant: {{Path: alphaRepositoryPathConstant, Field: "branch", Cause: errors.New("corrupt")}},
		},
	}

	service, constructionError := scan.NewService(discoverer, inspector)
	require.NoError(testFramework, constructionError)

	result, runError := service.Run(context.Background(), scan.CommandOptions{})
	require.NoError(testFramework, runError)
	require.Len(testFramework, result.Warnings, 2)
}

func TestServiceRunPropagatesDiscoveryFailures(testFramework *testing.T) {
	discoveryFailure := errors.New("scan root is not accessible")
	service, constructionError := scan.NewService(stubDiscoverer{failure: discoveryFailure}, stubInspector{})
	require.NoError(testFramework, constructionError)

	_, runError := service.Run(context.Background(), scan.CommandOptions{})
	require.ErrorIs(testFramework, runError, discoveryFailure)
}
