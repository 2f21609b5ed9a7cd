package scan

import (
	"context"
	"errors"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/temirov/pplaces/internal/inspect"
)

const inspectionConcurrencyLimitConstant = 8

// ErrDiscovererNotConfigured indicates the service was constructed without a discoverer.
var ErrDiscovererNotConfigured = errors.New("repository discoverer not configured")

// ErrInspectorNotConfigured indicates the service was constructed without an inspector.
var ErrInspectorNotConfigured = errors.New("repository inspector not configured")

// Service aggregates discovery and inspection into ordered scan results.
type Service struct {
	discoverer RepositoryDiscoverer
	inspector  RepositoryInspector
}

// NewService validates dependencies and returns a scan Service.
func NewService(discoverer RepositoryDiscoverer, inspector RepositoryInspector) (*Service, error) {
	if discoverer == nil {
		return nil, ErrDiscovererNotConfigured
	}
	if inspector == nil {
		return nil, ErrInspectorNotConfigured
	}
	return &Service{discoverer: discoverer, inspector: inspector}, nil
}

// Run discovers repositories beneath the option roots, inspects them with
// bounded concurrency, applies the recency filter, and returns records sorted
// by path. Traversal and inspection order never leak into the result.
func (service *Service) Run(executionContext context.Context, options CommandOptions) (ScanResult, error) {
	repositoryPaths, discoveryWarnings, discoveryError := service.discoverer.DiscoverRepositories(options.Roots)
	if discoveryError != nil {
		return ScanResult{}, discoveryError
	}

	inspectedRecords := make([]*inspect.RepositoryRecord, len(repositoryPaths))
	inspectionWarnings := make([][]inspect.Warning, len(repositoryPaths))

	inspectionGroup, groupContext := errgroup.WithContext(executionContext)
	inspectionGroup.SetLimit(inspectionConcurrencyLimitConstant)
	for pathIndex, repositoryPath := range repositoryPaths {
		inspectionGroup.Go(func() error {
			record, warnings, inspectionError := service.inspector.InspectRepository(groupContext, repositoryPath)
			if inspectionError != nil {
				return inspectionError
			}
			inspectedRecords[pathIndex] = record
			inspectionWarnings[pathIndex] = warnings
			return nil
		})
	}
	if waitError := inspectionGroup.Wait(); waitError != nil {
		return ScanResult{}, waitError
	}

	result := ScanResult{Records: make([]inspect.RepositoryRecord, 0, len(repositoryPaths))}
	for _, discoveryWarning := range discoveryWarnings {
		result.Warnings = append(result.Warnings, discoveryWarning.String())
	}
	for recordIndex, record := range inspectedRecords {
		for _, inspectionWarning := range inspectionWarnings[recordIndex] {
			result.Warnings = append(result.Warnings, inspectionWarning.String())
		}
		if record == nil {
			continue
		}
		if !service.recordMatchesFilter(*record, options) {
			continue
		}
		result.Records = append(result.Records, *record)
	}

	sort.Slice(result.Records, func(firstIndex int, secondIndex int) bool {
		return result.Records[firstIndex].Path < result.Records[secondIndex].Path
	})

	return result, nil
}

// recordMatchesFilter applies the DaysToShow window. Records without a commit
// never match a day filter.
func (service *Service) recordMatchesFilter(record inspect.RepositoryRecord, options CommandOptions) bool {
	if options.DaysToShow == nil {
		return true
	}
	if record.LastCommitTime == nil {
		return false
	}

	clock := options.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	cutoffTime := clock.Now().AddDate(0, 0, -int(*options.DaysToShow))
	return !record.LastCommitTime.Before(cutoffTime)
}
