package pathutils_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/pplaces/internal/utils/path"
)

const (
	testHomeDirectoryConstant        = "/home/developer"
	testRelativeProjectsPathConstant = "projects"
	testAbsoluteProjectsPathConstant = "/srv/projects"
	testWhitespacePaddedPathConstant = "  /srv/projects  "
	testTildePathConstant            = "~/projects"
	testBlankCandidateConstant       = "   "
)

func newTestSanitizer() *pathutils.ScanRootSanitizer {
	homeExpander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return testHomeDirectoryConstant, nil
	})
	return pathutils.NewScanRootSanitizerWithExpander(homeExpander)
}

func TestScanRootSanitizerSanitize(testInstance *testing.T) {
	testCases := []struct {
		name           string
		candidateRoots []string
		expectedRoots  []string
	}{
		{
			name:           "expands_home_directory",
			candidateRoots: []string{testTildePathConstant},
			expectedRoots:  []string{filepath.Join(testHomeDirectoryConstant, testRelativeProjectsPathConstant)},
		},
		{
			name:           "trims_whitespace",
			candidateRoots: []string{testWhitespacePaddedPathConstant},
			expectedRoots:  []string{testAbsoluteProjectsPathConstant},
		},
		{
			name:           "drops_blank_candidates",
			candidateRoots: []string{testBlankCandidateConstant, testAbsoluteProjectsPathConstant},
			expectedRoots:  []string{testAbsoluteProjectsPathConstant},
		},
		{
			name:           "returns_nil_when_everything_is_blank",
			candidateRoots: []string{testBlankCandidateConstant, ""},
			expectedRoots:  nil,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			sanitizedRoots := newTestSanitizer().Sanitize(testCase.candidateRoots)
			require.Equal(testInstance, testCase.expectedRoots, sanitizedRoots)
		})
	}
}

func TestScanRootSanitizerResolvesRelativePaths(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	testInstance.Chdir(workingDirectory)

	expectedPath := filepath.Join(workingDirectory, testRelativeProjectsPathConstant)
	require.Equal(testInstance, []string{expectedPath}, newTestSanitizer().Sanitize([]string{testRelativeProjectsPathConstant}))
	require.Equal(testInstance, expectedPath, newTestSanitizer().SanitizeOne(testRelativeProjectsPathConstant))
}

func TestScanRootSanitizerSanitizeOne(testInstance *testing.T) {
	sanitizer := newTestSanitizer()

	require.Equal(testInstance, filepath.Join(testHomeDirectoryConstant, testRelativeProjectsPathConstant), sanitizer.SanitizeOne(testTildePathConstant))
	require.Equal(testInstance, testAbsoluteProjectsPathConstant, sanitizer.SanitizeOne(testWhitespacePaddedPathConstant))
	require.Empty(testInstance, sanitizer.SanitizeOne(testBlankCandidateConstant))
}
