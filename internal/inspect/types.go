package inspect

import (
	"fmt"
	"time"
)

const warningTemplateConstant = "%s: %s: %v"

// RepositoryRecord captures the metadata of a single discovered repository.
type RepositoryRecord struct {
	Path           string
	LastCommitTime *time.Time
	Dirty          bool
	RemoteURL      string
	Branch         string
}

// Warning reports a metadata field that could not be read.
type Warning struct {
	Path  string
	Field string
	Cause error
}

// String renders the warning for logs and report output.
func (warning Warning) String() string {
	return fmt.Sprintf(warningTemplateConstant, warning.Path, warning.Field, warning.Cause)
}
