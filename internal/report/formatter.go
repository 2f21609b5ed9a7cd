package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/temirov/pplaces/internal/inspect"
)

const (
	pathColumnHeaderConstant       = "PATH"
	lastCommitColumnHeaderConstant = "LAST COMMIT"
	branchColumnHeaderConstant     = "BRANCH"
	dirtyColumnHeaderConstant      = "DIRTY"
	remoteColumnHeaderConstant     = "REMOTE"
	commitTimeDisplayLayout        = "2006-01-02 15:04"
	missingValuePlaceholder        = "-"
	dirtyYesValueConstant          = "yes"
	dirtyNoValueConstant           = "no"
	warningLinePrefixConstant      = "warning: "
	summaryLineTemplateConstant    = "%d repositories\n"
)

// Formatter renders repository records in terse or full table layouts.
type Formatter struct{}

// NewFormatter returns a Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// WriteReport renders the records as a table followed by a repository count.
// The full layout adds branch, worktree, and remote columns.
func (formatter *Formatter) WriteReport(writer io.Writer, records []inspect.RepositoryRecord, full bool) error {
	table := tablewriter.NewWriter(writer)
	table.SetHeader(formatter.headerColumns(full))
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, record := range records {
		table.Append(formatter.recordColumns(record, full))
	}
	table.Render()

	_, writeError := fmt.Fprintf(writer, summaryLineTemplateConstant, len(records))
	return writeError
}

// WriteWarnings renders accumulated scan warnings one per line.
func (formatter *Formatter) WriteWarnings(writer io.Writer, warnings []string) error {
	for _, warningText := range warnings {
		if _, writeError := fmt.Fprintln(writer, warningLinePrefixConstant+warningText); writeError != nil {
			return writeError
		}
	}
	return nil
}

func (formatter *Formatter) headerColumns(full bool) []string {
	if full {
		return []string{pathColumnHeaderConstant, lastCommitColumnHeaderConstant, branchColumnHeaderConstant, dirtyColumnHeaderConstant, remoteColumnHeaderConstant}
	}
	return []string{pathColumnHeaderConstant, lastCommitColumnHeaderConstant}
}

func (formatter *Formatter) recordColumns(record inspect.RepositoryRecord, full bool) []string {
	lastCommitText := missingValuePlaceholder
	if record.LastCommitTime != nil {
		lastCommitText = record.LastCommitTime.Format(commitTimeDisplayLayout)
	}

	if !full {
		return []string{record.Path, lastCommitText}
	}

	branchText := record.Branch
	if len(branchText) == 0 {
		branchText = missingValuePlaceholder
	}
	remoteText := record.RemoteURL
	if len(remoteText) == 0 {
		remoteText = missingValuePlaceholder
	}
	dirtyText := dirtyNoValueConstant
	if record.Dirty {
		dirtyText = dirtyYesValueConstant
	}
	return []string{record.Path, lastCommitText, branchText, dirtyText, remoteText}
}
