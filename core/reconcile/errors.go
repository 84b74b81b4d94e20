package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrDatasetsMissing is returned when reconciliation runs before both
	// spreadsheets have been uploaded.
	ErrDatasetsMissing = errors.New("datasets not uploaded")

	// ErrEmptyBranch is returned when no branch was selected.
	ErrEmptyBranch = errors.New("branch not selected")

	// ErrReportNotFound is returned when a report is fetched that is unknown
	// or has not been computed yet.
	ErrReportNotFound = errors.New("report not found")
)

// MessageDatasetsMissing is the user-facing text for ErrDatasetsMissing.
const MessageDatasetsMissing = "Erro: envie os arquivos primeiro."

// ReportNotFoundError carries the name that could not be resolved.
type ReportNotFoundError struct {
	Name string
}

func (e *ReportNotFoundError) Error() string {
	return fmt.Sprintf("report %q not found", e.Name)
}

func (e *ReportNotFoundError) Unwrap() error {
	return ErrReportNotFound
}

// InvalidScopeError reports an unknown join scope value.
type InvalidScopeError struct {
	Value string
}

func (e *InvalidScopeError) Error() string {
	return fmt.Sprintf("invalid join scope %q (expected %q or %q)", e.Value, ScopeBranch, ScopeAll)
}
