package lifecycle

import "fmt"

const (
	notARepositoryTemplateConstant  = "%s is not a git repository"
	alreadyExistsTemplateConstant   = "%s already contains a git repository"
	operationFailedTemplateConstant = "%s failed: %v"
	missingURLMessageConstant       = "no clone url found in arguments"
)

// NotARepositoryError indicates a lifecycle operation targeted a path without a repository.
type NotARepositoryError struct {
	Path string
}

// Error describes the missing repository.
func (missingRepository *NotARepositoryError) Error() string {
	return fmt.Sprintf(notARepositoryTemplateConstant, missingRepository.Path)
}

// AlreadyExistsError indicates a clone destination already holds a repository.
type AlreadyExistsError struct {
	Path string
}

// Error describes the conflicting destination.
func (existingRepository *AlreadyExistsError) Error() string {
	return fmt.Sprintf(alreadyExistsTemplateConstant, existingRepository.Path)
}

// ExternalOperationFailedError reports a delegated git or gh invocation that failed.
type ExternalOperationFailedError struct {
	Operation string
	Cause     error
}

// Error describes the failed delegation.
func (operationFailure *ExternalOperationFailedError) Error() string {
	return fmt.Sprintf(operationFailedTemplateConstant, operationFailure.Operation, operationFailure.Cause)
}

// Unwrap exposes the underlying execution failure.
func (operationFailure *ExternalOperationFailedError) Unwrap() error {
	return operationFailure.Cause
}

// MissingCloneURLError indicates no recognizable clone URL was supplied.
type MissingCloneURLError struct{}

// Error describes the missing URL.
func (*MissingCloneURLError) Error() string {
	return missingURLMessageConstant
}

// CloneOptions captures the parameters of a clone operation.
type CloneOptions struct {
	RemoteURL   string
	Destination string
}

// UploadOptions captures the parameters of an upload operation.
type UploadOptions struct {
	RepositoryPath string
	Target         string
}
