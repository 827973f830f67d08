package apperrors

import (
	"net/http"
)

// Domain-specific factories for the hiring flows.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrUploadInProgress rejects a submission while a file field's upload has
// not resolved.
func ErrUploadInProgress(fields []string) *AppError {
	return New(CodeUploadInProgress, "application", "A file upload is still in progress", http.StatusConflict).
		WithDetails(map[string]interface{}{"pending_fields": fields})
}

// ErrMissingRequiredField names the first unanswered required field by its
// human-readable label.
func ErrMissingRequiredField(label string) *AppError {
	return New(CodeValidationFailed, "application", "Please fill in the required field: "+label, http.StatusBadRequest).
		WithDetails(map[string]interface{}{"field_label": label})
}

// ErrAlreadyApplied reports the one-application-per-(job, applicant) rule.
func ErrAlreadyApplied(err error) *AppError {
	return Wrap(err, CodeConflict, "application", "You have already applied to this position", http.StatusConflict)
}

// ErrSchemaLocked rejects schema edits once applications reference the job.
func ErrSchemaLocked() *AppError {
	return New(CodeInvalidOperation, "job", "Form fields cannot be changed after applications have been received", http.StatusConflict)
}

func ErrInvalidApplicationStatus(status string) *AppError {
	return New(CodeInvalidStatus, "application", "Unknown application status: "+status, http.StatusBadRequest)
}

func ErrStorageUnavailable(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "storage", "File storage is unavailable", http.StatusBadGateway)
}
