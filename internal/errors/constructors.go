package errors

import stderrors "errors"

// Messages used by predicate helpers; keep constructors and predicates in sync.
const (
	msgSourceNotFound  = "source document not found"
	msgPostNotFound    = "post not found"
	msgMissingMetadata = "required metadata missing"
	msgTemplateMissing = "template not found"
)

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *PetalError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(field, reason string) *PetalError {
	return New(CategoryValidation, SeverityFatal, "invalid configuration").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Loader errors

func SourceNotFound(path string) *PetalError {
	return New(CategoryContent, SeverityFatal, msgSourceNotFound).
		WithContext("path", path)
}

func SourceUnreadable(path string, cause error) *PetalError {
	return Wrap(cause, CategoryContent, SeverityFatal, "source document unreadable").
		WithContext("path", path)
}

func ConversionFailed(path string, cause error) *PetalError {
	return Wrap(cause, CategoryConvert, SeverityFatal, "document conversion failed").
		WithContext("path", path)
}

func MissingMetadata(path, key string) *PetalError {
	return New(CategoryMetadata, SeverityFatal, msgMissingMetadata).
		WithContext("path", path).
		WithContext("key", key)
}

// Renderer errors

func TemplateNotFound(kind, path string) *PetalError {
	return New(CategoryTemplate, SeverityFatal, msgTemplateMissing).
		WithContext("kind", kind).
		WithContext("path", path)
}

func RenderFailed(slug string, cause error) *PetalError {
	return Wrap(cause, CategoryRender, SeverityFatal, "page rendering failed").
		WithContext("slug", slug)
}

// Index errors

func IndexReadFailed(path string, cause error) *PetalError {
	return Wrap(cause, CategoryIndex, SeverityFatal, "index document unreadable").
		WithContext("path", path)
}

func IndexWriteFailed(path string, cause error) *PetalError {
	return Wrap(cause, CategoryIndex, SeverityFatal, "index document write failed").
		WithContext("path", path)
}

// Orchestrator errors

func PostNotFound(name string) *PetalError {
	return New(CategoryContent, SeverityFatal, msgPostNotFound).
		WithContext("name", name)
}

func TemplatesDirMissing(path string) *PetalError {
	return New(CategoryFileSystem, SeverityFatal, "templates directory not found").
		WithContext("path", path)
}

func WorkspaceError(operation string, cause error) *PetalError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "workspace operation failed").
		WithContext("operation", operation)
}

func InternalError(message string, cause error) *PetalError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}

// Predicate helpers for the error taxonomy callers branch on.

func IsSourceNotFound(err error) bool { return hasMessage(err, msgSourceNotFound) }
func IsPostNotFound(err error) bool   { return hasMessage(err, msgPostNotFound) }
func IsMissingMetadata(err error) bool {
	return hasMessage(err, msgMissingMetadata)
}
func IsTemplateNotFound(err error) bool {
	return hasMessage(err, msgTemplateMissing)
}

func hasMessage(err error, message string) bool {
	var pe *PetalError
	if stderrors.As(err, &pe) {
		return pe.Message == message
	}
	return false
}
