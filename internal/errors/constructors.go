package errors

import "strings"

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file is invalid").
		WithContext("path", path)
}

// Validation errors

func ValidationFailed(field, reason string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// InvalidSite reports every violated site invariant in one error.
func InvalidSite(problems []string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "site configuration invalid: "+strings.Join(problems, "; ")).
		WithContext("problems", problems)
}

// File reference errors

func MissingReferences(paths []string) *SiteError {
	return New(CategoryFileSystem, SeverityFatal, "referenced files are missing: "+strings.Join(paths, ", ")).
		WithContext("paths", paths)
}

// Link check errors

func BrokenLinks(count int) *SiteError {
	return New(CategoryLinks, SeverityFatal, "broken links found").
		WithContext("count", count)
}

// Output errors

func RenderFailed(format string, cause error) *SiteError {
	return Wrap(cause, CategoryRender, SeverityFatal, "failed to render site configuration").
		WithContext("format", format)
}

func WriteFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to write output").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *SiteError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
