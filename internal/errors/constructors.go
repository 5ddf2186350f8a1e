package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *ClassifiedError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *ClassifiedError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Content errors

func ContentDirError(dir string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "content directory unavailable").
		WithContext("dir", dir)
}

func FileError(operation, path string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryFileSystem, SeverityError, "file operation failed").
		WithContext("operation", operation).
		WithContext("path", path)
}

func TransformFailed(transform, path string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryTransform, SeverityError, "transform failed").
		WithContext("transform", transform).
		WithContext("path", path)
}

func BatchFailed(failed int, cause error) *ClassifiedError {
	return Wrap(cause, CategoryFileSystem, SeverityError, "some documents could not be processed").
		WithContext("failed", failed)
}

// Internal errors

func InternalError(message string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
