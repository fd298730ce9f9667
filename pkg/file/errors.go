package file

import "errors"

var (
	// Content errors
	ErrInvalidEncoding = errors.New("content is not valid UTF-8 text")
	ErrInvalidPath     = errors.New("invalid path")
	ErrInvalidLocation = errors.New("invalid output location")

	// File system errors
	ErrIsDirectory = errors.New("path is a directory")

	// I/O operation errors
	ErrFailedToReadFile        = errors.New("failed to read content")
	ErrFailedToWriteFile       = errors.New("failed to write file")
	ErrFailedToCreateFile      = errors.New("failed to create file")
	ErrFailedToCreateDirectory = errors.New("failed to create directory")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")

	// S3 errors
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")

	// Context and cancellation errors
	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")

	// Configuration errors
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
)
