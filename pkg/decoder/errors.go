package decoder

import "errors"

var (
	ErrMissingInput        = errors.New("input image is required")
	ErrMissingOutput       = errors.New("output location is required")
	ErrOutputExists        = errors.New("output already exists")
	ErrUnknownReportFormat = errors.New("unknown report format")
)
