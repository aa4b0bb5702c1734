package export

import "errors"

var (
	// ErrUnsupportedFormat is returned by ToFile for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrNothingToExport is returned when the circle list is empty.
	ErrNothingToExport = errors.New("nothing to export")
)
