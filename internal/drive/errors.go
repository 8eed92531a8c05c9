// Package drive provides error types for remote folder operations.
package drive

import "errors"

// ErrInvalidReference indicates a folder URL or string that does not match
// any recognized reference shape.
var ErrInvalidReference = errors.New("invalid folder reference")

// ErrListingFailed indicates a folder listing that could not be completed.
// Partial pages accumulated before the failure are discarded.
var ErrListingFailed = errors.New("folder listing failed")

// ErrDownloadFailed indicates a file download that could not be completed.
// Callers must not assume a partially written buffer is meaningful.
var ErrDownloadFailed = errors.New("file download failed")
