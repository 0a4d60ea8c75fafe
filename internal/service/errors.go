package service

import "fmt"

// ValidationError indicates the submitted payload is invalid. It is always
// raised before any row is written.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// UploadError indicates a media upload failed; remaining pipeline steps are
// aborted.
type UploadError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying storage error.
func (e UploadError) Unwrap() error {
	return e.Err
}
