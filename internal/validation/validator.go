package validation

import (
	"fmt"
)

// Reason identifies why an upload was rejected.
type Reason string

const (
	SizeExceeded   Reason = "size_exceeded"
	TypeNotAllowed Reason = "type_not_allowed"
)

// Error is a rejected upload. It carries the reject reason so callers can
// map it to a client error instead of a server failure.
type Error struct {
	Reason  Reason
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validator decides whether an upload is admitted, based on its declared
// MIME type and size. No content sniffing is done; the declared type is
// trusted.
type Validator struct {
	maxSize int64
	allowed map[string]struct{}
}

func New(maxSize int64, allowedTypes []string) *Validator {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}
	return &Validator{maxSize: maxSize, allowed: allowed}
}

// Check returns nil if the file is admitted, or a *Error describing the
// reject. It has no side effects; discarding partially received bytes is
// the caller's job.
func (v *Validator) Check(mimeType string, size int64) error {
	if size > v.maxSize {
		return &Error{
			Reason:  SizeExceeded,
			Message: fmt.Sprintf("file too large: %d bytes exceeds limit of %d bytes", size, v.maxSize),
		}
	}
	if _, ok := v.allowed[mimeType]; !ok {
		return &Error{
			Reason:  TypeNotAllowed,
			Message: fmt.Sprintf("file type not allowed: %s", mimeType),
		}
	}
	return nil
}
