package storage

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// ErrorKind classifies storage failures for callers that need to branch
// on the failure mode without inspecting backend-specific codes.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindAccessDenied ErrorKind = "access_denied"
	KindUnavailable  ErrorKind = "unavailable"
	KindInternal     ErrorKind = "internal"
)

// Error is a storage operation failure with its backend cause attached.
type Error struct {
	Op     string
	Bucket string
	Key    string
	Kind   ErrorKind
	cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s %s/%s: %v", e.Op, e.Bucket, e.Key, e.cause)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Bucket, e.cause)
}

// Unwrap returns the underlying backend error
func (e *Error) Unwrap() error {
	return e.cause
}

// NewError constructs a storage Error; fakes and tests use it to stand
// in for backend failures.
func NewError(op, bucket, key string, kind ErrorKind, cause error) *Error {
	return &Error{Op: op, Bucket: bucket, Key: key, Kind: kind, cause: cause}
}

// IsNotFound reports whether err is a storage error of kind not_found.
func IsNotFound(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindNotFound
}

// IsAccessDenied reports whether err is a storage error of kind access_denied.
func IsAccessDenied(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindAccessDenied
}

// KindOf returns the kind of a storage error, or KindInternal for any
// other error.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// classify wraps a MinIO client error into a storage Error, mapping the
// backend response code to an ErrorKind.
func classify(op, bucket, key string, err error) error {
	if err == nil {
		return nil
	}

	kind := KindInternal
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		kind = KindNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		kind = KindAccessDenied
	case "SlowDown", "ServiceUnavailable":
		kind = KindUnavailable
	}

	return &Error{
		Op:     op,
		Bucket: bucket,
		Key:    key,
		Kind:   kind,
		cause:  err,
	}
}
