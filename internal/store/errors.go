package store

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsNotFound reports whether err is the store's "document does not exist"
// condition, the trigger for the merge-create recovery path.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// IsPermissionDenied reports whether err is a hard permission failure. These
// are surfaced to the caller and never retried.
func IsPermissionDenied(err error) bool {
	return status.Code(err) == codes.PermissionDenied
}

// IsUnavailable reports whether err is a transient connectivity failure on the
// store; reads recover when the subscription redelivers.
func IsUnavailable(err error) bool {
	return status.Code(err) == codes.Unavailable
}
