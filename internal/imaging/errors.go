package imaging

import (
	"errors"
	"fmt"
)

// ErrResourceAccess matches every failure to read, decode, encode or write an
// image file. Test for it with errors.Is; use errors.As with *AccessError for
// the operation and path.
var ErrResourceAccess = errors.New("imaging: resource access failed")

// Preprocessing argument errors. They are returned wrapped with details;
// test for them with errors.Is.
var (
	ErrInvalidRegion = errors.New("imaging: invalid region")
	ErrInvalidOption = errors.New("imaging: invalid preprocessing option")
)

// AccessError records a file or codec failure at the image I/O boundary.
type AccessError struct {
	Op   string // "open", "decode", "stat", "create", "encode", ...
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("failed to %s image %s: %v", e.Op, e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// Is reports whether target is ErrResourceAccess.
func (e *AccessError) Is(target error) bool { return target == ErrResourceAccess }
