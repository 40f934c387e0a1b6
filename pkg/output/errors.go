package output

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is. Backends wrap the
// underlying cause in an *OutputError carrying one of these kinds; every
// other failure propagates in its native operating-system form.
var (
	// ErrOwnership matches failures from the ownership fixup step.
	// Raised only when ownership preservation is enabled.
	ErrOwnership = errors.New("failed to set object ownership")

	// ErrUnsupportedType matches WriteSpecial calls whose type bits
	// name none of the special object categories.
	ErrUnsupportedType = errors.New("unsupported object type")
)

// ErrorKind classifies the domain errors of the write stage.
type ErrorKind int

const (
	// KindOwnership indicates the ownership fixup failed.
	KindOwnership ErrorKind = iota + 1

	// KindUnsupportedType indicates type bits outside the special
	// object categories.
	KindUnsupportedType
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindOwnership:
		return "Ownership"
	case KindUnsupportedType:
		return "UnsupportedType"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// OutputError is the tagged error for the two domain failure kinds.
// All other failures (object exists, parent missing, permission denied,
// disk full, ...) surface untranslated -- the asymmetry is deliberate so
// callers can branch on the raw OS error when they need to.
type OutputError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Path is the resolved target path of the failed object.
	Path string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *OutputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("output %s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("output %s: %s", e.Kind, e.Path)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *OutputError) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches one of the sentinel kinds.
func (e *OutputError) Is(target error) bool {
	switch target {
	case ErrOwnership:
		return e.Kind == KindOwnership
	case ErrUnsupportedType:
		return e.Kind == KindUnsupportedType
	}
	return false
}

// NewOwnershipError wraps a failed ownership change on path.
func NewOwnershipError(path string, err error) *OutputError {
	return &OutputError{Kind: KindOwnership, Path: path, Err: err}
}

// NewUnsupportedTypeError reports type bits that name no special object
// category.
func NewUnsupportedTypeError(path string, t FileType) *OutputError {
	return &OutputError{
		Kind: KindUnsupportedType,
		Path: path,
		Err:  fmt.Errorf("type bits %#o (%s)", uint32(t), t),
	}
}
