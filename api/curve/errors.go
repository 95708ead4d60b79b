package curve

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEncoding reports that a byte buffer was rejected by the
	// native decoder: wrong length, off-curve, or not the canonical
	// representation of any group element.
	ErrInvalidEncoding = errors.New("curve: invalid point encoding")

	// ErrUncompressedUnsupported reports a request for the uncompressed wire
	// format. xsk233 defines only the 30-byte compressed encoding; callers
	// must not be silently downgraded to a different format than they asked
	// for.
	ErrUncompressedUnsupported = errors.New("curve: uncompressed point format not supported")

	// ErrCoordinatesUnavailable reports an attempt to read affine x/y
	// coordinates. The native point representation is coordinate-opaque, so
	// the coordinates are structurally unobtainable.
	ErrCoordinatesUnavailable = errors.New("curve: affine coordinates not exposed by native representation")

	// ErrNormalizeUnsupported reports a batch normalization request under
	// NormalizeReject policy. Affine and projective points share one storage
	// form on this curve, so there is no normalization work to perform.
	ErrNormalizeUnsupported = errors.New("curve: batch normalization not supported")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // operation that failed, e.g. "DecodeAffine"
	Err error  // underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("curve.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opErr(op string, err error) error {
	return &Error{Op: op, Err: err}
}
