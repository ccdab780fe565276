package deepcopy

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates an argument of the wrong shape.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNilCodec indicates InterchangeCopy was called without a codec.
	ErrNilCodec = errors.New("nil codec")
)

// CodecError wraps a failure to encode or decode during an interchange copy.
type CodecError struct {
	Codec string // Codec name
	Op    string // "marshal" or "unmarshal"
	Err   error  // Underlying error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Codec, e.Op, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}
