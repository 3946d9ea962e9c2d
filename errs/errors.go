// Package errs defines the sentinel errors returned by the tuple codec and the
// key set container.
//
// Call sites wrap these values with positional context, so callers should test
// with errors.Is rather than comparing error values directly.
package errs

import "errors"

// Codec errors.
var (
	// ErrTruncated is returned when a declared payload length reads past the end of the buffer.
	ErrTruncated = errors.New("truncated tuple data")
	// ErrInvalidTag is returned when the byte at the cursor matches no known type code.
	ErrInvalidTag = errors.New("invalid type code")
	// ErrInvalidText is returned when a text payload is not valid UTF-8.
	ErrInvalidText = errors.New("text is not valid UTF-8")
	// ErrUnterminatedPayload is returned when no unescaped terminator ends a variable-length payload.
	ErrUnterminatedPayload = errors.New("unterminated variable-length payload")
	// ErrNonCanonical is returned when an integer is encoded in a longer form than its value needs.
	ErrNonCanonical = errors.New("non-canonical integer encoding")
	// ErrOverflow is returned when a value does not fit the requested representation.
	ErrOverflow = errors.New("value overflows target representation")
	// ErrTypeMismatch is returned when an element is accessed as a kind it does not hold.
	ErrTypeMismatch = errors.New("element type mismatch")
	// ErrUnsupportedKind is returned when the encoder receives an element of unknown kind.
	ErrUnsupportedKind = errors.New("unsupported element kind")
)

// Key set errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid key set header size")
	ErrInvalidMagicNumber  = errors.New("invalid key set magic number")
	ErrInvalidPayloadSize  = errors.New("invalid key set payload size")
	ErrChecksumMismatch    = errors.New("key set checksum mismatch")
	ErrKeysNotSorted       = errors.New("key set keys are not strictly ascending")
	ErrInvalidKeyCount     = errors.New("invalid key set key count")
	ErrKeySetFinished      = errors.New("key set writer already finished")
	ErrInvalidCompression  = errors.New("invalid key set compression")
	ErrInvalidExpectedKeys = errors.New("invalid expected key count")
)
