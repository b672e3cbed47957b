package bitmap

import "errors"

// Load failure classes. Loader errors wrap exactly one of these, so
// callers can classify with errors.Is while the wrapped message carries
// the diagnostic detail (offending character, found/expected counts).
var (
	// ErrFileNotFound: the bitmap file could not be opened for reading.
	ErrFileNotFound = errors.New("bitmap file cannot be opened")

	// ErrInvalidDimension: a header dimension is missing, non-numeric,
	// zero, or too large to address.
	ErrInvalidDimension = errors.New("invalid bitmap dimension")

	// ErrUnexpectedCharacter: the pixel stream contains a character
	// other than '0', '1', or whitespace.
	ErrUnexpectedCharacter = errors.New("unexpected character in bitmap data")

	// ErrDimensionMismatch: the pixel count differs from the declared
	// width*height area.
	ErrDimensionMismatch = errors.New("pixel count does not match declared dimensions")

	// ErrBitmapTooLarge: the declared area exceeds the loader's pixel
	// cap. This is the allocation-failure class: the cap rejects a
	// hopeless allocation before it is attempted.
	ErrBitmapTooLarge = errors.New("bitmap exceeds configured pixel limit")
)
