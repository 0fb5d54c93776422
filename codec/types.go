package codec

import "errors"

var (
	// ErrTruncated reports a stream that ended before the maze was complete.
	ErrTruncated = errors.New("codec: reading from corrupted stream, aborting maze build")

	// ErrDimensionMismatch reports a header whose width or height differs
	// from the target grid.
	ErrDimensionMismatch = errors.New("codec: incompatible dimensions read from stream")

	// ErrInvalidHeader reports a header that cannot describe a square maze.
	ErrInvalidHeader = errors.New("codec: invalid header")

	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("codec: grid is nil")
)

// HeaderSize is the byte length of the width/height header.
const HeaderSize = 8

// MaxDimension bounds the side length ReadGrid accepts.
const MaxDimension = 256

// Codeword bits.
const (
	bitRight byte = 1 << 0
	bitDown  byte = 1 << 1
)

// EncodedSize returns the byte length of an encoded n×n maze.
func EncodedSize(n int) int {
	return HeaderSize + bodySize(n)
}

// bodySize returns ⌈n²/4⌉, the codeword byte count.
func bodySize(n int) int {
	return (n*n + 3) / 4
}
