// Package codec reads and writes mazes in a compact binary form.
//
// Wire format
//
//	offset 0  uint32 big-endian  width  (= n)
//	offset 4  uint32 big-endian  height (= n)
//	offset 8  codewords, one per cell in row-major order, 2 bits each,
//	          packed most-significant-bit first, last byte zero-padded:
//	            bit 1 = passage to the south neighbour is open
//	            bit 0 = passage to the east neighbour is open
//
// A 5×5 maze therefore takes 8 + ⌈25/4⌉ = 15 bytes.
//
// Decoding
//
// Decode first opens every passage of the target grid, then validates the
// header, then closes each east/south passage whose bit is 0. Starting from a
// fully open grid means only the walls need to be applied; the outer boundary
// is implicit. When Decode fails the target grid is left in an unspecified,
// partially rebuilt state and must be discarded or regenerated by the caller.
//
// Errors
//
//   - ErrTruncated:         the stream ended inside the header or codewords.
//   - ErrDimensionMismatch: a header field differs from the target grid side.
//   - ErrInvalidHeader:     ReadGrid found a zero, non-square or oversized header.
package codec
