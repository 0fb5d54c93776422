package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/micromouse/maze"
)

// Encode writes g to w.
func Encode(w io.Writer, g *maze.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	n := g.Dim()
	buf := make([]byte, EncodedSize(n))
	binary.BigEndian.PutUint32(buf[0:4], uint32(n))
	binary.BigEndian.PutUint32(buf[4:8], uint32(n))

	body := buf[HeaderSize:]
	for i, c := range g.Cells() {
		var code byte
		if g.IsOpen(c.Pos, maze.South) {
			code |= bitDown
		}
		if g.IsOpen(c.Pos, maze.East) {
			code |= bitRight
		}
		shift := 6 - 2*uint(i%4)
		body[i/4] |= code << shift
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("codec: write: %w", err)
	}
	return nil
}

// Marshal returns the encoding of g.
func Marshal(g *maze.Grid) ([]byte, error) {
	var b bytes.Buffer
	if err := Encode(&b, g); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Decode reads a maze from r into g. The encoded dimension must equal
// g.Dim(). On error g must be discarded.
func Decode(r io.Reader, g *maze.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	g.ClearWalls()

	w, h, err := readHeader(r)
	if err != nil {
		return err
	}
	n := g.Dim()
	if w != uint32(n) || h != uint32(n) {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrDimensionMismatch, w, h, n, n)
	}

	body, err := readBody(r, n)
	if err != nil {
		return err
	}
	applyBody(body, g)
	return nil
}

// Unmarshal decodes data into g.
func Unmarshal(data []byte, g *maze.Grid) error {
	return Decode(bytes.NewReader(data), g)
}

// ReadGrid reads a maze of any size up to MaxDimension from r into a freshly
// allocated grid. The codewords are read before the grid is allocated, so a
// stream that stops after its header costs no more than the bytes it holds.
func ReadGrid(r io.Reader) (*maze.Grid, error) {
	// 1) Validate header
	w, h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if w != h || w == 0 || w > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidHeader, w, h)
	}
	n := int(w)

	// 2) Read codewords
	body, err := readBody(r, n)
	if err != nil {
		return nil, err
	}

	// 3) Build grid
	g, err := maze.New(n)
	if err != nil {
		return nil, err
	}
	g.ClearWalls()
	applyBody(body, g)

	return g, nil
}

// readHeader reads the width and height fields.
func readHeader(r io.Reader) (uint32, uint32, error) {
	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, 0, wrapRead(err)
	}
	return binary.BigEndian.Uint32(hdr[0:4]), binary.BigEndian.Uint32(hdr[4:8]), nil
}

// readBody consumes the codewords of an n×n maze. The buffer grows with the
// bytes actually read rather than with the size the header claims.
func readBody(r io.Reader, n int) ([]byte, error) {
	want := bodySize(n)
	body, err := io.ReadAll(io.LimitReader(r, int64(want)))
	if err != nil {
		return nil, wrapRead(err)
	}
	if len(body) < want {
		return nil, ErrTruncated
	}
	return body, nil
}

// applyBody closes every passage whose codeword bit is 0.
func applyBody(body []byte, g *maze.Grid) {
	for i, c := range g.Cells() {
		code := body[i/4] >> (6 - 2*uint(i%4))
		if code&bitRight == 0 {
			if _, ok := g.Neighbor(c.Pos, maze.East); ok {
				_ = g.SetPassage(c.Pos, maze.East, false)
			}
		}
		if code&bitDown == 0 {
			if _, ok := g.Neighbor(c.Pos, maze.South); ok {
				_ = g.SetPassage(c.Pos, maze.South, false)
			}
		}
	}
}

func wrapRead(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return fmt.Errorf("codec: read: %w", err)
}
