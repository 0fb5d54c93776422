package codec_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/micromouse/codec"
	"github.com/katalvlaran/micromouse/kruskal"
	"github.com/katalvlaran/micromouse/maze"
)

func generated(t *testing.T, n, k int, seed int64) *maze.Grid {
	t.Helper()
	g, err := maze.New(n)
	require.NoError(t, err)
	_, err = kruskal.Generate(g, kruskal.WithSeed(seed), kruskal.WithNonTreeEdges(k))
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Encoding
//----------------------------------------------------------------------------//

func TestEncodedSize(t *testing.T) {
	assert.Equal(t, 15, codec.EncodedSize(5))
	assert.Equal(t, 9, codec.EncodedSize(2))
	assert.Equal(t, 8+64, codec.EncodedSize(16))
}

func TestMarshal_KnownBytes(t *testing.T) {
	g, _ := maze.New(3)
	g.ClearWalls()
	got, err := codec.Marshal(g)
	require.NoError(t, err)

	want := []byte{0, 0, 0, 3, 0, 0, 0, 3, 0xFB, 0xE5, 0x00}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Marshal mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshal_ClosedGridIsAllZero(t *testing.T) {
	g, _ := maze.New(4)
	got, err := codec.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 4), got[codec.HeaderSize:])
}

func TestEncode_NilGrid(t *testing.T) {
	assert.ErrorIs(t, codec.Encode(&bytes.Buffer{}, nil), codec.ErrNilGrid)
	assert.ErrorIs(t, codec.Decode(&bytes.Buffer{}, nil), codec.ErrNilGrid)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncode_WriteError(t *testing.T) {
	g, _ := maze.New(3)
	err := codec.Encode(failWriter{}, g)
	assert.ErrorContains(t, err, "disk full")
}

//----------------------------------------------------------------------------//
// Round trip
//----------------------------------------------------------------------------//

func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		n, k int
	}{{3, 0}, {5, 0}, {6, 4}, {9, 10}, {16, 20}} {
		src := generated(t, tc.n, tc.k, int64(tc.n*31+tc.k))
		data, err := codec.Marshal(src)
		require.NoError(t, err)
		assert.Len(t, data, codec.EncodedSize(tc.n))

		dst, _ := maze.New(tc.n)
		require.NoError(t, codec.Unmarshal(data, dst))
		assert.True(t, src.SameLayout(dst), "n=%d k=%d", tc.n, tc.k)
		assert.Equal(t, src.PassageCount(), dst.PassageCount())
	}
}

func TestReadGrid(t *testing.T) {
	src := generated(t, 7, 3, 1)
	data, _ := codec.Marshal(src)

	g, err := codec.ReadGrid(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 7, g.Dim())
	assert.True(t, src.SameLayout(g))

	_, err = codec.ReadGrid(bytes.NewReader([]byte{0, 0, 0, 3, 0, 0, 0, 4, 0, 0, 0}))
	assert.ErrorIs(t, err, codec.ErrInvalidHeader)
	_, err = codec.ReadGrid(bytes.NewReader(make([]byte, 8)))
	assert.ErrorIs(t, err, codec.ErrInvalidHeader)
}

func TestReadGrid_DimensionBound(t *testing.T) {
	header := func(n uint32) []byte {
		return []byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n), byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
	}

	// Largest accepted size, but the stream ends after the header.
	_, err := codec.ReadGrid(bytes.NewReader(header(codec.MaxDimension)))
	assert.ErrorIs(t, err, codec.ErrTruncated)

	// One codeword byte short.
	data := append(header(codec.MaxDimension), make([]byte, codec.EncodedSize(codec.MaxDimension)-codec.HeaderSize-1)...)
	_, err = codec.ReadGrid(bytes.NewReader(data))
	assert.ErrorIs(t, err, codec.ErrTruncated)

	_, err = codec.ReadGrid(bytes.NewReader(header(codec.MaxDimension + 1)))
	assert.ErrorIs(t, err, codec.ErrInvalidHeader)
	_, err = codec.ReadGrid(bytes.NewReader(header(4096)))
	assert.ErrorIs(t, err, codec.ErrInvalidHeader)

	// A full closed grid at the bound decodes.
	full := append(header(codec.MaxDimension), make([]byte, codec.EncodedSize(codec.MaxDimension)-codec.HeaderSize)...)
	g, err := codec.ReadGrid(bytes.NewReader(full))
	require.NoError(t, err)
	assert.Equal(t, codec.MaxDimension, g.Dim())
	assert.Zero(t, g.PassageCount())
}

//----------------------------------------------------------------------------//
// Failures
//----------------------------------------------------------------------------//

func TestDecode_DimensionMismatch(t *testing.T) {
	data, _ := codec.Marshal(generated(t, 7, 0, 2))

	dst := generated(t, 5, 0, 3)
	err := codec.Unmarshal(data, dst)
	assert.ErrorIs(t, err, codec.ErrDimensionMismatch)
	// Walls were cleared before the header was rejected.
	assert.Equal(t, maze.FullyOpenCount(5), dst.PassageCount())
}

func TestDecode_Truncated(t *testing.T) {
	data, _ := codec.Marshal(generated(t, 5, 0, 4))
	dst, _ := maze.New(5)

	assert.ErrorIs(t, codec.Unmarshal(data[:5], dst), codec.ErrTruncated)
	assert.ErrorIs(t, codec.Unmarshal(nil, dst), codec.ErrTruncated)
	assert.ErrorIs(t, codec.Unmarshal(data[:len(data)-1], dst), codec.ErrTruncated)
}
