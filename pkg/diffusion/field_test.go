package diffusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxdiff/pkg/core"
)

func TestNewFieldValidation(t *testing.T) {
	_, err := NewField(0, 8, 8, 3)
	require.ErrorIs(t, err, ErrInvalidExtents)

	_, err = NewField(8, -1, 8, 3)
	require.ErrorIs(t, err, ErrInvalidExtents)

	_, err = NewField(8, 8, 8, 32)
	require.ErrorIs(t, err, ErrInvalidRate)

	f, err := NewField(8, 8, 8, 3)
	require.NoError(t, err)
	assert.Equal(t, int16(8), f.W)
	assert.Len(t, f.Cells, 512)
	assert.Equal(t, uint64(0), f.Generation())
	for _, v := range f.Cells {
		require.Zero(t, v)
	}
}

func TestFieldSetGet(t *testing.T) {
	f, err := NewField(8, 8, 8, 3)
	require.NoError(t, err)

	f.Set(4, 4, 4, 1000)
	assert.Equal(t, uint32(1000), f.Get(4, 4, 4))
	assert.Equal(t, uint32(0), f.Get(0, 0, 0))

	// Out-of-bounds reads return zero, out-of-bounds writes vanish.
	assert.Equal(t, uint32(0), f.Get(-1, 0, 0))
	assert.Equal(t, uint32(0), f.Get(8, 0, 0))
	f.Set(-1, 0, 0, 77)
	f.Set(0, 8, 0, 77)
	assert.Equal(t, uint64(1000), f.TotalMass())
}

func TestFieldIndexLayout(t *testing.T) {
	f, err := NewField(4, 4, 4, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, f.Index(0, 0, 0))
	assert.Equal(t, 1, f.Index(1, 0, 0))
	assert.Equal(t, 4, f.Index(0, 1, 0))
	assert.Equal(t, 16, f.Index(0, 0, 1))
	assert.Equal(t, 63, f.Index(3, 3, 3))
}

func TestChecksumTracksCells(t *testing.T) {
	a, err := NewField(8, 8, 8, 3)
	require.NoError(t, err)
	b, err := NewField(8, 8, 8, 3)
	require.NoError(t, err)

	core.FillNoise(a.Cells, 42)
	core.FillNoise(b.Cells, 42)
	assert.Equal(t, a.Checksum(), b.Checksum())

	b.Set(3, 3, 3, b.Get(3, 3, 3)+1)
	assert.NotEqual(t, a.Checksum(), b.Checksum())
}

func TestRegionRoundTrip(t *testing.T) {
	src, err := NewField(8, 8, 8, 3)
	require.NoError(t, err)
	core.FillNoise(src.Cells, 99)

	buf := make([]uint32, 4*4*4)
	require.Equal(t, 64, src.ExtractRegion(buf, 2, 2, 2, 6, 6, 6))

	dst, err := NewField(8, 8, 8, 3)
	require.NoError(t, err)
	require.Equal(t, 64, dst.ImportRegion(buf, 2, 2, 2, 6, 6, 6))

	for z := int16(2); z < 6; z++ {
		for y := int16(2); y < 6; y++ {
			for x := int16(2); x < 6; x++ {
				require.Equal(t, src.Get(x, y, z), dst.Get(x, y, z),
					"cell (%d,%d,%d)", x, y, z)
			}
		}
	}
}

func TestRegionLayoutOrder(t *testing.T) {
	f, err := NewField(8, 8, 8, 3)
	require.NoError(t, err)
	f.Set(2, 2, 2, 10)
	f.Set(3, 2, 2, 20)
	f.Set(2, 3, 2, 30)
	f.Set(2, 2, 3, 40)

	buf := make([]uint32, 64)
	require.Equal(t, 64, f.ExtractRegion(buf, 2, 2, 2, 6, 6, 6))

	// z slowest, x fastest.
	assert.Equal(t, uint32(10), buf[0])
	assert.Equal(t, uint32(20), buf[1])
	assert.Equal(t, uint32(30), buf[4])
	assert.Equal(t, uint32(40), buf[16])
}

func TestRegionBoundsViolations(t *testing.T) {
	f, err := NewField(4, 4, 4, 2)
	require.NoError(t, err)
	f.Set(1, 1, 1, 500)
	before := f.Checksum()

	buf := make([]uint32, 512)
	assert.Zero(t, f.ExtractRegion(buf, -1, 0, 0, 4, 4, 4))
	assert.Zero(t, f.ExtractRegion(buf, 0, 0, 0, 5, 4, 4))
	assert.Zero(t, f.ExtractRegion(buf, 2, 2, 2, 2, 4, 4))
	assert.Zero(t, f.ExtractRegion(make([]uint32, 3), 0, 0, 0, 4, 4, 4))

	assert.Zero(t, f.ImportRegion(buf, 0, -2, 0, 4, 4, 4))
	assert.Zero(t, f.ImportRegion(buf, 0, 0, 0, 4, 4, 9))
	assert.Zero(t, f.ImportRegion(make([]uint32, 3), 0, 0, 0, 4, 4, 4))

	// Rejected operations leave the field untouched.
	assert.Equal(t, before, f.Checksum())
}
