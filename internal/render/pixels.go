package render

import "math/bits"

// fillGrayRGBA converts u32 cell magnitudes into grayscale RGBA pixels in
// buf. Brightness ramps with the bit length of the value, which compresses
// the full u32 range into 32 visible bands without floating point.
func fillGrayRGBA(buf []byte, cells []uint32) {
	for i, c := range cells {
		base := i * 4
		level := uint8(bits.Len32(c) * 255 / 32)
		buf[base+0] = level
		buf[base+1] = level
		buf[base+2] = level
		buf[base+3] = 0xff
	}
}
