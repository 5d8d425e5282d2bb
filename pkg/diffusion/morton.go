package diffusion

// Morton (Z-order) interleaving of tile coordinates. Successive codes stay
// in a shared spatial neighborhood, so traversing tiles in code order keeps
// snapshot reads and destination writes on warm cache lines. The traversal
// order never affects the stepped result; it is purely a locality choice.

// part1By2 spreads the low 21 bits of v so they occupy every third bit.
func part1By2(v uint64) uint64 {
	v &= 0x1fffff
	v = (v | (v << 32)) & 0x1f00000000ffff
	v = (v | (v << 16)) & 0x1f0000ff0000ff
	v = (v | (v << 8)) & 0x100f00f00f00f00f
	v = (v | (v << 4)) & 0x10c30c30c30c30c3
	v = (v | (v << 2)) & 0x1249249249249249
	return v
}

// compact1By2 inverts part1By2, gathering every third bit of v.
func compact1By2(v uint64) uint64 {
	v &= 0x1249249249249249
	v = (v ^ (v >> 2)) & 0x10c30c30c30c30c3
	v = (v ^ (v >> 4)) & 0x100f00f00f00f00f
	v = (v ^ (v >> 8)) & 0x1f0000ff0000ff
	v = (v ^ (v >> 16)) & 0x1f00000000ffff
	v = (v ^ (v >> 32)) & 0x1fffff
	return v
}

// mortonEncode interleaves x, y, z into a single Z-order code.
func mortonEncode(x, y, z uint32) uint64 {
	return part1By2(uint64(x)) | part1By2(uint64(y))<<1 | part1By2(uint64(z))<<2
}

// mortonDecode splits a Z-order code back into its coordinates.
func mortonDecode(code uint64) (x, y, z uint32) {
	x = uint32(compact1By2(code))
	y = uint32(compact1By2(code >> 1))
	z = uint32(compact1By2(code >> 2))
	return
}
