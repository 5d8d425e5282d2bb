package diffusion

// regionSpan validates a half-open region against the field extents and
// returns its cell count. A count of 0 means the region is rejected: any
// coordinate outside the field, or an empty/inverted span, invalidates the
// whole request rather than being clamped.
func (f *Field) regionSpan(minX, minY, minZ, maxX, maxY, maxZ int16) int {
	if minX < 0 || minY < 0 || minZ < 0 {
		return 0
	}
	if maxX > f.W || maxY > f.H || maxZ > f.D {
		return 0
	}
	if minX >= maxX || minY >= maxY || minZ >= maxZ {
		return 0
	}
	return int(maxX-minX) * int(maxY-minY) * int(maxZ-minZ)
}

// ImportRegion bulk-writes a half-open region from buf, which must hold the
// region's cells in z,y,x order (z slowest, x fastest). It returns the
// number of cells written, or 0 if the region is out of bounds or buf is
// too short. A rejected import leaves the field untouched.
func (f *Field) ImportRegion(buf []uint32, minX, minY, minZ, maxX, maxY, maxZ int16) int {
	count := f.regionSpan(minX, minY, minZ, maxX, maxY, maxZ)
	if count == 0 || len(buf) < count {
		return 0
	}
	offset := 0
	for z := minZ; z < maxZ; z++ {
		for y := minY; y < maxY; y++ {
			row := f.Index(minX, y, z)
			copy(f.Cells[row:row+int(maxX-minX)], buf[offset:offset+int(maxX-minX)])
			offset += int(maxX - minX)
		}
	}
	return count
}

// ExtractRegion bulk-reads a half-open region into buf in z,y,x order,
// matching ImportRegion for round-tripping. It returns the number of cells
// written to buf, or 0 if the region is out of bounds or buf is too short.
func (f *Field) ExtractRegion(buf []uint32, minX, minY, minZ, maxX, maxY, maxZ int16) int {
	count := f.regionSpan(minX, minY, minZ, maxX, maxY, maxZ)
	if count == 0 || len(buf) < count {
		return 0
	}
	offset := 0
	for z := minZ; z < maxZ; z++ {
		for y := minY; y < maxY; y++ {
			row := f.Index(minX, y, z)
			copy(buf[offset:offset+int(maxX-minX)], f.Cells[row:row+int(maxX-minX)])
			offset += int(maxX - minX)
		}
	}
	return count
}
