package automaton

// regionSpan validates a half-open region against the grid extents and
// returns its cell count, 0 when the region is rejected. The rules match
// the diffusion field's region operations: no clamping, any violation
// rejects the whole request.
func (g *Grid) regionSpan(minX, minY, minZ, maxX, maxY, maxZ int16) int {
	if minX < 0 || minY < 0 || minZ < 0 {
		return 0
	}
	if maxX > g.W || maxY > g.H || maxZ > g.D {
		return 0
	}
	if minX >= maxX || minY >= maxY || minZ >= maxZ {
		return 0
	}
	return int(maxX-minX) * int(maxY-minY) * int(maxZ-minZ)
}

// ImportRegion bulk-writes a half-open region from buf in z,y,x order,
// normalizing nonzero bytes to 1. Returns the number of cells written, or 0
// on a bounds violation or short buffer.
func (g *Grid) ImportRegion(buf []uint8, minX, minY, minZ, maxX, maxY, maxZ int16) int {
	count := g.regionSpan(minX, minY, minZ, maxX, maxY, maxZ)
	if count == 0 || len(buf) < count {
		return 0
	}
	offset := 0
	for z := minZ; z < maxZ; z++ {
		for y := minY; y < maxY; y++ {
			for x := minX; x < maxX; x++ {
				v := buf[offset]
				if v != 0 {
					v = 1
				}
				g.Cells[g.Index(x, y, z)] = v
				offset++
			}
		}
	}
	return count
}

// ExtractRegion bulk-reads a half-open region into buf in z,y,x order.
// Returns the number of cells written to buf, or 0 on a bounds violation or
// short buffer.
func (g *Grid) ExtractRegion(buf []uint8, minX, minY, minZ, maxX, maxY, maxZ int16) int {
	count := g.regionSpan(minX, minY, minZ, maxX, maxY, maxZ)
	if count == 0 || len(buf) < count {
		return 0
	}
	offset := 0
	for z := minZ; z < maxZ; z++ {
		for y := minY; y < maxY; y++ {
			row := g.Index(minX, y, z)
			copy(buf[offset:offset+int(maxX-minX)], g.Cells[row:row+int(maxX-minX)])
			offset += int(maxX - minX)
		}
	}
	return count
}
