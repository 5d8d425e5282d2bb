package diffusion

import "sort"

// TileSize is the edge length of the cubic work unit consumed per scheduler
// iteration. Boundary tiles are clipped to the field extents.
const TileSize = 16

// tileCoord identifies one tile of the field partition.
type tileCoord struct {
	tx, ty, tz int16
}

// color returns the parity class of the tile, 0..7. Tiles of one class are
// at least two tiles apart along every axis they differ on, so their write
// footprints (the tile body plus a one-cell halo on the +X/+Y/+Z faces)
// never overlap and they can be processed concurrently.
func (t tileCoord) color() int {
	return int(t.tx&1) | int(t.ty&1)<<1 | int(t.tz&1)<<2
}

// tileGridFor returns the tile counts covering the given field extents.
func tileGridFor(w, h, d int16) (tilesX, tilesY, tilesZ int) {
	tilesX = (int(w) + TileSize - 1) / TileSize
	tilesY = (int(h) + TileSize - 1) / TileSize
	tilesZ = (int(d) + TileSize - 1) / TileSize
	return
}

// buildTileQueue lists every tile of the partition exactly once, sorted by
// the Morton code of its coordinates.
func buildTileQueue(tilesX, tilesY, tilesZ int) []tileCoord {
	tiles := make([]tileCoord, 0, tilesX*tilesY*tilesZ)
	for tz := 0; tz < tilesZ; tz++ {
		for ty := 0; ty < tilesY; ty++ {
			for tx := 0; tx < tilesX; tx++ {
				tiles = append(tiles, tileCoord{tx: int16(tx), ty: int16(ty), tz: int16(tz)})
			}
		}
	}
	sort.Slice(tiles, func(i, j int) bool {
		return tileMorton(tiles[i]) < tileMorton(tiles[j])
	})
	return tiles
}

func tileMorton(t tileCoord) uint64 {
	return mortonEncode(uint32(t.tx), uint32(t.ty), uint32(t.tz))
}

// groupByColor stably partitions a Morton-ordered queue into its eight
// parity classes, concatenated in class order. groupEnds[c] is the index
// one past the last tile of class c.
func groupByColor(queue []tileCoord) (grouped []tileCoord, groupEnds [8]int) {
	grouped = make([]tileCoord, 0, len(queue))
	for c := 0; c < 8; c++ {
		for _, t := range queue {
			if t.color() == c {
				grouped = append(grouped, t)
			}
		}
		groupEnds[c] = len(grouped)
	}
	return grouped, groupEnds
}

// processTile accumulates every pair owned by the tile into acc. A cell
// owns its +X, +Y and +Z pairs; pairs that straddle the tile's high faces
// therefore belong to this tile and to no other, and pairs that would cross
// the field boundary are not enumerated at all (mirror boundary, zero
// flow). Reads come exclusively from the immutable snapshot.
func processTile(src []uint32, acc []int64, w, h, d int, shift uint, t tileCoord) {
	x0 := int(t.tx) * TileSize
	y0 := int(t.ty) * TileSize
	z0 := int(t.tz) * TileSize
	x1 := min(x0+TileSize, w)
	y1 := min(y0+TileSize, h)
	z1 := min(z0+TileSize, d)

	plane := w * h
	for z := z0; z < z1; z++ {
		for y := y0; y < y1; y++ {
			row := (z*h + y) * w
			for x := x0; x < x1; x++ {
				a := row + x
				va := int64(src[a])
				if x+1 < w {
					flow := (va - int64(src[a+1])) >> shift
					acc[a] -= flow
					acc[a+1] += flow
				}
				if y+1 < h {
					flow := (va - int64(src[a+w])) >> shift
					acc[a] -= flow
					acc[a+w] += flow
				}
				if z+1 < d {
					flow := (va - int64(src[a+plane])) >> shift
					acc[a] -= flow
					acc[a+plane] += flow
				}
			}
		}
	}
}
