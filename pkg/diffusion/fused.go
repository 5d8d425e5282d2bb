package diffusion

import "math"

// FusedStep advances the field one generation with the reference blocking
// algorithm: all three axes read from the same immutable snapshot and
// accumulate signed flows into one destination. Because every flow is
// applied equal-and-opposite and accumulation commutes, mass is conserved
// exactly and the result is independent of axis order.
//
// On a StabilityError the field is left untouched at its prior generation.
func FusedStep(f *Field) error {
	w, h, d := int(f.W), int(f.H), int(f.D)
	shift := uint(f.Rate)
	src := f.Cells

	acc := make([]int64, len(src))
	for i, v := range src {
		acc[i] = int64(v)
	}

	// X axis: pairs (x, x+1), stride 1.
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			row := (z*h + y) * w
			for x := 0; x < w-1; x++ {
				a := row + x
				flow := (int64(src[a]) - int64(src[a+1])) >> shift
				acc[a] -= flow
				acc[a+1] += flow
			}
		}
	}

	// Y axis: pairs (y, y+1), stride w.
	for z := 0; z < d; z++ {
		for y := 0; y < h-1; y++ {
			row := (z*h + y) * w
			for x := 0; x < w; x++ {
				a := row + x
				flow := (int64(src[a]) - int64(src[a+w])) >> shift
				acc[a] -= flow
				acc[a+w] += flow
			}
		}
	}

	// Z axis: pairs (z, z+1), stride w*h.
	plane := w * h
	for z := 0; z < d-1; z++ {
		for y := 0; y < h; y++ {
			row := (z*h + y) * w
			for x := 0; x < w; x++ {
				a := row + x
				flow := (int64(src[a]) - int64(src[a+plane])) >> shift
				acc[a] -= flow
				acc[a+plane] += flow
			}
		}
	}

	next, err := commitCells(acc, f.W, f.H)
	if err != nil {
		return err
	}
	f.Cells = next
	f.generation++
	return nil
}

// commitCells converts the signed accumulation buffer back to u32 cells.
// Negative intermediates are legal while axes accumulate; a final value
// outside the u32 range means the diffusion rate cannot represent this
// input and the whole generation is rejected.
func commitCells(acc []int64, w, h int16) ([]uint32, error) {
	cells := make([]uint32, len(acc))
	for i, v := range acc {
		if v < 0 || v > math.MaxUint32 {
			plane := int(w) * int(h)
			return nil, &StabilityError{
				X:     int16(i % int(w)),
				Y:     int16((i / int(w)) % int(h)),
				Z:     int16(i / plane),
				Value: v,
			}
		}
		cells[i] = uint32(v)
	}
	return cells, nil
}
