package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"voxdiff/pkg/automaton"
)

// The binary B4/S4 grid predates the diffusion field and keeps its own
// entry points for hosts that still drive it.

//export grid_create
func grid_create(w, h, d C.int16_t) C.uintptr_t {
	return C.uintptr_t(putGrid(automaton.NewGrid(int16(w), int16(h), int16(d))))
}

//export grid_destroy
func grid_destroy(handle C.uintptr_t) {
	dropGrid(uintptr(handle))
}

//export grid_set
func grid_set(handle C.uintptr_t, x, y, z C.int16_t, value C.uint8_t) {
	if g := getGrid(uintptr(handle)); g != nil {
		g.Set(int16(x), int16(y), int16(z), uint8(value))
	}
}

//export grid_get
func grid_get(handle C.uintptr_t, x, y, z C.int16_t) C.uint8_t {
	if g := getGrid(uintptr(handle)); g != nil {
		return C.uint8_t(g.Get(int16(x), int16(y), int16(z)))
	}
	return 0
}

//export grid_get_generation
func grid_get_generation(handle C.uintptr_t) C.uint64_t {
	if g := getGrid(uintptr(handle)); g != nil {
		return C.uint64_t(g.Generation())
	}
	return 0
}

//export grid_step
func grid_step(handle C.uintptr_t) {
	if g := getGrid(uintptr(handle)); g != nil {
		g.Step()
	}
}

//export grid_import_region
func grid_import_region(handle C.uintptr_t, buf *C.uint8_t, bufLen C.uint64_t,
	minX, minY, minZ, maxX, maxY, maxZ C.int16_t) C.uint64_t {
	g := getGrid(uintptr(handle))
	if g == nil || buf == nil {
		return 0
	}
	cells := unsafe.Slice((*uint8)(unsafe.Pointer(buf)), int(bufLen))
	return C.uint64_t(g.ImportRegion(cells, int16(minX), int16(minY), int16(minZ), int16(maxX), int16(maxY), int16(maxZ)))
}

//export grid_extract_region
func grid_extract_region(handle C.uintptr_t, buf *C.uint8_t, bufLen C.uint64_t,
	minX, minY, minZ, maxX, maxY, maxZ C.int16_t) C.uint64_t {
	g := getGrid(uintptr(handle))
	if g == nil || buf == nil {
		return 0
	}
	cells := unsafe.Slice((*uint8)(unsafe.Pointer(buf)), int(bufLen))
	return C.uint64_t(g.ExtractRegion(cells, int16(minX), int16(minY), int16(minZ), int16(maxX), int16(maxY), int16(maxZ)))
}
