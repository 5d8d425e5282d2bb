package main

/*
#include <stdint.h>
*/
import "C"

import (
	"time"
	"unsafe"

	"voxdiff/pkg/diffusion"
)

// create_controller constructs an idle step controller and returns its
// handle, or 0 on invalid extents or an invalid rate. An allocation failure
// is not reported here: the Go runtime terminates the process.
//
//export create_controller
func create_controller(w, h, d C.int16_t, rate, threads C.uint8_t) C.uintptr_t {
	ctrl, err := diffusion.NewController(int16(w), int16(h), int16(d), uint8(rate), int(threads))
	if err != nil {
		return 0
	}
	return C.uintptr_t(putController(ctrl))
}

//export destroy_controller
func destroy_controller(handle C.uintptr_t) {
	dropController(uintptr(handle))
}

// field_set writes one cell. The write is dropped silently for an unknown
// handle, out-of-bounds coordinates, or while a generation is in progress;
// hosts that need the mid-step rejection observable poll is_stepping first.
//
//export field_set
func field_set(handle C.uintptr_t, x, y, z C.int16_t, value C.uint32_t) {
	if ctrl := getController(uintptr(handle)); ctrl != nil {
		_ = ctrl.Set(int16(x), int16(y), int16(z), uint32(value))
	}
}

//export field_get
func field_get(handle C.uintptr_t, x, y, z C.int16_t) C.uint32_t {
	if ctrl := getController(uintptr(handle)); ctrl != nil {
		return C.uint32_t(ctrl.Get(int16(x), int16(y), int16(z)))
	}
	return 0
}

//export field_get_generation
func field_get_generation(handle C.uintptr_t) C.uint64_t {
	if ctrl := getController(uintptr(handle)); ctrl != nil {
		return C.uint64_t(ctrl.Generation())
	}
	return 0
}

// begin_step returns 0 on success, 1 if a generation is already in progress.
//
//export begin_step
func begin_step(handle C.uintptr_t) C.int32_t {
	ctrl := getController(uintptr(handle))
	if ctrl == nil {
		return 1
	}
	if err := ctrl.BeginStep(); err != nil {
		return 1
	}
	return 0
}

// tick returns 1 when the generation completed, 0 when work remains, and
// -1 when a stability violation aborted the generation (the field is
// unchanged at its prior generation).
//
//export tick
func tick(handle C.uintptr_t, budgetUS C.uint64_t) C.int32_t {
	ctrl := getController(uintptr(handle))
	if ctrl == nil {
		return 1
	}
	done, err := ctrl.Tick(time.Duration(budgetUS) * time.Microsecond)
	if err != nil {
		return -1
	}
	if done {
		return 1
	}
	return 0
}

//export is_stepping
func is_stepping(handle C.uintptr_t) C.int32_t {
	if ctrl := getController(uintptr(handle)); ctrl != nil && ctrl.IsStepping() {
		return 1
	}
	return 0
}

// step_blocking advances exactly one generation. A stability violation
// leaves the field at its prior generation, observable through
// field_get_generation.
//
//export step_blocking
func step_blocking(handle C.uintptr_t) {
	if ctrl := getController(uintptr(handle)); ctrl != nil {
		_ = ctrl.StepBlocking()
	}
}

// field_import_region bulk-writes a half-open region from buf and returns
// the cell count written, or 0 on a bounds violation, a short buffer, or
// while a generation is in progress.
//
//export field_import_region
func field_import_region(handle C.uintptr_t, buf *C.uint32_t, bufLen C.uint64_t,
	minX, minY, minZ, maxX, maxY, maxZ C.int16_t) C.uint64_t {
	ctrl := getController(uintptr(handle))
	if ctrl == nil || buf == nil {
		return 0
	}
	cells := unsafe.Slice((*uint32)(unsafe.Pointer(buf)), int(bufLen))
	n, err := ctrl.ImportRegion(cells, int16(minX), int16(minY), int16(minZ), int16(maxX), int16(maxY), int16(maxZ))
	if err != nil {
		return 0
	}
	return C.uint64_t(n)
}

// field_extract_region bulk-reads a half-open region into buf and returns
// the cell count written, or 0 on a bounds violation or short buffer.
//
//export field_extract_region
func field_extract_region(handle C.uintptr_t, buf *C.uint32_t, bufLen C.uint64_t,
	minX, minY, minZ, maxX, maxY, maxZ C.int16_t) C.uint64_t {
	ctrl := getController(uintptr(handle))
	if ctrl == nil || buf == nil {
		return 0
	}
	cells := unsafe.Slice((*uint32)(unsafe.Pointer(buf)), int(bufLen))
	n := ctrl.ExtractRegion(cells, int16(minX), int16(minY), int16(minZ), int16(maxX), int16(maxY), int16(maxZ))
	return C.uint64_t(n)
}
