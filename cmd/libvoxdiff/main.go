// Command libvoxdiff builds the C ABI surface consumed by host scripting
// layers:
//
//	go build -buildmode=c-shared -o libvoxdiff.so ./cmd/libvoxdiff
//
// Entry points use only machine-level integer types and opaque handles; no
// Go pointers cross the boundary. Errors surface as return codes or null
// handles, never as panics. The handle registry below is the only
// process-global state and exists strictly at this boundary; the core
// packages own all simulation state per controller.
package main

import (
	"sync"

	"voxdiff/pkg/automaton"
	"voxdiff/pkg/diffusion"
)

var registry = struct {
	sync.Mutex
	next        uintptr
	controllers map[uintptr]*diffusion.StepController
	grids       map[uintptr]*automaton.Grid
}{
	next:        1,
	controllers: map[uintptr]*diffusion.StepController{},
	grids:       map[uintptr]*automaton.Grid{},
}

func putController(c *diffusion.StepController) uintptr {
	registry.Lock()
	defer registry.Unlock()
	h := registry.next
	registry.next++
	registry.controllers[h] = c
	return h
}

func getController(h uintptr) *diffusion.StepController {
	registry.Lock()
	defer registry.Unlock()
	return registry.controllers[h]
}

func dropController(h uintptr) {
	registry.Lock()
	defer registry.Unlock()
	delete(registry.controllers, h)
}

func putGrid(g *automaton.Grid) uintptr {
	registry.Lock()
	defer registry.Unlock()
	h := registry.next
	registry.next++
	registry.grids[h] = g
	return h
}

func getGrid(h uintptr) *automaton.Grid {
	registry.Lock()
	defer registry.Unlock()
	return registry.grids[h]
}

func dropGrid(h uintptr) {
	registry.Lock()
	defer registry.Unlock()
	delete(registry.grids, h)
}

// main is required by -buildmode=c-shared and never runs.
func main() {}
