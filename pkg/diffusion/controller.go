package diffusion

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// StepController bundles a field with the double-buffer and tile queue of an
// in-progress generation. It is the external-facing handle: one logical
// caller drives BeginStep/Tick/StepBlocking, and Tick is the only point
// that yields. Completing a generation incrementally produces bit-identical
// cells to the blocking path, because both replay the same fused semantics
// from the same snapshot.
//
// A controller owns all of its state; any number of independent controllers
// can coexist in one process.
type StepController struct {
	field   *Field
	threads int

	// target is the signed accumulation buffer for the next generation.
	// It is retained across generations and reinitialized from the
	// snapshot at every BeginStep.
	target []int64

	active *stepState
}

// stepState exists only while a generation is in progress.
type stepState struct {
	snapshot  []uint32
	queue     []tileCoord
	groupEnds [8]int // color class boundaries; used when threads > 1
	next      int
}

// NewController constructs an idle controller owning a zero-initialized
// field. threads is a hint for intra-tick parallelism; values below 1 run
// single-threaded.
func NewController(w, h, d int16, rate uint8, threads int) (*StepController, error) {
	field, err := NewField(w, h, d, rate)
	if err != nil {
		return nil, err
	}
	if threads < 1 {
		threads = 1
	}
	return &StepController{field: field, threads: threads}, nil
}

// Field exposes the owned field for host glue and tests. The cells must not
// be mutated through it while IsStepping reports true.
func (c *StepController) Field() *Field { return c.field }

// IsStepping reports whether a generation is in progress.
func (c *StepController) IsStepping() bool { return c.active != nil }

// Generation returns the owned field's completed-step counter.
func (c *StepController) Generation() uint64 { return c.field.Generation() }

// Get reads one cell. While a generation is in progress this returns the
// stable pre-step value; mid-step work is never observable.
func (c *StepController) Get(x, y, z int16) uint32 { return c.field.Get(x, y, z) }

// Set writes one cell, failing with ErrBusyStepping while a generation is
// in progress. Out-of-bounds coordinates are ignored as in Field.Set.
func (c *StepController) Set(x, y, z int16, value uint32) error {
	if c.active != nil {
		return ErrBusyStepping
	}
	c.field.Set(x, y, z, value)
	return nil
}

// ImportRegion bulk-writes a region, failing with ErrBusyStepping while a
// generation is in progress. See Field.ImportRegion.
func (c *StepController) ImportRegion(buf []uint32, minX, minY, minZ, maxX, maxY, maxZ int16) (int, error) {
	if c.active != nil {
		return 0, ErrBusyStepping
	}
	return c.field.ImportRegion(buf, minX, minY, minZ, maxX, maxY, maxZ), nil
}

// ExtractRegion bulk-reads a region of the stable cells. Legal in any
// state. See Field.ExtractRegion.
func (c *StepController) ExtractRegion(buf []uint32, minX, minY, minZ, maxX, maxY, maxZ int16) int {
	return c.field.ExtractRegion(buf, minX, minY, minZ, maxX, maxY, maxZ)
}

// BeginStep opens a new generation: it clones the cells into an immutable
// snapshot, initializes the destination buffer from it, and builds the
// Morton-ordered tile queue. Fails with ErrAlreadyStepping if a generation
// is already open.
func (c *StepController) BeginStep() error {
	if c.active != nil {
		return ErrAlreadyStepping
	}

	f := c.field
	snapshot := make([]uint32, len(f.Cells))
	copy(snapshot, f.Cells)

	if len(c.target) != len(snapshot) {
		c.target = make([]int64, len(snapshot))
	}
	for i, v := range snapshot {
		c.target[i] = int64(v)
	}

	tilesX, tilesY, tilesZ := tileGridFor(f.W, f.H, f.D)
	queue := buildTileQueue(tilesX, tilesY, tilesZ)

	st := &stepState{snapshot: snapshot, queue: queue}
	if c.threads > 1 {
		st.queue, st.groupEnds = groupByColor(queue)
	}
	c.active = st
	return nil
}

// Tick performs bounded work toward the open generation. It processes
// whole tiles, checking a monotonic clock between them, and returns once
// the elapsed time exceeds budget or the queue drains. A zero budget still
// processes one tile so the generation always makes progress. When the
// queue drains the generation commits atomically: done is true, the cells
// hold the complete new generation, and the counter has advanced by one.
//
// A StabilityError aborts the generation: the snapshot and destination are
// dropped, the field stays at its prior generation, and the controller
// returns to idle.
//
// Calling Tick while idle is a no-op that reports done.
func (c *StepController) Tick(budget time.Duration) (done bool, err error) {
	st := c.active
	if st == nil {
		return true, nil
	}

	start := time.Now()
	for {
		if st.next >= len(st.queue) {
			return true, c.commit()
		}
		if c.threads > 1 {
			c.runBatch(st)
		} else {
			c.runTile(st.queue[st.next])
			st.next++
		}
		if st.next >= len(st.queue) {
			return true, c.commit()
		}
		if time.Since(start) >= budget {
			return false, nil
		}
	}
}

// StepBlocking advances exactly one generation, driving Tick to completion.
func (c *StepController) StepBlocking() error {
	if err := c.BeginStep(); err != nil {
		return err
	}
	for {
		done, err := c.Tick(time.Hour)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (c *StepController) runTile(t tileCoord) {
	f := c.field
	processTile(c.active.snapshot, c.target, int(f.W), int(f.H), int(f.D), uint(f.Rate), t)
}

// runBatch dispatches up to c.threads tiles concurrently. A batch never
// crosses a color-class boundary: tiles within one class have disjoint
// write footprints, so the concurrent int64 accumulations touch distinct
// cells and the result matches the single-threaded order exactly.
func (c *StepController) runBatch(st *stepState) {
	end := st.next + c.threads
	for _, groupEnd := range st.groupEnds {
		if st.next < groupEnd {
			end = min(end, groupEnd)
			break
		}
	}

	batch := st.queue[st.next:end]
	st.next = end
	if len(batch) == 1 {
		c.runTile(batch[0])
		return
	}

	var g errgroup.Group
	for _, t := range batch {
		t := t
		g.Go(func() error {
			c.runTile(t)
			return nil
		})
	}
	g.Wait()
}

// commit finalizes the open generation. All-or-nothing: on a range
// violation nothing is published and the field is unchanged.
func (c *StepController) commit() error {
	f := c.field
	cells, err := commitCells(c.target, f.W, f.H)
	c.active = nil
	if err != nil {
		return err
	}
	f.Cells = cells
	f.generation++
	return nil
}
