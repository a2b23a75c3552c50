package ingest

import "sync"

// DragState tracks nested dragenter/dragleave pairs so that traversing child
// elements during a drag does not prematurely clear the drop-target visual.
// Active while the nesting counter is above zero; an actual drop or a leave
// of the root forces the counter back to zero.
type DragState struct {
	mu    sync.Mutex
	depth int
}

func NewDragState() *DragState {
	return &DragState{}
}

func (d *DragState) Enter() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.depth++
}

func (d *DragState) Leave() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.depth > 0 {
		d.depth--
	}
}

// Drop resets the state after the files were handed over.
func (d *DragState) Drop() {
	d.reset()
}

// LeaveRoot resets the state when the drag exits the composer entirely.
func (d *DragState) LeaveRoot() {
	d.reset()
}

func (d *DragState) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.depth = 0
}

func (d *DragState) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.depth > 0
}
