package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDragState_NestedEnterLeave(t *testing.T) {
	d := NewDragState()
	assert.False(t, d.Active())

	d.Enter() // root
	d.Enter() // child
	assert.True(t, d.Active())

	d.Leave() // leaving the child must not clear the visual
	assert.True(t, d.Active())

	d.Leave()
	assert.False(t, d.Active())
}

func TestDragState_DropForcesReset(t *testing.T) {
	d := NewDragState()
	d.Enter()
	d.Enter()
	d.Enter()

	d.Drop()
	assert.False(t, d.Active())

	// counter is really zero, not just negative-looking
	d.Enter()
	assert.True(t, d.Active())
}

func TestDragState_LeaveRootForcesReset(t *testing.T) {
	d := NewDragState()
	d.Enter()
	d.Enter()

	d.LeaveRoot()
	assert.False(t, d.Active())
}

func TestDragState_LeaveNeverGoesNegative(t *testing.T) {
	d := NewDragState()
	d.Leave()
	d.Leave()

	d.Enter()
	assert.True(t, d.Active())
}
