package latest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaleGenerationIsDiscarded(t *testing.T) {
	gate := NewGate()

	first := gate.Begin()
	second := gate.Begin()

	assert.False(t, gate.Current(first), "superseded call must be discarded")
	assert.True(t, gate.Current(second))
}

func TestRegistryIsolatesSubjectsAndScopes(t *testing.T) {
	reg := NewRegistry()

	a, releaseA := reg.Acquire(1, "telegram")
	defer releaseA()
	gen := a.Begin()

	// Another user and another authority never supersede this call.
	b, releaseB := reg.Acquire(2, "telegram")
	defer releaseB()
	b.Begin()
	c, releaseC := reg.Acquire(1, "stripe")
	defer releaseC()
	c.Begin()
	assert.True(t, a.Current(gen))

	// A new call by the same user against the same authority does.
	d, releaseD := reg.Acquire(1, "telegram")
	defer releaseD()
	assert.Same(t, a, d)
	d.Begin()
	assert.False(t, a.Current(gen))
}

func TestRegistryDropsGatesWithNoCallsInFlight(t *testing.T) {
	reg := NewRegistry()

	first, release1 := reg.Acquire(1, "telegram")
	_, release2 := reg.Acquire(1, "telegram")
	assert.Equal(t, 1, reg.Len())

	// The gate survives until the last of the overlapping calls releases it.
	release1()
	assert.Equal(t, 1, reg.Len())
	release2()
	release2() // idempotent
	assert.Equal(t, 0, reg.Len())

	// A later call gets a fresh gate.
	second, release3 := reg.Acquire(1, "telegram")
	defer release3()
	assert.NotSame(t, first, second)
	assert.Equal(t, 1, reg.Len())
}
