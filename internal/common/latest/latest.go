// Package latest implements a last-call-wins generation counter. A caller
// starting a new validation obtains a generation token; a result computed
// under an older token than the newest one started must be discarded, so a
// stale verdict never overwrites a newer request's outcome.
package latest

import "sync"

type Gate struct {
	mu  sync.Mutex
	gen uint64
}

func NewGate() *Gate {
	return &Gate{}
}

// Begin starts a new call and supersedes all previously started ones.
func (g *Gate) Begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	return g.gen
}

// Current reports whether the given generation is still the newest call.
func (g *Gate) Current(gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return gen == g.gen
}

// Registry hands out one Gate per (subject, scope) pair, so validations by
// different users or against different authorities never supersede each other.
// Gates are refcounted and dropped once the last in-flight call releases them,
// so the registry only ever holds entries for calls currently running.
type Registry struct {
	mu    sync.Mutex
	gates map[registryKey]*gateEntry
}

type registryKey struct {
	subject int64
	scope   string
}

type gateEntry struct {
	gate *Gate
	refs int
}

func NewRegistry() *Registry {
	return &Registry{gates: make(map[registryKey]*gateEntry)}
}

// Acquire returns the gate for (subject, scope) and a release func the caller
// must invoke when its call finishes. Release is idempotent.
func (r *Registry) Acquire(subject int64, scope string) (*Gate, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := registryKey{subject: subject, scope: scope}
	e, ok := r.gates[k]
	if !ok {
		e = &gateEntry{gate: NewGate()}
		r.gates[k] = e
	}
	e.refs++

	var once sync.Once
	release := func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			e.refs--
			if e.refs == 0 {
				delete(r.gates, k)
			}
		})
	}
	return e.gate, release
}

// Len reports the number of gates currently held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.gates)
}
