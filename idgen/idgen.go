package idgen

import "sync/atomic"

// Generator issues process-unique, strictly increasing identifiers starting
// at 1. A single generator is shared by the video and comment creation paths,
// so ids are unique across both entity kinds.
type Generator struct {
	counter atomic.Int64
}

func New() *Generator {
	return &Generator{}
}

// Next returns an id strictly greater than every id previously returned by
// this generator. Safe for concurrent callers.
func (g *Generator) Next() int64 {
	return g.counter.Add(1)
}
