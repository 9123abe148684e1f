package traverse

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// PointStore maps point identifiers to stored vertex snapshots. A stored
// point records a location, not a course: turns are cleared on Put.
// Re-storing under an existing identifier overwrites, last write wins.
//
// We keep the points in a TreeMap (sorted map) so that summaries list
// identifiers in a deterministic order.
type PointStore struct {
	points *treemap.Map
}

// NewPointStore creates an empty point store.
func NewPointStore() *PointStore {
	return &PointStore{points: treemap.NewWithStringComparator()}
}

// N returns the number of stored points.
func (ps *PointStore) N() int {
	return ps.points.Size()
}

// Put stores a snapshot of v under id, overwriting any previous entry.
func (ps *PointStore) Put(id string, v Vertex) {
	v.Turn = 0
	if _, ok := ps.points.Get(id); ok {
		tracer().Infof("point %s overwritten", id)
	}
	ps.points.Put(id, v)
}

// Get looks up a stored point.
func (ps *PointStore) Get(id string) (Vertex, bool) {
	entry, ok := ps.points.Get(id)
	if !ok {
		return Vertex{}, false
	}
	return entry.(Vertex), true
}

// IDs returns all stored identifiers in sorted order.
func (ps *PointStore) IDs() []string {
	keys := ps.points.Keys()
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.(string)
	}
	return ids
}
