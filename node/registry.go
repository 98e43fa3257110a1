package node

import (
	proto "github.com/jkieltyka15/smart-wsn-parking-lot/protocol"
)

// StatusRegistry is the base station's per-space occupancy table, owned by
// the BaseStation for the life of the process and touched only from its
// message-processing path. Spaces start occupied: a space whose state is
// unknown must never be advertised as free.
type StatusRegistry struct {
	vacant []bool
}

// NewStatusRegistry returns a registry tracking the given number of spaces,
// all initially occupied.
func NewStatusRegistry(spaces int) *StatusRegistry {
	return &StatusRegistry{vacant: make([]bool, spaces)}
}

// IsValidNode reports whether id names a sensor node this registry tracks.
func (r *StatusRegistry) IsValidNode(id proto.NodeID) bool {
	return id != proto.BaseStationID && int(id) <= len(r.vacant)
}

// Update overwrites a space's vacancy flag. Returns false if id is not a
// tracked sensor node.
func (r *StatusRegistry) Update(id proto.NodeID, vacant bool) bool {
	if !r.IsValidNode(id) {
		return false
	}
	r.vacant[id-1] = vacant
	return true
}

// Vacant returns a space's vacancy flag; ok is false for untracked ids.
func (r *StatusRegistry) Vacant(id proto.NodeID) (vacant, ok bool) {
	if !r.IsValidNode(id) {
		return false, false
	}
	return r.vacant[id-1], true
}

// CountVacant counts the spaces currently reported vacant.
func (r *StatusRegistry) CountVacant() int {
	count := 0
	for _, v := range r.vacant {
		if v {
			count++
		}
	}
	return count
}

// Spaces returns the number of spaces tracked.
func (r *StatusRegistry) Spaces() int { return len(r.vacant) }
