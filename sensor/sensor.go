// Package sensor watches a single parking space through a time-of-flight
// distance sensor and debounces the raw readings into occupancy changes.
package sensor

// RangeStatus classifies one distance reading.
type RangeStatus uint8

const (
	// RangeNear means the sensor converged on a target within range: the
	// space is blocked by a vehicle.
	RangeNear RangeStatus = iota
	// RangeNoTarget means nothing in range to converge on: the space is
	// open.
	RangeNoTarget
	// RangeError means the reading failed and must be ignored.
	RangeError
)

// RangeSensor is the distance-sensor peripheral seam. The VL6180X driver
// satisfies it on hardware; tests and simulations script it.
type RangeSensor interface {
	Begin() bool
	ReadRange() uint8
	ReadRangeStatus() RangeStatus
}
