package sensor

// OccupancyState is a space's last classified occupancy.
type OccupancyState uint8

const (
	StateUnknown OccupancyState = iota
	StateOccupied
	StateVacant
)

func (s OccupancyState) String() string {
	switch s {
	case StateOccupied:
		return "occupied"
	case StateVacant:
		return "vacant"
	default:
		return "unknown"
	}
}

// Monitor is a debounced state machine over raw range readings. It starts
// in StateUnknown and only ever moves on a valid reading.
type Monitor struct {
	ranger RangeSensor
	state  OccupancyState
}

// NewMonitor returns a monitor over the given range sensor.
func NewMonitor(r RangeSensor) *Monitor {
	return &Monitor{ranger: r, state: StateUnknown}
}

// Begin starts the underlying sensor. False is fatal to the node.
func (m *Monitor) Begin() bool { return m.ranger.Begin() }

// State returns the last classified occupancy state.
func (m *Monitor) State() OccupancyState { return m.state }

// DetectChange performs one reading and reports whether the space's
// occupancy changed, storing the new state before returning. Repeated
// identical readings never re-report, and a failed reading is ignored
// with the prior state kept.
func (m *Monitor) DetectChange() bool {
	// The range value itself is unused; the read status carries the
	// classification.
	m.ranger.ReadRange()

	switch m.ranger.ReadRangeStatus() {
	case RangeNear:
		if m.state == StateOccupied {
			return false
		}
		m.state = StateOccupied
	case RangeNoTarget:
		if m.state == StateVacant {
			return false
		}
		m.state = StateVacant
	default:
		return false
	}

	return true
}
