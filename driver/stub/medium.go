//go:build !tinygo && !baremetal

// Package stub implements an in-memory radio medium for host-side testing
// and simulation. A Medium stands in for the shared air: drivers attached
// to it deliver writes to whichever driver is listening on the target
// address and channel, and carrier sensing observes scripted traffic.
package stub

import "sync"

// Medium is the shared air every attached driver transmits into.
type Medium struct {
	mu      sync.Mutex
	drivers []*Driver
	busy    map[uint8]bool
}

// NewMedium returns an empty medium with every channel idle.
func NewMedium() *Medium {
	return &Medium{busy: make(map[uint8]bool)}
}

// Attach creates a new driver on this medium.
func (m *Medium) Attach() *Driver {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := &Driver{medium: m, pipes: make(map[uint8]uint32)}
	m.drivers = append(m.drivers, d)
	return d
}

// SetCarrier scripts a channel's carrier flag, simulating foreign traffic
// the attached drivers have no control over.
func (m *Medium) SetCarrier(channel uint8, busy bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy[channel] = busy
}

func (m *Medium) carrier(channel uint8) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy[channel]
}

// deliver hands one frame to every driver listening on address over
// channel. Returns false when nobody acknowledges, which is how the real
// radio's auto-ack surfaces an unreachable peer.
func (m *Medium) deliver(from *Driver, channel uint8, address uint32, data []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	delivered := false
	for _, d := range m.drivers {
		if d == from {
			continue
		}
		if d.accepts(channel, address) {
			d.push(data)
			delivered = true
		}
	}
	return delivered
}
