//go:build !tinygo && !baremetal

package stub

import (
	"sync"
)

// Driver implements transport.RadioDriver against a Medium.
type Driver struct {
	medium *Medium

	mu        sync.Mutex
	channel   uint8
	pipes     map[uint8]uint32
	txAddress uint32
	listening bool
	rxBuf     ringBuffer

	// FailBegin makes Begin report a radio that will not start.
	FailBegin bool
}

func (d *Driver) Begin() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.FailBegin
}

// One-time configuration is accepted and ignored: the simulated air has no
// payload sizing, ack timing, or power levels.
func (d *Driver) EnableDynamicPayloads()        {}
func (d *Driver) SetAutoAck(enable bool)        {}
func (d *Driver) SetRetries(delay, count uint8) {}
func (d *Driver) SetAddressWidth(width uint8)   {}
func (d *Driver) SetPALevel(level uint8)        {}

func (d *Driver) SetChannel(channel uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.channel = channel
}

func (d *Driver) OpenReadingPipe(pipe uint8, address uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pipes[pipe] = address
}

func (d *Driver) CloseReadingPipe(pipe uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.pipes, pipe)
}

func (d *Driver) OpenWritingPipe(address uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.txAddress = address
}

func (d *Driver) StartListening() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listening = true
}

func (d *Driver) StopListening() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listening = false
}

func (d *Driver) TestCarrier() bool {
	d.mu.Lock()
	channel := d.channel
	d.mu.Unlock()
	return d.medium.carrier(channel)
}

func (d *Driver) Available() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rxBuf.count > 0
}

func (d *Driver) Read(buf []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	frame, ok := d.rxBuf.pop()
	if !ok {
		return
	}
	copy(buf, frame)
}

func (d *Driver) Write(data []byte) bool {
	d.mu.Lock()
	channel := d.channel
	address := d.txAddress
	d.mu.Unlock()

	frame := make([]byte, len(data))
	copy(frame, data)
	return d.medium.deliver(d, channel, address, frame)
}

// accepts reports whether an in-flight frame on channel/address lands in
// this driver's receive buffer. Caller holds the medium lock; the driver
// lock still guards the driver's own state.
func (d *Driver) accepts(channel uint8, address uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.listening || d.channel != channel {
		return false
	}
	for _, pipeAddress := range d.pipes {
		if pipeAddress == address {
			return true
		}
	}
	return false
}

func (d *Driver) push(frame []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rxBuf.push(frame)
}

const ringCapacity = 64

type ringBuffer struct {
	data       [ringCapacity][]byte
	head, tail int // head = next pop, tail = next push
	count      int
}

func (rb *ringBuffer) push(frame []byte) {
	if rb.count == ringCapacity {
		// Overwrite the oldest when the buffer is full to keep memory bounded
		rb.data[rb.tail] = nil
		rb.head = (rb.head + 1) % ringCapacity
		rb.count--
	}
	rb.data[rb.tail] = frame
	rb.tail = (rb.tail + 1) % ringCapacity
	rb.count++
}

func (rb *ringBuffer) pop() ([]byte, bool) {
	if rb.count == 0 {
		return nil, false
	}
	frame := rb.data[rb.head]
	rb.data[rb.head] = nil
	rb.head = (rb.head + 1) % ringCapacity
	rb.count--
	return frame, true
}
