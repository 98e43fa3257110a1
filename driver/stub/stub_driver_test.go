//go:build !tinygo && !baremetal

package stub

import (
	"bytes"
	"testing"
)

func TestMedium_DeliversToListeningDriver(t *testing.T) {
	medium := NewMedium()

	rx := medium.Attach()
	rx.SetChannel(15)
	rx.OpenReadingPipe(1, 0x03030303)
	rx.StartListening()

	tx := medium.Attach()
	tx.SetChannel(15)
	tx.OpenWritingPipe(0x03030303)

	frame := []byte{3, 0, 1, 0, 1}
	if !tx.Write(frame) {
		t.Fatal("Write() = false, want acknowledged delivery")
	}

	if !rx.Available() {
		t.Fatal("Available() = false after delivery")
	}
	got := make([]byte, len(frame))
	rx.Read(got)
	if !bytes.Equal(got, frame) {
		t.Errorf("Read() = %v, want %v", got, frame)
	}
	if rx.Available() {
		t.Error("Available() = true after draining")
	}
}

func TestMedium_WriteFailsWithNoListener(t *testing.T) {
	medium := NewMedium()

	rx := medium.Attach()
	rx.SetChannel(15)
	rx.OpenReadingPipe(1, 0x03030303)
	rx.StartListening()

	tx := medium.Attach()

	// Wrong channel: the listener is tuned elsewhere.
	tx.SetChannel(20)
	tx.OpenWritingPipe(0x03030303)
	if tx.Write([]byte{1}) {
		t.Error("Write() = true across channels, want false")
	}

	// Right channel, wrong address.
	tx.SetChannel(15)
	tx.OpenWritingPipe(0x04040404)
	if tx.Write([]byte{1}) {
		t.Error("Write() = true to an unclaimed address, want false")
	}

	// Listener stopped.
	rx.StopListening()
	tx.OpenWritingPipe(0x03030303)
	if tx.Write([]byte{1}) {
		t.Error("Write() = true to a stopped listener, want false")
	}
}

func TestMedium_ScriptedCarrier(t *testing.T) {
	medium := NewMedium()
	d := medium.Attach()
	d.SetChannel(15)

	if d.TestCarrier() {
		t.Error("TestCarrier() = true on a quiet channel")
	}

	medium.SetCarrier(15, true)
	if !d.TestCarrier() {
		t.Error("TestCarrier() = false on a busy channel")
	}

	d.SetChannel(20)
	if d.TestCarrier() {
		t.Error("TestCarrier() = true on a different channel")
	}

	medium.SetCarrier(15, false)
	d.SetChannel(15)
	if d.TestCarrier() {
		t.Error("TestCarrier() = true after the channel cleared")
	}
}

func TestDriver_ClosedPipeStopsDelivery(t *testing.T) {
	medium := NewMedium()

	rx := medium.Attach()
	rx.SetChannel(5)
	rx.OpenReadingPipe(1, 0x01010101)
	rx.StartListening()

	tx := medium.Attach()
	tx.SetChannel(5)
	tx.OpenWritingPipe(0x01010101)

	if !tx.Write([]byte{1}) {
		t.Fatal("Write() = false with the pipe open")
	}

	rx.CloseReadingPipe(1)
	if tx.Write([]byte{2}) {
		t.Error("Write() = true with the pipe closed, want false")
	}
}

func TestDriver_FailBegin(t *testing.T) {
	medium := NewMedium()
	d := medium.Attach()
	d.FailBegin = true

	if d.Begin() {
		t.Error("Begin() = true, want scripted failure")
	}
}
