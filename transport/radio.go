package transport

import (
	proto "github.com/jkieltyka15/smart-wsn-parking-lot/protocol"
)

// Config carries the one-time radio settings applied at bring-up.
type Config struct {
	AddressWidth uint8
	RetryDelay   uint8
	RetryMax     uint8
	PALevel      uint8
}

// DefaultConfig returns the fleet's standard radio configuration.
func DefaultConfig() Config {
	return Config{
		AddressWidth: proto.AddressWidth,
		RetryDelay:   proto.SendRetryDelay,
		RetryMax:     proto.SendRetryMax,
		PALevel:      PALevelMax,
	}
}

// DefaultTuning returns the fleet's standard channel-acquisition bounds.
func DefaultTuning() Tuning {
	return Tuning{
		MaxAttempts: proto.ChannelChecksMax,
		MinDelay:    proto.ChannelBusyDelayMin,
		MaxDelay:    proto.ChannelBusyDelayMax,
	}
}

// Bringup powers the radio up and applies the one-time configuration,
// leaving the node listening on its own address and channel. Returns false
// if the radio fails to start.
func Bringup(d RadioDriver, cfg Config, address uint32, channel uint8) bool {
	if !d.Begin() {
		return false
	}

	d.EnableDynamicPayloads()
	d.SetAutoAck(true)
	d.SetRetries(cfg.RetryDelay, cfg.RetryMax)
	d.SetAddressWidth(cfg.AddressWidth)
	d.SetPALevel(cfg.PALevel)
	d.SetChannel(channel)
	d.OpenReadingPipe(proto.ReadingPipe, address)
	d.StartListening()

	return true
}
