package protocol

import "errors"

var (
	ErrInvalidNode    = errors.New("node id out of range")
	ErrInvalidChannel = errors.New("invalid channel (valid range: 0-125)")
)
