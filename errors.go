package smpp

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is returned when a read would consume octets beyond the end of the
// buffer. This includes a C-string whose null terminator is missing. The transport is
// expected to deliver complete PDUs, so seeing this error means the PDU is truncated or
// its layout does not match the bytes.
var ErrInsufficientData = errors.New("smpp: insufficient data to decode packet, more bytes expected")

// PacketDecodingError is returned when there was an error (other than truncated data)
// decoding an SMPP PDU. This can be a malformed timestamp, a bad length field, or any
// other invalid value.
type PacketDecodingError struct {
	Info string
}

func (err PacketDecodingError) Error() string {
	return fmt.Sprintf("smpp: error decoding packet: %s", err.Info)
}

// ConfigurationError is the type of error returned from Config.Validate when the
// configuration is invalid.
type ConfigurationError string

func (err ConfigurationError) Error() string {
	return "smpp: invalid configuration (" + string(err) + ")"
}
