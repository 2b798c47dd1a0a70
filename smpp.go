/*
Package smpp provides the field decoder used to read SMPP protocol data units.

A PDU arrives from the transport as a complete, framed byte slice. The PDU type that
owns the layout wraps it in a Decoder and reads its fields in protocol order:

	pd := smpp.NewDecoder(buf)
	serviceType, err := pd.ReadCString()
	if err != nil {
		return err
	}
	source, err := pd.ReadAddress()
	...

Every read checks bounds before touching the buffer and either advances the cursor by
exactly the number of octets it consumed or fails and leaves the cursor where it was.
Truncated input fails with ErrInsufficientData; malformed content (a bad timestamp, a
length field that disagrees with the buffer) fails with a PacketDecodingError.

A Decoder carries a mutable cursor and is not safe for concurrent use. Decode each PDU
with its own Decoder.

Metrics

The Decode and DecodeHeader helpers record the following metrics in Config.MetricRegistry:

	+--------------------------------------------+------------+-------------------------------------+
	| Name                                       | Type       | Description                         |
	+--------------------------------------------+------------+-------------------------------------+
	| pdu-decode-rate                            | meter      | PDUs decoded successfully           |
	| pdu-decode-error-rate                      | meter      | PDUs rejected by the decoder        |
	| pdu-size                                   | histogram  | Distribution of PDU sizes in bytes  |
	| pdu-decode-rate-for-command-<command>      | meter      | Headers decoded for a given command |
	+--------------------------------------------+------------+-------------------------------------+
*/
package smpp

import (
	"io"
	"log"
)

// Logger is the instance of a StdLogger interface that the package writes connection
// management events to. By default it is set to discard all log messages via io.Discard,
// but you can set it to redirect wherever you want.
var Logger StdLogger = log.New(io.Discard, "[smpp] ", log.LstdFlags)

// DebugLogger is the instance of a StdLogger interface that the package writes more
// verbose debug information to. By default it is set to discard all log messages via
// io.Discard, but you can set it to redirect wherever you want.
var DebugLogger StdLogger = log.New(io.Discard, "[smpp] ", log.LstdFlags)

// StdLogger is used to log error messages.
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}
