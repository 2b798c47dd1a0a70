package smpp

// PacketDecoder is the interface providing helpers for reading with SMPP's encoding rules.
// Types implementing Decodable only need to worry about calling methods like ReadCString,
// not about how a C-string is represented on the wire.
type PacketDecoder interface {
	// Primitives
	ReadUInt1() (uint8, error)
	ReadUInt2() (uint16, error)
	ReadUInt4() (uint32, error)

	// Strings and raw octets
	ReadCString() (string, error)
	ReadString(length int) (string, error)
	ReadBytes(length int) ([]byte, error)

	// Composites
	ReadAddress() (Address, error)
	ReadDate() (*Date, error)

	// Cursor
	ParsePosition() int
	Remaining() int
}

// Decodable is implemented by PDU types that know their own field layout.
type Decodable interface {
	Decode(pd PacketDecoder) error
}
