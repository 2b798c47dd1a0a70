package smpp

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

var errInvalidLength = PacketDecodingError{"invalid length"}

// Decoder reads SMPP fields sequentially from an in-memory PDU. It is the PacketDecoder
// handed to Decodable implementations.
type Decoder struct {
	raw []byte
	off int
}

// NewDecoder returns a Decoder positioned at the start of buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{raw: buf}
}

// NewDecoderAt returns a Decoder positioned at off. The offset is not checked here: an
// offset past the end of buf is accepted and the first read that needs octets fails
// with ErrInsufficientData.
func NewDecoderAt(buf []byte, off int) *Decoder {
	return &Decoder{raw: buf, off: off}
}

// ParsePosition returns the current cursor.
func (rd *Decoder) ParsePosition() int {
	return rd.off
}

// Remaining returns the number of octets between the cursor and the end of the buffer.
// It is negative when the cursor was placed past the end.
func (rd *Decoder) Remaining() int {
	return rd.availAt(rd.off)
}

func (rd *Decoder) availAt(off int) int {
	if off < 0 {
		return -1
	}
	return len(rd.raw) - off
}

// primitives

func (rd *Decoder) uint1At(off int) (uint8, int, error) {
	if rd.availAt(off) < 1 {
		return 0, off, ErrInsufficientData
	}
	return rd.raw[off], off + 1, nil
}

func (rd *Decoder) cstringAt(off int) (string, int, error) {
	if rd.availAt(off) < 1 {
		return "", off, ErrInsufficientData
	}
	n := bytes.IndexByte(rd.raw[off:], 0)
	if n < 0 {
		return "", off, ErrInsufficientData
	}
	return string(rd.raw[off : off+n]), off + n + 1, nil
}

func (rd *Decoder) ReadUInt1() (uint8, error) {
	tmp, off, err := rd.uint1At(rd.off)
	if err != nil {
		return 0, err
	}
	rd.off = off
	return tmp, nil
}

func (rd *Decoder) ReadUInt2() (uint16, error) {
	if rd.Remaining() < 2 {
		return 0, ErrInsufficientData
	}
	tmp := binary.BigEndian.Uint16(rd.raw[rd.off:])
	rd.off += 2
	return tmp, nil
}

func (rd *Decoder) ReadUInt4() (uint32, error) {
	if rd.Remaining() < 4 {
		return 0, ErrInsufficientData
	}
	tmp := binary.BigEndian.Uint32(rd.raw[rd.off:])
	rd.off += 4
	return tmp, nil
}

// strings and raw octets

// ReadCString reads up to and including the next null octet and returns the octets
// before it.
func (rd *Decoder) ReadCString() (string, error) {
	tmp, off, err := rd.cstringAt(rd.off)
	if err != nil {
		return "", err
	}
	rd.off = off
	return tmp, nil
}

// ReadString reads exactly length octets. Null octets inside the field are kept.
func (rd *Decoder) ReadString(length int) (string, error) {
	switch {
	case length < 0:
		return "", errInvalidLength
	case length > rd.Remaining():
		return "", ErrInsufficientData
	case length == 0:
		return "", nil
	}
	tmp := string(rd.raw[rd.off : rd.off+length])
	rd.off += length
	return tmp, nil
}

// ReadBytes returns a copy of the next length octets. The result never aliases the
// decoder's buffer and is non-nil even when length is 0.
func (rd *Decoder) ReadBytes(length int) ([]byte, error) {
	switch {
	case length < 0:
		return nil, errInvalidLength
	case length > rd.Remaining():
		return nil, ErrInsufficientData
	}
	tmp := make([]byte, length)
	copy(tmp, rd.raw[rd.off:])
	rd.off += length
	return tmp, nil
}

// composites

// ReadAddress reads a TON octet, an NPI octet and a null-terminated digit string. On
// failure the cursor is left where it was before the call.
func (rd *Decoder) ReadAddress() (Address, error) {
	off := rd.off

	ton, off, err := rd.uint1At(off)
	if err != nil {
		return Address{}, err
	}
	npi, off, err := rd.uint1At(off)
	if err != nil {
		return Address{}, err
	}
	digits, off, err := rd.cstringAt(off)
	if err != nil {
		return Address{}, err
	}

	rd.off = off
	return Address{TON: TON(ton), NPI: NPI(npi), Digits: digits}, nil
}

// ReadDate reads an SMPP time field. A lone null octet is an absent time: the terminator
// is consumed and a nil Date is returned. Otherwise the field must be 16 characters
// followed by a null octet. On failure the cursor is left where it was before the call.
func (rd *Decoder) ReadDate() (*Date, error) {
	if rd.Remaining() < 1 {
		return nil, ErrInsufficientData
	}
	if rd.raw[rd.off] == 0 {
		rd.off++
		return nil, nil
	}

	if rd.Remaining() < dateLength+1 {
		return nil, ErrInsufficientData
	}
	field := rd.raw[rd.off : rd.off+dateLength]
	if term := rd.raw[rd.off+dateLength]; term != 0 {
		return nil, PacketDecodingError{fmt.Sprintf("time field not null-terminated, found 0x%02x", term)}
	}

	date, err := parseDate(field)
	if err != nil {
		return nil, err
	}

	rd.off += dateLength + 1
	return date, nil
}
