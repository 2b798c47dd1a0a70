package smpp

import "fmt"

// lengthField checks a command_length that counts itself and everything after it.
type lengthField struct {
	startOffset int
	length      uint32
}

func (l *lengthField) saveOffset(in int) {
	l.startOffset = in
}

func (l *lengthField) check(curOffset int) error {
	if uint32(curOffset-l.startOffset) != l.length {
		return PacketDecodingError{fmt.Sprintf("command_length %d does not match %d bytes received",
			l.length, curOffset-l.startOffset)}
	}
	return nil
}
