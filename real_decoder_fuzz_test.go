//go:build go1.18

package smpp

import (
	"testing"
)

// FuzzDecoder drives one of every read over arbitrary input and checks that the cursor
// only ever moves forward, by exactly the octets consumed, and never on failure.
func FuzzDecoder(f *testing.F) {
	for _, seed := range [][]byte{
		asciiBytes,
		enquireLink,
		submitSMResp,
		append([]byte("080118161504000+"), 0),
		{1, 2, '1', '2', '3', 0},
		{0, 0, 0},
	} {
		f.Add(seed, uint8(0))
	}
	f.Fuzz(func(t *testing.T, in []byte, n uint8) {
		rd := NewDecoder(in)
		reads := []func() (int, error){
			func() (int, error) { _, err := rd.ReadUInt1(); return 1, err },
			func() (int, error) { _, err := rd.ReadUInt2(); return 2, err },
			func() (int, error) { _, err := rd.ReadUInt4(); return 4, err },
			func() (int, error) { s, err := rd.ReadCString(); return len(s) + 1, err },
			func() (int, error) { s, err := rd.ReadString(int(n % 8)); return len(s), err },
			func() (int, error) { b, err := rd.ReadBytes(int(n % 8)); return len(b), err },
			func() (int, error) {
				a, err := rd.ReadAddress()
				return len(a.Digits) + 3, err
			},
			func() (int, error) {
				d, err := rd.ReadDate()
				if d == nil {
					return 1, err
				}
				return dateLength + 1, err
			},
		}
		for i := 0; rd.Remaining() > 0 && i < 64; i++ {
			before := rd.ParsePosition()
			consumed, err := reads[(i+int(n))%len(reads)]()
			after := rd.ParsePosition()
			if err != nil {
				if after != before {
					t.Fatalf("failed read moved cursor from %d to %d: %v", before, after, err)
				}
				continue
			}
			if after-before != consumed {
				t.Fatalf("read consumed %d octets but cursor moved %d", consumed, after-before)
			}
			if after > len(in) {
				t.Fatalf("cursor %d past end of %d byte buffer", after, len(in))
			}
		}
	})
}
