package smpp

import (
	"fmt"
	"time"
)

// dateLength is the width of an SMPP time field, not counting its null terminator.
const dateLength = 16

// Time field sign characters.
const (
	SignAhead    = '+' // local time ahead of UTC
	SignBehind   = '-' // local time behind UTC
	SignRelative = 'R' // period relative to the SMSC's current time
)

// Date is an SMPP time field in its YYMMDDhhmmsstnnp wire form.
//
// For an absolute time Year is the two-digit year (2000 + Year), UTCOffset is the
// distance from UTC in quarter hours and Sign says in which direction. For a relative
// time (Sign == SignRelative) the date and time fields are a period to add to the
// current time and Tenths and UTCOffset are normally zero.
//
// Decoding only checks that every sub-field is made of digits and that the sign is
// known. Call Validate before relying on Time for a field from an untrusted peer.
type Date struct {
	Year      int
	Month     int
	Day       int
	Hour      int
	Minute    int
	Second    int
	Tenths    int
	UTCOffset int
	Sign      byte
}

// ParseDate parses the 16-character form of an SMPP time field.
func ParseDate(s string) (*Date, error) {
	if len(s) != dateLength {
		return nil, PacketDecodingError{fmt.Sprintf("time field %q is %d characters, expected %d", s, len(s), dateLength)}
	}
	return parseDate([]byte(s))
}

func parseDate(field []byte) (*Date, error) {
	d := new(Date)
	parts := []struct {
		name string
		from int
		to   int
		dst  *int
	}{
		{"year", 0, 2, &d.Year},
		{"month", 2, 4, &d.Month},
		{"day", 4, 6, &d.Day},
		{"hour", 6, 8, &d.Hour},
		{"minute", 8, 10, &d.Minute},
		{"second", 10, 12, &d.Second},
		{"tenths", 12, 13, &d.Tenths},
		{"utc offset", 13, 15, &d.UTCOffset},
	}
	for _, p := range parts {
		n, err := parseDigits(p.name, field[p.from:p.to])
		if err != nil {
			return nil, err
		}
		*p.dst = n
	}

	d.Sign = field[15]
	switch d.Sign {
	case SignAhead, SignBehind, SignRelative:
	default:
		return nil, PacketDecodingError{fmt.Sprintf("unknown time field sign %q", d.Sign)}
	}
	return d, nil
}

func parseDigits(name string, b []byte) (int, error) {
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, PacketDecodingError{fmt.Sprintf("invalid %s %q in time field", name, b)}
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// Validate checks the sub-fields against the calendar. Absolute times need a real
// month, day and time of day and an offset of at most 48 quarter hours; relative
// times need zero tenths and offset. It returns a PacketDecodingError describing the
// first violation.
func (d *Date) Validate() error {
	if d.IsRelative() {
		if d.Tenths != 0 || d.UTCOffset != 0 {
			return PacketDecodingError{fmt.Sprintf("relative time %s must have tenths and utc offset of zero", d)}
		}
		return nil
	}

	check := func(name string, v, lo, hi int) error {
		if v < lo || v > hi {
			return PacketDecodingError{fmt.Sprintf("%s %d out of range [%d, %d]", name, v, lo, hi)}
		}
		return nil
	}
	if err := check("month", d.Month, 1, 12); err != nil {
		return err
	}
	if err := check("day", d.Day, 1, daysIn(d.Month, 2000+d.Year)); err != nil {
		return err
	}
	if err := check("hour", d.Hour, 0, 23); err != nil {
		return err
	}
	if err := check("minute", d.Minute, 0, 59); err != nil {
		return err
	}
	if err := check("second", d.Second, 0, 59); err != nil {
		return err
	}
	return check("utc offset", d.UTCOffset, 0, 48)
}

func daysIn(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsRelative reports whether d is a period rather than a point in time.
func (d *Date) IsRelative() bool {
	return d.Sign == SignRelative
}

// Location returns the fixed zone described by the UTC offset and sign.
func (d *Date) Location() *time.Location {
	secs := d.UTCOffset * 15 * 60
	if d.Sign == SignBehind {
		secs = -secs
	}
	return time.FixedZone("", secs)
}

// Time returns the absolute time d describes. It returns the zero time for a relative
// Date; use Resolve for those.
func (d *Date) Time() time.Time {
	if d.IsRelative() {
		return time.Time{}
	}
	return time.Date(2000+d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second,
		d.Tenths*int(100*time.Millisecond), d.Location())
}

// Resolve returns the time d refers to when evaluated at now. Absolute dates ignore now.
func (d *Date) Resolve(now time.Time) time.Time {
	if !d.IsRelative() {
		return d.Time()
	}
	return now.AddDate(d.Year, d.Month, d.Day).
		Add(time.Duration(d.Hour)*time.Hour +
			time.Duration(d.Minute)*time.Minute +
			time.Duration(d.Second)*time.Second)
}

// String returns the 16-character wire form of d.
func (d *Date) String() string {
	return fmt.Sprintf("%02d%02d%02d%02d%02d%02d%d%02d%c",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second, d.Tenths, d.UTCOffset, d.Sign)
}
