package smpp

import "fmt"

// Decode runs in over buf, which must hold exactly one PDU. Passing a nil buffer is a
// no-op. A nil conf uses NewConfig's defaults.
func Decode(buf []byte, in Decodable, conf *Config) error {
	if buf == nil {
		return nil
	}
	if conf == nil {
		conf = NewConfig()
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	err := decode(buf, in, conf)
	newDecodeMetrics(conf.MetricRegistry).record(len(buf), err)
	return err
}

func decode(buf []byte, in Decodable, conf *Config) error {
	if len(buf) > conf.MaxPDUSize {
		return PacketDecodingError{fmt.Sprintf("PDU of %d bytes exceeds MaxPDUSize %d", len(buf), conf.MaxPDUSize)}
	}

	helper := NewDecoder(buf)
	if err := in.Decode(helper); err != nil {
		return err
	}

	if helper.off != len(buf) {
		if !conf.AllowTrailingBytes {
			return PacketDecodingError{fmt.Sprintf("invalid length, %d bytes left after %T", helper.Remaining(), in)}
		}
		DebugLogger.Printf("ignoring %d trailing bytes after %T\n", helper.Remaining(), in)
	}

	return nil
}

// DecodeHeader decodes the header at the start of buf and checks that its
// command_length matches len(buf). The rest of the PDU is not read.
func DecodeHeader(buf []byte, conf *Config) (*Header, error) {
	if conf == nil {
		conf = NewConfig()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if len(buf) > conf.MaxPDUSize {
		return nil, PacketDecodingError{fmt.Sprintf("PDU of %d bytes exceeds MaxPDUSize %d", len(buf), conf.MaxPDUSize)}
	}

	pd := NewDecoder(buf)
	length := &lengthField{}
	length.saveOffset(pd.ParsePosition())

	h := new(Header)
	if err := h.Decode(pd); err != nil {
		return nil, err
	}
	length.length = h.CommandLength
	if err := length.check(len(buf)); err != nil {
		return nil, err
	}

	getOrRegisterCommandMeter(metricDecodeRate, h.CommandID, conf.MetricRegistry).Mark(1)
	return h, nil
}
