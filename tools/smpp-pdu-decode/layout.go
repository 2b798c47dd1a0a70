package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smpp-go/smpp"
)

// field is one entry of a -layout list.
type field struct {
	kind string
	n    int
}

func (f field) String() string {
	if f.kind == "bytes" || f.kind == "string" {
		return fmt.Sprintf("%s:%d", f.kind, f.n)
	}
	return f.kind
}

func parseLayout(s string) ([]field, error) {
	var layout []field
	if strings.TrimSpace(s) == "" {
		return layout, nil
	}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		kind, arg, sized := strings.Cut(tok, ":")
		switch kind {
		case "cstring", "uint1", "uint2", "uint4", "address", "date":
			if sized {
				return nil, fmt.Errorf("layout field %q does not take a length", tok)
			}
			layout = append(layout, field{kind: kind})
		case "bytes", "string":
			if !sized {
				return nil, fmt.Errorf("layout field %q needs a length, e.g. %s:4", tok, kind)
			}
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("layout field %q has an invalid length", tok)
			}
			layout = append(layout, field{kind: kind, n: n})
		default:
			return nil, fmt.Errorf("unknown layout field %q", tok)
		}
	}
	return layout, nil
}

func (f field) read(pd smpp.PacketDecoder) (interface{}, error) {
	switch f.kind {
	case "cstring":
		return pd.ReadCString()
	case "uint1":
		return pd.ReadUInt1()
	case "uint2":
		return pd.ReadUInt2()
	case "uint4":
		return pd.ReadUInt4()
	case "address":
		return pd.ReadAddress()
	case "date":
		d, err := pd.ReadDate()
		if err != nil || d == nil {
			return nil, err
		}
		return d, nil
	case "bytes":
		return pd.ReadBytes(f.n)
	case "string":
		return pd.ReadString(f.n)
	}
	return nil, fmt.Errorf("unknown layout field %q", f.kind)
}

// layoutPDU decodes a header followed by the fields of a -layout list.
type layoutPDU struct {
	layout []field
	header smpp.Header
	values []interface{}
}

func (p *layoutPDU) Decode(pd smpp.PacketDecoder) error {
	if err := p.header.Decode(pd); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	p.values = make([]interface{}, 0, len(p.layout))
	for i, f := range p.layout {
		v, err := f.read(pd)
		if err != nil {
			return fmt.Errorf("field %d (%s) at offset %d: %w", i, f, pd.ParsePosition(), err)
		}
		p.values = append(p.values, v)
	}
	return nil
}
