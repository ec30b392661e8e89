package lldp

import (
	"fmt"

	"github.com/netlayer/ieee1905al/pkg/al1905errors"
	"github.com/netlayer/ieee1905al/pkg/tlv"
)

// Payload is a decoded LLDP frame body: the three mandatory TLVs plus
// whatever optional ones were present, in wire order.
type Payload struct {
	ChassisID ChassisID
	PortID    PortID
	TTL       TTL
	Optional  []tlv.TLV
}

// ParseLLDPPayload iterates buf's packed 7-bit-type/9-bit-length TLVs,
// terminating on End-Of-LLDPDU, enforcing exactly one each of Chassis
// ID, Port ID, and TTL, and rejecting more LLDP TLVs than maxTLVs.
func ParseLLDPPayload(defs tlv.Table, buf []byte, maxTLVs int) (Payload, error) {
	var errs al1905errors.List
	var chassis *ChassisID
	var port *PortID
	var ttl *TTL
	var optional []tlv.TLV

	off := 0
	seenTerminator := false
	count := 0

	for off < len(buf) {
		if off+2 > len(buf) {
			errs.Add(fmt.Errorf("%w: LLDP TLV header at offset %d", al1905errors.ErrTruncated, off))
			break
		}
		b0, b1 := buf[off], buf[off+1]
		typ := b0 >> 1
		length := (int(b0&0x01) << 8) | int(b1)
		valueStart := off + 2

		if typ == TypeEndOfLLDPDU {
			seenTerminator = true
			break
		}

		count++
		if count > maxTLVs {
			errs.Add(fmt.Errorf("%w: LLDP payload exceeds %d TLVs", al1905errors.ErrBadTLV, maxTLVs))
			break
		}

		if valueStart+length > len(buf) {
			errs.Add(fmt.Errorf("%w: LLDP TLV type %d declares length %d beyond buffer", al1905errors.ErrTruncated, typ, length))
			break
		}
		value := buf[valueStart : valueStart+length]

		def := defs[typ]
		var t tlv.TLV
		var err error
		if def.Parse != nil {
			t, err = def.Parse(value)
		} else {
			raw := make([]byte, len(value))
			copy(raw, value)
			t = &tlv.Unknown{TLVType: typ, Value: raw}
		}
		if err != nil {
			errs.Add(fmt.Errorf("%w: LLDP type %d: %v", al1905errors.ErrBadTLV, typ, err))
			off = valueStart + length
			continue
		}

		switch v := t.(type) {
		case *ChassisID:
			if chassis != nil {
				errs.Add(fmt.Errorf("%w: duplicate Chassis ID", al1905errors.ErrMissingMandatory))
			}
			chassis = v
		case *PortID:
			if port != nil {
				errs.Add(fmt.Errorf("%w: duplicate Port ID", al1905errors.ErrMissingMandatory))
			}
			port = v
		case *TTL:
			if ttl != nil {
				errs.Add(fmt.Errorf("%w: duplicate TTL", al1905errors.ErrMissingMandatory))
			}
			ttl = v
		default:
			optional = append(optional, t)
		}

		off = valueStart + length
	}

	if !seenTerminator {
		errs.Add(fmt.Errorf("%w: LLDP payload missing End-Of-LLDPDU", al1905errors.ErrTruncated))
	}
	if chassis == nil {
		errs.Add(fmt.Errorf("%w: missing Chassis ID", al1905errors.ErrMissingMandatory))
	}
	if port == nil {
		errs.Add(fmt.Errorf("%w: missing Port ID", al1905errors.ErrMissingMandatory))
	}
	if ttl == nil {
		errs.Add(fmt.Errorf("%w: missing TTL", al1905errors.ErrMissingMandatory))
	}

	if errs.HasErrors() {
		return Payload{}, &errs
	}

	return Payload{ChassisID: *chassis, PortID: *port, TTL: *ttl, Optional: optional}, nil
}

// ForgeLLDPPayload writes the three mandatory TLVs in a fixed order
// (Chassis ID, Port ID, TTL), then any optional TLVs in the order
// given, then End-Of-LLDPDU.
func ForgeLLDPPayload(defs tlv.Table, p Payload) ([]byte, error) {
	var buf []byte

	writeOne := func(t tlv.TLV) error {
		w := &captureWriter{}
		if u, ok := t.(*tlv.Unknown); ok {
			w.WriteBytes(u.Value)
		} else {
			def := defs[t.Type()]
			if def.Forge == nil {
				return al1905errors.Bug(fmt.Errorf("%w: LLDP type %d has no Forge", al1905errors.ErrBug, t.Type()))
			}
			if err := def.Forge(t, w); err != nil {
				return fmt.Errorf("%w: LLDP type %d: %v", al1905errors.ErrBadTLV, t.Type(), err)
			}
		}
		if len(w.buf) > 0x1FF {
			return fmt.Errorf("%w: LLDP TLV type %d value exceeds 511 bytes (9-bit length)", al1905errors.ErrOverflow, t.Type())
		}
		b0 := (t.Type() << 1) | byte((len(w.buf)>>8)&0x01)
		b1 := byte(len(w.buf))
		buf = append(buf, b0, b1)
		buf = append(buf, w.buf...)
		return nil
	}

	chassis := p.ChassisID
	port := p.PortID
	ttl := p.TTL
	if err := writeOne(&chassis); err != nil {
		return nil, err
	}
	if err := writeOne(&port); err != nil {
		return nil, err
	}
	if err := writeOne(&ttl); err != nil {
		return nil, err
	}
	for _, t := range p.Optional {
		if err := writeOne(t); err != nil {
			return nil, err
		}
	}

	buf = append(buf, TypeEndOfLLDPDU<<1, 0x00)
	return buf, nil
}

type captureWriter struct{ buf []byte }

func (w *captureWriter) WriteU8(v uint8)   { w.buf = append(w.buf, v) }
func (w *captureWriter) WriteU16(v uint16) { w.buf = append(w.buf, byte(v>>8), byte(v)) }
func (w *captureWriter) WriteU32(v uint32) {
	w.buf = append(w.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
func (w *captureWriter) WriteBytes(b []byte) { w.buf = append(w.buf, b...) }
