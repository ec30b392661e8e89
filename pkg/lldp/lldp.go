// Package lldp implements the IEEE 802.1AB LLDP payload codec used as a
// 1905 neighbor-discovery sidecar: a fixed-capacity ordered TLV list
// with exactly one each of Chassis ID, Port ID, and Time To Live,
// terminated by End-Of-LLDPDU.
//
// LLDP packs its TLV header as 7-bit type + 9-bit length into the first
// two bytes (big-endian), distinct from the 1905 8-bit-type/16-bit-
// length layout pkg/tlv.ParseList/ForgeList assume — so this package
// owns its own header codec while reusing pkg/tlv's TLV/Definition/Table
// abstractions for per-type dispatch.
package lldp

import (
	"fmt"

	"github.com/netlayer/ieee1905al/pkg/al1905errors"
	"github.com/netlayer/ieee1905al/pkg/render"
	"github.com/netlayer/ieee1905al/pkg/tlv"
	"github.com/netlayer/ieee1905al/pkg/wire"
)

// TLV type bytes, IEEE 802.1AB.
const (
	TypeEndOfLLDPDU         = 0x00
	TypeChassisID           = 0x01
	TypePortID              = 0x02
	TypeTTL                 = 0x03
	TypePortDescription     = 0x04
	TypeSystemName          = 0x05
	TypeSystemDescription   = 0x06
	TypeSystemCapabilities  = 0x07
	TypeManagementAddress   = 0x08
)

// DefaultMaxTLVs is the spec §6.3 max_lldp_tlvs default.
const DefaultMaxTLVs = 16

// ChassisID (type 1): a subtype byte plus a subtype-specific value.
type ChassisID struct {
	Subtype uint8
	Value   []byte
}

func (t *ChassisID) Type() uint8 { return TypeChassisID }

// PortID (type 2): a subtype byte plus a subtype-specific value.
type PortID struct {
	Subtype uint8
	Value   []byte
}

func (t *PortID) Type() uint8 { return TypePortID }

// TTL (type 3): seconds until the neighbor entry this LLDPDU describes
// should be aged out.
type TTL struct {
	Seconds uint16
}

func (t *TTL) Type() uint8 { return TypeTTL }

// PortDescription (type 4): a free-form string.
type PortDescription struct{ Text string }

func (t *PortDescription) Type() uint8 { return TypePortDescription }

// SystemName (type 5): a free-form string.
type SystemName struct{ Text string }

func (t *SystemName) Type() uint8 { return TypeSystemName }

// SystemDescription (type 6): a free-form string.
type SystemDescription struct{ Text string }

func (t *SystemDescription) Type() uint8 { return TypeSystemDescription }

// SystemCapabilities (type 7): the capability bitmap and the subset
// enabled.
type SystemCapabilities struct {
	Capabilities uint16
	Enabled      uint16
}

func (t *SystemCapabilities) Type() uint8 { return TypeSystemCapabilities }

// ManagementAddress (type 8): one manageable address plus the interface
// it is reached through.
type ManagementAddress struct {
	AddressSubtype  uint8
	Address         []byte
	InterfaceSubtype uint8
	InterfaceNumber  uint32
	OID              []byte
}

func (t *ManagementAddress) Type() uint8 { return TypeManagementAddress }

// DefaultTable returns the pkg/tlv.Table carrying every LLDP TLV
// definition this codec implements. Type 0 (End-Of-LLDPDU) is absent,
// mirroring pkg/ieee1905tlv's treatment of the 1905 terminator.
func DefaultTable() tlv.Table {
	var t tlv.Table

	t[TypeChassisID] = tlv.Definition{
		Name: "Chassis ID",
		Parse: func(v []byte) (tlv.TLV, error) {
			if len(v) < 1 {
				return nil, al1905errors.ErrTruncated
			}
			val := make([]byte, len(v)-1)
			copy(val, v[1:])
			return &ChassisID{Subtype: v[0], Value: val}, nil
		},
		Length: func(t tlv.TLV) uint16 { return uint16(1 + len(t.(*ChassisID).Value)) },
		Forge: func(t tlv.TLV, w tlv.WriterView) error {
			c := t.(*ChassisID)
			w.WriteU8(c.Subtype)
			w.WriteBytes(c.Value)
			return nil
		},
		Print: func(t tlv.TLV, p render.Printer, prefix string) {
			c := t.(*ChassisID)
			p.Printf("%ssubtype=%d value=%s", prefix, c.Subtype, render.HexDump(c.Value, 16, 64))
		},
		Compare: func(a, b tlv.TLV) bool {
			ca, cb := a.(*ChassisID), b.(*ChassisID)
			return ca.Subtype == cb.Subtype && bytesEqual(ca.Value, cb.Value)
		},
	}

	t[TypePortID] = tlv.Definition{
		Name: "Port ID",
		Parse: func(v []byte) (tlv.TLV, error) {
			if len(v) < 1 {
				return nil, al1905errors.ErrTruncated
			}
			val := make([]byte, len(v)-1)
			copy(val, v[1:])
			return &PortID{Subtype: v[0], Value: val}, nil
		},
		Length: func(t tlv.TLV) uint16 { return uint16(1 + len(t.(*PortID).Value)) },
		Forge: func(t tlv.TLV, w tlv.WriterView) error {
			p := t.(*PortID)
			w.WriteU8(p.Subtype)
			w.WriteBytes(p.Value)
			return nil
		},
		Print: func(t tlv.TLV, p render.Printer, prefix string) {
			pid := t.(*PortID)
			p.Printf("%ssubtype=%d value=%s", prefix, pid.Subtype, render.HexDump(pid.Value, 16, 64))
		},
		Compare: func(a, b tlv.TLV) bool {
			pa, pb := a.(*PortID), b.(*PortID)
			return pa.Subtype == pb.Subtype && bytesEqual(pa.Value, pb.Value)
		},
	}

	t[TypeTTL] = tlv.Definition{
		Name: "TTL",
		Parse: func(v []byte) (tlv.TLV, error) {
			r := wire.NewReader(v)
			sec, err := r.ReadU16()
			if err != nil {
				return nil, err
			}
			return &TTL{Seconds: sec}, nil
		},
		Length: func(t tlv.TLV) uint16 { return 2 },
		Forge: func(t tlv.TLV, w tlv.WriterView) error {
			w.WriteU16(t.(*TTL).Seconds)
			return nil
		},
		Print: func(t tlv.TLV, p render.Printer, prefix string) {
			p.Printf("%sseconds=%d", prefix, t.(*TTL).Seconds)
		},
		Compare: func(a, b tlv.TLV) bool { return a.(*TTL).Seconds == b.(*TTL).Seconds },
	}

	t[TypePortDescription] = stringDefinition("Port description", func() tlv.TLV { return &PortDescription{} },
		func(t tlv.TLV) string { return t.(*PortDescription).Text },
		func(t tlv.TLV, s string) { t.(*PortDescription).Text = s })

	t[TypeSystemName] = stringDefinition("System name", func() tlv.TLV { return &SystemName{} },
		func(t tlv.TLV) string { return t.(*SystemName).Text },
		func(t tlv.TLV, s string) { t.(*SystemName).Text = s })

	t[TypeSystemDescription] = stringDefinition("System description", func() tlv.TLV { return &SystemDescription{} },
		func(t tlv.TLV) string { return t.(*SystemDescription).Text },
		func(t tlv.TLV, s string) { t.(*SystemDescription).Text = s })

	t[TypeSystemCapabilities] = tlv.Definition{
		Name: "System capabilities",
		Parse: func(v []byte) (tlv.TLV, error) {
			r := wire.NewReader(v)
			caps, err := r.ReadU16()
			if err != nil {
				return nil, err
			}
			enabled, err := r.ReadU16()
			if err != nil {
				return nil, err
			}
			return &SystemCapabilities{Capabilities: caps, Enabled: enabled}, nil
		},
		Length: func(t tlv.TLV) uint16 { return 4 },
		Forge: func(t tlv.TLV, w tlv.WriterView) error {
			c := t.(*SystemCapabilities)
			w.WriteU16(c.Capabilities)
			w.WriteU16(c.Enabled)
			return nil
		},
		Print: func(t tlv.TLV, p render.Printer, prefix string) {
			c := t.(*SystemCapabilities)
			p.Printf("%scapabilities=0x%04x enabled=0x%04x", prefix, c.Capabilities, c.Enabled)
		},
		Compare: func(a, b tlv.TLV) bool {
			ca, cb := a.(*SystemCapabilities), b.(*SystemCapabilities)
			return ca.Capabilities == cb.Capabilities && ca.Enabled == cb.Enabled
		},
	}

	t[TypeManagementAddress] = tlv.Definition{
		Name: "Management address",
		Parse: func(v []byte) (tlv.TLV, error) {
			r := wire.NewReader(v)
			addrLen, err := r.ReadU8()
			if err != nil {
				return nil, err
			}
			if addrLen < 1 {
				return nil, fmt.Errorf("%w: management address length must include subtype byte", al1905errors.ErrBadTLV)
			}
			subtype, err := r.ReadU8()
			if err != nil {
				return nil, err
			}
			addr, err := r.ReadBytes(int(addrLen) - 1)
			if err != nil {
				return nil, err
			}
			ifSubtype, err := r.ReadU8()
			if err != nil {
				return nil, err
			}
			ifNum, err := r.ReadU32()
			if err != nil {
				return nil, err
			}
			oidLen, err := r.ReadU8()
			if err != nil {
				return nil, err
			}
			oid, err := r.ReadBytes(int(oidLen))
			if err != nil {
				return nil, err
			}
			return &ManagementAddress{
				AddressSubtype: subtype, Address: addr,
				InterfaceSubtype: ifSubtype, InterfaceNumber: ifNum, OID: oid,
			}, nil
		},
		Length: func(t tlv.TLV) uint16 {
			m := t.(*ManagementAddress)
			return uint16(1 + 1 + len(m.Address) + 1 + 4 + 1 + len(m.OID))
		},
		Forge: func(t tlv.TLV, w tlv.WriterView) error {
			m := t.(*ManagementAddress)
			w.WriteU8(uint8(1 + len(m.Address)))
			w.WriteU8(m.AddressSubtype)
			w.WriteBytes(m.Address)
			w.WriteU8(m.InterfaceSubtype)
			w.WriteU32(m.InterfaceNumber)
			w.WriteU8(uint8(len(m.OID)))
			w.WriteBytes(m.OID)
			return nil
		},
		Print: func(t tlv.TLV, p render.Printer, prefix string) {
			m := t.(*ManagementAddress)
			p.Printf("%ssubtype=%d address=%s if=%d", prefix, m.AddressSubtype, render.HexDump(m.Address, 16, 32), m.InterfaceNumber)
		},
		Compare: func(a, b tlv.TLV) bool {
			ma, mb := a.(*ManagementAddress), b.(*ManagementAddress)
			return ma.AddressSubtype == mb.AddressSubtype && bytesEqual(ma.Address, mb.Address) &&
				ma.InterfaceSubtype == mb.InterfaceSubtype && ma.InterfaceNumber == mb.InterfaceNumber && bytesEqual(ma.OID, mb.OID)
		},
	}

	return t
}

func stringDefinition(name string, zero func() tlv.TLV, get func(tlv.TLV) string, set func(tlv.TLV, string)) tlv.Definition {
	return tlv.Definition{
		Name: name,
		Parse: func(v []byte) (tlv.TLV, error) {
			t := zero()
			set(t, string(v))
			return t, nil
		},
		Length: func(t tlv.TLV) uint16 { return uint16(len(get(t))) },
		Forge: func(t tlv.TLV, w tlv.WriterView) error {
			w.WriteBytes([]byte(get(t)))
			return nil
		},
		Print: func(t tlv.TLV, p render.Printer, prefix string) {
			p.Printf("%s%q", prefix, get(t))
		},
		Compare: func(a, b tlv.TLV) bool { return get(a) == get(b) },
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
