package ieee1905tlv

import (
	"fmt"
	"net"

	"github.com/netlayer/ieee1905al/pkg/al1905errors"
	"github.com/netlayer/ieee1905al/pkg/render"
	"github.com/netlayer/ieee1905al/pkg/tlv"
	"github.com/netlayer/ieee1905al/pkg/wire"
)

// Non1905NeighborDeviceList reports neighbors seen on a local interface
// that do not speak 1905 (type 0x06). Aggregatable: a second TLV for the
// same local interface concatenates its neighbor list onto the first.
type Non1905NeighborDeviceList struct {
	LocalMAC       net.HardwareAddr
	NeighborMACs []net.HardwareAddr
}

// Type implements tlv.TLV.
func (t *Non1905NeighborDeviceList) Type() uint8 { return TypeNon1905NeighborDeviceList }

func parseNon1905NeighborDeviceList(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	local, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	out := &Non1905NeighborDeviceList{LocalMAC: local}
	for r.Remaining() > 0 {
		mac, err := r.ReadMAC()
		if err != nil {
			return nil, err
		}
		out.NeighborMACs = append(out.NeighborMACs, mac)
	}
	return out, nil
}

func lengthNon1905NeighborDeviceList(t tlv.TLV) uint16 {
	n := t.(*Non1905NeighborDeviceList)
	return uint16(wire.MACLen + wire.MACLen*len(n.NeighborMACs))
}

func forgeNon1905NeighborDeviceList(t tlv.TLV, w tlv.WriterView) error {
	n := t.(*Non1905NeighborDeviceList)
	w.WriteBytes(n.LocalMAC)
	for _, mac := range n.NeighborMACs {
		w.WriteBytes(mac)
	}
	return nil
}

func printNon1905NeighborDeviceList(t tlv.TLV, p render.Printer, prefix string) {
	n := t.(*Non1905NeighborDeviceList)
	p.Printf("%slocal-MAC=%s neighbors=%d", prefix, n.LocalMAC, len(n.NeighborMACs))
}

func compareNon1905NeighborDeviceList(a, b tlv.TLV) bool {
	na, nb := a.(*Non1905NeighborDeviceList), b.(*Non1905NeighborDeviceList)
	if !macEqual(na.LocalMAC, nb.LocalMAC) || len(na.NeighborMACs) != len(nb.NeighborMACs) {
		return false
	}
	for i := range na.NeighborMACs {
		if !macEqual(na.NeighborMACs[i], nb.NeighborMACs[i]) {
			return false
		}
	}
	return true
}

func aggregateNon1905NeighborDeviceList(existing, next tlv.TLV) (tlv.TLV, error) {
	ea, na := existing.(*Non1905NeighborDeviceList), next.(*Non1905NeighborDeviceList)
	if !macEqual(ea.LocalMAC, na.LocalMAC) {
		return nil, fmt.Errorf("%w: Non1905NeighborDeviceList local MAC mismatch across TLVs", al1905errors.ErrBadTLV)
	}
	merged := &Non1905NeighborDeviceList{LocalMAC: ea.LocalMAC}
	merged.NeighborMACs = append(merged.NeighborMACs, ea.NeighborMACs...)
	merged.NeighborMACs = append(merged.NeighborMACs, na.NeighborMACs...)
	return merged, nil
}

// NeighborEntry is one 1905-speaking neighbor of NeighborDeviceList.
type NeighborEntry struct {
	ALMAC                   net.HardwareAddr
	BridgesIEEE1905toLocal bool
}

// NeighborDeviceList reports 1905 AL neighbors seen on a local interface
// (type 0x07). Aggregatable like Non1905NeighborDeviceList.
type NeighborDeviceList struct {
	LocalMAC net.HardwareAddr
	Entries  []NeighborEntry
}

// Type implements tlv.TLV.
func (t *NeighborDeviceList) Type() uint8 { return TypeNeighborDeviceList }

func parseNeighborDeviceList(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	local, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	out := &NeighborDeviceList{LocalMAC: local}
	for r.Remaining() > 0 {
		mac, err := r.ReadMAC()
		if err != nil {
			return nil, err
		}
		flags, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		out.Entries = append(out.Entries, NeighborEntry{ALMAC: mac, BridgesIEEE1905toLocal: flags&0x80 != 0})
	}
	return out, nil
}

func lengthNeighborDeviceList(t tlv.TLV) uint16 {
	n := t.(*NeighborDeviceList)
	return uint16(wire.MACLen + (wire.MACLen+1)*len(n.Entries))
}

func forgeNeighborDeviceList(t tlv.TLV, w tlv.WriterView) error {
	n := t.(*NeighborDeviceList)
	w.WriteBytes(n.LocalMAC)
	for _, e := range n.Entries {
		w.WriteBytes(e.ALMAC)
		var flags uint8
		if e.BridgesIEEE1905toLocal {
			flags = 0x80
		}
		w.WriteU8(flags)
	}
	return nil
}

func printNeighborDeviceList(t tlv.TLV, p render.Printer, prefix string) {
	n := t.(*NeighborDeviceList)
	p.Printf("%slocal-MAC=%s neighbors=%d", prefix, n.LocalMAC, len(n.Entries))
	for _, e := range n.Entries {
		p.Printf("%s  AL-MAC=%s bridged=%t", prefix, e.ALMAC, e.BridgesIEEE1905toLocal)
	}
}

func compareNeighborDeviceList(a, b tlv.TLV) bool {
	na, nb := a.(*NeighborDeviceList), b.(*NeighborDeviceList)
	if !macEqual(na.LocalMAC, nb.LocalMAC) || len(na.Entries) != len(nb.Entries) {
		return false
	}
	for i := range na.Entries {
		if !macEqual(na.Entries[i].ALMAC, nb.Entries[i].ALMAC) || na.Entries[i].BridgesIEEE1905toLocal != nb.Entries[i].BridgesIEEE1905toLocal {
			return false
		}
	}
	return true
}

func aggregateNeighborDeviceList(existing, next tlv.TLV) (tlv.TLV, error) {
	ea, na := existing.(*NeighborDeviceList), next.(*NeighborDeviceList)
	if !macEqual(ea.LocalMAC, na.LocalMAC) {
		return nil, fmt.Errorf("%w: NeighborDeviceList local MAC mismatch across TLVs", al1905errors.ErrBadTLV)
	}
	merged := &NeighborDeviceList{LocalMAC: ea.LocalMAC}
	merged.Entries = append(merged.Entries, ea.Entries...)
	merged.Entries = append(merged.Entries, na.Entries...)
	return merged, nil
}
