package ieee1905tlv

import (
	"net"

	"github.com/netlayer/ieee1905al/pkg/render"
	"github.com/netlayer/ieee1905al/pkg/tlv"
	"github.com/netlayer/ieee1905al/pkg/wire"
)

// LinkMetricQuery asks a neighbor to report link metrics, either for all
// neighbors or one specific neighbor (type 0x08).
type LinkMetricQuery struct {
	ALMAC    net.HardwareAddr
	Reserved uint8
	Scope    uint8
}

// Type implements tlv.TLV.
func (t *LinkMetricQuery) Type() uint8 { return TypeLinkMetricQuery }

func parseLinkMetricQuery(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	mac, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	reserved, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	scope, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &LinkMetricQuery{ALMAC: mac, Reserved: reserved, Scope: scope}, nil
}

func lengthLinkMetricQuery(t tlv.TLV) uint16 { return wire.MACLen + 2 }

func forgeLinkMetricQuery(t tlv.TLV, w tlv.WriterView) error {
	q := t.(*LinkMetricQuery)
	w.WriteBytes(q.ALMAC)
	w.WriteU8(q.Reserved)
	w.WriteU8(q.Scope)
	return nil
}

func printLinkMetricQuery(t tlv.TLV, p render.Printer, prefix string) {
	q := t.(*LinkMetricQuery)
	p.Printf("%sAL-MAC=%s scope=0x%02x", prefix, q.ALMAC, q.Scope)
}

func compareLinkMetricQuery(a, b tlv.TLV) bool {
	qa, qb := a.(*LinkMetricQuery), b.(*LinkMetricQuery)
	return macEqual(qa.ALMAC, qb.ALMAC) && qa.Scope == qb.Scope
}

// TransmitterLinkMetricEntry is one interface-pair record of a
// TransmitterLinkMetric TLV.
type TransmitterLinkMetricEntry struct {
	LocalIfMAC            net.HardwareAddr
	NeighborIfMAC         net.HardwareAddr
	IfType                uint16
	IEEE8021Bridge        bool
	PacketErrors          uint32
	TransmittedPackets    uint32
	MACThroughputCapacity uint16
	LinkAvailability      uint16
	PHYRate               uint16
}

// TransmitterLinkMetric reports outbound link quality to a neighbor
// (type 0x09).
type TransmitterLinkMetric struct {
	LocalALMAC    net.HardwareAddr
	NeighborALMAC net.HardwareAddr
	Entries       []TransmitterLinkMetricEntry
}

// Type implements tlv.TLV.
func (t *TransmitterLinkMetric) Type() uint8 { return TypeTransmitterLinkMetric }

func parseTransmitterLinkMetric(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	local, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	neighbor, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	out := &TransmitterLinkMetric{LocalALMAC: local, NeighborALMAC: neighbor}
	for r.Remaining() > 0 {
		e, err := parseTransmitterEntry(r)
		if err != nil {
			return nil, err
		}
		out.Entries = append(out.Entries, e)
	}
	return out, nil
}

func parseTransmitterEntry(r *wire.Reader) (TransmitterLinkMetricEntry, error) {
	var e TransmitterLinkMetricEntry
	var err error
	if e.LocalIfMAC, err = r.ReadMAC(); err != nil {
		return e, err
	}
	if e.NeighborIfMAC, err = r.ReadMAC(); err != nil {
		return e, err
	}
	if e.IfType, err = r.ReadU16(); err != nil {
		return e, err
	}
	bridge, err := r.ReadU8()
	if err != nil {
		return e, err
	}
	e.IEEE8021Bridge = bridge != 0
	if e.PacketErrors, err = r.ReadU32(); err != nil {
		return e, err
	}
	if e.TransmittedPackets, err = r.ReadU32(); err != nil {
		return e, err
	}
	if e.MACThroughputCapacity, err = r.ReadU16(); err != nil {
		return e, err
	}
	if e.LinkAvailability, err = r.ReadU16(); err != nil {
		return e, err
	}
	if e.PHYRate, err = r.ReadU16(); err != nil {
		return e, err
	}
	return e, nil
}

const transmitterEntryLen = wire.MACLen*2 + 2 + 1 + 4 + 4 + 2 + 2 + 2

func lengthTransmitterLinkMetric(t tlv.TLV) uint16 {
	m := t.(*TransmitterLinkMetric)
	return uint16(wire.MACLen*2 + transmitterEntryLen*len(m.Entries))
}

func forgeTransmitterLinkMetric(t tlv.TLV, w tlv.WriterView) error {
	m := t.(*TransmitterLinkMetric)
	w.WriteBytes(m.LocalALMAC)
	w.WriteBytes(m.NeighborALMAC)
	for _, e := range m.Entries {
		w.WriteBytes(e.LocalIfMAC)
		w.WriteBytes(e.NeighborIfMAC)
		w.WriteU16(e.IfType)
		if e.IEEE8021Bridge {
			w.WriteU8(1)
		} else {
			w.WriteU8(0)
		}
		w.WriteU32(e.PacketErrors)
		w.WriteU32(e.TransmittedPackets)
		w.WriteU16(e.MACThroughputCapacity)
		w.WriteU16(e.LinkAvailability)
		w.WriteU16(e.PHYRate)
	}
	return nil
}

func printTransmitterLinkMetric(t tlv.TLV, p render.Printer, prefix string) {
	m := t.(*TransmitterLinkMetric)
	p.Printf("%slocal-AL=%s neighbor-AL=%s entries=%d", prefix, m.LocalALMAC, m.NeighborALMAC, len(m.Entries))
}

func compareTransmitterLinkMetric(a, b tlv.TLV) bool {
	ma, mb := a.(*TransmitterLinkMetric), b.(*TransmitterLinkMetric)
	if !macEqual(ma.LocalALMAC, mb.LocalALMAC) || !macEqual(ma.NeighborALMAC, mb.NeighborALMAC) || len(ma.Entries) != len(mb.Entries) {
		return false
	}
	for i := range ma.Entries {
		ea, eb := ma.Entries[i], mb.Entries[i]
		if !macEqual(ea.LocalIfMAC, eb.LocalIfMAC) || !macEqual(ea.NeighborIfMAC, eb.NeighborIfMAC) ||
			ea.IfType != eb.IfType || ea.IEEE8021Bridge != eb.IEEE8021Bridge ||
			ea.PacketErrors != eb.PacketErrors || ea.TransmittedPackets != eb.TransmittedPackets ||
			ea.MACThroughputCapacity != eb.MACThroughputCapacity || ea.LinkAvailability != eb.LinkAvailability ||
			ea.PHYRate != eb.PHYRate {
			return false
		}
	}
	return true
}

// ReceiverLinkMetricEntry is one interface-pair record of a
// ReceiverLinkMetric TLV.
type ReceiverLinkMetricEntry struct {
	LocalIfMAC      net.HardwareAddr
	NeighborIfMAC   net.HardwareAddr
	IfType          uint16
	IEEE8021Bridge  bool
	PacketErrors    uint32
	PacketsReceived uint32
	RSSI            uint8
}

// ReceiverLinkMetric reports inbound link quality from a neighbor
// (type 0x0A).
type ReceiverLinkMetric struct {
	LocalALMAC    net.HardwareAddr
	NeighborALMAC net.HardwareAddr
	Entries       []ReceiverLinkMetricEntry
}

// Type implements tlv.TLV.
func (t *ReceiverLinkMetric) Type() uint8 { return TypeReceiverLinkMetric }

const receiverEntryLen = wire.MACLen*2 + 2 + 1 + 4 + 4 + 1

func parseReceiverLinkMetric(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	local, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	neighbor, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	out := &ReceiverLinkMetric{LocalALMAC: local, NeighborALMAC: neighbor}
	for r.Remaining() > 0 {
		var e ReceiverLinkMetricEntry
		if e.LocalIfMAC, err = r.ReadMAC(); err != nil {
			return nil, err
		}
		if e.NeighborIfMAC, err = r.ReadMAC(); err != nil {
			return nil, err
		}
		if e.IfType, err = r.ReadU16(); err != nil {
			return nil, err
		}
		bridge, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		e.IEEE8021Bridge = bridge != 0
		if e.PacketErrors, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if e.PacketsReceived, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if e.RSSI, err = r.ReadU8(); err != nil {
			return nil, err
		}
		out.Entries = append(out.Entries, e)
	}
	return out, nil
}

func lengthReceiverLinkMetric(t tlv.TLV) uint16 {
	m := t.(*ReceiverLinkMetric)
	return uint16(wire.MACLen*2 + receiverEntryLen*len(m.Entries))
}

func forgeReceiverLinkMetric(t tlv.TLV, w tlv.WriterView) error {
	m := t.(*ReceiverLinkMetric)
	w.WriteBytes(m.LocalALMAC)
	w.WriteBytes(m.NeighborALMAC)
	for _, e := range m.Entries {
		w.WriteBytes(e.LocalIfMAC)
		w.WriteBytes(e.NeighborIfMAC)
		w.WriteU16(e.IfType)
		if e.IEEE8021Bridge {
			w.WriteU8(1)
		} else {
			w.WriteU8(0)
		}
		w.WriteU32(e.PacketErrors)
		w.WriteU32(e.PacketsReceived)
		w.WriteU8(e.RSSI)
	}
	return nil
}

func printReceiverLinkMetric(t tlv.TLV, p render.Printer, prefix string) {
	m := t.(*ReceiverLinkMetric)
	p.Printf("%slocal-AL=%s neighbor-AL=%s entries=%d", prefix, m.LocalALMAC, m.NeighborALMAC, len(m.Entries))
}

func compareReceiverLinkMetric(a, b tlv.TLV) bool {
	ma, mb := a.(*ReceiverLinkMetric), b.(*ReceiverLinkMetric)
	if !macEqual(ma.LocalALMAC, mb.LocalALMAC) || !macEqual(ma.NeighborALMAC, mb.NeighborALMAC) || len(ma.Entries) != len(mb.Entries) {
		return false
	}
	for i := range ma.Entries {
		ea, eb := ma.Entries[i], mb.Entries[i]
		if !macEqual(ea.LocalIfMAC, eb.LocalIfMAC) || !macEqual(ea.NeighborIfMAC, eb.NeighborIfMAC) ||
			ea.IfType != eb.IfType || ea.IEEE8021Bridge != eb.IEEE8021Bridge ||
			ea.PacketErrors != eb.PacketErrors || ea.PacketsReceived != eb.PacketsReceived ||
			ea.RSSI != eb.RSSI {
			return false
		}
	}
	return true
}
