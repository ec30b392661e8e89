package ieee1905tlv

import (
	"fmt"
	"net"

	"github.com/netlayer/ieee1905al/pkg/al1905errors"
	"github.com/netlayer/ieee1905al/pkg/render"
	"github.com/netlayer/ieee1905al/pkg/tlv"
	"github.com/netlayer/ieee1905al/pkg/wire"
)

// ALMACAddress carries the sending AL node's own MAC address (type 0x01).
type ALMACAddress struct {
	MAC net.HardwareAddr
}

// Type implements tlv.TLV.
func (t *ALMACAddress) Type() uint8 { return TypeALMACAddress }

func parseALMACAddress(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	mac, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	return &ALMACAddress{MAC: mac}, nil
}

func lengthALMACAddress(t tlv.TLV) uint16 { return wire.MACLen }

func forgeALMACAddress(t tlv.TLV, w tlv.WriterView) error {
	w.WriteBytes(t.(*ALMACAddress).MAC)
	return nil
}

func printALMACAddress(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%sAL-MAC=%s", prefix, t.(*ALMACAddress).MAC)
}

func compareALMACAddress(a, b tlv.TLV) bool {
	return macEqual(a.(*ALMACAddress).MAC, b.(*ALMACAddress).MAC)
}

// MACAddress carries a single interface MAC address (type 0x02), used by
// topology discovery to name the interface the frame was emitted on.
type MACAddress struct {
	MAC net.HardwareAddr
}

// Type implements tlv.TLV.
func (t *MACAddress) Type() uint8 { return TypeMACAddress }

func parseMACAddress(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	mac, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	return &MACAddress{MAC: mac}, nil
}

func lengthMACAddress(t tlv.TLV) uint16 { return wire.MACLen }

func forgeMACAddress(t tlv.TLV, w tlv.WriterView) error {
	w.WriteBytes(t.(*MACAddress).MAC)
	return nil
}

func printMACAddress(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%sinterface-MAC=%s", prefix, t.(*MACAddress).MAC)
}

func compareMACAddress(a, b tlv.TLV) bool {
	return macEqual(a.(*MACAddress).MAC, b.(*MACAddress).MAC)
}

// LocalInterface is one entry of DeviceInformation's interface list.
type LocalInterface struct {
	MAC              net.HardwareAddr
	MediaType        uint16
	MediaSpecificInfo []byte
}

// DeviceInformation describes the AL node and its local interfaces
// (type 0x03).
type DeviceInformation struct {
	ALMAC      net.HardwareAddr
	Interfaces []LocalInterface
}

// Type implements tlv.TLV.
func (t *DeviceInformation) Type() uint8 { return TypeDeviceInformation }

func parseDeviceInformation(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	almac, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	count, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	out := &DeviceInformation{ALMAC: almac}
	for i := 0; i < int(count); i++ {
		mac, err := r.ReadMAC()
		if err != nil {
			return nil, err
		}
		media, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		infoLen, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		info, err := r.ReadBytes(int(infoLen))
		if err != nil {
			return nil, err
		}
		out.Interfaces = append(out.Interfaces, LocalInterface{MAC: mac, MediaType: media, MediaSpecificInfo: info})
	}
	return out, nil
}

func lengthDeviceInformation(t tlv.TLV) uint16 {
	d := t.(*DeviceInformation)
	n := wire.MACLen + 1
	for _, iface := range d.Interfaces {
		n += wire.MACLen + 2 + 1 + len(iface.MediaSpecificInfo)
	}
	return uint16(n)
}

func forgeDeviceInformation(t tlv.TLV, w tlv.WriterView) error {
	d := t.(*DeviceInformation)
	if len(d.Interfaces) > 0xFF {
		return fmt.Errorf("%w: DeviceInformation carries %d interfaces, max 255", al1905errors.ErrBadTLV, len(d.Interfaces))
	}
	w.WriteBytes(d.ALMAC)
	w.WriteU8(uint8(len(d.Interfaces)))
	for _, iface := range d.Interfaces {
		w.WriteBytes(iface.MAC)
		w.WriteU16(iface.MediaType)
		w.WriteU8(uint8(len(iface.MediaSpecificInfo)))
		w.WriteBytes(iface.MediaSpecificInfo)
	}
	return nil
}

func printDeviceInformation(t tlv.TLV, p render.Printer, prefix string) {
	d := t.(*DeviceInformation)
	p.Printf("%sAL-MAC=%s interfaces=%d", prefix, d.ALMAC, len(d.Interfaces))
	for _, iface := range d.Interfaces {
		p.Printf("%s  if-MAC=%s media=0x%04x", prefix, iface.MAC, iface.MediaType)
	}
}

func compareDeviceInformation(a, b tlv.TLV) bool {
	da, db := a.(*DeviceInformation), b.(*DeviceInformation)
	if !macEqual(da.ALMAC, db.ALMAC) || len(da.Interfaces) != len(db.Interfaces) {
		return false
	}
	for i := range da.Interfaces {
		ia, ib := da.Interfaces[i], db.Interfaces[i]
		if !macEqual(ia.MAC, ib.MAC) || ia.MediaType != ib.MediaType || !bytesEqual(ia.MediaSpecificInfo, ib.MediaSpecificInfo) {
			return false
		}
	}
	return true
}

// BridgingTuple is one bridged group of interfaces sharing a MAC
// forwarding domain.
type BridgingTuple struct {
	InterfaceMACs []net.HardwareAddr
}

// DeviceBridgingCapability lists the AL node's bridged-interface tuples
// (type 0x04).
type DeviceBridgingCapability struct {
	Tuples []BridgingTuple
}

// Type implements tlv.TLV.
func (t *DeviceBridgingCapability) Type() uint8 { return TypeDeviceBridgingCapability }

func parseDeviceBridgingCapability(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	numTuples, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	out := &DeviceBridgingCapability{}
	for i := 0; i < int(numTuples); i++ {
		numIfaces, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		var tup BridgingTuple
		for j := 0; j < int(numIfaces); j++ {
			mac, err := r.ReadMAC()
			if err != nil {
				return nil, err
			}
			tup.InterfaceMACs = append(tup.InterfaceMACs, mac)
		}
		out.Tuples = append(out.Tuples, tup)
	}
	return out, nil
}

func lengthDeviceBridgingCapability(t tlv.TLV) uint16 {
	d := t.(*DeviceBridgingCapability)
	n := 1
	for _, tup := range d.Tuples {
		n += 1 + wire.MACLen*len(tup.InterfaceMACs)
	}
	return uint16(n)
}

func forgeDeviceBridgingCapability(t tlv.TLV, w tlv.WriterView) error {
	d := t.(*DeviceBridgingCapability)
	if len(d.Tuples) > 0xFF {
		return fmt.Errorf("%w: DeviceBridgingCapability carries %d tuples, max 255", al1905errors.ErrBadTLV, len(d.Tuples))
	}
	w.WriteU8(uint8(len(d.Tuples)))
	for _, tup := range d.Tuples {
		if len(tup.InterfaceMACs) > 0xFF {
			return fmt.Errorf("%w: bridging tuple carries %d interfaces, max 255", al1905errors.ErrBadTLV, len(tup.InterfaceMACs))
		}
		w.WriteU8(uint8(len(tup.InterfaceMACs)))
		for _, mac := range tup.InterfaceMACs {
			w.WriteBytes(mac)
		}
	}
	return nil
}

func printDeviceBridgingCapability(t tlv.TLV, p render.Printer, prefix string) {
	d := t.(*DeviceBridgingCapability)
	p.Printf("%stuples=%d", prefix, len(d.Tuples))
	for i, tup := range d.Tuples {
		p.Printf("%s  tuple[%d] interfaces=%d", prefix, i, len(tup.InterfaceMACs))
	}
}

func compareDeviceBridgingCapability(a, b tlv.TLV) bool {
	da, db := a.(*DeviceBridgingCapability), b.(*DeviceBridgingCapability)
	if len(da.Tuples) != len(db.Tuples) {
		return false
	}
	for i := range da.Tuples {
		ta, tb := da.Tuples[i], db.Tuples[i]
		if len(ta.InterfaceMACs) != len(tb.InterfaceMACs) {
			return false
		}
		for j := range ta.InterfaceMACs {
			if !macEqual(ta.InterfaceMACs[j], tb.InterfaceMACs[j]) {
				return false
			}
		}
	}
	return true
}

func macEqual(a, b net.HardwareAddr) bool {
	return bytesEqual([]byte(a), []byte(b))
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
