package ieee1905tlv

import (
	"fmt"
	"net"

	"github.com/netlayer/ieee1905al/pkg/al1905errors"
	"github.com/netlayer/ieee1905al/pkg/render"
	"github.com/netlayer/ieee1905al/pkg/tlv"
	"github.com/netlayer/ieee1905al/pkg/wire"
)

// GenericPHYCommonData is the shared OUI/variant/media-specific-bytes
// shape carried by several generic-PHY TLVs.
type GenericPHYCommonData struct {
	OUI               [3]byte
	VariantIndex      uint8
	MediaSpecificBytes []byte
}

func readGenericPHYCommonData(r *wire.Reader) (GenericPHYCommonData, error) {
	var d GenericPHYCommonData
	oui, err := r.ReadBytes(3)
	if err != nil {
		return d, err
	}
	copy(d.OUI[:], oui)
	if d.VariantIndex, err = r.ReadU8(); err != nil {
		return d, err
	}
	n, err := r.ReadU8()
	if err != nil {
		return d, err
	}
	if d.MediaSpecificBytes, err = r.ReadBytes(int(n)); err != nil {
		return d, err
	}
	return d, nil
}

func writeGenericPHYCommonData(w tlv.WriterView, d GenericPHYCommonData) error {
	if len(d.MediaSpecificBytes) > 0xFF {
		return fmt.Errorf("%w: generic PHY media-specific bytes exceed 255", al1905errors.ErrBadTLV)
	}
	w.WriteBytes(d.OUI[:])
	w.WriteU8(d.VariantIndex)
	w.WriteU8(uint8(len(d.MediaSpecificBytes)))
	w.WriteBytes(d.MediaSpecificBytes)
	return nil
}

func genericPHYCommonDataLen(d GenericPHYCommonData) int {
	return 3 + 1 + 1 + len(d.MediaSpecificBytes)
}

func genericPHYCommonDataEqual(a, b GenericPHYCommonData) bool {
	return a.OUI == b.OUI && a.VariantIndex == b.VariantIndex && bytesEqual(a.MediaSpecificBytes, b.MediaSpecificBytes)
}

// PowerOffInterfaceEntry is one interface a PowerOffInterface TLV names.
type PowerOffInterfaceEntry struct {
	InterfaceMAC net.HardwareAddr
	MediaType    uint16
	GenericPHY   GenericPHYCommonData
}

// PowerOffInterface lists interfaces the AL node has powered off
// (type 0x88).
type PowerOffInterface struct{ Entries []PowerOffInterfaceEntry }

func (t *PowerOffInterface) Type() uint8 { return TypePowerOffInterface }

func parsePowerOffInterface(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	count, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	out := &PowerOffInterface{}
	for i := 0; i < int(count); i++ {
		mac, err := r.ReadMAC()
		if err != nil {
			return nil, err
		}
		media, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		phy, err := readGenericPHYCommonData(r)
		if err != nil {
			return nil, err
		}
		out.Entries = append(out.Entries, PowerOffInterfaceEntry{InterfaceMAC: mac, MediaType: media, GenericPHY: phy})
	}
	return out, nil
}

func lengthPowerOffInterface(t tlv.TLV) uint16 {
	p := t.(*PowerOffInterface)
	n := 1
	for _, e := range p.Entries {
		n += wire.MACLen + 2 + genericPHYCommonDataLen(e.GenericPHY)
	}
	return uint16(n)
}

func forgePowerOffInterface(t tlv.TLV, w tlv.WriterView) error {
	p := t.(*PowerOffInterface)
	if len(p.Entries) > 0xFF {
		return fmt.Errorf("%w: PowerOffInterface carries %d entries, max 255", al1905errors.ErrBadTLV, len(p.Entries))
	}
	w.WriteU8(uint8(len(p.Entries)))
	for _, e := range p.Entries {
		w.WriteBytes(e.InterfaceMAC)
		w.WriteU16(e.MediaType)
		if err := writeGenericPHYCommonData(w, e.GenericPHY); err != nil {
			return err
		}
	}
	return nil
}

func printPowerOffInterface(t tlv.TLV, p render.Printer, prefix string) {
	poi := t.(*PowerOffInterface)
	p.Printf("%sentries=%d", prefix, len(poi.Entries))
}

func comparePowerOffInterface(a, b tlv.TLV) bool {
	pa, pb := a.(*PowerOffInterface), b.(*PowerOffInterface)
	if len(pa.Entries) != len(pb.Entries) {
		return false
	}
	for i := range pa.Entries {
		ea, eb := pa.Entries[i], pb.Entries[i]
		if !macEqual(ea.InterfaceMAC, eb.InterfaceMAC) || ea.MediaType != eb.MediaType || !genericPHYCommonDataEqual(ea.GenericPHY, eb.GenericPHY) {
			return false
		}
	}
	return true
}

// InterfacePowerChangeEntry pairs an interface with a requested power
// state.
type InterfacePowerChangeEntry struct {
	InterfaceMAC        net.HardwareAddr
	RequestedPowerState uint8
}

// InterfacePowerChangeInformation requests power-state changes on a set
// of interfaces (type 0x89).
type InterfacePowerChangeInformation struct{ Entries []InterfacePowerChangeEntry }

func (t *InterfacePowerChangeInformation) Type() uint8 { return TypeInterfacePowerChangeInformation }

func parseInterfacePowerChangeInformation(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	count, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	out := &InterfacePowerChangeInformation{}
	for i := 0; i < int(count); i++ {
		mac, err := r.ReadMAC()
		if err != nil {
			return nil, err
		}
		state, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		out.Entries = append(out.Entries, InterfacePowerChangeEntry{InterfaceMAC: mac, RequestedPowerState: state})
	}
	return out, nil
}
func lengthInterfacePowerChangeInformation(t tlv.TLV) uint16 {
	return uint16(1 + (wire.MACLen+1)*len(t.(*InterfacePowerChangeInformation).Entries))
}
func forgeInterfacePowerChangeInformation(t tlv.TLV, w tlv.WriterView) error {
	n := t.(*InterfacePowerChangeInformation)
	if len(n.Entries) > 0xFF {
		return fmt.Errorf("%w: InterfacePowerChangeInformation carries %d entries, max 255", al1905errors.ErrBadTLV, len(n.Entries))
	}
	w.WriteU8(uint8(len(n.Entries)))
	for _, e := range n.Entries {
		w.WriteBytes(e.InterfaceMAC)
		w.WriteU8(e.RequestedPowerState)
	}
	return nil
}
func printInterfacePowerChangeInformation(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%sentries=%d", prefix, len(t.(*InterfacePowerChangeInformation).Entries))
}
func compareInterfacePowerChangeInformation(a, b tlv.TLV) bool {
	na, nb := a.(*InterfacePowerChangeInformation), b.(*InterfacePowerChangeInformation)
	if len(na.Entries) != len(nb.Entries) {
		return false
	}
	for i := range na.Entries {
		if !macEqual(na.Entries[i].InterfaceMAC, nb.Entries[i].InterfaceMAC) || na.Entries[i].RequestedPowerState != nb.Entries[i].RequestedPowerState {
			return false
		}
	}
	return true
}

// InterfacePowerChangeStatusEntry reports the result of one requested
// power-state change.
type InterfacePowerChangeStatusEntry struct {
	InterfaceMAC net.HardwareAddr
	Result       uint8
}

// InterfacePowerChangeStatus reports results of a prior
// InterfacePowerChangeInformation request (type 0x8A).
type InterfacePowerChangeStatus struct{ Entries []InterfacePowerChangeStatusEntry }

func (t *InterfacePowerChangeStatus) Type() uint8 { return TypeInterfacePowerChangeStatus }

func parseInterfacePowerChangeStatus(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	count, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	out := &InterfacePowerChangeStatus{}
	for i := 0; i < int(count); i++ {
		mac, err := r.ReadMAC()
		if err != nil {
			return nil, err
		}
		result, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		out.Entries = append(out.Entries, InterfacePowerChangeStatusEntry{InterfaceMAC: mac, Result: result})
	}
	return out, nil
}
func lengthInterfacePowerChangeStatus(t tlv.TLV) uint16 {
	return uint16(1 + (wire.MACLen+1)*len(t.(*InterfacePowerChangeStatus).Entries))
}
func forgeInterfacePowerChangeStatus(t tlv.TLV, w tlv.WriterView) error {
	n := t.(*InterfacePowerChangeStatus)
	if len(n.Entries) > 0xFF {
		return fmt.Errorf("%w: InterfacePowerChangeStatus carries %d entries, max 255", al1905errors.ErrBadTLV, len(n.Entries))
	}
	w.WriteU8(uint8(len(n.Entries)))
	for _, e := range n.Entries {
		w.WriteBytes(e.InterfaceMAC)
		w.WriteU8(e.Result)
	}
	return nil
}
func printInterfacePowerChangeStatus(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%sentries=%d", prefix, len(t.(*InterfacePowerChangeStatus).Entries))
}
func compareInterfacePowerChangeStatus(a, b tlv.TLV) bool {
	na, nb := a.(*InterfacePowerChangeStatus), b.(*InterfacePowerChangeStatus)
	if len(na.Entries) != len(nb.Entries) {
		return false
	}
	for i := range na.Entries {
		if !macEqual(na.Entries[i].InterfaceMAC, nb.Entries[i].InterfaceMAC) || na.Entries[i].Result != nb.Entries[i].Result {
			return false
		}
	}
	return true
}

// GenericPHYDeviceInterface is one local interface's generic-PHY
// description.
type GenericPHYDeviceInterface struct {
	InterfaceMAC net.HardwareAddr
	OUI          [3]byte
	VariantIndex uint8
	VariantName  string
	URL          string
	GenericPHY   GenericPHYCommonData
}

const variantNameLen = 32

// GenericPHYDeviceInformation describes the AL node's non-standard PHY
// interfaces (type 0x8B).
type GenericPHYDeviceInformation struct {
	ALMAC      net.HardwareAddr
	Interfaces []GenericPHYDeviceInterface
}

func (t *GenericPHYDeviceInformation) Type() uint8 { return TypeGenericPHYDeviceInformation }

func parseGenericPHYDeviceInformation(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	almac, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	count, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	out := &GenericPHYDeviceInformation{ALMAC: almac}
	for i := 0; i < int(count); i++ {
		mac, err := r.ReadMAC()
		if err != nil {
			return nil, err
		}
		oui, err := r.ReadBytes(3)
		if err != nil {
			return nil, err
		}
		variant, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		name, err := readFixedString(r, variantNameLen)
		if err != nil {
			return nil, err
		}
		urlLen, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		urlBytes, err := r.ReadBytes(int(urlLen))
		if err != nil {
			return nil, err
		}
		phy, err := readGenericPHYCommonData(r)
		if err != nil {
			return nil, err
		}
		var iface GenericPHYDeviceInterface
		iface.InterfaceMAC = mac
		copy(iface.OUI[:], oui)
		iface.VariantIndex = variant
		iface.VariantName = name
		iface.URL = string(urlBytes)
		iface.GenericPHY = phy
		out.Interfaces = append(out.Interfaces, iface)
	}
	return out, nil
}

func lengthGenericPHYDeviceInformation(t tlv.TLV) uint16 {
	g := t.(*GenericPHYDeviceInformation)
	n := wire.MACLen + 1
	for _, iface := range g.Interfaces {
		n += wire.MACLen + 3 + 1 + variantNameLen + 1 + len(iface.URL) + genericPHYCommonDataLen(iface.GenericPHY)
	}
	return uint16(n)
}

func forgeGenericPHYDeviceInformation(t tlv.TLV, w tlv.WriterView) error {
	g := t.(*GenericPHYDeviceInformation)
	if len(g.Interfaces) > 0xFF {
		return fmt.Errorf("%w: GenericPHYDeviceInformation carries %d interfaces, max 255", al1905errors.ErrBadTLV, len(g.Interfaces))
	}
	w.WriteBytes(g.ALMAC)
	w.WriteU8(uint8(len(g.Interfaces)))
	for _, iface := range g.Interfaces {
		if len(iface.URL) > 0xFF {
			return fmt.Errorf("%w: generic PHY URL exceeds 255 bytes", al1905errors.ErrBadTLV)
		}
		w.WriteBytes(iface.InterfaceMAC)
		w.WriteBytes(iface.OUI[:])
		w.WriteU8(iface.VariantIndex)
		writeFixedString(w, iface.VariantName, variantNameLen)
		w.WriteU8(uint8(len(iface.URL)))
		w.WriteBytes([]byte(iface.URL))
		if err := writeGenericPHYCommonData(w, iface.GenericPHY); err != nil {
			return err
		}
	}
	return nil
}

func printGenericPHYDeviceInformation(t tlv.TLV, p render.Printer, prefix string) {
	g := t.(*GenericPHYDeviceInformation)
	p.Printf("%sAL-MAC=%s interfaces=%d", prefix, g.ALMAC, len(g.Interfaces))
}

func compareGenericPHYDeviceInformation(a, b tlv.TLV) bool {
	ga, gb := a.(*GenericPHYDeviceInformation), b.(*GenericPHYDeviceInformation)
	if !macEqual(ga.ALMAC, gb.ALMAC) || len(ga.Interfaces) != len(gb.Interfaces) {
		return false
	}
	for i := range ga.Interfaces {
		fa, fb := ga.Interfaces[i], gb.Interfaces[i]
		if !macEqual(fa.InterfaceMAC, fb.InterfaceMAC) || fa.OUI != fb.OUI || fa.VariantIndex != fb.VariantIndex ||
			fa.VariantName != fb.VariantName || fa.URL != fb.URL || !genericPHYCommonDataEqual(fa.GenericPHY, fb.GenericPHY) {
			return false
		}
	}
	return true
}
