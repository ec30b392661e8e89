package ieee1905tlv

import (
	"net"

	"github.com/netlayer/ieee1905al/pkg/al1905errors"
	"github.com/netlayer/ieee1905al/pkg/render"
	"github.com/netlayer/ieee1905al/pkg/tlv"
	"github.com/netlayer/ieee1905al/pkg/wire"
	"fmt"
)

// SearchedService lists the service types an AP-autoconfiguration search
// is looking for (type 0x80).
type SearchedService struct{ Services []uint8 }

func (t *SearchedService) Type() uint8 { return TypeSearchedService }

func parseSearchedService(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	count, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	out := &SearchedService{}
	for i := 0; i < int(count); i++ {
		s, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		out.Services = append(out.Services, s)
	}
	return out, nil
}
func lengthSearchedService(t tlv.TLV) uint16 { return uint16(1 + len(t.(*SearchedService).Services)) }
func forgeSearchedService(t tlv.TLV, w tlv.WriterView) error {
	s := t.(*SearchedService)
	w.WriteU8(uint8(len(s.Services)))
	for _, v := range s.Services {
		w.WriteU8(v)
	}
	return nil
}
func printSearchedService(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%sservices=%v", prefix, t.(*SearchedService).Services)
}
func compareSearchedService(a, b tlv.TLV) bool {
	return bytesEqual(a.(*SearchedService).Services, b.(*SearchedService).Services)
}

// SupportedService answers a SearchedService (type 0x81).
type SupportedService struct{ Services []uint8 }

func (t *SupportedService) Type() uint8 { return TypeSupportedService }

func parseSupportedService(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	count, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	out := &SupportedService{}
	for i := 0; i < int(count); i++ {
		s, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		out.Services = append(out.Services, s)
	}
	return out, nil
}
func lengthSupportedService(t tlv.TLV) uint16 { return uint16(1 + len(t.(*SupportedService).Services)) }
func forgeSupportedService(t tlv.TLV, w tlv.WriterView) error {
	s := t.(*SupportedService)
	w.WriteU8(uint8(len(s.Services)))
	for _, v := range s.Services {
		w.WriteU8(v)
	}
	return nil
}
func printSupportedService(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%sservices=%v", prefix, t.(*SupportedService).Services)
}
func compareSupportedService(a, b tlv.TLV) bool {
	return bytesEqual(a.(*SupportedService).Services, b.(*SupportedService).Services)
}

// ControlURL carries a URL string for an out-of-band control channel
// (type 0x82), null-terminated on the wire.
type ControlURL struct{ URL string }

func (t *ControlURL) Type() uint8 { return TypeControlURL }

func parseControlURL(value []byte) (tlv.TLV, error) {
	s := value
	if n := indexZero(s); n >= 0 {
		s = s[:n]
	}
	return &ControlURL{URL: string(s)}, nil
}
func lengthControlURL(t tlv.TLV) uint16 { return uint16(len(t.(*ControlURL).URL) + 1) }
func forgeControlURL(t tlv.TLV, w tlv.WriterView) error {
	w.WriteBytes([]byte(t.(*ControlURL).URL))
	w.WriteU8(0)
	return nil
}
func printControlURL(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%surl=%q", prefix, t.(*ControlURL).URL)
}
func compareControlURL(a, b tlv.TLV) bool {
	return a.(*ControlURL).URL == b.(*ControlURL).URL
}

func indexZero(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}

// IPv4Address is one address record of an interface's IPv4 entry.
type IPv4Address struct {
	AddrType    uint8
	Address     net.IP
	DHCPServer  net.IP
}

// IPv4Interface is one interface's set of IPv4 addresses.
type IPv4Interface struct {
	MAC       net.HardwareAddr
	Addresses []IPv4Address
}

// IPv4 reports IPv4 addresses configured on the AL node's interfaces
// (type 0x83).
type IPv4 struct{ Interfaces []IPv4Interface }

func (t *IPv4) Type() uint8 { return TypeIPv4 }

func parseIPv4(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	numIf, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	out := &IPv4{}
	for i := 0; i < int(numIf); i++ {
		mac, err := r.ReadMAC()
		if err != nil {
			return nil, err
		}
		iface := IPv4Interface{MAC: mac}
		numAddr, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		for j := 0; j < int(numAddr); j++ {
			typ, err := r.ReadU8()
			if err != nil {
				return nil, err
			}
			addr, err := r.ReadBytes(4)
			if err != nil {
				return nil, err
			}
			dhcp, err := r.ReadBytes(4)
			if err != nil {
				return nil, err
			}
			iface.Addresses = append(iface.Addresses, IPv4Address{AddrType: typ, Address: net.IP(addr), DHCPServer: net.IP(dhcp)})
		}
		out.Interfaces = append(out.Interfaces, iface)
	}
	return out, nil
}

func lengthIPv4(t tlv.TLV) uint16 {
	ip := t.(*IPv4)
	n := 1
	for _, iface := range ip.Interfaces {
		n += wire.MACLen + 1 + 9*len(iface.Addresses)
	}
	return uint16(n)
}

func forgeIPv4(t tlv.TLV, w tlv.WriterView) error {
	ip := t.(*IPv4)
	if len(ip.Interfaces) > 0xFF {
		return fmt.Errorf("%w: IPv4 TLV carries %d interfaces, max 255", al1905errors.ErrBadTLV, len(ip.Interfaces))
	}
	w.WriteU8(uint8(len(ip.Interfaces)))
	for _, iface := range ip.Interfaces {
		w.WriteBytes(iface.MAC)
		w.WriteU8(uint8(len(iface.Addresses)))
		for _, a := range iface.Addresses {
			w.WriteU8(a.AddrType)
			w.WriteBytes(to4(a.Address))
			w.WriteBytes(to4(a.DHCPServer))
		}
	}
	return nil
}

func to4(ip net.IP) []byte {
	v4 := ip.To4()
	if v4 == nil {
		return make([]byte, 4)
	}
	return v4
}

func printIPv4(t tlv.TLV, p render.Printer, prefix string) {
	ip := t.(*IPv4)
	p.Printf("%sinterfaces=%d", prefix, len(ip.Interfaces))
}

func compareIPv4(a, b tlv.TLV) bool {
	ia, ib := a.(*IPv4), b.(*IPv4)
	if len(ia.Interfaces) != len(ib.Interfaces) {
		return false
	}
	for i := range ia.Interfaces {
		fa, fb := ia.Interfaces[i], ib.Interfaces[i]
		if !macEqual(fa.MAC, fb.MAC) || len(fa.Addresses) != len(fb.Addresses) {
			return false
		}
		for j := range fa.Addresses {
			if fa.Addresses[j].AddrType != fb.Addresses[j].AddrType || !fa.Addresses[j].Address.Equal(fb.Addresses[j].Address) || !fa.Addresses[j].DHCPServer.Equal(fb.Addresses[j].DHCPServer) {
				return false
			}
		}
	}
	return true
}

// IPv6Address is one address record of an interface's IPv6 entry.
type IPv6Address struct {
	AddrType   uint8
	Address    net.IP
	OriginMAC  net.HardwareAddr
}

// IPv6Interface is one interface's set of IPv6 addresses.
type IPv6Interface struct {
	MAC         net.HardwareAddr
	LinkLocal   net.IP
	Addresses   []IPv6Address
}

// IPv6 reports IPv6 addresses configured on the AL node's interfaces
// (type 0x84).
type IPv6 struct{ Interfaces []IPv6Interface }

func (t *IPv6) Type() uint8 { return TypeIPv6 }

func parseIPv6(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	numIf, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	out := &IPv6{}
	for i := 0; i < int(numIf); i++ {
		mac, err := r.ReadMAC()
		if err != nil {
			return nil, err
		}
		linkLocal, err := r.ReadBytes(16)
		if err != nil {
			return nil, err
		}
		iface := IPv6Interface{MAC: mac, LinkLocal: net.IP(linkLocal)}
		numAddr, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		for j := 0; j < int(numAddr); j++ {
			typ, err := r.ReadU8()
			if err != nil {
				return nil, err
			}
			addr, err := r.ReadBytes(16)
			if err != nil {
				return nil, err
			}
			origin, err := r.ReadMAC()
			if err != nil {
				return nil, err
			}
			iface.Addresses = append(iface.Addresses, IPv6Address{AddrType: typ, Address: net.IP(addr), OriginMAC: origin})
		}
		out.Interfaces = append(out.Interfaces, iface)
	}
	return out, nil
}

func lengthIPv6(t tlv.TLV) uint16 {
	ip := t.(*IPv6)
	n := 1
	for _, iface := range ip.Interfaces {
		n += wire.MACLen + 16 + 1 + (1+16+wire.MACLen)*len(iface.Addresses)
	}
	return uint16(n)
}

func forgeIPv6(t tlv.TLV, w tlv.WriterView) error {
	ip := t.(*IPv6)
	if len(ip.Interfaces) > 0xFF {
		return fmt.Errorf("%w: IPv6 TLV carries %d interfaces, max 255", al1905errors.ErrBadTLV, len(ip.Interfaces))
	}
	w.WriteU8(uint8(len(ip.Interfaces)))
	for _, iface := range ip.Interfaces {
		w.WriteBytes(iface.MAC)
		w.WriteBytes(to16(iface.LinkLocal))
		w.WriteU8(uint8(len(iface.Addresses)))
		for _, a := range iface.Addresses {
			w.WriteU8(a.AddrType)
			w.WriteBytes(to16(a.Address))
			w.WriteBytes(a.OriginMAC)
		}
	}
	return nil
}

func to16(ip net.IP) []byte {
	v16 := ip.To16()
	if v16 == nil {
		return make([]byte, 16)
	}
	return v16
}

func printIPv6(t tlv.TLV, p render.Printer, prefix string) {
	ip := t.(*IPv6)
	p.Printf("%sinterfaces=%d", prefix, len(ip.Interfaces))
}

func compareIPv6(a, b tlv.TLV) bool {
	ia, ib := a.(*IPv6), b.(*IPv6)
	if len(ia.Interfaces) != len(ib.Interfaces) {
		return false
	}
	for i := range ia.Interfaces {
		fa, fb := ia.Interfaces[i], ib.Interfaces[i]
		if !macEqual(fa.MAC, fb.MAC) || !fa.LinkLocal.Equal(fb.LinkLocal) || len(fa.Addresses) != len(fb.Addresses) {
			return false
		}
		for j := range fa.Addresses {
			if fa.Addresses[j].AddrType != fb.Addresses[j].AddrType || !fa.Addresses[j].Address.Equal(fb.Addresses[j].Address) || !macEqual(fa.Addresses[j].OriginMAC, fb.Addresses[j].OriginMAC) {
				return false
			}
		}
	}
	return true
}

// GenericPHYEntry is one OUI/variant record of a push-button generic
// PHY event notification.
type GenericPHYEntry struct {
	OUI          [3]byte
	VariantIndex uint8
}

// PushButtonGenericPHYEventNotification lists non-802.11/802.3 media
// that observed a push-button event (type 0x85).
type PushButtonGenericPHYEventNotification struct{ Entries []GenericPHYEntry }

func (t *PushButtonGenericPHYEventNotification) Type() uint8 {
	return TypePushButtonGenericPHYEventNotif
}

func parsePushButtonGenericPHYEventNotification(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	count, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	out := &PushButtonGenericPHYEventNotification{}
	for i := 0; i < int(count); i++ {
		oui, err := r.ReadBytes(3)
		if err != nil {
			return nil, err
		}
		variant, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		var e GenericPHYEntry
		copy(e.OUI[:], oui)
		e.VariantIndex = variant
		out.Entries = append(out.Entries, e)
	}
	return out, nil
}
func lengthPushButtonGenericPHYEventNotification(t tlv.TLV) uint16 {
	return uint16(1 + 4*len(t.(*PushButtonGenericPHYEventNotification).Entries))
}
func forgePushButtonGenericPHYEventNotification(t tlv.TLV, w tlv.WriterView) error {
	n := t.(*PushButtonGenericPHYEventNotification)
	w.WriteU8(uint8(len(n.Entries)))
	for _, e := range n.Entries {
		w.WriteBytes(e.OUI[:])
		w.WriteU8(e.VariantIndex)
	}
	return nil
}
func printPushButtonGenericPHYEventNotification(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%sentries=%d", prefix, len(t.(*PushButtonGenericPHYEventNotification).Entries))
}
func comparePushButtonGenericPHYEventNotification(a, b tlv.TLV) bool {
	na, nb := a.(*PushButtonGenericPHYEventNotification), b.(*PushButtonGenericPHYEventNotification)
	if len(na.Entries) != len(nb.Entries) {
		return false
	}
	for i := range na.Entries {
		if na.Entries[i] != nb.Entries[i] {
			return false
		}
	}
	return true
}
