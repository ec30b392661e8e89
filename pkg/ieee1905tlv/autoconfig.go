package ieee1905tlv

import (
	"net"

	"github.com/netlayer/ieee1905al/pkg/render"
	"github.com/netlayer/ieee1905al/pkg/tlv"
	"github.com/netlayer/ieee1905al/pkg/wire"
)

// SearchedRole is an AP-autoconfiguration search's requested role
// (type 0x0D), always RoleRegistrar in the current 1905.1a profile.
type SearchedRole struct{ Role uint8 }

func (t *SearchedRole) Type() uint8 { return TypeSearchedRole }

func parseSearchedRole(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	role, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &SearchedRole{Role: role}, nil
}
func lengthSearchedRole(t tlv.TLV) uint16 { return 1 }
func forgeSearchedRole(t tlv.TLV, w tlv.WriterView) error {
	w.WriteU8(t.(*SearchedRole).Role)
	return nil
}
func printSearchedRole(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%srole=0x%02x", prefix, t.(*SearchedRole).Role)
}
func compareSearchedRole(a, b tlv.TLV) bool {
	return a.(*SearchedRole).Role == b.(*SearchedRole).Role
}

// AutoconfigFrequencyBand is the band a search is scoped to (type 0x0E).
type AutoconfigFrequencyBand struct{ Band uint8 }

func (t *AutoconfigFrequencyBand) Type() uint8 { return TypeAutoconfigFrequencyBand }

func parseAutoconfigFrequencyBand(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	band, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &AutoconfigFrequencyBand{Band: band}, nil
}
func lengthAutoconfigFrequencyBand(t tlv.TLV) uint16 { return 1 }
func forgeAutoconfigFrequencyBand(t tlv.TLV, w tlv.WriterView) error {
	w.WriteU8(t.(*AutoconfigFrequencyBand).Band)
	return nil
}
func printAutoconfigFrequencyBand(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%sband=0x%02x", prefix, t.(*AutoconfigFrequencyBand).Band)
}
func compareAutoconfigFrequencyBand(a, b tlv.TLV) bool {
	return a.(*AutoconfigFrequencyBand).Band == b.(*AutoconfigFrequencyBand).Band
}

// SupportedRole answers a SearchedRole (type 0x0F).
type SupportedRole struct{ Role uint8 }

func (t *SupportedRole) Type() uint8 { return TypeSupportedRole }

func parseSupportedRole(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	role, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &SupportedRole{Role: role}, nil
}
func lengthSupportedRole(t tlv.TLV) uint16 { return 1 }
func forgeSupportedRole(t tlv.TLV, w tlv.WriterView) error {
	w.WriteU8(t.(*SupportedRole).Role)
	return nil
}
func printSupportedRole(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%srole=0x%02x", prefix, t.(*SupportedRole).Role)
}
func compareSupportedRole(a, b tlv.TLV) bool {
	return a.(*SupportedRole).Role == b.(*SupportedRole).Role
}

// SupportedFrequencyBand answers an AutoconfigFrequencyBand (type 0x10).
type SupportedFrequencyBand struct{ Band uint8 }

func (t *SupportedFrequencyBand) Type() uint8 { return TypeSupportedFrequencyBand }

func parseSupportedFrequencyBand(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	band, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &SupportedFrequencyBand{Band: band}, nil
}
func lengthSupportedFrequencyBand(t tlv.TLV) uint16 { return 1 }
func forgeSupportedFrequencyBand(t tlv.TLV, w tlv.WriterView) error {
	w.WriteU8(t.(*SupportedFrequencyBand).Band)
	return nil
}
func printSupportedFrequencyBand(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%sband=0x%02x", prefix, t.(*SupportedFrequencyBand).Band)
}
func compareSupportedFrequencyBand(a, b tlv.TLV) bool {
	return a.(*SupportedFrequencyBand).Band == b.(*SupportedFrequencyBand).Band
}

// WSC carries an opaque Wi-Fi Simple Configuration M1/M2 payload
// (type 0x11); its inner cryptography is out of scope here, the TLV
// only moves the bytes.
type WSC struct{ Payload []byte }

func (t *WSC) Type() uint8 { return TypeWSC }

func parseWSC(value []byte) (tlv.TLV, error) {
	out := make([]byte, len(value))
	copy(out, value)
	return &WSC{Payload: out}, nil
}
func lengthWSC(t tlv.TLV) uint16 { return uint16(len(t.(*WSC).Payload)) }
func forgeWSC(t tlv.TLV, w tlv.WriterView) error {
	w.WriteBytes(t.(*WSC).Payload)
	return nil
}
func printWSC(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%s%d bytes", prefix, len(t.(*WSC).Payload))
}
func compareWSC(a, b tlv.TLV) bool {
	return bytesEqual(a.(*WSC).Payload, b.(*WSC).Payload)
}

// PushButtonEventNotification announces a push-button event was
// observed on the listed media types (type 0x12).
type PushButtonEventNotification struct{ MediaTypes []uint16 }

func (t *PushButtonEventNotification) Type() uint8 { return TypePushButtonEventNotification }

func parsePushButtonEventNotification(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	count, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	out := &PushButtonEventNotification{}
	for i := 0; i < int(count); i++ {
		m, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		out.MediaTypes = append(out.MediaTypes, m)
	}
	return out, nil
}
func lengthPushButtonEventNotification(t tlv.TLV) uint16 {
	return uint16(1 + 2*len(t.(*PushButtonEventNotification).MediaTypes))
}
func forgePushButtonEventNotification(t tlv.TLV, w tlv.WriterView) error {
	n := t.(*PushButtonEventNotification)
	w.WriteU8(uint8(len(n.MediaTypes)))
	for _, m := range n.MediaTypes {
		w.WriteU16(m)
	}
	return nil
}
func printPushButtonEventNotification(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%smedia-types=%d", prefix, len(t.(*PushButtonEventNotification).MediaTypes))
}
func comparePushButtonEventNotification(a, b tlv.TLV) bool {
	na, nb := a.(*PushButtonEventNotification), b.(*PushButtonEventNotification)
	if len(na.MediaTypes) != len(nb.MediaTypes) {
		return false
	}
	for i := range na.MediaTypes {
		if na.MediaTypes[i] != nb.MediaTypes[i] {
			return false
		}
	}
	return true
}

// PushButtonJoinNotification reports a neighbor AL's push-button join
// (type 0x13).
type PushButtonJoinNotification struct {
	ALMAC           net.HardwareAddr
	MessageID       uint16
	NewInterfaceMAC net.HardwareAddr
	NewDeviceMAC    net.HardwareAddr
}

func (t *PushButtonJoinNotification) Type() uint8 { return TypePushButtonJoinNotification }

func parsePushButtonJoinNotification(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	almac, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	mid, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	ifmac, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	devmac, err := r.ReadMAC()
	if err != nil {
		return nil, err
	}
	return &PushButtonJoinNotification{ALMAC: almac, MessageID: mid, NewInterfaceMAC: ifmac, NewDeviceMAC: devmac}, nil
}
func lengthPushButtonJoinNotification(t tlv.TLV) uint16 { return wire.MACLen*3 + 2 }
func forgePushButtonJoinNotification(t tlv.TLV, w tlv.WriterView) error {
	n := t.(*PushButtonJoinNotification)
	w.WriteBytes(n.ALMAC)
	w.WriteU16(n.MessageID)
	w.WriteBytes(n.NewInterfaceMAC)
	w.WriteBytes(n.NewDeviceMAC)
	return nil
}
func printPushButtonJoinNotification(t tlv.TLV, p render.Printer, prefix string) {
	n := t.(*PushButtonJoinNotification)
	p.Printf("%sAL-MAC=%s new-device=%s", prefix, n.ALMAC, n.NewDeviceMAC)
}
func comparePushButtonJoinNotification(a, b tlv.TLV) bool {
	na, nb := a.(*PushButtonJoinNotification), b.(*PushButtonJoinNotification)
	return macEqual(na.ALMAC, nb.ALMAC) && na.MessageID == nb.MessageID &&
		macEqual(na.NewInterfaceMAC, nb.NewInterfaceMAC) && macEqual(na.NewDeviceMAC, nb.NewDeviceMAC)
}
