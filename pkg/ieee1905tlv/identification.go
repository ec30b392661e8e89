package ieee1905tlv

import (
	"github.com/netlayer/ieee1905al/pkg/render"
	"github.com/netlayer/ieee1905al/pkg/tlv"
	"github.com/netlayer/ieee1905al/pkg/wire"
)

const identificationFieldLen = 64

// DeviceIdentification carries human-readable product identity
// (type 0x86); each field is a fixed 64-byte, NUL-padded string on the
// wire.
type DeviceIdentification struct {
	FriendlyName       string
	ManufacturerName   string
	ManufacturerModel  string
}

func (t *DeviceIdentification) Type() uint8 { return TypeDeviceIdentification }

func parseDeviceIdentification(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	friendly, err := readFixedString(r, identificationFieldLen)
	if err != nil {
		return nil, err
	}
	manufacturer, err := readFixedString(r, identificationFieldLen)
	if err != nil {
		return nil, err
	}
	model, err := readFixedString(r, identificationFieldLen)
	if err != nil {
		return nil, err
	}
	return &DeviceIdentification{FriendlyName: friendly, ManufacturerName: manufacturer, ManufacturerModel: model}, nil
}

func readFixedString(r *wire.Reader, n int) (string, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if i := indexZero(b); i >= 0 {
		b = b[:i]
	}
	return string(b), nil
}

func lengthDeviceIdentification(t tlv.TLV) uint16 { return identificationFieldLen * 3 }

func forgeDeviceIdentification(t tlv.TLV, w tlv.WriterView) error {
	d := t.(*DeviceIdentification)
	writeFixedString(w, d.FriendlyName, identificationFieldLen)
	writeFixedString(w, d.ManufacturerName, identificationFieldLen)
	writeFixedString(w, d.ManufacturerModel, identificationFieldLen)
	return nil
}

func writeFixedString(w tlv.WriterView, s string, n int) {
	b := make([]byte, n)
	copy(b, s)
	w.WriteBytes(b)
}

func printDeviceIdentification(t tlv.TLV, p render.Printer, prefix string) {
	d := t.(*DeviceIdentification)
	p.Printf("%sfriendly=%q manufacturer=%q model=%q", prefix, d.FriendlyName, d.ManufacturerName, d.ManufacturerModel)
}

func compareDeviceIdentification(a, b tlv.TLV) bool {
	da, db := a.(*DeviceIdentification), b.(*DeviceIdentification)
	return *da == *db
}

// ProfileVersion declares whether the sender speaks 1905.1 or 1905.1a
// (type 0x87).
type ProfileVersion struct{ Profile uint8 }

func (t *ProfileVersion) Type() uint8 { return TypeProfileVersion }

func parseProfileVersion(value []byte) (tlv.TLV, error) {
	r := wire.NewReader(value)
	p, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return &ProfileVersion{Profile: p}, nil
}
func lengthProfileVersion(t tlv.TLV) uint16 { return 1 }
func forgeProfileVersion(t tlv.TLV, w tlv.WriterView) error {
	w.WriteU8(t.(*ProfileVersion).Profile)
	return nil
}
func printProfileVersion(t tlv.TLV, p render.Printer, prefix string) {
	p.Printf("%sprofile=0x%02x", prefix, t.(*ProfileVersion).Profile)
}
func compareProfileVersion(a, b tlv.TLV) bool {
	return a.(*ProfileVersion).Profile == b.(*ProfileVersion).Profile
}
