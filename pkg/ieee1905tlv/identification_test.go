package ieee1905tlv

import "testing"

func TestDeviceIdentificationRoundTrip(t *testing.T) {
	defs := DefaultTable()
	d := &DeviceIdentification{
		FriendlyName:      "Living Room Extender",
		ManufacturerName:  "Acme Networks",
		ManufacturerModel: "AX-100",
	}
	got := roundTrip(t, defs, d).(*DeviceIdentification)
	if *got != *d {
		t.Fatalf("DeviceIdentification = %+v, want %+v", got, d)
	}
}

func TestProfileVersionRoundTrip(t *testing.T) {
	defs := DefaultTable()
	roundTrip(t, defs, &ProfileVersion{Profile: Profile1905_1a})
}
