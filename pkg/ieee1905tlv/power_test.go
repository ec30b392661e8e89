package ieee1905tlv

import "testing"

func testGenericPHY() GenericPHYCommonData {
	return GenericPHYCommonData{OUI: [3]byte{0x00, 0x11, 0x22}, VariantIndex: 1, MediaSpecificBytes: []byte{0x01, 0x02}}
}

func TestPowerOffInterfaceRoundTrip(t *testing.T) {
	defs := DefaultTable()
	p := &PowerOffInterface{
		Entries: []PowerOffInterfaceEntry{{
			InterfaceMAC: mustMAC(t, "aa:bb:cc:dd:ee:ff"), MediaType: 0x0100, GenericPHY: testGenericPHY(),
		}},
	}
	roundTrip(t, defs, p)
}

func TestInterfacePowerChangeInformationRoundTrip(t *testing.T) {
	defs := DefaultTable()
	p := &InterfacePowerChangeInformation{
		Entries: []InterfacePowerChangeEntry{
			{InterfaceMAC: mustMAC(t, "aa:bb:cc:dd:ee:ff"), RequestedPowerState: PowerStateOff},
		},
	}
	roundTrip(t, defs, p)
}

func TestInterfacePowerChangeStatusRoundTrip(t *testing.T) {
	defs := DefaultTable()
	p := &InterfacePowerChangeStatus{
		Entries: []InterfacePowerChangeStatusEntry{
			{InterfaceMAC: mustMAC(t, "aa:bb:cc:dd:ee:ff"), Result: PowerChangeCompleted},
		},
	}
	roundTrip(t, defs, p)
}

func TestGenericPHYDeviceInformationRoundTrip(t *testing.T) {
	defs := DefaultTable()
	g := &GenericPHYDeviceInformation{
		ALMAC: mustMAC(t, "aa:bb:cc:dd:ee:ff"),
		Interfaces: []GenericPHYDeviceInterface{{
			InterfaceMAC: mustMAC(t, "11:22:33:44:55:66"),
			OUI:          [3]byte{0x00, 0x11, 0x22},
			VariantIndex: 2,
			VariantName:  "powerline-variant",
			URL:          "http://example.invalid/phy.xml",
			GenericPHY:   testGenericPHY(),
		}},
	}
	got := roundTrip(t, defs, g).(*GenericPHYDeviceInformation)
	if got.Interfaces[0].VariantName != "powerline-variant" {
		t.Fatalf("VariantName = %q, want %q", got.Interfaces[0].VariantName, "powerline-variant")
	}
}
