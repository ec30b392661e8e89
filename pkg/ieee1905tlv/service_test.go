package ieee1905tlv

import (
	"net"
	"testing"
)

func TestSearchedAndSupportedServiceRoundTrip(t *testing.T) {
	defs := DefaultTable()
	roundTrip(t, defs, &SearchedService{Services: []uint8{ServiceController}})
	roundTrip(t, defs, &SupportedService{Services: []uint8{ServiceController, ServiceAgent}})
}

func TestControlURLRoundTrip(t *testing.T) {
	defs := DefaultTable()
	roundTrip(t, defs, &ControlURL{URL: "http://192.0.2.1:49152/description.xml"})
}

func TestControlURLEmptyRoundTrip(t *testing.T) {
	defs := DefaultTable()
	roundTrip(t, defs, &ControlURL{URL: ""})
}

func TestIPv4RoundTrip(t *testing.T) {
	defs := DefaultTable()
	ip := &IPv4{
		Interfaces: []IPv4Interface{{
			MAC: mustMAC(t, "aa:bb:cc:dd:ee:ff"),
			Addresses: []IPv4Address{
				{AddrType: 0x00, Address: net.IPv4(192, 0, 2, 10), DHCPServer: net.IPv4(192, 0, 2, 1)},
			},
		}},
	}
	roundTrip(t, defs, ip)
}

func TestIPv6RoundTrip(t *testing.T) {
	defs := DefaultTable()
	ip := &IPv6{
		Interfaces: []IPv6Interface{{
			MAC:       mustMAC(t, "aa:bb:cc:dd:ee:ff"),
			LinkLocal: net.ParseIP("fe80::1"),
			Addresses: []IPv6Address{
				{AddrType: 0x00, Address: net.ParseIP("2001:db8::10"), OriginMAC: mustMAC(t, "01:02:03:04:05:06")},
			},
		}},
	}
	roundTrip(t, defs, ip)
}

func TestPushButtonGenericPHYEventNotificationRoundTrip(t *testing.T) {
	defs := DefaultTable()
	n := &PushButtonGenericPHYEventNotification{
		Entries: []GenericPHYEntry{{OUI: [3]byte{0x00, 0x11, 0x22}, VariantIndex: 1}},
	}
	roundTrip(t, defs, n)
}
