package transport

import (
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/netlayer/ieee1905al/pkg/lldp"
)

// DecodeLLDP parses an LLDP frame payload (the bytes after the Ethernet
// header) using gopacket's layers.LinkLayerDiscovery decoder and
// converts it into a pkg/lldp.Payload, so neighbor-discovery frames
// from third-party LLDP stacks interoperate with this engine's own
// codec instead of requiring a byte-identical implementation.
func DecodeLLDP(payload []byte) (lldp.Payload, error) {
	pkt := gopacket.NewPacket(payload, layers.LayerTypeLinkLayerDiscovery, gopacket.NoCopy)
	discLayer := pkt.Layer(layers.LayerTypeLinkLayerDiscovery)
	if discLayer == nil {
		return lldp.Payload{}, fmt.Errorf("transport: no LLDP layer decoded")
	}
	disc := discLayer.(*layers.LinkLayerDiscovery)

	out := lldp.Payload{
		ChassisID: lldp.ChassisID{
			Subtype: uint8(disc.ChassisID.Subtype),
			Value:   disc.ChassisID.ID,
		},
		PortID: lldp.PortID{
			Subtype: uint8(disc.PortID.Subtype),
			Value:   disc.PortID.ID,
		},
		TTL: lldp.TTL{Seconds: disc.TTL},
	}

	if infoLayer := pkt.Layer(layers.LayerTypeLinkLayerDiscoveryInfo); infoLayer != nil {
		info := infoLayer.(*layers.LinkLayerDiscoveryInfo)
		if info.PortDescription != "" {
			out.Optional = append(out.Optional, &lldp.PortDescription{Text: info.PortDescription})
		}
		if info.SysName != "" {
			out.Optional = append(out.Optional, &lldp.SystemName{Text: info.SysName})
		}
		if info.SysDescription != "" {
			out.Optional = append(out.Optional, &lldp.SystemDescription{Text: info.SysDescription})
		}
		sysCap := capabilitiesBitmask(info.SysCapabilities.SystemCap)
		enabledCap := capabilitiesBitmask(info.SysCapabilities.EnabledCap)
		if sysCap != 0 || enabledCap != 0 {
			out.Optional = append(out.Optional, &lldp.SystemCapabilities{
				Capabilities: sysCap,
				Enabled:      enabledCap,
			})
		}
		if mgmt := info.MgmtAddress; mgmt.Subtype != 0 {
			out.Optional = append(out.Optional, &lldp.ManagementAddress{
				AddressSubtype:   uint8(mgmt.Subtype),
				Address:          mgmt.Address,
				InterfaceSubtype: uint8(mgmt.InterfaceSubtype),
				InterfaceNumber:  mgmt.InterfaceNumber,
				OID:              []byte(mgmt.OID),
			})
		}
	}

	return out, nil
}

// isMulticast reports whether mac is a multicast address (I/G bit set),
// the addressing pkg/lldp and the 1905 topology discovery CMDUs both
// use for their destination.
func isMulticast(mac net.HardwareAddr) bool {
	return len(mac) > 0 && mac[0]&0x01 != 0
}

// capabilitiesBitmask packs gopacket's decoded LLDPCapabilities bool
// fields back into the IEEE 802.1AB bitmask pkg/lldp.SystemCapabilities
// carries on the wire.
func capabilitiesBitmask(c layers.LLDPCapabilities) uint16 {
	var mask uint16
	if c.Other {
		mask |= layers.LLDPCapsOther
	}
	if c.Repeater {
		mask |= layers.LLDPCapsRepeater
	}
	if c.Bridge {
		mask |= layers.LLDPCapsBridge
	}
	if c.WLANAP {
		mask |= layers.LLDPCapsWLANAP
	}
	if c.Router {
		mask |= layers.LLDPCapsRouter
	}
	if c.Phone {
		mask |= layers.LLDPCapsPhone
	}
	if c.DocSis {
		mask |= layers.LLDPCapsDocSis
	}
	if c.StationOnly {
		mask |= layers.LLDPCapsStationOnly
	}
	if c.CVLAN {
		mask |= layers.LLDPCapsCVLAN
	}
	if c.SVLAN {
		mask |= layers.LLDPCapsSVLAN
	}
	if c.TMPR {
		mask |= layers.LLDPCapsTmpr
	}
	return mask
}
