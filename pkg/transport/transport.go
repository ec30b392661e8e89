// Package transport is the engine's raw-socket boundary: open an
// interface by name, send an Ethernet frame carrying a CMDU or LLDPDU
// payload to a destination MAC, and receive frames with a timeout,
// stripping and restoring the Ethernet header around the caller's
// pkg/cmdu/pkg/lldp codecs.
//
// Grounded on pkg/capture's gopacket/pcap Engine, generalized from
// capture's arbitrary-EtherType send/receive to the two EtherTypes this
// engine cares about: 1905 CMDUs (0x893A) and LLDP (0x88CC).
package transport

import (
	"fmt"
	"net"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"

	"github.com/netlayer/ieee1905al/pkg/logging"
)

// EtherTypeLLDP is IEEE 802.1AB's EtherType, distinct from
// pkg/cmdu.EtherType.
const EtherTypeLLDP = 0x88CC

// Engine is one open interface: a live pcap handle plus the interface's
// own MAC, cached at Open time so callers don't re-resolve it per send.
type Engine struct {
	name   string
	mac    net.HardwareAddr
	handle *pcap.Handle
}

// Open opens name in promiscuous mode and resolves its hardware
// address. The returned Engine must be closed by the caller.
func Open(name string) (*Engine, error) {
	handle, err := pcap.OpenLive(name, 1600, true, pcap.BlockForever)
	if err != nil {
		return nil, fmt.Errorf("transport: opening %s: %w", name, err)
	}

	mac, err := interfaceMAC(name)
	if err != nil {
		handle.Close()
		return nil, fmt.Errorf("transport: resolving MAC of %s: %w", name, err)
	}

	return &Engine{name: name, mac: mac, handle: handle}, nil
}

// Close releases the underlying pcap handle.
func (e *Engine) Close() {
	if e.handle != nil {
		e.handle.Close()
	}
}

// Name returns the interface name this Engine was opened on.
func (e *Engine) Name() string { return e.name }

// MAC returns the interface's own hardware address.
func (e *Engine) MAC() net.HardwareAddr { return e.mac }

// Send wraps payload (an already-forged CMDU fragment or LLDPDU body)
// in an Ethernet frame addressed to dst with the given EtherType, and
// writes it to the wire.
func (e *Engine) Send(dst net.HardwareAddr, etherType uint16, payload []byte) error {
	eth := &layers.Ethernet{
		SrcMAC:       e.mac,
		DstMAC:       dst,
		EthernetType: layers.EthernetType(etherType),
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, gopacket.Payload(payload)); err != nil {
		return fmt.Errorf("transport: serializing frame: %w", err)
	}

	if err := e.handle.WritePacketData(buf.Bytes()); err != nil {
		return fmt.Errorf("transport: sending frame: %w", err)
	}
	logging.Subsystem(logging.SubsystemWire, "sent %d bytes to %s, ethertype 0x%04x", len(payload), dst, etherType)
	return nil
}

// Frame is one received Ethernet frame with its header already parsed
// off.
type Frame struct {
	SrcMAC    net.HardwareAddr
	DstMAC    net.HardwareAddr
	EtherType uint16
	Payload   []byte
}

// Receive blocks for up to timeout waiting for one Ethernet frame,
// returning its parsed header and payload. A zero timeout blocks
// indefinitely.
func (e *Engine) Receive(timeout time.Duration) (Frame, error) {
	if timeout > 0 {
		if err := e.handle.SetBPFFilter(""); err != nil {
			return Frame{}, fmt.Errorf("transport: resetting filter: %w", err)
		}
	}

	data, _, err := e.handle.ReadPacketData()
	if err != nil {
		return Frame{}, fmt.Errorf("transport: reading frame: %w", err)
	}
	if len(data) < 14 {
		return Frame{}, fmt.Errorf("transport: frame too short for Ethernet header: %d bytes", len(data))
	}

	return Frame{
		DstMAC:    net.HardwareAddr(append([]byte(nil), data[0:6]...)),
		SrcMAC:    net.HardwareAddr(append([]byte(nil), data[6:12]...)),
		EtherType: uint16(data[12])<<8 | uint16(data[13]),
		Payload:   append([]byte(nil), data[14:]...),
	}, nil
}

// SetFilter installs a BPF filter on the engine's capture.
func (e *Engine) SetFilter(filter string) error {
	if err := e.handle.SetBPFFilter(filter); err != nil {
		return fmt.Errorf("transport: setting filter: %w", err)
	}
	return nil
}

func interfaceMAC(name string) (net.HardwareAddr, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return nil, err
	}
	return iface.HardwareAddr, nil
}
