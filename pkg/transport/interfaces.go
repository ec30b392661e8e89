package transport

import (
	"fmt"

	"github.com/google/gopacket/pcap"
)

// Interface describes one capture-capable local interface.
type Interface struct {
	Name        string
	Description string
}

// ListInterfaces returns every interface pcap can open, for the CLI's
// interface-picker.
func ListInterfaces() ([]Interface, error) {
	devices, err := pcap.FindAllDevs()
	if err != nil {
		return nil, fmt.Errorf("transport: listing interfaces: %w", err)
	}

	out := make([]Interface, 0, len(devices))
	for _, d := range devices {
		out = append(out, Interface{Name: d.Name, Description: d.Description})
	}
	return out, nil
}

// Exists reports whether name is among the interfaces pcap can open.
func Exists(name string) bool {
	devices, err := pcap.FindAllDevs()
	if err != nil {
		return false
	}
	for _, d := range devices {
		if d.Name == name {
			return true
		}
	}
	return false
}
