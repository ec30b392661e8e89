// Package config loads and validates the AL node's static configuration:
// its own AL MAC address, the local interfaces it binds to, and the
// tunable limits from spec §6.3 (segment size, reassembly timeout,
// verbosity, max LLDP TLVs).
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default option values, spec §6.3.
const (
	DefaultMaxSegmentSize    = 1500
	DefaultReassemblyTimeout = 10000 // milliseconds
	DefaultMaxLLDPTLVs       = 16
)

// InterfaceConfig names one local interface the AL node sends and
// receives CMDUs/LLDPDUs on.
type InterfaceConfig struct {
	Name      string `yaml:"name"`
	MAC       string `yaml:"mac"`
	MediaType uint16 `yaml:"media_type"`
}

// HardwareAddr parses MAC, returning an error if it isn't a valid MAC
// literal.
func (i InterfaceConfig) HardwareAddr() (net.HardwareAddr, error) {
	return net.ParseMAC(i.MAC)
}

// Config is the AL node's full static configuration, loaded from YAML.
type Config struct {
	ALMACAddress string            `yaml:"al_mac_address"`
	Interfaces   []InterfaceConfig `yaml:"interfaces"`

	MaxSegmentSize      uint16 `yaml:"max_segment_size"`
	ReassemblyTimeoutMS uint32 `yaml:"reassembly_timeout_ms"`
	Verbosity           int    `yaml:"verbosity"`
	MaxLLDPTLVs         int    `yaml:"max_lldp_tlvs"`
}

// Default returns a Config with every option at its spec §6.3 default
// and no AL MAC or interfaces, for callers building one up in code
// rather than from a file.
func Default() *Config {
	return &Config{
		MaxSegmentSize:      DefaultMaxSegmentSize,
		ReassemblyTimeoutMS: DefaultReassemblyTimeout,
		MaxLLDPTLVs:         DefaultMaxLLDPTLVs,
	}
}

// Load reads and parses a YAML configuration file, applying defaults to
// any option left unset, and returns it only if Validate reports no
// errors.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	v := NewValidator(filename)
	errs := v.Validate(cfg)
	if errs.HasErrors() {
		return nil, errs
	}
	return cfg, nil
}

// applyDefaults fills in any option the file left at its zero value.
func (c *Config) applyDefaults() {
	if c.MaxSegmentSize == 0 {
		c.MaxSegmentSize = DefaultMaxSegmentSize
	}
	if c.ReassemblyTimeoutMS == 0 {
		c.ReassemblyTimeoutMS = DefaultReassemblyTimeout
	}
	if c.MaxLLDPTLVs == 0 {
		c.MaxLLDPTLVs = DefaultMaxLLDPTLVs
	}
}

// ReassemblyTimeout converts ReassemblyTimeoutMS to a time.Duration for
// pkg/reassembly.New.
func (c *Config) ReassemblyTimeout() time.Duration {
	return time.Duration(c.ReassemblyTimeoutMS) * time.Millisecond
}

// ALHardwareAddr parses ALMACAddress.
func (c *Config) ALHardwareAddr() (net.HardwareAddr, error) {
	return net.ParseMAC(c.ALMACAddress)
}

// InterfaceByName returns the configured interface named name, or nil
// if none matches.
func (c *Config) InterfaceByName(name string) *InterfaceConfig {
	for i := range c.Interfaces {
		if c.Interfaces[i].Name == name {
			return &c.Interfaces[i]
		}
	}
	return nil
}
