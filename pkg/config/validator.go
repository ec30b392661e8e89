package config

import (
	"fmt"
	"net"
)

// minSegmentSize is the smallest MaxSegmentSize the validator accepts.
// It is well above the 28 bytes that one minimal TLV (3-byte header),
// the terminator (3 bytes) and the 22-byte Ethernet-plus-CMDU header
// take together.
const minSegmentSize = 60

// maxVerbosity is the highest spec §6.3 verbosity level (error, warning,
// info, detail all print).
const maxVerbosity = 3

// Validator checks a Config for internally-consistent, usable values.
type Validator struct {
	errors *ConfigErrorList
	file   string
}

// NewValidator creates a Validator that attributes diagnostics to file.
func NewValidator(file string) *Validator {
	return &Validator{
		errors: &ConfigErrorList{File: file, Valid: true},
		file:   file,
	}
}

// Validate checks cfg and returns the accumulated errors and warnings.
func (v *Validator) Validate(cfg *Config) *ConfigErrorList {
	if cfg == nil {
		v.addError("", "configuration is nil")
		return v.errors
	}

	v.validateALMAC(cfg)
	v.validateInterfaces(cfg)
	v.validateLimits(cfg)

	return v.errors
}

func (v *Validator) validateALMAC(cfg *Config) {
	if cfg.ALMACAddress == "" {
		v.addError("al_mac_address", "al_mac_address is required")
		return
	}
	if _, err := net.ParseMAC(cfg.ALMACAddress); err != nil {
		v.addError("al_mac_address", fmt.Sprintf("invalid MAC literal: %v", err))
	}
}

func (v *Validator) validateInterfaces(cfg *Config) {
	if len(cfg.Interfaces) == 0 {
		v.addWarning("interfaces", "no interfaces defined in configuration")
	}

	names := make(map[string]bool)
	macs := make(map[string]string)

	for i, iface := range cfg.Interfaces {
		prefix := fmt.Sprintf("interfaces[%d]", i)

		if iface.Name == "" {
			v.addError(prefix+".name", "interface name is required")
		} else if names[iface.Name] {
			v.addError(prefix+".name", fmt.Sprintf("duplicate interface name: %s", iface.Name))
		} else {
			names[iface.Name] = true
		}

		mac, err := net.ParseMAC(iface.MAC)
		if err != nil {
			v.addError(prefix+".mac", fmt.Sprintf("invalid MAC literal: %v", err))
			continue
		}
		if owner, exists := macs[mac.String()]; exists {
			v.addError(prefix+".mac", fmt.Sprintf("MAC %s already used by interface %s", mac, owner))
		}
		macs[mac.String()] = iface.Name
	}
}

func (v *Validator) validateLimits(cfg *Config) {
	if cfg.MaxSegmentSize < minSegmentSize {
		v.addError("max_segment_size", fmt.Sprintf("must be at least %d, got %d", minSegmentSize, cfg.MaxSegmentSize))
	}
	if cfg.ReassemblyTimeoutMS == 0 {
		v.addError("reassembly_timeout_ms", "must be nonzero")
	}
	if cfg.Verbosity < 0 || cfg.Verbosity > maxVerbosity {
		v.addError("verbosity", fmt.Sprintf("must be between 0 and %d, got %d", maxVerbosity, cfg.Verbosity))
	}
	if cfg.MaxLLDPTLVs <= 0 {
		v.addError("max_lldp_tlvs", fmt.Sprintf("must be positive, got %d", cfg.MaxLLDPTLVs))
	}
}

func (v *Validator) addError(field, message string) {
	v.errors.Add(NewConfigError(v.file, field, message))
}

func (v *Validator) addWarning(field, message string) {
	v.errors.Add(NewConfigWarning(v.file, field, message))
}
