package lldp

import (
	"testing"

	"github.com/netlayer/ieee1905al/pkg/tlv"
)

func minimalPayload() Payload {
	return Payload{
		ChassisID: ChassisID{Subtype: 4, Value: []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}},
		PortID:    PortID{Subtype: 3, Value: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}},
		TTL:       TTL{Seconds: 120},
	}
}

func TestForgeParsePayloadRoundTrip(t *testing.T) {
	defs := DefaultTable()
	p := minimalPayload()

	buf, err := ForgeLLDPPayload(defs, p)
	if err != nil {
		t.Fatalf("ForgeLLDPPayload() error = %v", err)
	}

	got, err := ParseLLDPPayload(defs, buf, DefaultMaxTLVs)
	if err != nil {
		t.Fatalf("ParseLLDPPayload() error = %v", err)
	}
	if got.ChassisID.Subtype != p.ChassisID.Subtype || !bytesEqual(got.ChassisID.Value, p.ChassisID.Value) {
		t.Fatalf("ChassisID = %+v, want %+v", got.ChassisID, p.ChassisID)
	}
	if got.PortID.Subtype != p.PortID.Subtype || !bytesEqual(got.PortID.Value, p.PortID.Value) {
		t.Fatalf("PortID = %+v, want %+v", got.PortID, p.PortID)
	}
	if got.TTL.Seconds != p.TTL.Seconds {
		t.Fatalf("TTL = %+v, want %+v", got.TTL, p.TTL)
	}
}

func TestParsePayloadWithOptionalTLVs(t *testing.T) {
	defs := DefaultTable()
	p := minimalPayload()
	p.Optional = []tlv.TLV{
		&SystemName{Text: "switch-1"},
		&PortDescription{Text: "uplink"},
	}

	buf, err := ForgeLLDPPayload(defs, p)
	if err != nil {
		t.Fatalf("ForgeLLDPPayload() error = %v", err)
	}
	got, err := ParseLLDPPayload(defs, buf, DefaultMaxTLVs)
	if err != nil {
		t.Fatalf("ParseLLDPPayload() error = %v", err)
	}
	if len(got.Optional) != 2 {
		t.Fatalf("len(Optional) = %d, want 2", len(got.Optional))
	}
	name, ok := got.Optional[0].(*SystemName)
	if !ok || name.Text != "switch-1" {
		t.Fatalf("Optional[0] = %+v, want SystemName{switch-1}", got.Optional[0])
	}
	desc, ok := got.Optional[1].(*PortDescription)
	if !ok || desc.Text != "uplink" {
		t.Fatalf("Optional[1] = %+v, want PortDescription{uplink}", got.Optional[1])
	}
}

func TestParsePayloadRejectsMissingMandatoryTLV(t *testing.T) {
	defs := DefaultTable()
	buf, err := ForgeLLDPPayload(defs, minimalPayload())
	if err != nil {
		t.Fatalf("ForgeLLDPPayload() error = %v", err)
	}
	// Truncate right after the Chassis ID TLV, dropping Port ID, TTL, and
	// the terminator, to force missing-mandatory errors.
	truncated := buf[:2+1+len(minimalPayload().ChassisID.Value)]

	_, err = ParseLLDPPayload(defs, truncated, DefaultMaxTLVs)
	if err == nil {
		t.Fatal("ParseLLDPPayload() on a payload missing mandatory TLVs should fail")
	}
}

func TestParsePayloadRejectsTooManyTLVs(t *testing.T) {
	defs := DefaultTable()
	p := minimalPayload()
	p.Optional = []tlv.TLV{&SystemName{Text: "a"}, &PortDescription{Text: "b"}}
	buf, err := ForgeLLDPPayload(defs, p)
	if err != nil {
		t.Fatalf("ForgeLLDPPayload() error = %v", err)
	}

	// 3 mandatory + 2 optional = 5 TLVs; cap at 3 should reject.
	_, err = ParseLLDPPayload(defs, buf, 3)
	if err == nil {
		t.Fatal("ParseLLDPPayload() should reject a payload with more TLVs than maxTLVs")
	}
}
