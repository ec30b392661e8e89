package cmdu

import (
	"net"
	"testing"

	"github.com/netlayer/ieee1905al/pkg/ieee1905tlv"
	"github.com/netlayer/ieee1905al/pkg/tlv"
)

func mustMAC(s string) net.HardwareAddr {
	mac, err := net.ParseMAC(s)
	if err != nil {
		panic(err)
	}
	return mac
}

func TestForgeParseHeaderRoundTrip(t *testing.T) {
	h := Header{
		DstMAC: mustMAC("01:80:c2:00:00:13"), SrcMAC: mustMAC("aa:bb:cc:dd:ee:ff"),
		MessageVersion: 0, MessageType: TypeTopologyQuery, MessageID: 7, FragmentID: 0,
		LastFragmentIndicator: true, RelayIndicator: false,
	}
	buf, err := ForgeHeader(h)
	if err != nil {
		t.Fatalf("ForgeHeader() error = %v", err)
	}
	if len(buf) != HeaderLen {
		t.Fatalf("len(buf) = %d, want %d", len(buf), HeaderLen)
	}

	got, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	if got.MessageType != h.MessageType || got.MessageID != h.MessageID || !got.LastFragmentIndicator {
		t.Fatalf("ParseHeader() = %+v, want %+v", got, h)
	}
}

func TestParseHeaderRejectsWrongEtherType(t *testing.T) {
	h := Header{DstMAC: mustMAC("01:80:c2:00:00:13"), SrcMAC: mustMAC("aa:bb:cc:dd:ee:ff")}
	buf, err := ForgeHeader(h)
	if err != nil {
		t.Fatalf("ForgeHeader() error = %v", err)
	}
	buf[12] = 0x08 // corrupt EtherType field (offset 12-13)
	buf[13] = 0x00

	_, err = ParseHeader(buf)
	if err == nil {
		t.Fatal("ParseHeader() with bad EtherType should fail")
	}
}

func TestParseHeaderRejectsShortBuffer(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderLen-1))
	if err == nil {
		t.Fatal("ParseHeader() with short buffer should fail")
	}
}

func TestForgeParseCMDURoundTrip(t *testing.T) {
	defs := ieee1905tlv.DefaultTable()
	mac := mustMAC("aa:bb:cc:dd:ee:ff")

	c := CMDU{MessageVersion: 0, MessageType: TypeTopologyResponse, MessageID: 99}
	if err := c.TLVs.Add(defs, &ieee1905tlv.ALMACAddress{MAC: mac}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	segments, err := ForgeCMDU(defs, c, 1500)
	if err != nil {
		t.Fatalf("ForgeCMDU() error = %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("len(segments) = %d, want 1", len(segments))
	}

	parsed, err := ParseCMDU(defs, Header{MessageVersion: 0, MessageType: TypeTopologyResponse, MessageID: 99}, segments)
	if err != nil {
		t.Fatalf("ParseCMDU() error = %v", err)
	}
	if !CompareCMDU(defs, c, parsed, false) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", parsed, c)
	}
}

func TestForgeFragmentsSplitsAtMTU(t *testing.T) {
	defs := ieee1905tlv.DefaultTable()
	dst := mustMAC("01:80:c2:00:00:13")
	src := mustMAC("aa:bb:cc:dd:ee:ff")

	c := CMDU{MessageVersion: 0, MessageType: TypeVendorSpecific, MessageID: 1}
	// Force >1500 bytes of TLV payload across many distinct unknown-type
	// TLVs so the whole CMDU cannot fit a single 1500-byte-MTU frame.
	// Each needs a distinct type byte since duplicates of an
	// undefined (non-aggregating) type are rejected by List.Add.
	for i := 0; i < 40; i++ {
		c.TLVs.Items = append(c.TLVs.Items, &tlv.Unknown{
			TLVType: uint8(0xC0 + i),
			Value:   make([]byte, 80),
		})
	}

	frames, err := ForgeFragments(defs, c, dst, src, 1500)
	if err != nil {
		t.Fatalf("ForgeFragments() error = %v", err)
	}
	if len(frames) < 2 {
		t.Fatalf("len(frames) = %d, want >1 for oversized CMDU at 1500 MTU", len(frames))
	}
	for i, f := range frames {
		if len(f) > 1500 {
			t.Fatalf("frame %d length %d exceeds MTU 1500", i, len(f))
		}
		h, err := ParseHeader(f[:HeaderLen])
		if err != nil {
			t.Fatalf("ParseHeader(frame %d) error = %v", i, err)
		}
		if int(h.FragmentID) != i {
			t.Fatalf("frame %d FragmentID = %d, want %d", i, h.FragmentID, i)
		}
		wantLast := i == len(frames)-1
		if h.LastFragmentIndicator != wantLast {
			t.Fatalf("frame %d LastFragmentIndicator = %v, want %v", i, h.LastFragmentIndicator, wantLast)
		}
	}
}

func TestParseCMDURejectsEmptyFragmentList(t *testing.T) {
	defs := ieee1905tlv.DefaultTable()
	_, err := ParseCMDU(defs, Header{}, nil)
	if err == nil {
		t.Fatal("ParseCMDU() with no fragments should fail")
	}
}

func TestParseCMDURejectsTerminatorInNonFinalFragment(t *testing.T) {
	defs := ieee1905tlv.DefaultTable()
	// fragment 0: bare End-Of-Message terminator, followed by a real
	// final fragment — the terminator must appear only in the last one.
	frag0 := []byte{0x00, 0x00, 0x00}
	frag1 := []byte{0x00, 0x00, 0x00}

	_, err := ParseCMDU(defs, Header{}, [][]byte{frag0, frag1})
	if err == nil {
		t.Fatal("ParseCMDU() with terminator in a non-final fragment should fail")
	}
}

func TestParseCMDURejectsMissingFinalTerminator(t *testing.T) {
	defs := ieee1905tlv.DefaultTable()
	// No End-Of-Message TLV anywhere.
	frag := []byte{0x01, 0x00, 0x01, 0xAA}

	_, err := ParseCMDU(defs, Header{}, [][]byte{frag})
	if err == nil {
		t.Fatal("ParseCMDU() with no terminator should fail")
	}
}
