package wire

import (
	"errors"
	"net"
	"testing"

	"github.com/netlayer/ieee1905al/pkg/al1905errors"
)

func TestReaderReadsNetworkByteOrder(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	r := NewReader(buf)

	u8, err := r.ReadU8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("ReadU8() = %d, %v, want 1, nil", u8, err)
	}

	u16, err := r.ReadU16()
	if err != nil || u16 != 0x0203 {
		t.Fatalf("ReadU16() = 0x%04x, %v, want 0x0203, nil", u16, err)
	}

	u32, err := r.ReadU32()
	if err == nil {
		t.Fatalf("ReadU32() on 2 remaining bytes should fail, got %d", u32)
	}
	if !errors.Is(err, al1905errors.ErrTruncated) {
		t.Fatalf("ReadU32() error = %v, want ErrTruncated", err)
	}
}

func TestReaderReadMACAndSkip(t *testing.T) {
	buf := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0xAA, 0xBB}
	r := NewReader(buf)

	mac, err := r.ReadMAC()
	if err != nil {
		t.Fatalf("ReadMAC() error = %v", err)
	}
	if mac.String() != "00:11:22:33:44:55" {
		t.Fatalf("ReadMAC() = %s, want 00:11:22:33:44:55", mac)
	}

	if err := r.Skip(1); err != nil {
		t.Fatalf("Skip(1) error = %v", err)
	}
	if r.Remaining() != 1 {
		t.Fatalf("Remaining() = %d, want 1", r.Remaining())
	}

	if err := r.Skip(5); err == nil {
		t.Fatal("Skip(5) past end should fail")
	}
}

func TestWriterRoundTripsReader(t *testing.T) {
	w := NewWriter(0)
	w.WriteU8(0x7F)
	w.WriteU16(0xBEEF)
	w.WriteU32(0xDEADBEEF)
	mac, _ := net.ParseMAC("aa:bb:cc:dd:ee:ff")
	if err := w.WriteMAC(mac); err != nil {
		t.Fatalf("WriteMAC() error = %v", err)
	}
	w.WriteBytes([]byte{0x01, 0x02})

	r := NewReader(w.Bytes())
	if u8, err := r.ReadU8(); err != nil || u8 != 0x7F {
		t.Fatalf("ReadU8() = %d, %v", u8, err)
	}
	if u16, err := r.ReadU16(); err != nil || u16 != 0xBEEF {
		t.Fatalf("ReadU16() = 0x%04x, %v", u16, err)
	}
	if u32, err := r.ReadU32(); err != nil || u32 != 0xDEADBEEF {
		t.Fatalf("ReadU32() = 0x%08x, %v", u32, err)
	}
	gotMAC, err := r.ReadMAC()
	if err != nil || gotMAC.String() != mac.String() {
		t.Fatalf("ReadMAC() = %s, %v, want %s", gotMAC, err, mac)
	}
	rest, err := r.ReadBytes(2)
	if err != nil || rest[0] != 0x01 || rest[1] != 0x02 {
		t.Fatalf("ReadBytes(2) = %v, %v", rest, err)
	}
}

func TestWriteMACRejectsWrongLength(t *testing.T) {
	w := NewWriter(0)
	if err := w.WriteMAC(net.HardwareAddr{0x01, 0x02}); err == nil {
		t.Fatal("WriteMAC() with short MAC should fail")
	}
}
