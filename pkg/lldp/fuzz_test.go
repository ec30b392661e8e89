package lldp

import "testing"

// FuzzParse exercises ParseLLDPPayload (this package's entry point for
// decoding a packed LLDPDU) against arbitrary byte streams, following
// pkg/protocols/lldp_fuzz_test.go's FuzzParse* shape: the parser must
// never panic on malformed input, only ever return an error.
func FuzzParse(f *testing.F) {
	defs := DefaultTable()

	f.Add([]byte{})
	f.Add([]byte{0x02, 0x01, 0x00}) // Chassis ID TLV, length 1 (subtype byte only), no other TLVs or terminator
	f.Add(make([]byte, 64))
	f.Add([]byte{
		0x02, 0x07, 0x04, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, // Chassis ID (MAC subtype)
		0x04, 0x05, 0x02, 'e', 't', 'h', '0', // Port ID
		0x06, 0x02, 0x00, 0x78, // TTL
		0x00, 0x00, // End of LLDPDU
	})

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("ParseLLDPPayload panicked on %x: %v", data, r)
			}
		}()
		_, _ = ParseLLDPPayload(defs, data, 16)
	})
}
