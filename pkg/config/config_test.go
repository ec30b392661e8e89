package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "node.yaml")
	body := `
al_mac_address: "00:11:22:33:44:55"
interfaces:
  - name: eth0
    mac: "00:11:22:33:44:66"
    media_type: 0
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxSegmentSize != DefaultMaxSegmentSize {
		t.Errorf("max segment size = %d, want default %d", cfg.MaxSegmentSize, DefaultMaxSegmentSize)
	}
	if cfg.ReassemblyTimeoutMS != DefaultReassemblyTimeout {
		t.Errorf("reassembly timeout = %d, want default %d", cfg.ReassemblyTimeoutMS, DefaultReassemblyTimeout)
	}
	if cfg.MaxLLDPTLVs != DefaultMaxLLDPTLVs {
		t.Errorf("max lldp tlvs = %d, want default %d", cfg.MaxLLDPTLVs, DefaultMaxLLDPTLVs)
	}
}

func TestLoadRejectsBadMAC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "node.yaml")
	body := `
al_mac_address: "not-a-mac"
interfaces:
  - name: eth0
    mac: "00:11:22:33:44:66"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load: want error for invalid al_mac_address, got nil")
	}
}

func TestLoadRejectsDuplicateInterfaceMAC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "node.yaml")
	body := `
al_mac_address: "00:11:22:33:44:55"
interfaces:
  - name: eth0
    mac: "00:11:22:33:44:66"
  - name: eth1
    mac: "00:11:22:33:44:66"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load: want error for duplicate interface MAC, got nil")
	}
}

func TestReassemblyTimeout(t *testing.T) {
	cfg := Default()
	cfg.ReassemblyTimeoutMS = 2500
	if got, want := cfg.ReassemblyTimeout().Milliseconds(), int64(2500); got != want {
		t.Errorf("ReassemblyTimeout() = %dms, want %dms", got, want)
	}
}

func TestInterfaceByName(t *testing.T) {
	cfg := Default()
	cfg.Interfaces = []InterfaceConfig{{Name: "eth0", MAC: "00:11:22:33:44:66"}}

	if got := cfg.InterfaceByName("eth0"); got == nil {
		t.Fatal("InterfaceByName(eth0) = nil, want match")
	}
	if got := cfg.InterfaceByName("eth1"); got != nil {
		t.Errorf("InterfaceByName(eth1) = %+v, want nil", got)
	}
}
