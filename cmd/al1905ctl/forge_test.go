package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/netlayer/ieee1905al/pkg/cmdu"
)

func resetForgeOpts(t *testing.T, output string) {
	t.Helper()
	forgeOpts.srcMAC = "aa:bb:cc:dd:ee:ff"
	forgeOpts.dstMAC = "01:80:c2:00:00:13"
	forgeOpts.almac = ""
	forgeOpts.output = output
	forgeOpts.msgType = cmdu.TypeTopologyQuery
}

func TestRunForge_WritesFrameFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "frame.bin")
	resetForgeOpts(t, output)

	if err := runForge(forgeCmd, nil); err != nil {
		t.Fatalf("runForge() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) < cmdu.HeaderLen {
		t.Fatalf("wrote %d bytes, want at least a CMDU header", len(data))
	}
}

func TestRunForge_DefaultsALMACToSrc(t *testing.T) {
	output := filepath.Join(t.TempDir(), "frame.bin")
	resetForgeOpts(t, output)
	forgeOpts.almac = ""

	if err := runForge(forgeCmd, nil); err != nil {
		t.Fatalf("runForge() error = %v", err)
	}
}

func TestRunForge_RejectsBadSrcMAC(t *testing.T) {
	output := filepath.Join(t.TempDir(), "frame.bin")
	resetForgeOpts(t, output)
	forgeOpts.srcMAC = "not-a-mac"

	if err := runForge(forgeCmd, nil); err == nil {
		t.Fatal("runForge() with an invalid --src should fail")
	}
}

func TestRunForge_RejectsBadDstMAC(t *testing.T) {
	output := filepath.Join(t.TempDir(), "frame.bin")
	resetForgeOpts(t, output)
	forgeOpts.dstMAC = "not-a-mac"

	if err := runForge(forgeCmd, nil); err == nil {
		t.Fatal("runForge() with an invalid --dst should fail")
	}
}

func TestRunForge_RejectsBadALMAC(t *testing.T) {
	output := filepath.Join(t.TempDir(), "frame.bin")
	resetForgeOpts(t, output)
	forgeOpts.almac = "not-a-mac"

	if err := runForge(forgeCmd, nil); err == nil {
		t.Fatal("runForge() with an invalid --al-mac should fail")
	}
}
