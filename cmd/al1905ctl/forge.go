package main

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/netlayer/ieee1905al/pkg/cmdu"
	"github.com/netlayer/ieee1905al/pkg/config"
	"github.com/netlayer/ieee1905al/pkg/ieee1905tlv"
)

var forgeOpts struct {
	srcMAC  string
	dstMAC  string
	almac   string
	output  string
	msgType uint16
}

var forgeCmd = &cobra.Command{
	Use:   "forge",
	Short: "Forge a CMDU carrying an AL MAC Address TLV and write it to a file",
	RunE:  runForge,
}

func init() {
	rootCmd.AddCommand(forgeCmd)

	forgeCmd.Flags().StringVar(&forgeOpts.srcMAC, "src", "", "source MAC address (required)")
	forgeCmd.Flags().StringVar(&forgeOpts.dstMAC, "dst", "01:80:c2:00:00:13", "destination MAC address")
	forgeCmd.Flags().StringVar(&forgeOpts.almac, "al-mac", "", "AL MAC address carried in the TLV (defaults to --src)")
	forgeCmd.Flags().StringVar(&forgeOpts.output, "output", "frame.bin", "output file")
	forgeCmd.Flags().Uint16Var(&forgeOpts.msgType, "type", cmdu.TypeTopologyQuery, "CMDU message type")
	forgeCmd.MarkFlagRequired("src")
}

func runForge(cmd *cobra.Command, args []string) error {
	src, err := net.ParseMAC(forgeOpts.srcMAC)
	if err != nil {
		return fmt.Errorf("parsing --src: %w", err)
	}
	dst, err := net.ParseMAC(forgeOpts.dstMAC)
	if err != nil {
		return fmt.Errorf("parsing --dst: %w", err)
	}

	almacLiteral := forgeOpts.almac
	if almacLiteral == "" {
		almacLiteral = forgeOpts.srcMAC
	}
	almac, err := net.ParseMAC(almacLiteral)
	if err != nil {
		return fmt.Errorf("parsing --al-mac: %w", err)
	}

	defs := ieee1905tlv.DefaultTable()
	c := cmdu.CMDU{
		MessageVersion: 0,
		MessageType:    forgeOpts.msgType,
		MessageID:      1,
	}
	if err := c.TLVs.Add(defs, &ieee1905tlv.ALMACAddress{MAC: almac}); err != nil {
		return fmt.Errorf("adding AL MAC Address TLV: %w", err)
	}

	fragments, err := cmdu.ForgeFragments(defs, c, dst, src, config.DefaultMaxSegmentSize)
	if err != nil {
		return fmt.Errorf("forging CMDU: %w", err)
	}

	f, err := os.Create(forgeOpts.output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", forgeOpts.output, err)
	}
	defer f.Close()

	for _, frame := range fragments {
		if _, err := f.Write(frame); err != nil {
			return fmt.Errorf("writing %s: %w", forgeOpts.output, err)
		}
	}

	fmt.Printf("wrote %d fragment(s) to %s\n", len(fragments), forgeOpts.output)
	return nil
}
