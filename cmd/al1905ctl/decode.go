package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netlayer/ieee1905al/pkg/cmdu"
	"github.com/netlayer/ieee1905al/pkg/ieee1905tlv"
	"github.com/netlayer/ieee1905al/pkg/render"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Decode a raw Ethernet frame file as a single-fragment CMDU",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	if len(data) < cmdu.HeaderLen {
		return fmt.Errorf("%s: too short for a CMDU header (%d bytes)", args[0], len(data))
	}

	header, err := cmdu.ParseHeader(data[:cmdu.HeaderLen])
	if err != nil {
		return fmt.Errorf("parsing header: %w", err)
	}

	defs := ieee1905tlv.DefaultTable()
	decoded, err := cmdu.ParseCMDU(defs, header, [][]byte{data[cmdu.HeaderLen:]})
	if err != nil {
		return fmt.Errorf("parsing CMDU: %w", err)
	}

	fmt.Printf("src=%s dst=%s type=0x%04x id=%d relay=%v\n",
		header.SrcMAC, header.DstMAC, decoded.MessageType, decoded.MessageID, decoded.RelayIndicator)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"type", "name", "detail"})
	for _, t := range decoded.TLVs.Items {
		def := defs[t.Type()]
		name := def.Name
		if name == "" {
			name = "unknown"
		}
		var b render.Builder
		if def.Print != nil {
			def.Print(t, &b, "")
		}
		table.Append([]string{fmt.Sprintf("0x%02x", t.Type()), name, b.String()})
	}
	table.Render()

	return nil
}
