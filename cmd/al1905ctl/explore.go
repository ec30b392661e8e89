package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/netlayer/ieee1905al/pkg/cmdu"
	"github.com/netlayer/ieee1905al/pkg/explore"
	"github.com/netlayer/ieee1905al/pkg/ieee1905tlv"
	"github.com/netlayer/ieee1905al/pkg/reassembly"
	"github.com/netlayer/ieee1905al/pkg/transport"
)

var exploreOpts struct {
	iface   string
	timeout time.Duration
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively view CMDUs decoded live from an interface",
	RunE:  runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().StringVar(&exploreOpts.iface, "iface", "", "interface to sniff CMDUs from (required)")
	exploreCmd.Flags().DurationVar(&exploreOpts.timeout, "timeout", time.Second, "per-read timeout")
	exploreCmd.MarkFlagRequired("iface")
}

func runExplore(cmd *cobra.Command, args []string) error {
	eng, err := transport.Open(exploreOpts.iface)
	if err != nil {
		return fmt.Errorf("opening %s: %w", exploreOpts.iface, err)
	}
	defer eng.Close()

	registry, err := reassembly.New(reassembly.DefaultCapacity, reassembly.DefaultTimeout)
	if err != nil {
		return fmt.Errorf("building reassembly registry: %w", err)
	}
	defs := ieee1905tlv.DefaultTable()

	feed := func(p *tea.Program) {
		for {
			frame, err := eng.Receive(exploreOpts.timeout)
			if err != nil {
				continue
			}
			if frame.EtherType != cmdu.EtherType {
				continue
			}

			const cmduFieldLen = cmdu.HeaderLen - 14 // version, reserved, type, id, fragment, flags
			if len(frame.Payload) < cmduFieldLen {
				continue
			}

			header, err := cmdu.ParseHeader(append(frameHeaderBytes(frame), frame.Payload[:cmduFieldLen]...))
			if err != nil {
				continue
			}

			var srcArr [6]byte
			copy(srcArr[:], frame.SrcMAC)

			complete, fragments, err := registry.AddFragment(srcArr, header.MessageID, header.FragmentID, header.LastFragmentIndicator, frame.Payload[cmduFieldLen:])
			if err != nil || !complete {
				continue
			}

			decoded, err := cmdu.ParseCMDU(defs, header, fragments)
			if err != nil {
				continue
			}

			explore.Push(p, explore.Entry{
				ReceivedAt: time.Now(),
				SrcMAC:     frame.SrcMAC.String(),
				CMDU:       decoded,
			})
		}
	}

	return explore.Run(exploreOpts.iface, registry, feed)
}

func frameHeaderBytes(frame transport.Frame) []byte {
	b := make([]byte, 0, 14)
	b = append(b, frame.DstMAC...)
	b = append(b, frame.SrcMAC...)
	b = append(b, byte(frame.EtherType>>8), byte(frame.EtherType))
	return b
}
