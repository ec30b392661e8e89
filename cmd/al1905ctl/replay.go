package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netlayer/ieee1905al/pkg/sessionstore"
	"github.com/netlayer/ieee1905al/pkg/transport"
)

var replayOpts struct {
	store     string
	iface     string
	etherType uint16
}

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "List recorded capture sessions, or replay one back onto an interface",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVar(&replayOpts.store, "store", "al1905ctl.db", "session store path")
	replayCmd.Flags().StringVar(&replayOpts.iface, "iface", "", "interface to replay frames onto (required to replay)")
	replayCmd.Flags().Uint16Var(&replayOpts.etherType, "ethertype", 0x893A, "EtherType to send replayed frames with")
}

func runReplay(cmd *cobra.Command, args []string) error {
	store, err := sessionstore.Open(replayOpts.store)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return listSessions(store)
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("parsing session id %q: %w", args[0], err)
	}
	return replaySession(store, id)
}

func listSessions(store *sessionstore.Store) error {
	sessions, err := store.List(0)
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"id", "started", "interface", "frames", "cmdus", "lldps"})
	for _, s := range sessions {
		table.Append([]string{
			strconv.FormatUint(s.ID, 10),
			s.StartedAt.Format("2006-01-02 15:04:05"),
			s.Interface,
			strconv.Itoa(len(s.Frames)),
			strconv.Itoa(s.CMDUCount),
			strconv.Itoa(s.LLDPCount),
		})
	}
	table.Render()
	return nil
}

func replaySession(store *sessionstore.Store, id uint64) error {
	sess, err := store.Get(id)
	if err != nil {
		return fmt.Errorf("loading session %d: %w", id, err)
	}

	if replayOpts.iface == "" {
		return fmt.Errorf("--iface is required to replay a session")
	}

	eng, err := transport.Open(replayOpts.iface)
	if err != nil {
		return fmt.Errorf("opening %s: %w", replayOpts.iface, err)
	}
	defer eng.Close()

	for i, frame := range sess.Frames {
		if len(frame.Data) < 14 {
			continue
		}
		dst := frame.Data[0:6]
		payload := frame.Data[14:]
		if err := eng.Send(dst, replayOpts.etherType, payload); err != nil {
			return fmt.Errorf("replaying frame %d: %w", i, err)
		}
	}

	fmt.Printf("replayed %d frame(s) from session %d onto %s\n", len(sess.Frames), id, replayOpts.iface)
	return nil
}
