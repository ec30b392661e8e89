// Package explore is a terminal viewer over a reassembly registry and
// a stream of decoded CMDUs: a scrollable list with a detail pane
// showing the selected CMDU's TLV tree.
//
// Grounded on the teacher's pkg/interactive model/Update/View shape,
// generalized from device/error-injection menus to a read-only decode
// viewer: no menu, no value-input mode, just list navigation and a
// detail pane.
package explore

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/netlayer/ieee1905al/pkg/cmdu"
	"github.com/netlayer/ieee1905al/pkg/ieee1905tlv"
	"github.com/netlayer/ieee1905al/pkg/reassembly"
	"github.com/netlayer/ieee1905al/pkg/render"
	"github.com/netlayer/ieee1905al/pkg/tlv"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

// Entry is one decoded CMDU shown in the list.
type Entry struct {
	ReceivedAt time.Time
	SrcMAC     string
	CMDU       cmdu.CMDU
}

type model struct {
	ifaceName string
	entries   []Entry
	selected  int
	registry  *reassembly.Registry
	startTime time.Time
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.EnterAltScreen)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.entries)-1 {
				m.selected++
			}
		}
	case tickMsg:
		return m, tickCmd()
	case pushMsg:
		m.entries = append(m.entries, Entry(msg))
		m.selected = len(m.entries) - 1
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf(" al1905ctl explore - %s ", m.ifaceName)))
	s.WriteString("\n\n")

	stats := fmt.Sprintf("Uptime: %s  |  CMDUs decoded: %d  |  Partial reassembly contexts: %d",
		time.Since(m.startTime).Round(time.Second), len(m.entries), m.registry.Len())
	s.WriteString(statsStyle.Render(stats))
	s.WriteString("\n\n")

	if len(m.entries) == 0 {
		s.WriteString("  (no CMDUs decoded yet)\n")
		return s.String()
	}

	for i, e := range m.entries {
		line := fmt.Sprintf("%s  type=0x%04x  id=%d  tlvs=%d",
			e.ReceivedAt.Format("15:04:05"), e.CMDU.MessageType, e.CMDU.MessageID, len(e.CMDU.TLVs.Items))
		if i == m.selected {
			s.WriteString(selectedStyle.Render("→ " + line))
		} else {
			s.WriteString("  " + line)
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(detailStyle.Render(m.renderDetail()))
	s.WriteString("\n\nq: quit  ↑/↓: select\n")

	return s.String()
}

func (m model) renderDetail() string {
	if m.selected < 0 || m.selected >= len(m.entries) {
		return "(nothing selected)"
	}
	e := m.entries[m.selected]

	var b render.Builder
	b.Printf("From: %s", e.SrcMAC)
	b.Printf("Message type: 0x%04x  Message ID: %d", e.CMDU.MessageType, e.CMDU.MessageID)
	defs := ieee1905tlv.DefaultTable()
	tlv.PrintList(defs, e.CMDU.TLVs, &b, "  ")
	return b.String()
}

// New builds the model the TUI starts from.
func New(ifaceName string, registry *reassembly.Registry) model {
	return model{ifaceName: ifaceName, registry: registry, startTime: time.Now()}
}

// Push feeds a newly-decoded CMDU into the viewer. Exposed so a caller
// owns the goroutine reading the wire and pushes decode results in
// through a tea.Program's Send.
func Push(p *tea.Program, e Entry) {
	p.Send(pushMsg(e))
}

type pushMsg Entry

// Run starts the TUI, blocking until the user quits. feed is started on
// its own goroutine with the *tea.Program, so the caller's capture loop
// can feed it decoded CMDUs via Push.
func Run(ifaceName string, registry *reassembly.Registry, feed func(p *tea.Program)) error {
	m := New(ifaceName, registry)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if feed != nil {
		go feed(p)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("explore: running program: %w", err)
	}
	return nil
}
