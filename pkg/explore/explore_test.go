package explore

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/netlayer/ieee1905al/pkg/cmdu"
	"github.com/netlayer/ieee1905al/pkg/ieee1905tlv"
	"github.com/netlayer/ieee1905al/pkg/reassembly"
	"github.com/netlayer/ieee1905al/pkg/tlv"
)

func testRegistry(t *testing.T) *reassembly.Registry {
	t.Helper()
	r, err := reassembly.New(reassembly.DefaultCapacity, reassembly.DefaultTimeout)
	if err != nil {
		t.Fatalf("reassembly.New() error = %v", err)
	}
	return r
}

func testEntry(msgType uint16, msgID uint16) Entry {
	var list tlv.List
	list.Items = append(list.Items, &ieee1905tlv.ALMACAddress{})
	return Entry{
		ReceivedAt: time.Now(),
		SrcMAC:     "aa:bb:cc:dd:ee:ff",
		CMDU: cmdu.CMDU{
			MessageType: msgType,
			MessageID:   msgID,
			TLVs:        list,
		},
	}
}

func TestModel_Init(t *testing.T) {
	m := New("eth0", testRegistry(t))
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() returned nil Cmd, want a batch starting the tick and alt screen")
	}
}

func TestModel_Update_QuitKey(t *testing.T) {
	m := New("eth0", testRegistry(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit Cmd for 'q'")
	}
}

func TestModel_Update_PushAppendsAndSelectsLatest(t *testing.T) {
	m := New("eth0", testRegistry(t))

	updated, _ := m.Update(pushMsg(testEntry(cmdu.TypeTopologyDiscovery, 1)))
	m = updated.(model)
	updated, _ = m.Update(pushMsg(testEntry(cmdu.TypeTopologyNotification, 2)))
	m = updated.(model)

	if len(m.entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(m.entries))
	}
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1 (latest pushed entry)", m.selected)
	}
}

func TestModel_Update_ArrowNavigationClampsAtBounds(t *testing.T) {
	m := New("eth0", testRegistry(t))
	updated, _ := m.Update(pushMsg(testEntry(cmdu.TypeTopologyDiscovery, 1)))
	m = updated.(model)
	updated, _ = m.Update(pushMsg(testEntry(cmdu.TypeTopologyNotification, 2)))
	m = updated.(model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(model)
	if m.selected != 1 {
		t.Fatalf("selected = %d, want clamped at 1", m.selected)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(model)
	if m.selected != 0 {
		t.Fatalf("selected = %d, want 0", m.selected)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(model)
	if m.selected != 0 {
		t.Fatalf("selected = %d, want clamped at 0", m.selected)
	}
}

func TestModel_Update_TickReschedules(t *testing.T) {
	m := New("eth0", testRegistry(t))
	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected tickMsg to reschedule another tick Cmd")
	}
}

func TestModel_View_EmptyShowsPlaceholder(t *testing.T) {
	m := New("eth0", testRegistry(t))
	view := m.View()
	if !strings.Contains(view, "no CMDUs decoded yet") {
		t.Errorf("View() = %q, want placeholder text", view)
	}
}

func TestModel_View_ListsEntries(t *testing.T) {
	m := New("eth0", testRegistry(t))
	updated, _ := m.Update(pushMsg(testEntry(cmdu.TypeTopologyDiscovery, 7)))
	m = updated.(model)

	view := m.View()
	if !strings.Contains(view, "id=7") {
		t.Errorf("View() = %q, want it to include the pushed entry's message id", view)
	}
}

func TestModel_RenderDetail_NothingSelected(t *testing.T) {
	m := New("eth0", testRegistry(t))
	if got := m.renderDetail(); got != "(nothing selected)" {
		t.Errorf("renderDetail() = %q, want placeholder", got)
	}
}

func TestModel_RenderDetail_ShowsSelectedCMDU(t *testing.T) {
	m := New("eth0", testRegistry(t))
	updated, _ := m.Update(pushMsg(testEntry(cmdu.TypeTopologyDiscovery, 3)))
	m = updated.(model)

	detail := m.renderDetail()
	if !strings.Contains(detail, "aa:bb:cc:dd:ee:ff") {
		t.Errorf("renderDetail() = %q, want it to include the source MAC", detail)
	}
}
