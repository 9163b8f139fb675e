package app

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/popover/internal/config"
	"github.com/zhubert/popover/internal/geometry"
	"github.com/zhubert/popover/internal/keys"
	"github.com/zhubert/popover/internal/popover"
	"github.com/zhubert/popover/internal/ui"
)

func center(r geometry.Rect) (int, int) {
	return int(r.Origin.X + r.Size.Width/2), int(r.Origin.Y + r.Size.Height/2)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RubberBanding = []string{"diagonal"}
	if _, err := New(cfg, "test"); err == nil {
		t.Fatal("Expected error for an invalid config")
	}
}

func TestWindowSize_ResizesSurface(t *testing.T) {
	m := testModel(t, 100, 40)
	if got := m.surface.Container().Bounds(); got != geometry.R(0, 1, 100, 38) {
		t.Errorf("Bounds() = %v", got)
	}

	m = setSize(m, 120, 30)
	if got := m.surface.Container().Bounds(); got != geometry.R(0, 1, 120, 28) {
		t.Errorf("Bounds() after resize = %v", got)
	}
	if b, _ := m.buttonFor("1"); b.frame.Origin != geometry.Pt(ButtonMargin, 2) {
		t.Errorf("first button at %v", b.frame.Origin)
	}
}

func TestPresetKeys(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.Name, func(t *testing.T) {
			m := testModel(t, 100, 40)
			m = sendKey(m, p.Key)

			pop := presented(t, m, p.Name)
			if !pop.Context().Visible() {
				t.Error("Expected popover to be measured and visible after the update")
			}
			if !m.surface.Bounds.ContainsRect(pop.Context().Frame()) {
				t.Errorf("frame %v outside the surface", pop.Context().Frame())
			}
		})
	}
}

func TestTooltip_BelowItsButton(t *testing.T) {
	m := testModel(t, 100, 40)
	m = sendKey(m, "1")

	b, _ := m.buttonFor("1")
	frame := presented(t, m, "tooltip").Context().Frame()
	if frame.MinY() != b.frame.MaxY() {
		t.Errorf("tooltip top = %v, want button bottom %v", frame.MinY(), b.frame.MaxY())
	}
	if frame.MinX() < 1 {
		t.Errorf("tooltip left = %v, want inside the padding", frame.MinX())
	}
}

func TestPresentTwice_Replaces(t *testing.T) {
	m := testModel(t, 100, 40)
	m = sendKey(m, "1")
	first := presented(t, m, "tooltip")

	m = sendKey(m, "1")
	second := presented(t, m, "tooltip")

	if first == second {
		t.Fatal("Expected a new popover")
	}
	if first.IsPresented() {
		t.Error("Expected the old popover to be gone")
	}
	if n := len(m.Popovers()); n != 1 {
		t.Errorf("len(Popovers()) = %d, want 1", n)
	}
}

func TestEscape_DismissesTop(t *testing.T) {
	m := testModel(t, 100, 40)
	m = sendKey(m, "1")
	m = sendKey(m, "3")
	m = sendKey(m, keys.Escape)

	ps := m.Popovers()
	if len(ps) != 1 || ps[0].Tag() != "tooltip" {
		t.Errorf("Popovers() = %v, want only the tooltip", ps)
	}

	m = sendKey(m, keys.Escape)
	m = sendKey(m, keys.Escape) // nothing left
	if len(m.Popovers()) != 0 {
		t.Error("Expected every popover dismissed")
	}
}

func TestTap(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want []string
	}{
		{name: "outside dismisses", x: 90, y: 30, want: nil},
		{name: "on its own button replaces", x: ButtonMargin + 1, y: 2, want: []string{"tooltip"}},
		{name: "on another button dismisses and presents", x: 28, y: 2, want: []string{"corners"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t, 100, 40)
			m = sendKey(m, "1")
			m = click(m, tt.x, tt.y)

			var got []string
			for _, p := range m.Popovers() {
				got = append(got, p.Tag())
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("presented = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTap_InsidePopoverKeepsIt(t *testing.T) {
	m := testModel(t, 100, 40)
	m = sendKey(m, "3")
	x, y := center(presented(t, m, "corners").Context().Frame())

	m = click(m, x, y)
	if len(m.Popovers()) != 1 {
		t.Error("Expected a tap inside the popover to keep it")
	}
}

func TestSheet_DragDownDismisses(t *testing.T) {
	m := testModel(t, 100, 40)
	m = sendKey(m, "2")
	sheet := presented(t, m, "sheet")
	x, y := center(sheet.Context().Frame())

	m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	m.Update(tea.MouseMotionMsg{X: x, Y: y + 2, Button: tea.MouseLeft})
	if m.surface.Container().Dragging() != sheet {
		t.Fatal("Expected the sheet to be dragged")
	}
	if sheet.Context().Phase != popover.PhaseDragging {
		t.Errorf("phase = %v, want dragging", sheet.Context().Phase)
	}

	m.Update(tea.MouseMotionMsg{X: x, Y: y + 30, Button: tea.MouseLeft})
	m.Update(tea.MouseReleaseMsg{X: x, Y: y + 30, Button: tea.MouseLeft})

	if sheet.IsPresented() {
		t.Error("Expected the sheet to be dismissed")
	}
	if m.surface.Container().Dragging() != nil {
		t.Error("Expected the drag to be over")
	}
}

func TestSheet_DragUpSnapsBack(t *testing.T) {
	m := testModel(t, 100, 40)
	m = sendKey(m, "2")
	sheet := presented(t, m, "sheet")
	static := sheet.Context().StaticFrame
	x, y := center(static)

	m = drag(m, x, y, [2]int{x, y - 3}, [2]int{x, y - 6})

	if !sheet.IsPresented() {
		t.Fatal("Expected the sheet to stay presented")
	}
	ctx := sheet.Context()
	if ctx.Offset != (geometry.Vector{}) || ctx.StaticFrame != static {
		t.Errorf("context = %+v, want back at %v", ctx, static)
	}
	if !ctx.Animated {
		t.Error("Expected the snap back to be animated")
	}
}

func TestCorners_DragCommitsToClosestAnchor(t *testing.T) {
	m := testModel(t, 100, 40)
	m = sendKey(m, "3")
	corners := presented(t, m, "corners")
	start := corners.Context().Frame()
	x, y := int(start.MinX())+2, int(start.MinY())+2

	m = drag(m, x, y, [2]int{x + 40, y + 10}, [2]int{95, 36})

	anchor, ok := corners.Context().SelectedAnchor()
	if !ok || anchor != popover.AnchorBottomRight {
		t.Errorf("SelectedAnchor() = %v, %v, want bottom-right", anchor, ok)
	}
	frame := corners.Context().Frame()
	bounds := m.surface.Container().Bounds()
	if frame.MaxX() != bounds.MaxX()-1 || frame.MaxY() != bounds.MaxY()-1 {
		t.Errorf("frame = %v, want against the bottom-right padding", frame)
	}
}

func TestMenu_TakesKeys(t *testing.T) {
	m := testModel(t, 100, 40)
	m = sendKey(m, "5")

	m = sendKey(m, "q")
	if m.quitting {
		t.Fatal("q should go to the menu filter, not quit")
	}

	m = sendKey(m, keys.Escape)
	if len(m.Popovers()) != 0 {
		t.Fatal("Expected esc to dismiss the menu")
	}
}

func TestMenu_SelectsTheme(t *testing.T) {
	m := testModel(t, 100, 40)
	m = sendKey(m, "5")
	m = sendKey(m, keys.Down)
	m = sendKey(m, keys.Enter)

	if ui.CurrentThemeName() != ui.ThemeNord {
		t.Errorf("theme = %v, want nord", ui.CurrentThemeName())
	}
	if m.cfg.Theme != string(ui.ThemeNord) {
		t.Errorf("config theme = %q", m.cfg.Theme)
	}
	if len(m.Popovers()) != 0 {
		t.Error("Expected the menu to close after a selection")
	}
}

func TestConfirm_DismissAll(t *testing.T) {
	m := testModel(t, 100, 40)
	m = sendKey(m, "1")
	m = sendKey(m, "3")
	m = sendKey(m, "6")

	if _, in := m.renderer.Focused(); in == nil {
		t.Fatal("Expected the confirm form to have focus")
	}

	// the confirm callback dismisses everything, itself included
	m.dismissAll()
	if len(m.Popovers()) != 0 {
		t.Errorf("len(Popovers()) = %d, want 0", len(m.Popovers()))
	}
}

func TestReload_Announces(t *testing.T) {
	m := testModel(t, 100, 40)
	m = sendKey(m, "r")

	if !strings.Contains(ansi.Strip(m.header.View()), "Reloaded") {
		t.Errorf("header = %q", ansi.Strip(m.header.View()))
	}
	if m.announcer.Cmd() != nil {
		t.Error("Expected the clear timer to have been handed out already")
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", keys.CtrlC} {
		m := testModel(t, 100, 40)
		_, cmd := m.Update(keyPress(k))
		if !m.quitting || cmd == nil {
			t.Errorf("%s: quitting = %v, cmd = %v", k, m.quitting, cmd)
		}
	}
}

func TestDeferredMsg_RunsScheduledWork(t *testing.T) {
	m := testModel(t, 100, 40)
	ran := false
	m.scheduler.Schedule(func() { ran = true })

	m.Update(ui.DeferredMsg{})
	if !ran {
		t.Error("Expected deferred work to run")
	}
	if m.scheduler.Pending() != 0 {
		t.Errorf("Pending() = %d", m.scheduler.Pending())
	}
}

func TestView(t *testing.T) {
	m, err := New(config.DefaultConfig(), "test")
	if err != nil {
		t.Fatal(err)
	}
	if v := m.View(); !v.AltScreen || v.MouseMode != tea.MouseModeCellMotion {
		t.Error("Expected alt screen with cell motion mouse")
	}

	m = setSize(m, 100, 40)
	m = sendKey(m, "1")
	m.View()

	surface := ansi.Strip(m.renderSurface())
	for _, p := range Presets() {
		if !strings.Contains(surface, p.Key+" "+p.Name) {
			t.Errorf("Expected button for %s", p.Name)
		}
	}
	if lines := strings.Split(surface, "\n"); len(lines) != m.ctx.ContentHeight {
		t.Errorf("surface has %d lines, want %d", len(lines), m.ctx.ContentHeight)
	}

	layers := m.renderer.Layers()
	if len(layers) != 1 || !strings.Contains(ansi.Strip(layers[0].Content), "below my button") {
		t.Errorf("Layers() = %v", layers)
	}
}

func TestCopy(t *testing.T) {
	tests := []struct {
		name       string
		present    []string
		copyErr    error
		wantCopied string
		wantStatus string
	}{
		{name: "nothing to copy", present: []string{"1"}},
		{name: "code source", present: []string{"4", "1"}, wantCopied: rubberBandSource, wantStatus: "Copied rubberband.go"},
		{name: "clipboard unavailable", present: []string{"4"}, copyErr: errors.New("no display"), wantStatus: "Clipboard unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t, 100, 40)
			var copied string
			m.copyText = func(s string) error {
				if tt.copyErr != nil {
					return tt.copyErr
				}
				copied = s
				return nil
			}
			for _, k := range tt.present {
				m = sendKey(m, k)
			}
			m = sendKey(m, "y")

			if tt.wantCopied != "" && copied != strings.TrimRight(tt.wantCopied, "\n") {
				t.Errorf("copied = %q", copied)
			}
			if tt.wantCopied == "" && copied != "" {
				t.Errorf("copied = %q, want nothing", copied)
			}
			if tt.wantStatus != "" && !strings.Contains(ansi.Strip(m.header.View()), tt.wantStatus) {
				t.Errorf("header = %q, want %q", ansi.Strip(m.header.View()), tt.wantStatus)
			}
		})
	}
}

func TestRender(t *testing.T) {
	m, err := New(config.DefaultConfig(), "test")
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Render(); got != "Loading..." {
		t.Errorf("Render() before resize = %q", got)
	}

	m = setSize(m, 100, 40)
	m = sendKey(m, "3")
	screen := ansi.Strip(m.Render())
	if !strings.Contains(screen, "Corners") {
		t.Error("Expected the corners popover on screen")
	}
}

func TestIdle(t *testing.T) {
	m := testModel(t, 100, 40)
	if !m.Idle() {
		t.Fatal("Expected a fresh model to be idle")
	}

	m = sendKey(m, "2")
	if m.Idle() {
		t.Fatal("Expected the sheet to be sliding in")
	}
	for i := 0; i < 1000 && !m.Idle(); i++ {
		m.Update(ui.DeferredMsg{})
		m.Update(ui.AnimationTickMsg{})
	}
	if !m.Idle() {
		t.Error("Expected the sheet to settle")
	}
}
