package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/popover/internal/geometry"
	"github.com/zhubert/popover/internal/popover"
)

func newTestRenderer(t *testing.T) (*popover.Surface, *Scheduler, *Renderer) {
	t.Helper()
	sched := NewScheduler()
	s := popover.NewSurface(geometry.R(0, 1, 80, 22), sched)
	return s, sched, NewRenderer(s.Container(), NewAnimator(60, 6, 0.8))
}

func present(t *testing.T, s *popover.Surface, content Content, opts ...func(*popover.Attributes)) *popover.Popover {
	t.Helper()
	attrs := popover.DefaultAttributes()
	attrs.Position = popover.Absolute(popover.AnchorCenter, popover.AnchorCenter)
	for _, opt := range opts {
		opt(&attrs)
	}
	p, err := popover.New(attrs, content)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	popover.Present(p, s)
	return p
}

func TestRenderer_Measure(t *testing.T) {
	s, sched, r := newTestRenderer(t)
	p := present(t, s, Text{Body: "hello"})

	if p.Context().Visible() {
		t.Fatal("Expected popover hidden before measuring")
	}
	r.Measure()
	if !p.Context().Visible() {
		t.Fatal("Expected popover visible after measuring")
	}
	if got := *p.Context().Size; got != MeasureContent(Text{Body: "hello"}) {
		t.Errorf("size = %v", got)
	}

	r.Measure()
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d, want no reload for an unchanged size", sched.Pending())
	}
}

func TestRenderer_Layers(t *testing.T) {
	s, _, r := newTestRenderer(t)
	present(t, s, Text{Body: "first"})
	present(t, s, Text{Body: "second"})
	r.Measure()
	r.Sync()

	// a popover that has not been measured is skipped
	present(t, s, Text{Body: "third"})

	layers := r.Layers()
	if len(layers) != 2 {
		t.Fatalf("len(Layers()) = %d, want 2", len(layers))
	}
	if !strings.Contains(ansi.Strip(layers[0].Content), "first") {
		t.Errorf("layer 0 = %q", layers[0].Content)
	}
	want := MeasureContent(Text{Body: "first"})
	if layers[0].Rect.Dx() != int(want.Width) || layers[0].Rect.Dy() != int(want.Height) {
		t.Errorf("layer rect = %v, want size %v", layers[0].Rect, want)
	}
}

func TestRenderer_Focused(t *testing.T) {
	s, _, r := newTestRenderer(t)
	if p, in := r.Focused(); p != nil || in != nil {
		t.Fatal("Expected nothing focused on an empty surface")
	}

	menu := NewMenu("Pick", []string{"a", "b"}, nil)
	mp := present(t, s, menu)
	present(t, s, Text{Body: "on top"})
	r.Measure()

	p, in := r.Focused()
	if p != mp || in != Interactive(menu) {
		t.Errorf("Focused() = %v, %v, want the menu", p, in)
	}
}

func slideOut(a *popover.Attributes) {
	a.Dismissal.Transition = popover.Transition{Kind: popover.TransitionSlide, Edge: popover.AnchorBottom}
}

func sheet(a *popover.Attributes) {
	a.Position = popover.Absolute(popover.AnchorBottom, popover.AnchorBottom)
	a.ScreenEdgePadding = geometry.EdgeInsets{}
	a.Dismissal.Mode = popover.DismissDragDown
	a.Dismissal.DragMovesPopoverOffScreen = true
	slideOut(a)
}

func TestRenderer_DragDismissalDrawsExit(t *testing.T) {
	s, _, r := newTestRenderer(t)
	p := present(t, s, Text{Body: "sheet"}, sheet)
	r.Measure()
	r.Sync()

	c := s.Container()
	static := p.Context().Frame()
	start := popover.AnchorCenter.Point(static)
	c.DragChanged(popover.DragEvent{Start: start, Translation: geometry.Vec(0, 3)})
	r.Sync()
	got := c.DragEnded(popover.DragEvent{Start: start, Translation: geometry.Vec(0, 3), PredictedEndTranslation: geometry.Vec(0, 30)})
	if got != popover.DragDismissed {
		t.Fatalf("DragEnded() = %v, want dismissed", got)
	}
	r.Sync()

	layers := r.Layers()
	if len(layers) != 1 || !strings.Contains(ansi.Strip(layers[0].Content), "sheet") {
		t.Fatalf("Layers() = %v, want the exiting sheet", layers)
	}
	if !r.animator.Animating() {
		t.Fatal("Expected the exit to animate")
	}
	before := layers[0].Rect.Min.Y
	for i := 0; i < 20; i++ {
		r.animator.Tick()
	}
	if after := r.Layers()[0].Rect.Min.Y; after <= before {
		t.Errorf("exit moved from y=%d to y=%d, want toward the bottom edge", before, after)
	}

	settle(t, r.animator)
	if layers := r.Layers(); len(layers) != 0 {
		t.Errorf("Layers() = %v after the exit settled", layers)
	}
	if _, ok := r.animator.Position(p.ID); ok {
		t.Error("Expected the exit track to be dropped once settled")
	}
}

func TestRenderer_DismissalTransitions(t *testing.T) {
	tests := []struct {
		name     string
		opts     []func(*popover.Attributes)
		replace  bool
		wantExit bool
	}{
		{"slide moves out", []func(*popover.Attributes){slideOut}, false, true},
		{"opacity vanishes", nil, false, false},
		{"replaced vanishes", []func(*popover.Attributes){slideOut}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, r := newTestRenderer(t)
			p := present(t, s, Text{Body: "bye"}, tt.opts...)
			r.Measure()
			r.Sync()
			from, _ := r.animator.Position(p.ID)

			if tt.replace {
				next, err := popover.New(p.Attributes(), Text{Body: "next"})
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}
				popover.Replace(p, next)
			} else {
				popover.Dismiss(p)
			}
			r.Sync()

			exiting := r.animator.Exiting()
			if (len(exiting) == 1) != tt.wantExit {
				t.Fatalf("Exiting() = %d placements, want exit %v", len(exiting), tt.wantExit)
			}
			if !tt.wantExit {
				if _, ok := r.animator.Position(p.ID); ok {
					t.Error("Expected no track for a popover that vanished")
				}
				return
			}
			r.animator.Tick()
			if y := r.animator.Exiting()[0].Frame.Origin.Y; y <= from.Y {
				t.Errorf("exiting y = %v, want below %v", y, from.Y)
			}
		})
	}
}

func TestRenderer_RepresentCancelsExit(t *testing.T) {
	s, _, r := newTestRenderer(t)
	p := present(t, s, Text{Body: "again"}, slideOut)
	r.Measure()
	r.Sync()

	popover.Dismiss(p)
	r.Sync()
	if len(r.animator.Exiting()) != 1 {
		t.Fatal("Expected an exit after dismissal")
	}

	popover.Present(p, s)
	r.Measure()
	r.Sync()
	if n := len(r.animator.Exiting()); n != 0 {
		t.Errorf("Exiting() = %d placements after presenting again", n)
	}
	if layers := r.Layers(); len(layers) != 1 {
		t.Errorf("len(Layers()) = %d, want 1", len(layers))
	}
}
