// Package app is the playground: a Bubble Tea program that presents popovers on
// a terminal surface and routes keys and mouse gestures to them.
package app

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/popover/internal/clipboard"
	"github.com/zhubert/popover/internal/config"
	"github.com/zhubert/popover/internal/geometry"
	"github.com/zhubert/popover/internal/logger"
	"github.com/zhubert/popover/internal/popover"
	"github.com/zhubert/popover/internal/ui"
)

// Model is the main Bubble Tea model
type Model struct {
	cfg     *config.Config
	version string
	base    popover.Attributes

	ctx    *ui.ViewContext
	header *ui.Header
	footer *ui.Footer
	keys   KeyMap

	surface    *popover.Surface
	scheduler  *ui.Scheduler
	animator   *ui.Animator
	renderer   *ui.Renderer
	recognizer *ui.DragRecognizer
	announcer  *ui.StatusAnnouncer

	// buttons are the source frames on the base screen, one per preset
	buttons []button

	// copyText puts text on the system clipboard
	copyText func(string) error

	quitting bool
	log      *slog.Logger
}

// button is a clickable preset trigger drawn on the base screen.
type button struct {
	preset Preset
	label  string
	frame  geometry.Rect
}

// New creates the playground from a merged config. It fails when the config
// does not produce valid popover attributes.
func New(cfg *config.Config, version string) (*Model, error) {
	base, err := cfg.BaseAttributes()
	if err != nil {
		return nil, err
	}
	if cfg.Theme != "" {
		ui.SetThemeByName(cfg.Theme)
	}

	m := &Model{
		cfg:       cfg,
		version:   version,
		base:      base,
		ctx:       ui.NewViewContext(),
		header:    ui.NewHeader(),
		keys:      DefaultKeyMap(),
		scheduler: ui.NewScheduler(),
		copyText:  clipboard.WriteText,
		log:       logger.ComponentLogger("app"),
	}
	m.footer = ui.NewFooter(m.keys.ShortHelp()...)
	m.announcer = ui.NewStatusAnnouncer(m.header)

	m.surface = popover.NewSurface(geometry.Rect{}, m.scheduler)
	m.surface.Announcer = m.announcer

	var frequency, damping float64
	var fps int
	if f := cfg.Animation.Frequency; f != nil {
		frequency = *f
	}
	if d := cfg.Animation.Damping; d != nil {
		damping = *d
	}
	if f := cfg.Animation.FPS; f != nil {
		fps = *f
	}
	m.animator = ui.NewAnimator(fps, frequency, damping)
	m.renderer = ui.NewRenderer(m.surface.Container(), m.animator)

	var minDistance, deceleration float64
	if d := cfg.Drag.MinimumDistance; d != nil {
		minDistance = *d
	}
	if r := cfg.Drag.DecelerationRate; r != nil {
		deceleration = *r
	}
	m.recognizer = ui.NewDragRecognizer(minDistance, deceleration)

	for _, p := range Presets() {
		m.buttons = append(m.buttons, button{preset: p, label: " " + p.Key + " " + p.Name + " "})
	}

	m.log.Info("playground created", "version", version, "theme", ui.CurrentThemeName())
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Surface returns the surface popovers are presented on.
func (m *Model) Surface() *popover.Surface {
	return m.surface
}

// Popovers returns the presented popovers, bottom-most first.
func (m *Model) Popovers() []*popover.Popover {
	return m.surface.Container().Model().Popovers()
}

// HasDeferredWork reports whether work is waiting for the next DeferredMsg.
func (m *Model) HasDeferredWork() bool {
	return m.scheduler.Pending() > 0
}

// Idle reports whether no deferred work is queued and nothing is animating.
func (m *Model) Idle() bool {
	return !m.HasDeferredWork() && !m.animator.Animating()
}

// SetClock replaces the clock drag velocities are measured with.
func (m *Model) SetClock(now func() time.Time) {
	m.recognizer.SetClock(now)
}

// setSize lays the screen out for a new terminal size.
func (m *Model) setSize(width, height int) {
	m.ctx.UpdateTerminalSize(width, height)
	m.header.SetWidth(m.ctx.TerminalWidth)
	m.footer.SetWidth(m.ctx.TerminalWidth)
	m.surface.Resize(m.ctx.SurfaceBounds())
	m.layoutButtons()
}

// layoutButtons places the preset buttons on the second row of the surface.
func (m *Model) layoutButtons() {
	bounds := m.ctx.SurfaceBounds()
	x := bounds.MinX() + ButtonMargin
	y := bounds.MinY() + 1
	for i := range m.buttons {
		w := float64(len(m.buttons[i].label))
		m.buttons[i].frame = geometry.R(x, y, w, 1)
		x += w + ButtonGap
	}
}

// buttonAt returns the button under pt, if any.
func (m *Model) buttonAt(pt geometry.Point) (button, bool) {
	for _, b := range m.buttons {
		if b.frame.Contains(pt) {
			return b, true
		}
	}
	return button{}, false
}

// buttonFor returns the button that triggers preset key.
func (m *Model) buttonFor(key string) (button, bool) {
	for _, b := range m.buttons {
		if b.preset.Key == key {
			return b, true
		}
	}
	return button{}, false
}
