package demo

import (
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/popover/internal/app"
	"github.com/zhubert/popover/internal/config"
	perrors "github.com/zhubert/popover/internal/errors"
	"github.com/zhubert/popover/internal/keys"
	"github.com/zhubert/popover/internal/logger"
	"github.com/zhubert/popover/internal/ui"
)

// maxDeferredRounds bounds how often deferred work may reschedule itself
// between two inputs.
const maxDeferredRounds = 8

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // How long the frame stays on screen
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every input (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses and clicks (default: 100ms)
	KeyDelay time.Duration

	// FrameDelay is the length of one animation frame (default: 1/60s)
	FrameDelay time.Duration

	// DragSteps is the number of motion events a drag is split into (default: 6)
	DragSteps int

	// MaxSettleFrames bounds a Settle step (default: 600)
	MaxSettleFrames int
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false,
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		FrameDelay:       time.Second / 60,
		DragSteps:        6,
		MaxSettleFrames:  600,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	cfg    *config.Config
	model  *app.Model
	frames []Frame

	// now is the virtual clock drag velocities are measured against
	now time.Time

	currentAnnotation string
	log               *slog.Logger
}

// NewExecutor creates a new demo executor. A nil cfg runs the playground with
// the default configuration.
func NewExecutor(execCfg ExecutorConfig, cfg *config.Config) *Executor {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if execCfg.FrameDelay <= 0 {
		execCfg.FrameDelay = DefaultExecutorConfig().FrameDelay
	}
	return &Executor{
		config: execCfg,
		cfg:    cfg,
		log:    logger.ComponentLogger("demo"),
	}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	e.log.Info("scenario recorded", "scenario", scenario.Name, "frames", len(e.frames))
	return e.frames, nil
}

// setup creates a fresh playground sized for the scenario.
func (e *Executor) setup(scenario *Scenario) error {
	m, err := app.New(e.cfg, "demo")
	if err != nil {
		return err
	}
	e.model = m
	e.frames = nil
	e.currentAnnotation = ""
	e.now = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e.model.SetClock(func() time.Time { return e.now })

	e.update(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})
	return nil
}

func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		n := e.animate(index, int(step.Duration/e.config.FrameDelay))
		if rest := step.Duration - time.Duration(n)*e.config.FrameDelay; rest > 0 {
			e.captureFrame(index, rest)
			e.advance(rest)
		}

	case StepKey:
		e.input(index, keys.Press(step.Key), e.config.KeyDelay)

	case StepTypeText:
		for _, ch := range step.Text {
			e.input(index, keys.Press(string(ch)), e.config.TypeDelay)
		}

	case StepClick:
		e.input(index, tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft}, e.config.FrameDelay)
		e.input(index, tea.MouseReleaseMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft}, e.config.KeyDelay)

	case StepDrag:
		return e.drag(index, step)

	case StepResize:
		e.input(index, tea.WindowSizeMsg{Width: step.Width, Height: step.Height}, e.config.KeyDelay)

	case StepSettle:
		e.animate(index, e.config.MaxSettleFrames)

	case StepAnnotate:
		// Applies to the next captured frame
		e.currentAnnotation = step.Annotation

	case StepCapture:
		e.captureFrame(index, 0)
	}

	return nil
}

// drag grabs the tagged popover at its center and moves it in DragSteps even
// increments, one frame apart, before releasing.
func (e *Executor) drag(index int, step Step) error {
	p := e.model.Surface().Container().Model().PopoverWithTag(step.Tag)
	if p == nil {
		return perrors.PopoverNotFound(step.Tag)
	}
	frame := p.Context().Frame()
	x := int(frame.Origin.X + frame.Size.Width/2)
	y := int(frame.Origin.Y + frame.Size.Height/2)

	e.input(index, tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}, e.config.FrameDelay)
	n := max(e.config.DragSteps, 1)
	for i := 1; i <= n; i++ {
		mx, my := x+step.X*i/n, y+step.Y*i/n
		e.input(index, tea.MouseMotionMsg{X: mx, Y: my, Button: tea.MouseLeft}, e.config.FrameDelay)
	}
	e.input(index, tea.MouseReleaseMsg{X: x + step.X, Y: y + step.Y, Button: tea.MouseLeft}, e.config.FrameDelay)
	return nil
}

// input delivers msg, runs any deferred work it caused and moves the clock on
// by delay.
func (e *Executor) input(index int, msg tea.Msg, delay time.Duration) {
	e.update(msg)
	e.flush()
	if e.config.CaptureEveryStep {
		e.captureFrame(index, delay)
	}
	e.advance(delay)
}

// animate records up to n animation frames, stopping early once the playground
// is idle. It returns the number of frames recorded.
func (e *Executor) animate(index, n int) int {
	i := 0
	for ; i < n && !e.model.Idle(); i++ {
		e.update(ui.AnimationTickMsg(e.now))
		e.flush()
		e.captureFrame(index, e.config.FrameDelay)
		e.advance(e.config.FrameDelay)
	}
	return i
}

// flush delivers DeferredMsg until no work is queued.
func (e *Executor) flush() {
	for i := 0; i < maxDeferredRounds && e.model.HasDeferredWork(); i++ {
		e.update(ui.DeferredMsg{})
	}
}

func (e *Executor) update(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
}

func (e *Executor) advance(d time.Duration) {
	e.now = e.now.Add(d)
}

// captureFrame captures the current screen as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	e.frames = append(e.frames, Frame{
		Content:    e.model.Render(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	})

	// Clear annotation after use
	e.currentAnnotation = ""
}

// Model returns the playground the last scenario ran against.
func (e *Executor) Model() *app.Model {
	return e.model
}
