package popover

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/zhubert/popover/internal/logger"
)

// Popover is one overlay: identity, attributes, runtime context and the content the
// host draws. Content and Background are opaque to the engine.
type Popover struct {
	ID         uuid.UUID
	Content    any
	Background any

	attrs       Attributes
	ctx         *Context
	model       *Model
	onDisappear []func()
	log         *slog.Logger
}

// New creates a popover. Unsupported or malformed attributes are reported here rather
// than at presentation time.
func New(attrs Attributes, content any) (*Popover, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}
	id := uuid.New()
	return &Popover{
		ID:      id,
		Content: content,
		attrs:   attrs.clone(),
		ctx:     &Context{},
		log:     logger.WithPopover(id.String()),
	}, nil
}

// Attributes returns a copy of the popover's attributes.
func (p *Popover) Attributes() Attributes {
	return p.attrs.clone()
}

// Context returns the popover's runtime state.
func (p *Popover) Context() *Context {
	return p.ctx
}

// Tag returns the attributes' tag.
func (p *Popover) Tag() string {
	return p.attrs.Tag
}

// OnDisappear registers fn to run when the popover leaves its model.
func (p *Popover) OnDisappear(fn func()) {
	p.onDisappear = append(p.onDisappear, fn)
}

// IsPresented reports whether the popover is currently in a model.
func (p *Popover) IsPresented() bool {
	return p.model != nil
}

// Dismiss removes the popover from the model presenting it. It is a no-op when the
// popover is not presented.
func (p *Popover) Dismiss() {
	if p.model == nil {
		return
	}
	p.model.Remove(p)
}

func (p *Popover) contextChanged() {
	if p.attrs.OnContextChange != nil {
		p.attrs.OnContextChange(p.ctx)
	}
}

func (p *Popover) disappeared() {
	for _, fn := range p.onDisappear {
		fn()
	}
}
