package state

import (
	log "github.com/sirupsen/logrus"
)

// PointerEvent is one pointer sample delivered by the input layer, in
// canvas coordinates. Pressure must already be normalized: the input
// layer substitutes a fixed default for devices without a pressure
// channel, so the capture controller never probes device capability.
type PointerEvent struct {
	X        float32
	Y        float32
	Pressure float32
}

// Capture turns the pointer-down/move/up event stream into shapes on a
// drawing. It is idle until a pointer-down and capturing until the
// matching pointer-up; every move event while capturing appends exactly
// one point.
type Capture struct {
	drawing *Drawing
	active  bool

	// OnStroke, when set, is called with each committed shape right
	// after its pointer-up.
	OnStroke func(Shape)
}

func NewCapture(d *Drawing) *Capture {
	return &Capture{drawing: d}
}

// Active reports whether a stroke is being captured.
func (c *Capture) Active() bool {
	return c.active
}

// PointerDown begins a new stroke and records the event as its first
// point. A down event while a stroke is already active signals an
// inconsistent upstream event stream and is ignored.
func (c *Capture) PointerDown(ev PointerEvent) {
	if c.active {
		log.Warn("pointer-down during an active stroke, ignoring")
		return
	}
	if err := c.drawing.BeginShape(); err != nil {
		log.Warnf("cannot begin shape: %v", err)
		return
	}
	c.active = true
	c.append(ev)
}

// PointerMove appends one point to the active stroke. Moves while idle
// (hovering) are ignored.
func (c *Capture) PointerMove(ev PointerEvent) {
	if !c.active {
		return
	}
	c.append(ev)
}

// PointerUp commits the active stroke. An up event with no stroke in
// progress is ignored; the drawing is left untouched.
func (c *Capture) PointerUp() {
	if !c.active {
		log.Debug("pointer-up with no stroke in progress, ignoring")
		return
	}
	c.active = false
	s, err := c.drawing.EndShape()
	if err != nil {
		log.Warnf("cannot end shape: %v", err)
		return
	}
	if len(s.Points) > 0 && c.OnStroke != nil {
		c.OnStroke(s)
	}
}

// Reset drops capture state without committing anything, for when the
// drawing underneath is replaced wholesale.
func (c *Capture) Reset() {
	c.active = false
}

func (c *Capture) append(ev PointerEvent) {
	if err := c.drawing.Append(Point{X: ev.X, Y: ev.Y, Pressure: ev.Pressure}); err != nil {
		log.Warnf("cannot append point: %v", err)
	}
}
