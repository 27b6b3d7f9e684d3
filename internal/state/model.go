package state

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrShapeInProgress   = errors.New("state: a shape is already in progress")
	ErrNoShapeInProgress = errors.New("state: no shape in progress")
)

// Point is a single pointer sample in canvas coordinates. Pressure is
// normalized to [0, 1]; the input layer substitutes a fixed default for
// devices without a pressure channel.
type Point struct {
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Pressure float32 `json:"pressure"`
}

// Shape is one continuous stroke: its points in the order they were
// sampled, which is also the order they are rendered in.
type Shape struct {
	ID        string    `json:"id"`
	Points    []Point   `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

func newShape() *Shape {
	return &Shape{ID: uuid.NewString(), CreatedAt: time.Now()}
}

// Drawing is the whole document: shapes in draw order, later shapes on
// top. At most one shape accepts points at any time, and a committed
// shape always has at least one point.
type Drawing struct {
	shapes  []*Shape
	current *Shape
}

func NewDrawing() *Drawing {
	return &Drawing{shapes: make([]*Shape, 0)}
}

// BeginShape starts a new empty shape at the top of the draw order and
// marks it in progress.
func (d *Drawing) BeginShape() error {
	if d.current != nil {
		return ErrShapeInProgress
	}
	d.current = newShape()
	d.shapes = append(d.shapes, d.current)
	return nil
}

// Append adds a point to the end of the in-progress shape.
func (d *Drawing) Append(p Point) error {
	if d.current == nil {
		return ErrNoShapeInProgress
	}
	d.current.Points = append(d.current.Points, p)
	return nil
}

// EndShape commits the in-progress shape and returns it. A shape that
// never received a point is dropped from the drawing instead of kept;
// in that case the returned shape has no points.
func (d *Drawing) EndShape() (Shape, error) {
	if d.current == nil {
		return Shape{}, ErrNoShapeInProgress
	}
	s := *d.current
	d.current = nil
	if len(s.Points) == 0 {
		d.shapes = d.shapes[:len(d.shapes)-1]
	}
	return s, nil
}

// InProgress reports whether a shape is currently accepting points.
func (d *Drawing) InProgress() bool {
	return d.current != nil
}

// Shapes returns the shapes in draw order, including the in-progress
// one while a stroke is active. The slice is a fresh copy; callers must
// treat the shapes' point slices as read-only.
func (d *Drawing) Shapes() []Shape {
	shapes := make([]Shape, 0, len(d.shapes))
	for _, s := range d.shapes {
		shapes = append(shapes, *s)
	}
	return shapes
}

// Len returns the number of shapes, counting the in-progress one.
func (d *Drawing) Len() int {
	return len(d.shapes)
}

// Reset replaces the whole document with shapes, dropping any stroke in
// progress.
func (d *Drawing) Reset(shapes []Shape) {
	d.shapes = make([]*Shape, 0, len(shapes))
	for i := range shapes {
		s := shapes[i]
		d.shapes = append(d.shapes, &s)
	}
	d.current = nil
}

// Clear removes every shape, including one in progress.
func (d *Drawing) Clear() {
	d.shapes = d.shapes[:0]
	d.current = nil
}

// RemoveLast removes the most recently committed shape and reports
// whether anything was removed. It does nothing while a stroke is in
// progress.
func (d *Drawing) RemoveLast() bool {
	if d.current != nil || len(d.shapes) == 0 {
		return false
	}
	d.shapes = d.shapes[:len(d.shapes)-1]
	return true
}
