package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginAppendEnd(t *testing.T) {
	d := NewDrawing()

	require.NoError(t, d.BeginShape())
	require.True(t, d.InProgress())
	require.NoError(t, d.Append(Point{X: 1, Y: 2, Pressure: 0.5}))
	require.NoError(t, d.Append(Point{X: 3, Y: 4, Pressure: 0.6}))

	s, err := d.EndShape()
	require.NoError(t, err)
	assert.False(t, d.InProgress())
	assert.NotEmpty(t, s.ID)
	require.Len(t, s.Points, 2)
	assert.Equal(t, Point{X: 1, Y: 2, Pressure: 0.5}, s.Points[0])
	assert.Equal(t, Point{X: 3, Y: 4, Pressure: 0.6}, s.Points[1])
	assert.Equal(t, 1, d.Len())
}

func TestBeginShapeTwice(t *testing.T) {
	d := NewDrawing()
	require.NoError(t, d.BeginShape())
	assert.ErrorIs(t, d.BeginShape(), ErrShapeInProgress)
	assert.Equal(t, 1, d.Len())
}

func TestAppendWithoutShape(t *testing.T) {
	d := NewDrawing()
	assert.ErrorIs(t, d.Append(Point{X: 1, Y: 1, Pressure: 1}), ErrNoShapeInProgress)
}

func TestEndWithoutShape(t *testing.T) {
	d := NewDrawing()
	_, err := d.EndShape()
	assert.ErrorIs(t, err, ErrNoShapeInProgress)
}

func TestEmptyShapeIsDiscarded(t *testing.T) {
	d := NewDrawing()
	require.NoError(t, d.BeginShape())
	s, err := d.EndShape()
	require.NoError(t, err)
	assert.Empty(t, s.Points)
	assert.Equal(t, 0, d.Len())
}

func TestShapesOrderAndLiveShape(t *testing.T) {
	d := NewDrawing()
	require.NoError(t, d.BeginShape())
	require.NoError(t, d.Append(Point{X: 1, Y: 1, Pressure: 1}))
	_, err := d.EndShape()
	require.NoError(t, err)

	require.NoError(t, d.BeginShape())
	require.NoError(t, d.Append(Point{X: 2, Y: 2, Pressure: 1}))

	// The in-progress shape is part of the view, last in draw order.
	shapes := d.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, float32(1), shapes[0].Points[0].X)
	assert.Equal(t, float32(2), shapes[1].Points[0].X)
}

func TestReset(t *testing.T) {
	d := NewDrawing()
	require.NoError(t, d.BeginShape())
	require.NoError(t, d.Append(Point{X: 9, Y: 9, Pressure: 1}))

	d.Reset([]Shape{
		{ID: "a", Points: []Point{{X: 1, Y: 1, Pressure: 0.1}}},
		{ID: "b", Points: []Point{{X: 2, Y: 2, Pressure: 0.2}}},
	})

	assert.False(t, d.InProgress())
	shapes := d.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, "a", shapes[0].ID)
	assert.Equal(t, "b", shapes[1].ID)
}

func TestClear(t *testing.T) {
	d := NewDrawing()
	require.NoError(t, d.BeginShape())
	require.NoError(t, d.Append(Point{X: 1, Y: 1, Pressure: 1}))
	d.Clear()
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.InProgress())
}

func TestRemoveLast(t *testing.T) {
	d := NewDrawing()
	assert.False(t, d.RemoveLast())

	require.NoError(t, d.BeginShape())
	require.NoError(t, d.Append(Point{X: 1, Y: 1, Pressure: 1}))
	// No removal while a stroke is being captured.
	assert.False(t, d.RemoveLast())
	_, err := d.EndShape()
	require.NoError(t, err)

	assert.True(t, d.RemoveLast())
	assert.Equal(t, 0, d.Len())
}
