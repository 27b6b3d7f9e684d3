package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PenBoard/internal/session"
	"PenBoard/internal/state"
)

// Mouse input has no pressure channel, so every event leaves this
// boundary with a fixed full pressure; the capture controller never
// branches on device capability.
const mousePressure = 1.0

// Full pressure renders this many pixels wide.
const maxStrokeWidth = 10.0

// BoardWidget is the drawing surface. It adapts fyne mouse events into
// pointer events for the session's capture controller and renders the
// drawing's shapes as polylines, width scaled by pressure.
type BoardWidget struct {
	widget.BaseWidget
	sess *session.Session
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(sess *session.Session) *BoardWidget {
	b := &BoardWidget{sess: sess}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.sess.Capture().PointerDown(state.PointerEvent{
		X: e.Position.X, Y: e.Position.Y, Pressure: mousePressure,
	})
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.sess.Capture().PointerMove(state.PointerEvent{
		X: e.Position.X, Y: e.Position.Y, Pressure: mousePressure,
	})
	b.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.sess.Capture().PointerUp()
	b.Refresh()
}

func (b *BoardWidget) DragEnd()                       {}
func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}
	for _, s := range r.board.sess.Drawing().Shapes() {
		for i := 1; i < len(s.Points); i++ {
			seg := canvas.NewLine(color.Black)
			seg.StrokeWidth = s.Points[i-1].Pressure * maxStrokeWidth
			seg.Position1 = fyne.NewPos(s.Points[i-1].X, s.Points[i-1].Y)
			seg.Position2 = fyne.NewPos(s.Points[i].X, s.Points[i].Y)
			objects = append(objects, seg)
		}
	}
	return objects
}

func (r *boardRenderer) Refresh()              { canvas.Refresh(r.board) }
func (r *boardRenderer) Destroy()              {}
func (r *boardRenderer) Layout(size fyne.Size) { r.background.Resize(size) }
func (r *boardRenderer) MinSize() fyne.Size    { return fyne.NewSize(300, 300) }
