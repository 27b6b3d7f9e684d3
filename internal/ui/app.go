package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"PenBoard/internal/session"
)

// RunApp opens the main window and blocks until it is closed. Shapes
// are saved after every completed stroke, so there is no unsaved state
// to flush on exit.
func RunApp(sess *session.Session) {
	myApp := app.New()
	myWindow := myApp.NewWindow("PenBoard")
	myWindow.Resize(fyne.NewSize(1024, 768))

	board := NewBoardWidget(sess)
	status := widget.NewLabel("Ready")
	sess.OnStatus = status.SetText

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			if err := sess.Save(); err != nil {
				status.SetText(fmt.Sprintf("Save failed: %v", err))
				return
			}
			status.SetText(fmt.Sprintf("Saved %d shapes", sess.Drawing().Len()))
		}),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			if err := sess.Load(); err != nil {
				status.SetText(fmt.Sprintf("Load failed: %v", err))
				return
			}
			board.Refresh()
		}),
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			sess.Undo()
			board.Refresh()
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			sess.Clear()
			board.Refresh()
		}),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			if err := sess.ExportPDF(); err != nil {
				status.SetText(fmt.Sprintf("PDF export failed: %v", err))
			}
		}),
	)

	content := container.NewBorder(toolbar, status, nil, nil, board)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
