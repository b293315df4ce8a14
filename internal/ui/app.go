package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"Sketchpad/internal/config"
	"Sketchpad/internal/export"
	"Sketchpad/internal/state"
	"Sketchpad/internal/store"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/software"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const appID = "io.sketchpad.app"

// App is the application shell: window, toolbar and board.
type App struct {
	win       fyne.Window
	board     *BoardWidget
	status    *widget.Label
	thickness *widget.Select

	conf     config.Config
	confPath string
}

// NewApp builds the main window on fa. confPath may be empty, in which case
// the last save directory is not persisted.
func NewApp(fa fyne.App, conf config.Config, confPath string) *App {
	a := &App{
		conf:     conf,
		confPath: confPath,
		status:   widget.NewLabel("Ready"),
	}
	a.board = NewBoardWidget(state.NewCanvas(conf.Pen()))

	a.win = fa.NewWindow("Sketchpad")
	a.win.Resize(fyne.NewSize(conf.WindowWidth, conf.WindowHeight))
	a.win.SetContent(container.NewBorder(a.newToolbar(), a.status, nil, nil, a.board))
	// a drag interrupted by closing the window is lost
	a.win.SetOnClosed(a.board.Canvas().AbandonStroke)
	return a
}

func (a *App) Window() fyne.Window { return a.win }

func (a *App) Board() *BoardWidget { return a.board }

func (a *App) setStatus(text string) {
	a.status.SetText(text)
}

// SaveDrawing writes the finalized strokes to path. Failures are logged and
// shown to the user; the drawing itself is untouched either way.
func (a *App) SaveDrawing(path string) error {
	strokes := a.board.Canvas().Strokes()
	if err := store.Save(path, strokes); err != nil {
		log.Printf("[SAVE] %v", err)
		a.setStatus("Save failed")
		dialog.ShowError(err, a.win)
		return err
	}
	log.Printf("[SAVE] Saved %d strokes to %s", len(strokes), path)
	a.setStatus(fmt.Sprintf("Saved %d strokes", len(strokes)))
	return nil
}

func (a *App) ExportPDF(path string) error {
	return a.exported(path, export.PDF(path, a.board.Canvas().Strokes()))
}

// ExportPNG rasterizes the current drawing at the board's size.
func (a *App) ExportPNG(path string) error {
	size := a.board.Size()
	if size.Width == 0 || size.Height == 0 {
		size = a.board.MinSize()
	}
	c := software.NewCanvas()
	c.SetPadded(false)
	c.SetContent(snapshot(a.board.Canvas().Strokes(), size))
	c.Resize(size)
	return a.exported(path, export.PNG(path, c.Capture()))
}

func (a *App) exported(path string, err error) error {
	if err != nil {
		log.Printf("[EXPORT] %v", err)
		a.setStatus("Export failed")
		dialog.ShowError(err, a.win)
		return err
	}
	log.Printf("[EXPORT] Wrote %s", path)
	a.setStatus("Exported " + filepath.Base(path))
	return nil
}

// ApplyConfig takes pen settings from a reloaded config. The pen is only
// reset when the file's pen differs from the last one applied.
func (a *App) ApplyConfig(conf config.Config) {
	if conf.Pen() != a.conf.Pen() {
		pen := conf.Pen()
		a.board.Canvas().SetColor(pen.Color)
		a.thickness.SetSelected(strconv.Itoa(pen.Thickness))
		log.Printf("[CONFIG] Pen set to %s/%d", pen.Color.Hex(), pen.Thickness)
	}
	a.conf = conf
}

// askPath shows the save dialog and hands the chosen path to fn. Cancelling
// does nothing.
func (a *App) askPath(ext string, fn func(path string) error) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[SAVE] dialog: %v", err)
			dialog.ShowError(err, a.win)
			return
		}
		if w == nil {
			return
		}
		path := w.URI().Path()
		if err := w.Close(); err != nil {
			log.Printf("[SAVE] closing %s: %v", path, err)
		}
		if fn(path) == nil {
			a.rememberDir(filepath.Dir(path))
		}
	}, a.win)
	d.SetFileName("drawing" + ext)
	if a.conf.LastSaveDir != "" {
		if dir, err := storage.ListerForURI(storage.NewFileURI(a.conf.LastSaveDir)); err == nil {
			d.SetLocation(dir)
		}
	}
	d.Show()
}

func (a *App) rememberDir(dir string) {
	if a.confPath == "" || a.conf.LastSaveDir == dir {
		return
	}
	// Read, not Load: a file that fails validation still holds the user's
	// other settings and must not be replaced with defaults.
	conf, err := config.Read(a.confPath)
	if err != nil {
		log.Printf("[CONFIG] not remembering save dir: %v", err)
		return
	}
	conf.LastSaveDir = dir
	if err := config.Write(a.confPath, conf); err != nil {
		log.Printf("[CONFIG] %v", err)
		return
	}
	a.conf.LastSaveDir = dir
}

// Run opens the main window and blocks until it is closed.
func Run(conf config.Config, confPath string) {
	fa := app.NewWithID(appID)
	a := NewApp(fa, conf, confPath)

	if confPath != "" {
		w, err := config.NewWatcher(confPath, 0, func(c config.Config) {
			fyne.Do(func() { a.ApplyConfig(c) })
		}, func(err error) {
			log.Printf("[CONFIG] watch: %v", err)
		})
		if err != nil {
			log.Printf("[CONFIG] not watching %s: %v", confPath, err)
		} else {
			defer w.Stop()
		}
	}

	a.win.ShowAndRun()
}
