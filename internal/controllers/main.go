package controllers

import (
	"errors"
	"fmt"
	"image"

	"notepad/internal/config"
	"notepad/internal/logger"
	"notepad/internal/models"
	"notepad/internal/services"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

const (
	pasteWarningTitle   = "Paste Error"
	pasteWarningMessage = "There is no content on the clipboard to paste."

	previewWidth  = 360
	previewHeight = 56
)

var ErrUnknownCommand = errors.New("unknown command")

// View is the part of the window the controller drives.
type View interface {
	Text() string
	SetText(text string)
	SelectedText() string
	DeleteSelection()
	InsertAtCursor(text string)
	SetStatus(status string)
	SetTitle(title string)
	ApplyFont(pref models.FontPreference, res fyne.Resource)

	ShowOpenDialog(location fyne.ListableURI, callback func(fyne.URIReadCloser, error))
	ShowSaveDialog(location fyne.ListableURI, fileName string, callback func(fyne.URIWriteCloser, error))
	ShowFontDialog(families []string, current models.FontPreference,
		preview func(family string, size float32) (image.Image, error),
		apply func(family, size string) error)
	ShowWarning(title, message string)
	ShowError(title string, err error)
}

// MainController owns the editor state and runs every menu command.
type MainController struct {
	files     *services.FileService
	clipboard *services.ClipboardService
	fonts     *services.FontService
	log       logger.Logger

	state    *models.EditorState
	view     View
	quit     func()
	commands map[models.Command]func()
}

// NewMainController creates a controller; SetView must be called before
// dispatching commands.
func NewMainController(
	files *services.FileService,
	clipboard *services.ClipboardService,
	fonts *services.FontService,
	state *models.EditorState,
	log logger.Logger,
) *MainController {
	mc := &MainController{
		files:     files,
		clipboard: clipboard,
		fonts:     fonts,
		state:     state,
		log:       log,
		quit:      func() {},
	}

	mc.commands = map[models.Command]func(){
		models.CommandNew:          mc.NewDocument,
		models.CommandOpen:         mc.OpenDocument,
		models.CommandSave:         mc.SaveDocument,
		models.CommandExit:         mc.Exit,
		models.CommandCopy:         mc.Copy,
		models.CommandPaste:        mc.Paste,
		models.CommandCut:          mc.Cut,
		models.CommandFontSettings: mc.OpenFontSettings,
	}
	return mc
}

// SetView attaches the window and paints the initial status and title.
func (mc *MainController) SetView(view View) {
	mc.view = view
	mc.view.ApplyFont(mc.state.Font, nil)
	mc.refreshTitle()
	mc.refreshStatus()
}

// SetQuitHandler sets what Exit runs.
func (mc *MainController) SetQuitHandler(quit func()) {
	mc.quit = quit
}

// State returns a copy of the editor state.
func (mc *MainController) State() models.EditorState {
	return *mc.state
}

// Dispatch runs the handler registered for cmd.
func (mc *MainController) Dispatch(cmd models.Command) error {
	handler, ok := mc.commands[cmd]
	if !ok {
		mc.log.Warning("Controller", "unknown command", map[string]interface{}{
			"command": string(cmd),
		})
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	mc.log.Debug("Controller", "dispatching command", map[string]interface{}{
		"command": string(cmd),
	})
	handler()
	return nil
}

// TextChanged recomputes the status line after an edit.
func (mc *MainController) TextChanged(text string) {
	mc.view.SetStatus(models.ComputeStatus(text).String())
}

// NewDocument clears the document. There is no unsaved-changes prompt.
func (mc *MainController) NewDocument() {
	mc.view.SetText("")
	mc.state.CurrentURI = nil
	mc.refreshTitle()
	mc.refreshStatus()
	mc.log.Info("Controller", "new document", nil)
}

func (mc *MainController) OpenDocument() {
	mc.view.ShowOpenDialog(mc.pickerLocation(), mc.handleOpen)
}

func (mc *MainController) handleOpen(reader fyne.URIReadCloser, err error) {
	if err != nil {
		mc.showError("Open Failed", err)
		return
	}
	if reader == nil {
		return
	}
	defer reader.Close()

	text, err := mc.files.Read(reader)
	if err != nil {
		mc.showError("Open Failed", fmt.Errorf("%s: %w", reader.URI().Name(), err))
		return
	}

	mc.view.SetText(text)
	mc.state.CurrentURI = reader.URI()
	mc.refreshTitle()
	mc.refreshStatus()

	mc.log.Info("Controller", "document opened", map[string]interface{}{
		"uri":   reader.URI().String(),
		"bytes": len(text),
	})
}

func (mc *MainController) SaveDocument() {
	fileName := "untitled.txt"
	if mc.state.CurrentURI != nil {
		fileName = mc.state.CurrentURI.Name()
	}
	mc.view.ShowSaveDialog(mc.pickerLocation(), fileName, mc.handleSave)
}

func (mc *MainController) handleSave(writer fyne.URIWriteCloser, err error) {
	if err != nil {
		mc.showError("Save Failed", err)
		return
	}
	if writer == nil {
		return
	}

	text := mc.view.Text()
	writeErr := mc.files.Write(writer, text)
	closeErr := writer.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		mc.showError("Save Failed", fmt.Errorf("%s: %w", writer.URI().Name(), err))
		return
	}

	mc.state.CurrentURI = writer.URI()
	mc.refreshTitle()
	mc.refreshStatus()

	mc.log.Info("Controller", "document saved", map[string]interface{}{
		"uri":   writer.URI().String(),
		"bytes": len(text),
	})
}

func (mc *MainController) Exit() {
	mc.log.Info("Controller", "exit requested", nil)
	mc.quit()
}

// Copy puts the selection on the system clipboard. Without a selection it
// does nothing.
func (mc *MainController) Copy() {
	selected := mc.view.SelectedText()
	if selected == "" {
		mc.log.Debug("Controller", "copy ignored, no selection", nil)
		return
	}
	if err := mc.clipboard.SetText(selected); err != nil {
		mc.showError("Copy Failed", err)
	}
}

// Paste inserts the clipboard text at the caret, or warns when there is none.
func (mc *MainController) Paste() {
	text, err := mc.clipboard.Text()
	if err != nil {
		mc.view.ShowWarning(pasteWarningTitle, pasteWarningMessage)
		return
	}

	mc.view.InsertAtCursor(text)
	mc.refreshStatus()
}

// Cut copies the selection, then removes it from the document.
func (mc *MainController) Cut() {
	selected := mc.view.SelectedText()
	if selected == "" {
		mc.log.Debug("Controller", "cut ignored, no selection", nil)
		return
	}
	if err := mc.clipboard.SetText(selected); err != nil {
		mc.showError("Cut Failed", err)
		return
	}

	mc.view.DeleteSelection()
	mc.refreshStatus()
}

func (mc *MainController) OpenFontSettings() {
	preview := func(family string, size float32) (image.Image, error) {
		return mc.fonts.Preview(family, size, previewWidth, previewHeight)
	}
	mc.view.ShowFontDialog(mc.fonts.Families(), mc.state.Font, preview, mc.ApplyFont)
}

// ApplyFont validates the dialog input and restyles the editor. The document
// text is not touched.
func (mc *MainController) ApplyFont(family, rawSize string) error {
	size, err := models.ParseFontSize(rawSize)
	if err != nil {
		mc.showError("Invalid Font Size", err)
		return err
	}

	res, err := mc.fonts.Resource(family)
	if err != nil {
		mc.showError("Font Unavailable", err)
		return err
	}

	mc.state.Font = models.FontPreference{Family: family, Size: size}
	mc.view.ApplyFont(mc.state.Font, res)

	mc.log.Info("Controller", "font applied", map[string]interface{}{
		"font": mc.state.Font.String(),
	})
	return nil
}

func (mc *MainController) refreshStatus() {
	mc.TextChanged(mc.view.Text())
}

func (mc *MainController) refreshTitle() {
	mc.view.SetTitle(fmt.Sprintf("%s - %s", mc.state.DocumentName(), config.AppName))
}

// pickerLocation starts file dialogs in the directory of the current file.
func (mc *MainController) pickerLocation() fyne.ListableURI {
	if mc.state.CurrentURI == nil {
		return nil
	}
	parent, err := storage.Parent(mc.state.CurrentURI)
	if err != nil {
		return nil
	}
	lister, err := storage.ListerForURI(parent)
	if err != nil {
		return nil
	}
	return lister
}

func (mc *MainController) showError(title string, err error) {
	mc.log.Error("Controller", err, map[string]interface{}{
		"title": title,
	})
	mc.view.ShowError(title, err)
}
