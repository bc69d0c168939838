package views

import (
	"fmt"
	"image"

	"notepad/internal/models"
	"notepad/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var textFileFilter = storage.NewExtensionFileFilter([]string{".txt"})

// menuShortcuts are the keyboard accelerators of the File menu.
var menuShortcuts = map[models.Command]fyne.KeyName{
	models.CommandNew:  fyne.KeyN,
	models.CommandOpen: fyne.KeyO,
	models.CommandSave: fyne.KeyS,
}

// MainView is the editor window: menu bar, editing surface and status bar.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	editor        *components.Editor
	statusBar     *components.StatusBar
	fontDialog    *components.FontDialog

	commandHandler     func(models.Command) error
	textChangedHandler func(string)
}

// NewMainView creates the view and installs it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.buildMenus()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.editor = components.NewEditor()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		nil,                         // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		mv.editor.Content(),         // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// buildMenus creates the menu bar from the command table and registers the
// File shortcuts on the canvas.
func (mv *MainView) buildMenus() {
	var menus []*fyne.Menu
	for _, spec := range models.MenuBar() {
		var items []*fyne.MenuItem
		for _, entry := range spec.Items {
			if entry.SeparatorBefore {
				items = append(items, fyne.NewMenuItemSeparator())
			}

			cmd := entry.Command
			item := fyne.NewMenuItem(entry.Label, func() { mv.dispatch(cmd) })
			if key, ok := menuShortcuts[cmd]; ok {
				shortcut := &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}
				item.Shortcut = shortcut
				mv.window.Canvas().AddShortcut(shortcut, func(fyne.Shortcut) { mv.dispatch(cmd) })
			}
			items = append(items, item)
		}
		menus = append(menus, fyne.NewMenu(spec.Label, items...))
	}

	mv.window.SetMainMenu(fyne.NewMainMenu(menus...))
}

func (mv *MainView) setupEventHandlers() {
	mv.editor.SetOnChanged(func(text string) {
		if mv.textChangedHandler != nil {
			mv.textChangedHandler(text)
		}
	})
}

func (mv *MainView) dispatch(cmd models.Command) {
	if mv.commandHandler == nil {
		return
	}
	if err := mv.commandHandler(cmd); err != nil {
		mv.ShowError("Command Failed", err)
	}
}

// Event handler setters - called by main

// SetCommandHandler sets the receiver of menu and shortcut commands
func (mv *MainView) SetCommandHandler(handler func(models.Command) error) {
	mv.commandHandler = handler
}

// SetTextChangedHandler sets the handler called after every edit
func (mv *MainView) SetTextChangedHandler(handler func(string)) {
	mv.textChangedHandler = handler
}

// Document access - called by the controller

func (mv *MainView) Text() string {
	return mv.editor.Text()
}

func (mv *MainView) SetText(text string) {
	mv.editor.SetText(text)
}

func (mv *MainView) SelectedText() string {
	return mv.editor.SelectedText()
}

func (mv *MainView) DeleteSelection() {
	mv.editor.DeleteSelection()
}

func (mv *MainView) InsertAtCursor(text string) {
	mv.editor.InsertAtCursor(text)
}

// SetStatus updates the status bar
func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// Status returns the status bar text
func (mv *MainView) Status() string {
	return mv.statusBar.GetStatus()
}

// SetTitle updates the window title
func (mv *MainView) SetTitle(title string) {
	mv.window.SetTitle(title)
}

// ApplyFont restyles the editing surface only
func (mv *MainView) ApplyFont(pref models.FontPreference, res fyne.Resource) {
	mv.editor.ApplyFont(res, pref.Size)
}

// Dialogs

// ShowOpenDialog displays a .txt file picker
func (mv *MainView) ShowOpenDialog(location fyne.ListableURI, callback func(fyne.URIReadCloser, error)) {
	d := dialog.NewFileOpen(callback, mv.window)
	d.SetFilter(textFileFilter)
	if location != nil {
		d.SetLocation(location)
	}
	d.Show()
}

// ShowSaveDialog displays a save-as picker
func (mv *MainView) ShowSaveDialog(location fyne.ListableURI, fileName string, callback func(fyne.URIWriteCloser, error)) {
	d := dialog.NewFileSave(callback, mv.window)
	d.SetFilter(textFileFilter)
	d.SetFileName(fileName)
	if location != nil {
		d.SetLocation(location)
	}
	d.Show()
}

// ShowFontDialog displays the font and size settings
func (mv *MainView) ShowFontDialog(families []string, current models.FontPreference,
	preview func(family string, size float32) (image.Image, error),
	apply func(family, size string) error) {

	mv.fontDialog = components.NewFontDialog(mv.window, families, current, preview, apply)
	mv.fontDialog.Show()
}

// ShowWarning displays a warning dialog
func (mv *MainView) ShowWarning(title, message string) {
	content := container.NewHBox(
		widget.NewIcon(theme.WarningIcon()),
		widget.NewLabel(message),
	)
	dialog.NewCustom(title, "OK", content, mv.window).Show()
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), mv.window)
}

// FocusEditor moves keyboard focus to the editing surface
func (mv *MainView) FocusEditor() {
	mv.editor.Focus(mv.window.Canvas())
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}
