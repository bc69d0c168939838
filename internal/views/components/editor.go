package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Editor is the multi-line editing surface. The entry widget holds the
// document; there is no separate model.
type Editor struct {
	entry    *widget.Entry
	override *container.ThemeOverride
}

func NewEditor() *Editor {
	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapWord

	return &Editor{
		entry:    entry,
		override: container.NewThemeOverride(entry, newEditorTheme(theme.DefaultTheme(), nil, 0)),
	}
}

func (e *Editor) Content() fyne.CanvasObject {
	return e.override
}

func (e *Editor) SetOnChanged(fn func(string)) {
	e.entry.OnChanged = fn
}

func (e *Editor) Text() string {
	return e.entry.Text
}

func (e *Editor) SetText(text string) {
	e.entry.SetText(text)
}

func (e *Editor) SelectedText() string {
	return e.entry.SelectedText()
}

// DeleteSelection removes the selected range; with nothing selected it is a no-op.
func (e *Editor) DeleteSelection() {
	if e.entry.SelectedText() == "" {
		return
	}
	e.entry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})
}

// InsertAtCursor inserts text at the caret, replacing any selection.
func (e *Editor) InsertAtCursor(text string) {
	if text == "" {
		return
	}
	e.entry.TypedShortcut(&fyne.ShortcutPaste{Clipboard: staticClipboard(text)})
}

// ApplyFont restyles the editor. A nil font keeps the toolkit font.
func (e *Editor) ApplyFont(font fyne.Resource, size float32) {
	e.override.Theme = newEditorTheme(theme.Current(), font, size)
	e.override.Refresh()
}

func (e *Editor) Focus(canvas fyne.Canvas) {
	canvas.Focus(e.entry)
}

// staticClipboard feeds a fixed string to the entry's paste handling.
type staticClipboard string

func (c staticClipboard) Content() string { return string(c) }
func (staticClipboard) SetContent(string) {}
