package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// editorTheme overrides the text font and size of the editing surface only.
type editorTheme struct {
	fyne.Theme
	font     fyne.Resource
	textSize float32
}

func newEditorTheme(base fyne.Theme, font fyne.Resource, textSize float32) *editorTheme {
	return &editorTheme{Theme: base, font: font, textSize: textSize}
}

func (t *editorTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil && !style.Monospace && !style.Symbol {
		return t.font
	}
	return t.Theme.Font(style)
}

func (t *editorTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.textSize > 0 {
		return t.textSize
	}
	return t.Theme.Size(name)
}
