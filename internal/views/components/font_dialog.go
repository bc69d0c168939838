package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"notepad/internal/models"
)

const (
	previewWidth  = 360
	previewHeight = 56
)

// PreviewFunc renders a sample of family at size points.
type PreviewFunc func(family string, size float32) (image.Image, error)

// ApplyFunc receives the chosen family and the raw size text.
type ApplyFunc func(family, size string) error

// FontDialog lists the installed families with a size entry and an Apply
// button. Applying leaves the dialog open.
type FontDialog struct {
	dialog    dialog.Dialog
	families  []string
	selected  string
	list      *widget.List
	sizeEntry *widget.Entry
	preview   *canvas.Image
	previewFn PreviewFunc
	applyFn   ApplyFunc
}

// NewFontDialog builds the dialog. The first entry is the toolkit font.
func NewFontDialog(parent fyne.Window, families []string, current models.FontPreference,
	preview PreviewFunc, apply ApplyFunc) *FontDialog {

	fd := &FontDialog{
		families:  append([]string{""}, families...),
		selected:  current.Family,
		previewFn: preview,
		applyFn:   apply,
	}

	fd.createComponents(current)
	fd.dialog = dialog.NewCustom("Settings", "Close", fd.buildLayout(), parent)
	fd.dialog.Resize(fyne.NewSize(420, 560))
	return fd
}

func (fd *FontDialog) createComponents(current models.FontPreference) {
	fd.sizeEntry = widget.NewEntry()
	fd.sizeEntry.SetText(models.FormatFontSize(current.Size))
	fd.sizeEntry.OnChanged = func(string) { fd.refreshPreview() }

	fd.list = widget.NewList(
		func() int { return len(fd.families) },
		func() fyne.CanvasObject { return widget.NewLabel("Font family") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			family := models.FontPreference{Family: fd.families[id]}.DisplayFamily()
			obj.(*widget.Label).SetText(family)
		},
	)
	fd.list.OnSelected = func(id widget.ListItemID) {
		fd.selected = fd.families[id]
		fd.refreshPreview()
	}

	fd.preview = &canvas.Image{FillMode: canvas.ImageFillOriginal}
	fd.preview.SetMinSize(fyne.NewSize(previewWidth, previewHeight))
	fd.preview.Hide()

	for i, family := range fd.families {
		if family == current.Family {
			fd.list.Select(i)
			break
		}
	}
}

func (fd *FontDialog) buildLayout() fyne.CanvasObject {
	top := container.NewVBox(
		widget.NewLabel("Font size:"),
		fd.sizeEntry,
		widget.NewLabel("Font:"),
	)
	bottom := container.NewVBox(
		fd.preview,
		widget.NewButton("Apply", func() { _ = fd.Apply() }),
	)
	return container.NewBorder(top, bottom, nil, nil, fd.list)
}

func (fd *FontDialog) Show() {
	fd.dialog.Show()
}

// Select highlights the family at index id of the list.
func (fd *FontDialog) Select(id int) {
	fd.list.Select(id)
}

func (fd *FontDialog) SetSize(size string) {
	fd.sizeEntry.SetText(size)
}

// Selected returns the chosen family, "" for the toolkit font.
func (fd *FontDialog) Selected() string {
	return fd.selected
}

// Apply hands the current choice to the apply callback.
func (fd *FontDialog) Apply() error {
	return fd.applyFn(fd.selected, fd.sizeEntry.Text)
}

func (fd *FontDialog) refreshPreview() {
	if fd.previewFn == nil || fd.preview == nil {
		return
	}

	size, err := models.ParseFontSize(fd.sizeEntry.Text)
	if err != nil {
		fd.preview.Hide()
		return
	}
	img, err := fd.previewFn(fd.selected, size)
	if err != nil {
		fd.preview.Hide()
		return
	}

	fd.preview.Image = img
	fd.preview.Show()
	fd.preview.Refresh()
}
