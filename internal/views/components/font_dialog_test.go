package components

import (
	"errors"
	"image"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/models"
)

type applied struct {
	family string
	size   string
}

func newTestFontDialog(t *testing.T, current models.FontPreference) (*FontDialog, *[]applied, *int) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	w := a.NewWindow("settings")
	t.Cleanup(w.Close)

	var calls []applied
	previews := 0
	preview := func(family string, size float32) (image.Image, error) {
		previews++
		if family == "Broken" {
			return nil, errors.New("cannot render")
		}
		return image.NewRGBA(image.Rect(0, 0, 10, 10)), nil
	}
	apply := func(family, size string) error {
		calls = append(calls, applied{family, size})
		return nil
	}

	fd := NewFontDialog(w, []string{"Go", "Broken", "Noto Sans"}, current, preview, apply)
	fd.Show()
	return fd, &calls, &previews
}

func TestFontDialog_DefaultsToCurrentPreference(t *testing.T) {
	fd, calls, _ := newTestFontDialog(t, models.FontPreference{Size: 12})

	require.NoError(t, fd.Apply())

	assert.Equal(t, []applied{{"", "12"}}, *calls)
}

func TestFontDialog_SelectionAndSize(t *testing.T) {
	fd, calls, _ := newTestFontDialog(t, models.FontPreference{Family: "Go", Size: 12})
	assert.Equal(t, "Go", fd.Selected())

	fd.Select(3)
	fd.SetSize("18")
	require.NoError(t, fd.Apply())

	assert.Equal(t, "Noto Sans", fd.Selected())
	assert.Equal(t, []applied{{"Noto Sans", "18"}}, *calls)
}

func TestFontDialog_PreviewVisibility(t *testing.T) {
	fd, _, previews := newTestFontDialog(t, models.FontPreference{Size: 12})

	fd.Select(1)
	assert.True(t, fd.preview.Visible())
	assert.Positive(t, *previews)

	fd.Select(2)
	assert.False(t, fd.preview.Visible(), "render failure hides the preview")

	fd.Select(1)
	fd.SetSize("abc")
	assert.False(t, fd.preview.Visible(), "invalid size hides the preview")
}
