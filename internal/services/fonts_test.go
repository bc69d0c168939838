package services

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"notepad/internal/logger"
)

func writeFontDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	nested := filepath.Join(dir, "truetype", "go")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	files := map[string][]byte{
		filepath.Join(dir, "Go-Bold.ttf"):       gobold.TTF,
		filepath.Join(nested, "Go-Regular.TTF"): goregular.TTF,
		filepath.Join(nested, "Go-Mono.ttf"):    gomono.TTF,
		filepath.Join(dir, "broken.ttf"):        []byte("not a font"),
		filepath.Join(dir, "README.txt"):        []byte("fonts live here"),
	}
	for path, data := range files {
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}
	return dir
}

func TestFontService_FamiliesFromNameTable(t *testing.T) {
	dir := writeFontDir(t)
	svc := NewFontService([]string{dir, filepath.Join(dir, "missing")}, logger.NewNop())

	assert.Equal(t, []string{"Go", "Go Mono"}, svc.Families())
}

func TestFontService_PrefersRegularFace(t *testing.T) {
	svc := NewFontService([]string{writeFontDir(t)}, logger.NewNop())

	face, err := svc.Face("Go")
	require.NoError(t, err)
	assert.Equal(t, "Regular", face.Subfamily)
	assert.Equal(t, "Go-Regular.TTF", filepath.Base(face.Path))

	_, err = svc.Face("Comic Sans")
	assert.ErrorIs(t, err, ErrFontNotFound)
}

func TestFontService_Resource(t *testing.T) {
	svc := NewFontService([]string{writeFontDir(t)}, logger.NewNop())

	res, err := svc.Resource("Go Mono")
	require.NoError(t, err)
	assert.Equal(t, "Go-Mono.ttf", res.Name())
	assert.Equal(t, gomono.TTF, res.Content())

	again, err := svc.Resource("Go Mono")
	require.NoError(t, err)
	assert.Same(t, res, again)

	res, err = svc.Resource("")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestFontService_Rescan(t *testing.T) {
	dir := t.TempDir()
	svc := NewFontService([]string{dir}, logger.NewNop())
	assert.Empty(t, svc.Families())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Go-Mono.ttf"), gomono.TTF, 0o644))
	assert.Empty(t, svc.Families())

	svc.Rescan()
	assert.Equal(t, []string{"Go Mono"}, svc.Families())
}

func TestFontService_Preview(t *testing.T) {
	svc := NewFontService([]string{writeFontDir(t)}, logger.NewNop())

	img, err := svc.Preview("Go", 18, 240, 40)
	require.NoError(t, err)
	assert.Equal(t, 240, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())

	inked := false
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !inked; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y < 128 {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked, "preview should contain rendered glyphs")

	_, err = svc.Preview("Go", 0, 240, 40)
	assert.Error(t, err)
	_, err = svc.Preview("Nope", 12, 240, 40)
	assert.ErrorIs(t, err, ErrFontNotFound)
}
