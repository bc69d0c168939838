package services

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const PreviewSample = "AaBbCc 가나다 0123"

// Preview renders PreviewSample in family at size points onto a white
// width x height image.
func (s *FontService) Preview(family string, size float32, width, height int) (image.Image, error) {
	if size <= 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid preview geometry: size=%v %dx%d", size, width, height)
	}

	res, err := s.Resource(family)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = theme.DefaultTheme().Font(fyne.TextStyle{})
	}

	face, err := newFace(res.Content(), float64(size))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare preview of %q: %w", family, err)
	}
	defer face.Close()

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)
	dc.SetFontFace(face)
	dc.DrawStringAnchored(PreviewSample, 8, float64(height)/2, 0, 0.5)

	return dc.Image(), nil
}

// newFace prefers the hinted TrueType rasterizer and falls back to the
// OpenType one for CFF outlines.
func newFace(data []byte, size float64) (font.Face, error) {
	if parsed, err := truetype.Parse(data); err == nil {
		return truetype.NewFace(parsed, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}), nil
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
