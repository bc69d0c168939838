package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidFontSize = errors.New("font size must be a positive number")

// FontPreference is the family and point size applied to the editor.
// An empty Family means the toolkit's bundled font.
type FontPreference struct {
	Family string
	Size   float32
}

func DefaultFontPreference(size float32) FontPreference {
	return FontPreference{Size: size}
}

func (f FontPreference) DisplayFamily() string {
	if f.Family == "" {
		return "Default"
	}
	return f.Family
}

func (f FontPreference) String() string {
	return fmt.Sprintf("%s %s", f.DisplayFamily(), FormatFontSize(f.Size))
}

// ParseFontSize reads the size typed into the settings dialog.
func ParseFontSize(raw string) (float32, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFontSize, raw)
	}
	if value <= 0 || value > 512 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFontSize, raw)
	}
	return float32(value), nil
}

func FormatFontSize(size float32) string {
	return strconv.FormatFloat(float64(size), 'f', -1, 32)
}
