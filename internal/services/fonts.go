package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"golang.org/x/image/font/sfnt"

	"notepad/internal/logger"
)

var ErrFontNotFound = errors.New("font family not installed")

// FontFace is one installed font file and the names read from its name table.
type FontFace struct {
	Family    string
	Subfamily string
	Path      string
}

func (f FontFace) isRegular() bool {
	switch strings.ToLower(f.Subfamily) {
	case "regular", "book", "normal", "roman", "medium":
		return true
	}
	return false
}

// DefaultFontDirs lists the per-user and system font directories of the host.
func DefaultFontDirs() []string {
	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs := []string{filepath.Join(windir, "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		return []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
			filepath.Join(home, "Library", "Fonts"),
		}
	default:
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, ".fonts"),
		}
	}
}

// FontService discovers installed font families and loads them as fyne
// resources. The directory scan runs once, on first use.
type FontService struct {
	dirs []string
	log  logger.Logger

	mu        sync.Mutex
	scanned   bool
	faces     map[string]FontFace
	resources map[string]fyne.Resource
}

func NewFontService(dirs []string, log logger.Logger) *FontService {
	return &FontService{
		dirs:      dirs,
		log:       log,
		faces:     make(map[string]FontFace),
		resources: make(map[string]fyne.Resource),
	}
}

// Families returns the sorted, de-duplicated family names.
func (s *FontService) Families() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureScanned()

	families := make([]string, 0, len(s.faces))
	for family := range s.faces {
		families = append(families, family)
	}
	sort.Slice(families, func(i, j int) bool {
		return strings.ToLower(families[i]) < strings.ToLower(families[j])
	})
	return families
}

// Face returns the preferred face of family.
func (s *FontService) Face(family string) (FontFace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureScanned()

	face, ok := s.faces[family]
	if !ok {
		return FontFace{}, fmt.Errorf("%w: %q", ErrFontNotFound, family)
	}
	return face, nil
}

// Resource loads the preferred face of family. An empty family yields a nil
// resource, which means the toolkit font.
func (s *FontService) Resource(family string) (fyne.Resource, error) {
	if family == "" {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureScanned()

	if res, ok := s.resources[family]; ok {
		return res, nil
	}
	face, ok := s.faces[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, family)
	}

	data, err := os.ReadFile(face.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load font %q: %w", family, err)
	}
	res := fyne.NewStaticResource(filepath.Base(face.Path), data)
	s.resources[family] = res
	return res, nil
}

// Rescan drops the cache so the next call walks the directories again.
func (s *FontService) Rescan() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scanned = false
	s.faces = make(map[string]FontFace)
	s.resources = make(map[string]fyne.Resource)
}

func (s *FontService) ensureScanned() {
	if s.scanned {
		return
	}
	s.scanned = true

	files := 0
	for _, dir := range s.dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d == nil {
					return err
				}
				return nil
			}
			if d.IsDir() || !isFontFile(path) {
				return nil
			}
			files++

			face, err := readFontFace(path)
			if err != nil {
				s.log.Debug("FontService", "skipping unreadable font", map[string]interface{}{
					"path":  path,
					"error": err.Error(),
				})
				return nil
			}
			s.addFace(face)
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.log.Warning("FontService", "font directory scan failed", map[string]interface{}{
				"dir":   dir,
				"error": err.Error(),
			})
		}
	}

	s.log.Info("FontService", "font scan complete", map[string]interface{}{
		"dirs":     len(s.dirs),
		"files":    files,
		"families": len(s.faces),
	})
}

func (s *FontService) addFace(face FontFace) {
	existing, ok := s.faces[face.Family]
	if !ok || (face.isRegular() && !existing.isRegular()) {
		s.faces[face.Family] = face
	}
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

func readFontFace(path string) (FontFace, error) {
	file, err := os.Open(path)
	if err != nil {
		return FontFace{}, err
	}
	defer file.Close()

	parsed, err := sfnt.ParseReaderAt(file)
	if err != nil {
		return FontFace{}, fmt.Errorf("failed to parse font: %w", err)
	}

	var buf sfnt.Buffer
	family, err := parsed.Name(&buf, sfnt.NameIDFamily)
	if err != nil || strings.TrimSpace(family) == "" {
		return FontFace{}, fmt.Errorf("font has no family name")
	}
	subfamily, _ := parsed.Name(&buf, sfnt.NameIDSubfamily)

	return FontFace{
		Family:    strings.TrimSpace(family),
		Subfamily: strings.TrimSpace(subfamily),
		Path:      path,
	}, nil
}
