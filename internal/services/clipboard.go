package services

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"notepad/internal/logger"
)

var (
	ErrClipboardEmpty       = errors.New("clipboard has no text")
	errClipboardUnsupported = errors.New("no clipboard utility available")
)

// Clipboard is the system clipboard as seen by the editor.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard talks to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", errClipboardUnsupported
	}
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// ClipboardService wraps a Clipboard with the editor's empty-content rules.
type ClipboardService struct {
	backend Clipboard
	log     logger.Logger
}

func NewClipboardService(backend Clipboard, log logger.Logger) *ClipboardService {
	return &ClipboardService{backend: backend, log: log}
}

// Text returns the clipboard text. Unsupported platforms, access failures and
// empty content all report ErrClipboardEmpty.
func (cs *ClipboardService) Text() (string, error) {
	text, err := cs.backend.ReadAll()
	if err != nil {
		cs.log.Warning("ClipboardService", "clipboard read failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", fmt.Errorf("%w: %v", ErrClipboardEmpty, err)
	}
	if text == "" {
		return "", ErrClipboardEmpty
	}
	return text, nil
}

func (cs *ClipboardService) SetText(text string) error {
	if err := cs.backend.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
