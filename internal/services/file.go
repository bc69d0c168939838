package services

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"notepad/internal/logger"
)

var ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")

// FileService reads and writes documents as raw UTF-8 with no header,
// no BOM handling and no line-ending normalization.
type FileService struct {
	log logger.Logger
}

func NewFileService(log logger.Logger) *FileService {
	return &FileService{log: log}
}

// Read consumes r fully and returns its contents as text.
func (fs *FileService) Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}

	fs.log.Debug("FileService", "document read", map[string]interface{}{
		"bytes": len(data),
	})
	return string(data), nil
}

// Write stores text to w in a single pass.
func (fs *FileService) Write(w io.Writer, text string) error {
	buffered := bufio.NewWriter(w)
	if _, err := buffered.WriteString(text); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("failed to flush document: %w", err)
	}

	fs.log.Debug("FileService", "document written", map[string]interface{}{
		"bytes": len(text),
	})
	return nil
}
