package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/logger"
)

type memoryClipboard struct {
	text    string
	readErr error
}

func (m *memoryClipboard) ReadAll() (string, error) { return m.text, m.readErr }
func (m *memoryClipboard) WriteAll(text string) error {
	m.text = text
	return nil
}

func TestClipboardService_Text(t *testing.T) {
	backend := &memoryClipboard{text: "복사"}
	cs := NewClipboardService(backend, logger.NewNop())

	text, err := cs.Text()
	require.NoError(t, err)
	assert.Equal(t, "복사", text)
}

func TestClipboardService_EmptyAndFailingReadsAreEmpty(t *testing.T) {
	cs := NewClipboardService(&memoryClipboard{}, logger.NewNop())
	_, err := cs.Text()
	assert.ErrorIs(t, err, ErrClipboardEmpty)

	cs = NewClipboardService(&memoryClipboard{readErr: errors.New("no display")}, logger.NewNop())
	_, err = cs.Text()
	assert.ErrorIs(t, err, ErrClipboardEmpty)
}

func TestClipboardService_SetText(t *testing.T) {
	backend := &memoryClipboard{}
	cs := NewClipboardService(backend, logger.NewNop())

	require.NoError(t, cs.SetText("cut text"))
	assert.Equal(t, "cut text", backend.text)

	text, err := cs.Text()
	require.NoError(t, err)
	assert.Equal(t, "cut text", text)
}
