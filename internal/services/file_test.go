package services

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/logger"
)

func TestFileService_RoundTripThroughDisk(t *testing.T) {
	fs := NewFileService(logger.NewNop())
	path := filepath.Join(t.TempDir(), "note.txt")

	texts := []string{
		"",
		"plain ascii",
		"안녕하세요, 메모장입니다.\n둘째 줄",
		"windows\r\nline endings\r\n",
		"emoji 😀 and trailing space ",
	}
	for _, text := range texts {
		out, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, fs.Write(out, text))
		require.NoError(t, out.Close())

		in, err := os.Open(path)
		require.NoError(t, err)
		got, err := fs.Read(in)
		require.NoError(t, in.Close())
		require.NoError(t, err)

		assert.Equal(t, text, got)
		assert.Equal(t, utf8.RuneCountInString(text), utf8.RuneCountInString(got))
	}
}

func TestFileService_WriteAddsNothing(t *testing.T) {
	fs := NewFileService(logger.NewNop())
	var buf bytes.Buffer

	require.NoError(t, fs.Write(&buf, "메모"))
	assert.Equal(t, []byte("메모"), buf.Bytes())
}

func TestFileService_RejectsInvalidUTF8(t *testing.T) {
	fs := NewFileService(logger.NewNop())

	_, err := fs.Read(bytes.NewReader([]byte{0xff, 0xfe, 'a'}))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device unplugged") }

func TestFileService_ReadErrorIsWrapped(t *testing.T) {
	fs := NewFileService(logger.NewNop())

	_, err := fs.Read(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device unplugged")
}
