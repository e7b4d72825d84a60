package client

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestEncodePhoto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0644))

	uri, err := EncodePhoto(path)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, decoded)
}

func TestEncodePhoto_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

	_, err := EncodePhoto(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "не является изображением")
}

func TestEncodePhoto_MissingFile(t *testing.T) {
	_, err := EncodePhoto(filepath.Join(t.TempDir(), "missing.png"))

	assert.Error(t, err)
}

func TestFilenameFromDisposition(t *testing.T) {
	tests := []struct {
		name        string
		disposition string
		want        string
	}{
		{
			name:        "обычный заголовок",
			disposition: `attachment; filename="Jane_Doe_resume.pdf"`,
			want:        "Jane_Doe_resume.pdf",
		},
		{
			name:        "без имени файла",
			disposition: "attachment",
			want:        "",
		},
		{
			name:        "пустой заголовок",
			disposition: "",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filenameFromDisposition(tt.disposition))
		})
	}
}
