package audio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"audio/mpeg", ".mp3"},
		{"audio/wav; codecs=1", ".wav"},
		{"AUDIO/OGG", ".ogg"},
		{"audio/x-unknown", ".audio"},
		{"", ".audio"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, Extension(tt.contentType))
		})
	}
}

func TestFilePlayerSavesAudio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "audio")
	p := NewFilePlayer(dir, "", nil)

	require.NoError(t, p.Play("audio/mpeg", strings.NewReader("ID3 fake mp3")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".mp3", filepath.Ext(entries[0].Name()))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "ID3 fake mp3", string(data))
}

func TestFilePlayerMissingCommand(t *testing.T) {
	p := NewFilePlayer(t.TempDir(), "agentchat-no-such-player", nil)
	err := p.Play("audio/wav", strings.NewReader("RIFF"))
	assert.Error(t, err)
}
