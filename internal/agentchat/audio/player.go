// Package audio stores audio replies and optionally hands them to an external
// player command.
package audio

import (
	"fmt"
	"io"
	"mime"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var extensions = map[string]string{
	"audio/mpeg":  ".mp3",
	"audio/mp3":   ".mp3",
	"audio/wav":   ".wav",
	"audio/x-wav": ".wav",
	"audio/wave":  ".wav",
	"audio/ogg":   ".ogg",
	"audio/webm":  ".webm",
	"audio/aac":   ".aac",
	"audio/mp4":   ".m4a",
	"audio/flac":  ".flac",
}

// FilePlayer writes each audio reply to its own file in Dir.
// If Command is set it is started with the file path as its only argument.
type FilePlayer struct {
	Dir     string
	Command string
	Logger  *zap.Logger
}

// NewFilePlayer creates a player saving into dir.
func NewFilePlayer(dir, command string, logger *zap.Logger) *FilePlayer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FilePlayer{Dir: dir, Command: command, Logger: logger}
}

// Play saves audio and launches the player command without waiting for it.
func (p *FilePlayer) Play(contentType string, audio io.Reader) error {
	path, err := p.Save(contentType, audio)
	if err != nil {
		return err
	}
	p.Logger.Info("Audio reply saved", zap.String("path", path))

	if p.Command == "" {
		return nil
	}

	cmd := exec.Command(p.Command, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting audio player %q: %w", p.Command, err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			p.Logger.Warn("Audio player exited with error", zap.String("command", p.Command), zap.Error(err))
		}
	}()
	return nil
}

// Save writes audio to a new file and returns its path.
func (p *FilePlayer) Save(contentType string, audio io.Reader) (string, error) {
	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	path := filepath.Join(p.Dir, uuid.New().String()+Extension(contentType))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create audio file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, audio); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}
	return path, nil
}

// Extension returns the file extension for an audio content type.
func Extension(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}
	if ext, ok := extensions[mediaType]; ok {
		return ext
	}
	return ".audio"
}
