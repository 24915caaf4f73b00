package cmd

import (
	"github.com/longkey1/agentchat/internal/agentchat"
	"github.com/longkey1/agentchat/internal/agentchat/audio"
	"github.com/longkey1/agentchat/internal/agentchat/config"
)

// newDispatcher creates a dispatcher wired to the configured webhook, the audio
// player and the diagnostic logger.
func newDispatcher(cfg *config.Config, renderer agentchat.Renderer, pending agentchat.PendingIndicator) *agentchat.Dispatcher {
	d := agentchat.NewDispatcher(cfg, renderer, pending)
	d.SetLogger(logger)
	d.SetAudioPlayer(audio.NewFilePlayer(cfg.AudioDir, cfg.PlayerCommand, logger))
	return d
}
