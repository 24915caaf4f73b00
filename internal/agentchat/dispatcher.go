package agentchat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bytedance/sonic"
	"github.com/longkey1/agentchat/internal/version"
	"go.uber.org/zap"
)

// ErrEmptyMessage is returned by Exchange when the input is blank after trimming.
var ErrEmptyMessage = errors.New("message is empty")

// Dispatcher sends chat messages to the agent webhook.
//
// Each exchange is independent: there is no retry, no timeout beyond the HTTP
// client's own and no ordering between concurrent exchanges.
type Dispatcher struct {
	config   Config
	renderer Renderer
	pending  PendingIndicator
	player   AudioPlayer
	client   *http.Client
	logger   *zap.Logger
	now      func() time.Time
	seq      atomic.Uint64
}

// NewDispatcher creates a dispatcher posting to config's webhook URL and rendering
// into renderer. pending may be nil.
func NewDispatcher(config Config, renderer Renderer, pending PendingIndicator) *Dispatcher {
	if pending == nil {
		pending = noopPending{}
	}
	return &Dispatcher{
		config:   config,
		renderer: renderer,
		pending:  pending,
		client:   &http.Client{},
		logger:   zap.NewNop(),
		now:      time.Now,
	}
}

// SetHTTPClient replaces the HTTP client.
func (d *Dispatcher) SetHTTPClient(client *http.Client) {
	d.client = client
}

// SetLogger sets the developer-facing diagnostic logger.
func (d *Dispatcher) SetLogger(logger *zap.Logger) {
	d.logger = logger
}

// SetAudioPlayer sets the receiver of audio replies. Without one, audio replies
// are only announced in the display.
func (d *Dispatcher) SetAudioPlayer(player AudioPlayer) {
	d.player = player
}

// SetClock overrides time.Now.
func (d *Dispatcher) SetClock(now func() time.Time) {
	d.now = now
}

// NewMessage builds the next outgoing message for text.
func (d *Dispatcher) NewMessage(text string) OutgoingMessage {
	return OutgoingMessage{
		Seq:    d.seq.Add(1),
		Text:   TrimMessage(text),
		SentAt: d.now(),
	}
}

// Exchange renders the user's bubble, dispatches the message and renders exactly
// one agent bubble for the reply. Audio replies are also handed to the audio
// player. The only error is ErrEmptyMessage, in which case nothing is rendered.
func (d *Dispatcher) Exchange(ctx context.Context, text string) (NormalizedReply, error) {
	msg := d.NewMessage(text)
	if msg.Text == "" {
		return nil, ErrEmptyMessage
	}

	d.render(msg.Seq, msg.Text, RoleUser)
	reply := d.send(ctx, msg)

	if audio, ok := reply.(AudioAnswer); ok {
		d.play(audio)
	}
	d.render(msg.Seq, ReplyText(reply), RoleAgent)

	return reply, nil
}

// Dispatch sends text without rendering anything and returns the normalized reply.
// The pending indicator is shown for the duration of the request.
func (d *Dispatcher) Dispatch(ctx context.Context, text string) NormalizedReply {
	return d.send(ctx, d.NewMessage(text))
}

func (d *Dispatcher) send(ctx context.Context, msg OutgoingMessage) NormalizedReply {
	d.pending.Show()
	defer d.pending.Hide()

	reply := d.roundTrip(ctx, msg)
	d.logReply(msg, reply)
	return reply
}

func (d *Dispatcher) roundTrip(ctx context.Context, msg OutgoingMessage) NormalizedReply {
	url := d.config.GetWebhookURL()

	body, err := sonic.Marshal(webhookRequest{
		Message:   msg.Text,
		Timestamp: msg.Timestamp(),
	})
	if err != nil {
		return TransportError{Kind: KindNetwork, Detail: fmt.Sprintf("encoding request: %v", err)}
	}

	d.logger.Debug("Sending message",
		zap.Uint64("seq", msg.Seq),
		zap.String("url", url),
		zap.ByteString("body", body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return TransportError{Kind: KindNetwork, Detail: fmt.Sprintf("creating request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "agentchat/"+version.Short())

	resp, err := d.client.Do(req)
	if err != nil {
		return TransportError{Kind: KindNetwork, Detail: err.Error()}
	}
	defer resp.Body.Close()

	d.logger.Debug("Response received",
		zap.Uint64("seq", msg.Seq),
		zap.Int("status", resp.StatusCode),
		zap.String("content_type", resp.Header.Get("Content-Type")))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return TransportError{Kind: HTTPKind(resp.StatusCode), Detail: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return TransportError{Kind: KindNetwork, Detail: fmt.Sprintf("reading response: %v", err)}
	}

	return Normalize(RawReply{
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	})
}

func (d *Dispatcher) logReply(msg OutgoingMessage, reply NormalizedReply) {
	switch r := reply.(type) {
	case TextAnswer:
		d.logger.Debug("Using text answer", zap.Uint64("seq", msg.Seq), zap.String("answer", r.Content))
	case AudioAnswer:
		d.logger.Debug("Using audio answer", zap.Uint64("seq", msg.Seq), zap.String("content_type", r.ContentType), zap.Int("size", r.Size))
	case Unrecognized:
		d.logger.Warn("Reply has no recognized fields", zap.Uint64("seq", msg.Seq), zap.String("shape", r.Shape))
	case TransportError:
		d.logger.Error("Webhook request failed",
			zap.Uint64("seq", msg.Seq),
			zap.String("kind", string(r.Kind)),
			zap.String("detail", r.Detail))
	}
}

func (d *Dispatcher) play(audio AudioAnswer) {
	if d.player == nil {
		d.logger.Warn("No audio player configured, dropping audio reply", zap.Int("size", audio.Size))
		return
	}
	if err := d.player.Play(audio.ContentType, audio.Audio); err != nil {
		d.logger.Error("Playing audio reply failed", zap.Error(err))
	}
}

func (d *Dispatcher) render(seq uint64, content string, role Role) {
	if r, ok := d.renderer.(SequenceRenderer); ok {
		r.AppendSequenced(seq, content, role)
		return
	}
	d.renderer.Append(content, role)
}
