package agentchat_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/longkey1/agentchat/internal/agentchat"
	"github.com/longkey1/agentchat/internal/agentchat/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticConfig string

func (c staticConfig) GetWebhookURL() string { return string(c) }

type countingPending struct {
	mu    sync.Mutex
	shows int
	hides int
}

func (p *countingPending) Show() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shows++
}

func (p *countingPending) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hides++
}

func (p *countingPending) counts() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shows, p.hides
}

type recordingPlayer struct {
	contentType string
	data        []byte
}

func (p *recordingPlayer) Play(contentType string, audio io.Reader) error {
	p.contentType = contentType
	data, err := io.ReadAll(audio)
	p.data = data
	return err
}

func newTestDispatcher(t *testing.T, url string) (*agentchat.Dispatcher, *display.List, *countingPending) {
	t.Helper()
	list := display.NewList()
	pending := &countingPending{}
	d := agentchat.NewDispatcher(staticConfig(url), list, pending)
	return d, list, pending
}

func replyWith(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		_, _ = io.WriteString(w, body)
	}
}

func TestDispatchRequest(t *testing.T) {
	var (
		gotMethod string
		gotHeader http.Header
		gotBody   map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Clone()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"answer": "ok"}`)
	}))
	defer srv.Close()

	d, _, _ := newTestDispatcher(t, srv.URL)
	d.SetClock(func() time.Time {
		return time.Date(2025, 3, 4, 5, 6, 7, 890_000_000, time.FixedZone("JST", 9*60*60))
	})

	reply := d.Dispatch(context.Background(), "  What do you do?  ")

	assert.Equal(t, agentchat.TextAnswer{Content: "ok"}, reply)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotHeader.Get("Content-Type"))
	assert.Equal(t, "application/json", gotHeader.Get("Accept"))
	assert.Equal(t, map[string]string{
		"message":   "What do you do?",
		"timestamp": "2025-03-03T20:06:07.890Z",
	}, gotBody)
}

func TestExchangeReplyShapes(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantReply   agentchat.NormalizedReply
		wantText    string
	}{
		{
			name:        "array",
			contentType: "application/json",
			body:        `[{"answer": "X"}]`,
			wantReply:   agentchat.TextAnswer{Content: "X"},
			wantText:    "X",
		},
		{
			name:        "message field",
			contentType: "application/json",
			body:        `{"message": "Y"}`,
			wantReply:   agentchat.TextAnswer{Content: "Y"},
			wantText:    "Y",
		},
		{
			name:        "answer has priority",
			contentType: "application/json",
			body:        `{"answer": "A", "message": "B"}`,
			wantReply:   agentchat.TextAnswer{Content: "A"},
			wantText:    "A",
		},
		{
			name:        "plain text",
			contentType: "text/plain",
			body:        "hello",
			wantReply:   agentchat.TextAnswer{Content: "hello"},
			wantText:    "hello",
		},
		{
			name:        "empty object",
			contentType: "application/json",
			body:        `{}`,
			wantReply:   agentchat.Unrecognized{Shape: "object with keys []"},
			wantText:    agentchat.UnrecognizedText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(replyWith(tt.contentType, tt.body))
			defer srv.Close()

			d, list, pending := newTestDispatcher(t, srv.URL)

			reply, err := d.Exchange(context.Background(), "question")
			require.NoError(t, err)
			assert.Equal(t, tt.wantReply, reply)

			msgs := list.Messages()
			require.Len(t, msgs, 2)
			assert.Equal(t, agentchat.RoleUser, msgs[0].Role)
			assert.Equal(t, "question", msgs[0].Content)
			assert.Equal(t, agentchat.RoleAgent, msgs[1].Role)
			assert.Equal(t, tt.wantText, msgs[1].Content)

			shows, hides := pending.counts()
			assert.Equal(t, 1, shows)
			assert.Equal(t, 1, hides)
		})
	}
}

func TestExchangeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"answer": "should not be used"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	d, list, pending := newTestDispatcher(t, srv.URL)

	reply, err := d.Exchange(context.Background(), "question")
	require.NoError(t, err)

	transportErr, ok := reply.(agentchat.TransportError)
	require.True(t, ok, "reply = %#v", reply)
	assert.Equal(t, agentchat.ErrorKind("http:500"), transportErr.Kind)

	msgs := list.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, agentchat.RoleAgent, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "I'm sorry, I'm having trouble connecting right now.")
	assert.Contains(t, msgs[1].Content, "status: 500")

	shows, hides := pending.counts()
	assert.Equal(t, 1, shows)
	assert.Equal(t, 1, hides)
}

func TestExchangeNetworkError(t *testing.T) {
	srv := httptest.NewServer(replyWith("", "unused"))
	url := srv.URL
	srv.Close()

	d, list, pending := newTestDispatcher(t, url)

	reply, err := d.Exchange(context.Background(), "question")
	require.NoError(t, err)

	transportErr, ok := reply.(agentchat.TransportError)
	require.True(t, ok, "reply = %#v", reply)
	assert.Equal(t, agentchat.KindNetwork, transportErr.Kind)
	assert.NotEmpty(t, transportErr.Detail)

	msgs := list.Messages()
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].Content, "network or CORS issue")

	shows, hides := pending.counts()
	assert.Equal(t, 1, shows)
	assert.Equal(t, 1, hides)
}

func TestExchangeAudio(t *testing.T) {
	srv := httptest.NewServer(replyWith("audio/mpeg", "ID3 audio bytes"))
	defer srv.Close()

	d, list, _ := newTestDispatcher(t, srv.URL)
	player := &recordingPlayer{}
	d.SetAudioPlayer(player)

	reply, err := d.Exchange(context.Background(), "read it to me")
	require.NoError(t, err)

	audio, ok := reply.(agentchat.AudioAnswer)
	require.True(t, ok, "reply = %#v", reply)
	assert.Equal(t, len("ID3 audio bytes"), audio.Size)
	assert.Equal(t, "audio/mpeg", player.contentType)
	assert.Equal(t, "ID3 audio bytes", string(player.data))

	msgs := list.Messages()
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].Content, "Audio reply")
}

func TestExchangeEmptyMessage(t *testing.T) {
	d, list, pending := newTestDispatcher(t, "http://127.0.0.1:0")

	_, err := d.Exchange(context.Background(), "   \n\t")
	assert.ErrorIs(t, err, agentchat.ErrEmptyMessage)
	assert.Equal(t, 0, list.Len())

	shows, _ := pending.counts()
	assert.Equal(t, 0, shows)
}

func TestExchangeRepeatedAfterClear(t *testing.T) {
	srv := httptest.NewServer(replyWith("application/json", `{"answer": "same"}`))
	defer srv.Close()

	d, list, _ := newTestDispatcher(t, srv.URL)
	list.Append("old", agentchat.RoleUser)
	list.Clear()

	for i := 0; i < 2; i++ {
		_, err := d.Exchange(context.Background(), "hello")
		require.NoError(t, err)
	}

	msgs := list.Messages()
	require.Len(t, msgs, 4)
	for i := 0; i < 4; i += 2 {
		assert.Equal(t, agentchat.RoleUser, msgs[i].Role)
		assert.Equal(t, "hello", msgs[i].Content)
		assert.Equal(t, agentchat.RoleAgent, msgs[i+1].Role)
		assert.Equal(t, "same", msgs[i+1].Content)
		assert.Equal(t, msgs[i].Seq, msgs[i+1].Seq)
	}
	assert.NotEqual(t, msgs[0].Seq, msgs[2].Seq)
}

func TestConcurrentExchangesOutOfOrder(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if strings.Contains(string(body), "slow") {
			<-release
		}
		var req map[string]string
		_ = json.Unmarshal(body, &req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"answer": "re: " + req["message"]})
	}))
	defer srv.Close()

	d, list, pending := newTestDispatcher(t, srv.URL)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = d.Exchange(context.Background(), "slow")
	}()

	// Wait until the slow message is on the list before sending the fast one.
	require.Eventually(t, func() bool { return list.Len() == 1 }, time.Second, time.Millisecond)

	_, err := d.Exchange(context.Background(), "fast")
	require.NoError(t, err)
	close(release)
	wg.Wait()

	var arrival []string
	for _, m := range list.Messages() {
		arrival = append(arrival, m.Content)
	}
	assert.Equal(t, []string{"slow", "fast", "re: fast", "re: slow"}, arrival)

	var ordered []string
	for _, m := range list.Ordered() {
		ordered = append(ordered, m.Content)
	}
	assert.Equal(t, []string{"slow", "re: slow", "fast", "re: fast"}, ordered)

	shows, hides := pending.counts()
	assert.Equal(t, 2, shows)
	assert.Equal(t, 2, hides)

}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, "demo ready")
	}))
	defer srv.Close()

	d, _, _ := newTestDispatcher(t, srv.URL)

	body, err := d.Ping(context.Background(), srv.URL+"/demo")
	require.NoError(t, err)
	assert.Equal(t, "demo ready", body)

	_, err = d.Ping(context.Background(), srv.URL+"/missing")
	assert.EqualError(t, err, "HTTP error! status: 404")
}
