package agentchat

import (
	"io"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        NormalizedReply
	}{
		{
			name: "array with answer",
			body: `[{"answer": "X"}]`,
			want: TextAnswer{Content: "X"},
		},
		{
			name: "array uses first element only",
			body: `[{"answer": "first"}, {"answer": "second"}]`,
			want: TextAnswer{Content: "first"},
		},
		{
			name: "array without answer",
			body: `[{"message": "ignored"}]`,
			want: Unrecognized{Shape: "array of object with keys [message]"},
		},
		{
			name: "array of strings",
			body: `["x"]`,
			want: Unrecognized{Shape: "array of string"},
		},
		{
			name: "empty array",
			body: `[]`,
			want: Unrecognized{Shape: "empty array"},
		},
		{
			name: "object message field",
			body: `{"message": "Y"}`,
			want: TextAnswer{Content: "Y"},
		},
		{
			name: "object answer wins over message",
			body: `{"answer": "A", "message": "B"}`,
			want: TextAnswer{Content: "A"},
		},
		{
			name: "object response field",
			body: `{"response": "R", "other": 1}`,
			want: TextAnswer{Content: "R"},
		},
		{
			name: "object empty answer falls through",
			body: `{"answer": "", "message": null, "response": "R"}`,
			want: TextAnswer{Content: "R"},
		},
		{
			name: "object numeric answer",
			body: `{"answer": 42}`,
			want: TextAnswer{Content: "42"},
		},
		{
			name: "object nested answer",
			body: `{"answer": {"text": "hi"}}`,
			want: TextAnswer{Content: `{"text":"hi"}`},
		},
		{
			name: "object without known fields",
			body: `{"output": "Z", "id": 3}`,
			want: Unrecognized{Shape: "object with keys [id output]"},
		},
		{
			name: "empty object",
			body: `{}`,
			want: Unrecognized{Shape: "object with keys []"},
		},
		{
			name: "bare string",
			body: `"just text"`,
			want: TextAnswer{Content: "just text"},
		},
		{
			name: "empty bare string",
			body: `""`,
			want: Unrecognized{Shape: "empty string"},
		},
		{
			name: "plain text",
			body: `hello`,
			want: TextAnswer{Content: "hello"},
		},
		{
			name:        "plain text with json content type",
			contentType: "application/json",
			body:        "Workflow was started",
			want:        TextAnswer{Content: "Workflow was started"},
		},
		{
			name: "number",
			body: `12`,
			want: Unrecognized{Shape: "number"},
		},
		{
			name: "boolean",
			body: `true`,
			want: Unrecognized{Shape: "boolean"},
		},
		{
			name: "null",
			body: `null`,
			want: Unrecognized{Shape: "null"},
		},
		{
			name: "empty body",
			body: "",
			want: Unrecognized{Shape: "empty body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(RawReply{ContentType: tt.contentType, Body: []byte(tt.body)})
			if got != tt.want {
				t.Errorf("Normalize(%q) = %#v, want %#v", tt.body, got, tt.want)
			}
		})
	}
}

func TestNormalizeAudio(t *testing.T) {
	// Would be a TextAnswer if it were parsed.
	body := []byte(`{"answer": "not parsed"}`)

	got := Normalize(RawReply{ContentType: "audio/mpeg; charset=binary", Body: body})

	audio, ok := got.(AudioAnswer)
	if !ok {
		t.Fatalf("Normalize() = %#v, want AudioAnswer", got)
	}
	if audio.Size != len(body) {
		t.Errorf("Size = %d, want %d", audio.Size, len(body))
	}
	data, err := io.ReadAll(audio.Audio)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(body) {
		t.Errorf("Audio = %q, want %q", data, body)
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		kind       ErrorKind
		wantStatus int
	}{
		{kind: KindNetwork, wantStatus: 0},
		{kind: HTTPKind(500), wantStatus: 500},
		{kind: HTTPKind(404), wantStatus: 404},
		{kind: ErrorKind("http:abc"), wantStatus: 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.Status(); got != tt.wantStatus {
				t.Errorf("Status() = %d, want %d", got, tt.wantStatus)
			}
		})
	}

	if HTTPKind(500) != "http:500" {
		t.Errorf("HTTPKind(500) = %q", HTTPKind(500))
	}
}

func TestReplyText(t *testing.T) {
	tests := []struct {
		name  string
		reply NormalizedReply
		want  string
	}{
		{
			name:  "text",
			reply: TextAnswer{Content: "hi"},
			want:  "hi",
		},
		{
			name:  "unrecognized",
			reply: Unrecognized{},
			want:  "I received your message but couldn't process it properly. Could you try asking again?",
		},
		{
			name:  "network",
			reply: TransportError{Kind: KindNetwork, Detail: "dial tcp: connection refused"},
			want:  "I'm sorry, I'm having trouble connecting right now. This might be a network or CORS issue. Please check the logs (run with --verbose) for more details and try again.",
		},
		{
			name:  "http",
			reply: TransportError{Kind: HTTPKind(500), Detail: "500 Internal Server Error"},
			want:  "I'm sorry, I'm having trouble connecting right now. Server responded with error: HTTP error! status: 500 - Internal Server Error. Please check the logs (run with --verbose) for more details and try again.",
		},
		{
			name:  "audio",
			reply: AudioAnswer{ContentType: "audio/mpeg", Size: 3},
			want:  "*Audio reply* (audio/mpeg, 3 bytes)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplyText(tt.reply); got != tt.want {
				t.Errorf("ReplyText() = %q, want %q", got, tt.want)
			}
		})
	}
}
