package agentchat

import (
	"bytes"
	"fmt"
	"mime"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
)

// answerFields are probed in order on object replies.
var answerFields = []string{"answer", "message", "response"}

// RawReply is an unparsed successful webhook response.
type RawReply struct {
	ContentType string
	Body        []byte
}

// IsAudio reports whether the reply declares an audio content type.
func (r RawReply) IsAudio() bool {
	return isAudioContentType(r.ContentType)
}

func isAudioContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.HasPrefix(mediaType, "audio/")
}

// Normalize reduces a successful reply to a single answer.
//
// Audio replies are returned as AudioAnswer without looking at the body. Anything
// else is parsed as JSON: arrays yield the first element's "answer", objects the
// first non-empty of "answer", "message" and "response", and bare strings
// themselves. A body that is not JSON is used verbatim.
func Normalize(raw RawReply) NormalizedReply {
	if raw.IsAudio() {
		return AudioAnswer{
			ContentType: raw.ContentType,
			Size:        len(raw.Body),
			Audio:       bytes.NewReader(raw.Body),
		}
	}

	text := string(raw.Body)

	var data any
	if err := sonic.ConfigStd.Unmarshal(raw.Body, &data); err != nil {
		if strings.TrimSpace(text) == "" {
			return Unrecognized{Shape: "empty body"}
		}
		return TextAnswer{Content: text}
	}

	switch v := data.(type) {
	case []any:
		if len(v) == 0 {
			return Unrecognized{Shape: "empty array"}
		}
		record, ok := v[0].(map[string]any)
		if !ok {
			return Unrecognized{Shape: fmt.Sprintf("array of %s", shapeOf(v[0]))}
		}
		if answer, ok := fieldText(record["answer"]); ok {
			return TextAnswer{Content: answer}
		}
		return Unrecognized{Shape: "array of object with keys " + keysOf(record)}
	case map[string]any:
		for _, field := range answerFields {
			if answer, ok := fieldText(v[field]); ok {
				return TextAnswer{Content: answer}
			}
		}
		return Unrecognized{Shape: "object with keys " + keysOf(v)}
	case string:
		if v == "" {
			return Unrecognized{Shape: "empty string"}
		}
		return TextAnswer{Content: v}
	default:
		return Unrecognized{Shape: shapeOf(v)}
	}
}

// fieldText returns the displayable text of a field value. Missing, null, false,
// zero and empty string values count as absent.
func fieldText(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		if !v {
			return "", false
		}
		return "true", true
	case float64:
		if v == 0 {
			return "", false
		}
	}
	s, err := sonic.ConfigStd.MarshalToString(value)
	if err != nil {
		return "", false
	}
	return s, true
}

func shapeOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func keysOf(record map[string]any) string {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "[" + strings.Join(keys, " ") + "]"
}
