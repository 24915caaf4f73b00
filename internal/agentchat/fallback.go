package agentchat

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	// UnrecognizedText is shown when the webhook answered without a usable field.
	UnrecognizedText = "I received your message but couldn't process it properly. Could you try asking again?"

	connectionTrouble = "I'm sorry, I'm having trouble connecting right now. "
	networkHint       = "This might be a network or CORS issue. "
	checkLogs         = "Please check the logs (run with --verbose) for more details and try again."
)

// ReplyText returns the text of the agent bubble for reply.
func ReplyText(reply NormalizedReply) string {
	switch r := reply.(type) {
	case TextAnswer:
		return r.Content
	case AudioAnswer:
		return audioText(r)
	case Unrecognized:
		return UnrecognizedText
	case TransportError:
		return transportText(r)
	default:
		return UnrecognizedText
	}
}

func audioText(r AudioAnswer) string {
	return fmt.Sprintf("*Audio reply* (%s, %d bytes)", r.ContentType, r.Size)
}

func transportText(e TransportError) string {
	var b strings.Builder
	b.WriteString(connectionTrouble)
	if e.Kind == KindNetwork {
		b.WriteString(networkHint)
	} else if status := e.Kind.Status(); status != 0 {
		fmt.Fprintf(&b, "Server responded with error: HTTP error! status: %d - %s. ", status, http.StatusText(status))
	}
	b.WriteString(checkLogs)
	return b.String()
}
