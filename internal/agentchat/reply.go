package agentchat

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NormalizedReply is the result of one exchange. It is exactly one of
// TextAnswer, AudioAnswer, Unrecognized or TransportError.
type NormalizedReply interface {
	isNormalizedReply()
}

// TextAnswer is a reply with displayable text.
type TextAnswer struct {
	Content string
}

// AudioAnswer is a reply whose body was declared as audio.
type AudioAnswer struct {
	ContentType string
	Size        int
	Audio       io.Reader
}

// Unrecognized is a well-formed reply with no extractable answer.
// Shape describes what was received, for diagnostics only.
type Unrecognized struct {
	Shape string
}

// ErrorKind classifies transport failures: "network" or "http:<status>".
type ErrorKind string

const KindNetwork ErrorKind = "network"

// HTTPKind returns the kind for a non-success HTTP status.
func HTTPKind(status int) ErrorKind {
	return ErrorKind("http:" + strconv.Itoa(status))
}

// Status returns the HTTP status carried by an http kind, or 0.
func (k ErrorKind) Status() int {
	s, ok := strings.CutPrefix(string(k), "http:")
	if !ok {
		return 0
	}
	status, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return status
}

// TransportError is an exchange that never produced a usable response.
type TransportError struct {
	Kind   ErrorKind
	Detail string
}

func (e TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (TextAnswer) isNormalizedReply()     {}
func (AudioAnswer) isNormalizedReply()    {}
func (Unrecognized) isNormalizedReply()   {}
func (TransportError) isNormalizedReply() {}
