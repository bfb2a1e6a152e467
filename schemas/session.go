package schemas

import "github.com/google/uuid"

// CommandSink is the outbound packet boundary for command translation. The
// send may be asynchronous depending on the host transport.
type CommandSink interface {
	SendAvailableCommands(msg *AvailableCommands) error
}

// DescriptionSource resolves the human-readable description of a command by
// name. Implementations typically consult locale data; returning an empty
// string is valid.
type DescriptionSource func(command string) string

// Session represents one connected Bedrock client from the translator's
// point of view: an identity plus the sink packets are written to.
type Session struct {
	ID   uuid.UUID
	Sink CommandSink
}

// NewSession creates a session with a fresh identity around the given sink.
func NewSession(sink CommandSink) *Session {
	return &Session{
		ID:   uuid.New(),
		Sink: sink,
	}
}
