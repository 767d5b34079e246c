// Package llm abstracts the external text-generation capability behind
// a single-method backend interface so the translation engine never
// depends on a particular vendor protocol.
package llm

import "context"

// Role identifies the sender of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat message sent to a backend.
type Message struct {
	Role    Role
	Content string
}

// Backend is the injected text-generation capability. Complete returns
// the plain text of the model's reply. An unreachable or erroring
// service returns an error; a reply with no extractable text returns
// an empty string and a nil error.
type Backend interface {
	Name() string
	Complete(ctx context.Context, messages []Message) (string, error)
}
