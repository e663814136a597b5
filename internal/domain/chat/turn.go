// Package chat holds conversation types exchanged with the ranking collaborator.
package chat

// Role identifies who produced a conversation turn.
type Role string

// Conversation roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single conversation message. Turns are passed through to the
// ranking collaborator for context; only the most recent user turn feeds
// constraint extraction, so earlier keywords never poison the filter.
type Turn struct {
	Role    Role
	Content string
}

// LatestUserUtterance returns the content of the most recent user turn, or
// "" when the conversation has none.
func LatestUserUtterance(turns []Turn) string {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == RoleUser {
			return turns[i].Content
		}
	}
	return ""
}
