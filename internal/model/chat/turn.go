package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies which side of the conversation produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation. The model gateway expects turns to
// alternate starting with a user turn.
type Turn struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserTurn builds a user-authored turn stamped with an ID and timestamp.
func UserTurn(content string) Turn {
	return newTurn(RoleUser, content)
}

// AssistantTurn builds a model-authored turn stamped with an ID and timestamp.
func AssistantTurn(content string) Turn {
	return newTurn(RoleAssistant, content)
}

func newTurn(role Role, content string) Turn {
	return Turn{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
